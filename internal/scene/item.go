package scene

import (
	"github.com/grindlemire/go-flex"
)

// Document is the top level of a scene file.
type Document struct {
	Root Item `json:"root" yaml:"root" toml:"root"`
}

// Box holds four edges for padding or margin.
type Box struct {
	Top    float32 `json:"top" yaml:"top" toml:"top"`
	Right  float32 `json:"right" yaml:"right" toml:"right"`
	Bottom float32 `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   float32 `json:"left" yaml:"left" toml:"left"`
}

// Item describes one node. Nil fields are left at their defaults.
type Item struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	Width  *float32 `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height *float32 `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`

	Left   *float32 `json:"left,omitempty" yaml:"left,omitempty" toml:"left,omitempty"`
	Right  *float32 `json:"right,omitempty" yaml:"right,omitempty" toml:"right,omitempty"`
	Top    *float32 `json:"top,omitempty" yaml:"top,omitempty" toml:"top,omitempty"`
	Bottom *float32 `json:"bottom,omitempty" yaml:"bottom,omitempty" toml:"bottom,omitempty"`

	Padding *Box `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	Margin  *Box `json:"margin,omitempty" yaml:"margin,omitempty" toml:"margin,omitempty"`

	JustifyContent *flex.Align     `json:"justify_content,omitempty" yaml:"justify_content,omitempty" toml:"justify_content,omitempty"`
	AlignContent   *flex.Align     `json:"align_content,omitempty" yaml:"align_content,omitempty" toml:"align_content,omitempty"`
	AlignItems     *flex.Align     `json:"align_items,omitempty" yaml:"align_items,omitempty" toml:"align_items,omitempty"`
	AlignSelf      *flex.Align     `json:"align_self,omitempty" yaml:"align_self,omitempty" toml:"align_self,omitempty"`
	Position       *flex.Position  `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty"`
	Direction      *flex.Direction `json:"direction,omitempty" yaml:"direction,omitempty" toml:"direction,omitempty"`
	Wrap           *flex.Wrap      `json:"wrap,omitempty" yaml:"wrap,omitempty" toml:"wrap,omitempty"`

	Grow   *float32 `json:"grow,omitempty" yaml:"grow,omitempty" toml:"grow,omitempty"`
	Shrink *float32 `json:"shrink,omitempty" yaml:"shrink,omitempty" toml:"shrink,omitempty"`
	Order  *int32   `json:"order,omitempty" yaml:"order,omitempty" toml:"order,omitempty"`
	Basis  *float32 `json:"basis,omitempty" yaml:"basis,omitempty" toml:"basis,omitempty"`

	Children []Item `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Options converts the set fields into node options.
func (it *Item) Options() []flex.Option {
	var opts []flex.Option
	float := func(p flex.Prop, v *float32) {
		if v != nil {
			opts = append(opts, flex.WithProp(p, float64(*v)))
		}
	}

	float(flex.PropWidth, it.Width)
	float(flex.PropHeight, it.Height)
	float(flex.PropLeft, it.Left)
	float(flex.PropRight, it.Right)
	float(flex.PropTop, it.Top)
	float(flex.PropBottom, it.Bottom)
	if b := it.Padding; b != nil {
		opts = append(opts, flex.WithPadding(b.Top, b.Right, b.Bottom, b.Left))
	}
	if b := it.Margin; b != nil {
		opts = append(opts, flex.WithMargin(b.Top, b.Right, b.Bottom, b.Left))
	}

	if it.JustifyContent != nil {
		opts = append(opts, flex.WithJustifyContent(*it.JustifyContent))
	}
	if it.AlignContent != nil {
		opts = append(opts, flex.WithAlignContent(*it.AlignContent))
	}
	if it.AlignItems != nil {
		opts = append(opts, flex.WithAlignItems(*it.AlignItems))
	}
	if it.AlignSelf != nil {
		opts = append(opts, flex.WithAlignSelf(*it.AlignSelf))
	}
	if it.Position != nil {
		opts = append(opts, flex.WithPosition(*it.Position))
	}
	if it.Direction != nil {
		opts = append(opts, flex.WithDirection(*it.Direction))
	}
	if it.Wrap != nil {
		opts = append(opts, flex.WithWrap(*it.Wrap))
	}

	float(flex.PropGrow, it.Grow)
	float(flex.PropShrink, it.Shrink)
	if it.Order != nil {
		opts = append(opts, flex.WithOrder(*it.Order))
	}
	float(flex.PropBasis, it.Basis)
	return opts
}
