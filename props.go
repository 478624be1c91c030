package flex

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Prop identifies one layout property of a Node.
type Prop uint8

const (
	PropWidth Prop = iota
	PropHeight

	PropLeft
	PropRight
	PropTop
	PropBottom

	PropPaddingLeft
	PropPaddingRight
	PropPaddingTop
	PropPaddingBottom

	PropMarginLeft
	PropMarginRight
	PropMarginTop
	PropMarginBottom

	PropJustifyContent
	PropAlignContent
	PropAlignItems
	PropAlignSelf
	PropPosition
	PropDirection
	PropWrap

	PropGrow
	PropShrink
	PropOrder
	PropBasis

	propCount
)

// propKind decides how a stored value is validated.
type propKind uint8

const (
	kindFloat propKind = iota
	kindInt
	kindAlign
	kindPosition
	kindDirection
	kindWrap
)

type propInfo struct {
	name  string
	group Group
	kind  propKind
}

var propTable = [propCount]propInfo{
	PropWidth:  {"width", GroupSize, kindFloat},
	PropHeight: {"height", GroupSize, kindFloat},

	PropLeft:   {"left", GroupLocation, kindFloat},
	PropRight:  {"right", GroupLocation, kindFloat},
	PropTop:    {"top", GroupLocation, kindFloat},
	PropBottom: {"bottom", GroupLocation, kindFloat},

	PropPaddingLeft:   {"padding_left", GroupPadding, kindFloat},
	PropPaddingRight:  {"padding_right", GroupPadding, kindFloat},
	PropPaddingTop:    {"padding_top", GroupPadding, kindFloat},
	PropPaddingBottom: {"padding_bottom", GroupPadding, kindFloat},

	PropMarginLeft:   {"margin_left", GroupMargin, kindFloat},
	PropMarginRight:  {"margin_right", GroupMargin, kindFloat},
	PropMarginTop:    {"margin_top", GroupMargin, kindFloat},
	PropMarginBottom: {"margin_bottom", GroupMargin, kindFloat},

	PropJustifyContent: {"justify_content", GroupEnums, kindAlign},
	PropAlignContent:   {"align_content", GroupEnums, kindAlign},
	PropAlignItems:     {"align_items", GroupEnums, kindAlign},
	PropAlignSelf:      {"align_self", GroupEnums, kindAlign},
	PropPosition:       {"position", GroupEnums, kindPosition},
	PropDirection:      {"direction", GroupEnums, kindDirection},
	PropWrap:           {"wrap", GroupEnums, kindWrap},

	PropGrow:   {"grow", GroupMisc, kindFloat},
	PropShrink: {"shrink", GroupMisc, kindFloat},
	PropOrder:  {"order", GroupMisc, kindInt},
	PropBasis:  {"basis", GroupMisc, kindFloat},
}

// defaultValues mirrors the engine's defaults so a fresh node starts clean.
var defaultValues = func() [propCount]float64 {
	s := layout.DefaultStyle()
	var v [propCount]float64
	v[PropWidth], v[PropHeight] = float64(s.Width), float64(s.Height)
	v[PropLeft], v[PropRight] = float64(s.Left), float64(s.Right)
	v[PropTop], v[PropBottom] = float64(s.Top), float64(s.Bottom)
	v[PropPaddingLeft], v[PropPaddingRight] = float64(s.Padding.Left), float64(s.Padding.Right)
	v[PropPaddingTop], v[PropPaddingBottom] = float64(s.Padding.Top), float64(s.Padding.Bottom)
	v[PropMarginLeft], v[PropMarginRight] = float64(s.Margin.Left), float64(s.Margin.Right)
	v[PropMarginTop], v[PropMarginBottom] = float64(s.Margin.Top), float64(s.Margin.Bottom)
	v[PropJustifyContent] = float64(s.JustifyContent)
	v[PropAlignContent] = float64(s.AlignContent)
	v[PropAlignItems] = float64(s.AlignItems)
	v[PropAlignSelf] = float64(s.AlignSelf)
	v[PropPosition] = float64(s.Position)
	v[PropDirection] = float64(s.Direction)
	v[PropWrap] = float64(s.Wrap)
	v[PropGrow], v[PropShrink] = float64(s.Grow), float64(s.Shrink)
	v[PropOrder], v[PropBasis] = float64(s.Order), float64(s.Basis)
	return v
}()

// Props lists every property in declaration order.
func Props() []Prop {
	out := make([]Prop, propCount)
	for i := range out {
		out[i] = Prop(i)
	}
	return out
}

// ParseProp looks a property up by its snake_case name.
func ParseProp(name string) (Prop, error) {
	for i, info := range propTable {
		if info.name == name {
			return Prop(i), nil
		}
	}
	return 0, fmt.Errorf("unknown property %q", name)
}

// String returns the snake_case property name.
func (p Prop) String() string {
	if p.valid() {
		return propTable[p].name
	}
	return fmt.Sprintf("Prop(%d)", uint8(p))
}

// Group returns the commit group the property belongs to.
func (p Prop) Group() Group {
	if p.valid() {
		return propTable[p].group
	}
	return 0
}

func (p Prop) valid() bool {
	return p < propCount
}

// normalize validates v for p and returns the value as it will be stored.
// Float properties are rounded to float32, the engine's precision.
func normalize(p Prop, v float64) (float64, error) {
	if !p.valid() {
		return 0, fmt.Errorf("%s: %w", p, ErrInvalidValue)
	}

	info := propTable[p]
	invalid := func() (float64, error) {
		return 0, fmt.Errorf("%s=%v: %w", info.name, v, ErrInvalidValue)
	}

	switch info.kind {
	case kindFloat:
		return float64(float32(v)), nil
	case kindInt:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return invalid()
		}
		return v, nil
	}

	// Enum kinds: small non-negative integers within the enum's range
	if v != math.Trunc(v) || v < 0 || v > math.MaxUint8 {
		return invalid()
	}
	var ok bool
	switch info.kind {
	case kindAlign:
		ok = layout.Align(v).Valid()
	case kindPosition:
		ok = layout.Position(v).Valid()
	case kindDirection:
		ok = layout.Direction(v).Valid()
	case kindWrap:
		ok = layout.Wrap(v).Valid()
	}
	if !ok {
		return invalid()
	}
	return v, nil
}

// sameValue treats two NaNs as equal so rewriting an unset dimension
// does not dirty its group.
func sameValue(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
