package flex

import (
	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-flex/internal/debug"
)

// Option configures a Node. Options are used by New and Apply.
type Option func(*Node) error

// Apply runs opts against the node. Either every option applies or, on the
// first failure, the node is left exactly as it was.
func (n *Node) Apply(opts ...Option) error {
	if err := n.checkLive("apply"); err != nil {
		return err
	}
	if err := n.applyOptions(opts); err != nil {
		return opError("apply", err)
	}
	return nil
}

func (n *Node) applyOptions(opts []Option) error {
	vals, dirty, logger := n.vals, n.dirty, n.logger
	for _, opt := range opts {
		if err := opt(n); err != nil {
			n.vals, n.dirty, n.logger = vals, dirty, logger
			return err
		}
	}
	return nil
}

// WithProp sets any property by identifier.
func WithProp(p Prop, v float64) Option {
	return func(n *Node) error {
		return n.assign(p, v)
	}
}

// WithLogger routes the node's debug records to l. A nil logger restores
// the process-wide debug logger.
func WithLogger(l *log.Logger) Option {
	return func(n *Node) error {
		if l == nil {
			l = debug.Logger()
		}
		n.logger = l
		return nil
	}
}

// --- Size Options ---

// WithWidth sets the requested width.
func WithWidth(v float32) Option {
	return WithProp(PropWidth, float64(v))
}

// WithHeight sets the requested height.
func WithHeight(v float32) Option {
	return WithProp(PropHeight, float64(v))
}

// WithSize sets width and height.
func WithSize(width, height float32) Option {
	return withAll(WithWidth(width), WithHeight(height))
}

// --- Location Options ---

// WithLocation sets the absolute offsets in CSS order: top, right, bottom, left.
func WithLocation(top, right, bottom, left float32) Option {
	return withAll(
		WithProp(PropTop, float64(top)),
		WithProp(PropRight, float64(right)),
		WithProp(PropBottom, float64(bottom)),
		WithProp(PropLeft, float64(left)),
	)
}

// --- Spacing Options ---

// WithPadding sets all four padding edges in CSS order.
func WithPadding(top, right, bottom, left float32) Option {
	return withAll(
		WithProp(PropPaddingTop, float64(top)),
		WithProp(PropPaddingRight, float64(right)),
		WithProp(PropPaddingBottom, float64(bottom)),
		WithProp(PropPaddingLeft, float64(left)),
	)
}

// WithUniformPadding sets every padding edge to v.
func WithUniformPadding(v float32) Option {
	return WithPadding(v, v, v, v)
}

// WithMargin sets all four margin edges in CSS order.
func WithMargin(top, right, bottom, left float32) Option {
	return withAll(
		WithProp(PropMarginTop, float64(top)),
		WithProp(PropMarginRight, float64(right)),
		WithProp(PropMarginBottom, float64(bottom)),
		WithProp(PropMarginLeft, float64(left)),
	)
}

// WithUniformMargin sets every margin edge to v.
func WithUniformMargin(v float32) Option {
	return WithMargin(v, v, v, v)
}

// --- Flex Container Options ---

// WithDirection sets the main axis direction for laying out children.
func WithDirection(d Direction) Option {
	return WithProp(PropDirection, float64(d))
}

// WithJustifyContent sets how children are distributed along the main axis.
func WithJustifyContent(a Align) Option {
	return WithProp(PropJustifyContent, float64(a))
}

// WithAlignItems sets how children are aligned on the cross axis.
func WithAlignItems(a Align) Option {
	return WithProp(PropAlignItems, float64(a))
}

// WithAlignContent sets how wrapped lines are distributed on the cross axis.
func WithAlignContent(a Align) Option {
	return WithProp(PropAlignContent, float64(a))
}

// WithWrap sets whether children may break into several lines.
func WithWrap(w Wrap) Option {
	return WithProp(PropWrap, float64(w))
}

// --- Flex Item Options ---

// WithAlignSelf overrides the parent's align_items for this node.
func WithAlignSelf(a Align) Option {
	return WithProp(PropAlignSelf, float64(a))
}

// WithPosition selects flow or absolute placement.
func WithPosition(p Position) Option {
	return WithProp(PropPosition, float64(p))
}

// WithGrow sets the flex grow factor.
func WithGrow(v float32) Option {
	return WithProp(PropGrow, float64(v))
}

// WithShrink sets the flex shrink factor.
func WithShrink(v float32) Option {
	return WithProp(PropShrink, float64(v))
}

// WithOrder sets the ordering key among siblings.
func WithOrder(v int32) Option {
	return WithProp(PropOrder, float64(v))
}

// WithBasis sets the main-axis base size.
func WithBasis(v float32) Option {
	return WithProp(PropBasis, float64(v))
}

func withAll(opts ...Option) Option {
	return func(n *Node) error {
		for _, opt := range opts {
			if err := opt(n); err != nil {
				return err
			}
		}
		return nil
	}
}
