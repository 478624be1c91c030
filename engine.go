package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Handle identifies a node inside an Engine. The zero Handle is never issued.
type Handle = layout.Handle

// Engine is the call contract of the external flexbox engine. Node is the
// only caller; it guarantees that every handle it passes is live, that Free
// is only called on roots, and that Layout follows a full property commit
// of the subtree.
type Engine interface {
	// Create allocates one engine-side node.
	Create() Handle
	// Free releases a root node and every node attached under it.
	Free(h Handle)

	// Add appends child under parent.
	Add(parent, child Handle)
	// Insert places child under parent at a zero-based index.
	Insert(parent, child Handle, index int)
	// Remove detaches the child at a zero-based index.
	Remove(parent Handle, index int)

	// SetSize pushes the size group.
	SetSize(h Handle, width, height float32)
	// SetLocation pushes the location group in top, right, bottom, left order.
	SetLocation(h Handle, top, right, bottom, left float32)
	// SetPadding pushes all four padding edges.
	SetPadding(h Handle, top, right, bottom, left float32)
	// SetMargin pushes all four margin edges.
	SetMargin(h Handle, top, right, bottom, left float32)
	// SetEnumPropsBatch pushes every enum property as one packed word.
	SetEnumPropsBatch(h Handle, packed uint32)
	// SetMisc pushes grow, shrink, order and basis.
	SetMisc(h Handle, grow, shrink float32, order int32, basis float32)

	// Layout runs the flexbox algorithm over the subtree rooted at h.
	Layout(h Handle)

	// Frame getters are valid after a Layout covering h and before Free.
	FrameX(h Handle) float32
	FrameY(h Handle) float32
	FrameWidth(h Handle) float32
	FrameHeight(h Handle) float32
}

// Inspector is implemented by engines that expose their own tree.
// CheckConsistency uses it to compare the engine tree with the shadow tree.
type Inspector interface {
	Count(h Handle) int
	Child(h Handle, index int) Handle
	Parent(h Handle) Handle
	Root(h Handle) Handle
}

var (
	_ Engine    = (*layout.Engine)(nil)
	_ Inspector = (*layout.Engine)(nil)
)

// NewEngine returns the in-process flexbox engine.
func NewEngine() *layout.Engine {
	return layout.NewEngine()
}
