package flex

import (
	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-flex/internal/debug"
)

// Node is one layout box in the shadow tree. It owns one engine handle and
// its children; the parent pointer is a plain back reference used for
// lookups and detachment checks.
//
// Property writes are cached on the Node and pushed to the engine by
// CommitProps or Layout. Structural edits (Add, Insert, Remove) reach the
// engine immediately.
//
// A Node is not safe for concurrent use. A whole tree must be confined to
// one goroutine at a time.
type Node struct {
	engine Engine
	handle Handle // NoHandle once destroyed

	// Tree structure
	parent   *Node
	index    int // position in parent.children, -1 when detached
	children []*Node

	// Properties, indexed by Prop
	vals  [propCount]float64
	dirty Group

	logger *log.Logger
}

// New creates a node with a fresh engine handle. Options are applied after
// creation and dirty the node exactly like the matching setters. If an
// option fails the handle is released and the error returned.
func New(engine Engine, opts ...Option) (*Node, error) {
	n := &Node{
		engine: engine,
		handle: engine.Create(),
		index:  -1,
		vals:   defaultValues,
		logger: debug.Logger(),
	}
	if err := n.applyOptions(opts); err != nil {
		engine.Free(n.handle)
		n.handle = NoHandle
		return nil, opError("new", err)
	}
	return n, nil
}

// Handle returns the engine handle, or NoHandle after Destroy.
func (n *Node) Handle() Handle {
	return n.handle
}

// Engine returns the engine this node lives in.
func (n *Node) Engine() Engine {
	return n.engine
}

// IsDestroyed reports whether the node's handle has been released.
func (n *Node) IsDestroyed() bool {
	return n.handle == NoHandle
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() (*Node, error) {
	if err := n.checkLive("parent"); err != nil {
		return nil, err
	}
	return n.parent, nil
}

// Index returns the node's position among its parent's children, or -1
// for a root.
func (n *Node) Index() (int, error) {
	if err := n.checkLive("index"); err != nil {
		return 0, err
	}
	return n.index, nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() (int, error) {
	if err := n.checkLive("child count"); err != nil {
		return 0, err
	}
	return len(n.children), nil
}

// Child returns the direct child at index.
func (n *Node) Child(index int) (*Node, error) {
	if err := n.checkLive("child"); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(n.children) {
		return nil, opError("child", indexError(index, len(n.children)-1))
	}
	return n.children[index], nil
}

// Children returns a copy of the child list.
func (n *Node) Children() ([]*Node, error) {
	if err := n.checkLive("children"); err != nil {
		return nil, err
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out, nil
}

// Frame returns the box computed by the last layout pass.
func (n *Node) Frame() (Frame, error) {
	if err := n.checkLive("frame"); err != nil {
		return Frame{}, err
	}
	e, h := n.engine, n.handle
	return Frame{
		X:      e.FrameX(h),
		Y:      e.FrameY(h),
		Width:  e.FrameWidth(h),
		Height: e.FrameHeight(h),
	}, nil
}

// FrameX returns the computed x offset within the parent.
func (n *Node) FrameX() (float32, error) {
	return n.frameValue("frame x", n.engine.FrameX)
}

// FrameY returns the computed y offset within the parent.
func (n *Node) FrameY() (float32, error) {
	return n.frameValue("frame y", n.engine.FrameY)
}

// FrameWidth returns the computed width.
func (n *Node) FrameWidth() (float32, error) {
	return n.frameValue("frame width", n.engine.FrameWidth)
}

// FrameHeight returns the computed height.
func (n *Node) FrameHeight() (float32, error) {
	return n.frameValue("frame height", n.engine.FrameHeight)
}

func (n *Node) frameValue(op string, get func(Handle) float32) (float32, error) {
	if err := n.checkLive(op); err != nil {
		return 0, err
	}
	return get(n.handle), nil
}

// checkLive fails with ErrDestroyed once the handle is released.
func (n *Node) checkLive(op string) error {
	if n.handle == NoHandle {
		return opError(op, ErrDestroyed)
	}
	return nil
}

// walk visits n and its descendants depth-first, parents before children.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.walk(fn)
	}
}
