package layout

import "fmt"

// Handle identifies an item in an [Engine]. The zero Handle is never issued.
type Handle uint32

// NoHandle is returned by [Engine.Parent] for root items.
const NoHandle Handle = 0

// item is one arena slot.
type item struct {
	style    Style
	parent   Handle
	children []Handle
	frame    Frame
}

// Engine is an arena of flex items. Handles index into the arena and are
// never reused after [Engine.Free], so a stale handle always panics instead
// of aliasing a newer item.
//
// Engine is not safe for concurrent use.
type Engine struct {
	items []*item // slot h-1; nil once freed
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Create allocates a new root item with [DefaultStyle].
func (e *Engine) Create() Handle {
	e.items = append(e.items, &item{style: DefaultStyle()})
	return Handle(len(e.items))
}

// Free releases a root item and every item attached under it.
func (e *Engine) Free(h Handle) {
	it := e.get(h)
	if it.parent != NoHandle {
		panic(fmt.Sprintf("layout: free of item %d which has a parent", h))
	}
	e.release(h)
}

func (e *Engine) release(h Handle) {
	it := e.items[h-1]
	for _, c := range it.children {
		e.release(c)
	}
	e.items[h-1] = nil
}

// Live returns the number of allocated, unfreed items.
func (e *Engine) Live() int {
	n := 0
	for _, it := range e.items {
		if it != nil {
			n++
		}
	}
	return n
}

// Add appends child under parent.
func (e *Engine) Add(parent, child Handle) {
	e.Insert(parent, child, len(e.get(parent).children))
}

// Insert places child under parent at index.
func (e *Engine) Insert(parent, child Handle, index int) {
	p := e.get(parent)
	c := e.get(child)
	if c.parent != NoHandle {
		panic(fmt.Sprintf("layout: item %d already has parent %d", child, c.parent))
	}
	if index < 0 || index > len(p.children) {
		panic(fmt.Sprintf("layout: insert index %d out of range [0, %d]", index, len(p.children)))
	}
	p.children = append(p.children, NoHandle)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	c.parent = parent
}

// Remove detaches the child at index from parent.
func (e *Engine) Remove(parent Handle, index int) {
	p := e.get(parent)
	if index < 0 || index >= len(p.children) {
		panic(fmt.Sprintf("layout: remove index %d out of range [0, %d)", index, len(p.children)))
	}
	child := p.children[index]
	p.children = append(p.children[:index], p.children[index+1:]...)
	e.items[child-1].parent = NoHandle
}

// Count returns the number of children of h.
func (e *Engine) Count(h Handle) int {
	return len(e.get(h).children)
}

// Child returns the child of h at index.
func (e *Engine) Child(h Handle, index int) Handle {
	children := e.get(h).children
	if index < 0 || index >= len(children) {
		panic(fmt.Sprintf("layout: child index %d out of range [0, %d)", index, len(children)))
	}
	return children[index]
}

// Parent returns the parent of h, or NoHandle for a root.
func (e *Engine) Parent(h Handle) Handle {
	return e.get(h).parent
}

// Root returns the top-most ancestor of h, or h itself when it has no parent.
func (e *Engine) Root(h Handle) Handle {
	for {
		p := e.get(h).parent
		if p == NoHandle {
			return h
		}
		h = p
	}
}

// Style returns a copy of the properties currently stored for h.
func (e *Engine) Style(h Handle) Style {
	return e.get(h).style
}

// SetSize sets width and height.
func (e *Engine) SetSize(h Handle, width, height float32) {
	s := &e.get(h).style
	s.Width, s.Height = width, height
}

// SetLocation sets the absolute offsets, in top, right, bottom, left order.
func (e *Engine) SetLocation(h Handle, top, right, bottom, left float32) {
	s := &e.get(h).style
	s.Top, s.Right, s.Bottom, s.Left = top, right, bottom, left
}

// SetPadding sets the four padding edges.
func (e *Engine) SetPadding(h Handle, top, right, bottom, left float32) {
	e.get(h).style.Padding = EdgeTRBL(top, right, bottom, left)
}

// SetMargin sets the four margin edges.
func (e *Engine) SetMargin(h Handle, top, right, bottom, left float32) {
	e.get(h).style.Margin = EdgeTRBL(top, right, bottom, left)
}

// SetEnumPropsBatch sets every enum property from one packed word.
func (e *Engine) SetEnumPropsBatch(h Handle, packed uint32) {
	s := &e.get(h).style
	u := UnpackEnums(packed)
	s.JustifyContent = u.JustifyContent
	s.AlignContent = u.AlignContent
	s.AlignItems = u.AlignItems
	s.AlignSelf = u.AlignSelf
	s.Position = u.Position
	s.Direction = u.Direction
	s.Wrap = u.Wrap
}

// SetMisc sets grow, shrink, order and basis.
func (e *Engine) SetMisc(h Handle, grow, shrink float32, order int32, basis float32) {
	s := &e.get(h).style
	s.Grow, s.Shrink, s.Order, s.Basis = grow, shrink, order, basis
}

// Layout computes frames for h and its subtree. A root gets the frame
// (0, 0, width, height) with unset dimensions treated as 0; a non-root keeps
// the frame from the last pass that covered it and only its subtree moves.
func (e *Engine) Layout(h Handle) {
	it := e.get(h)
	if it.parent == NoHandle {
		it.frame = Frame{
			Width:  orZero(it.style.Width),
			Height: orZero(it.style.Height),
		}
	}
	e.layoutItem(it, it.frame.Width, it.frame.Height)
}

// Frame returns the last computed frame of h.
func (e *Engine) Frame(h Handle) Frame {
	return e.get(h).frame
}

// FrameX returns the x offset of h within its parent.
func (e *Engine) FrameX(h Handle) float32 { return e.get(h).frame.X }

// FrameY returns the y offset of h within its parent.
func (e *Engine) FrameY(h Handle) float32 { return e.get(h).frame.Y }

// FrameWidth returns the computed width of h.
func (e *Engine) FrameWidth(h Handle) float32 { return e.get(h).frame.Width }

// FrameHeight returns the computed height of h.
func (e *Engine) FrameHeight(h Handle) float32 { return e.get(h).frame.Height }

func (e *Engine) get(h Handle) *item {
	if h == NoHandle || int(h) > len(e.items) {
		panic(fmt.Sprintf("layout: unknown handle %d", h))
	}
	it := e.items[h-1]
	if it == nil {
		panic(fmt.Sprintf("layout: handle %d used after free", h))
	}
	return it
}

func orZero(v float32) float32 {
	if isNaN(v) {
		return 0
	}
	return v
}
