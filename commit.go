package flex

// CommitProps pushes this node's dirty property groups to the engine, one
// call per group, and clears the dirty set. A clean node makes no calls.
// Children are not committed; Layout commits a whole subtree.
func (n *Node) CommitProps() error {
	if err := n.checkLive("commit props"); err != nil {
		return err
	}
	n.commit()
	return nil
}

func (n *Node) commit() {
	if n.dirty == 0 {
		return
	}

	e, h, v := n.engine, n.handle, &n.vals
	f := func(p Prop) float32 { return float32(v[p]) }

	if n.dirty.Has(GroupSize) {
		e.SetSize(h, f(PropWidth), f(PropHeight))
	}
	if n.dirty.Has(GroupLocation) {
		e.SetLocation(h, f(PropTop), f(PropRight), f(PropBottom), f(PropLeft))
	}
	if n.dirty.Has(GroupPadding) {
		e.SetPadding(h, f(PropPaddingTop), f(PropPaddingRight), f(PropPaddingBottom), f(PropPaddingLeft))
	}
	if n.dirty.Has(GroupMargin) {
		e.SetMargin(h, f(PropMarginTop), f(PropMarginRight), f(PropMarginBottom), f(PropMarginLeft))
	}
	if n.dirty.Has(GroupEnums) {
		e.SetEnumPropsBatch(h, n.enums().Pack())
	}
	if n.dirty.Has(GroupMisc) {
		e.SetMisc(h, f(PropGrow), f(PropShrink), int32(v[PropOrder]), f(PropBasis))
	}

	n.logger.Debug("commit", "handle", h, "groups", n.dirty)
	n.dirty = 0
}

// enums gathers the enum properties in packing order.
func (n *Node) enums() Enums {
	v := &n.vals
	return Enums{
		JustifyContent: Align(v[PropJustifyContent]),
		AlignContent:   Align(v[PropAlignContent]),
		AlignItems:     Align(v[PropAlignItems]),
		AlignSelf:      Align(v[PropAlignSelf]),
		Position:       Position(v[PropPosition]),
		Direction:      Direction(v[PropDirection]),
		Wrap:           Wrap(v[PropWrap]),
	}
}

// Layout commits every dirty node in the subtree rooted here, parents
// before children, then asks the engine to lay the subtree out. Called on a
// non-root node it recomputes only the subtree; the node keeps the frame
// from the last layout that covered it.
func (n *Node) Layout() error {
	if err := n.checkLive("layout"); err != nil {
		return err
	}
	n.walk((*Node).commit)
	n.engine.Layout(n.handle)
	n.logger.Debug("layout", "handle", n.handle)
	return nil
}

// Destroy releases the engine nodes of this root and its whole subtree.
// Every node in the subtree becomes destroyed; further calls on any of
// them fail with ErrDestroyed.
func (n *Node) Destroy() error {
	if err := n.checkLive("destroy"); err != nil {
		return err
	}
	if n.parent != nil {
		return opError("destroy", ErrInvalidDestroy)
	}

	h := n.handle
	n.engine.Free(h)
	n.setDestroyed()
	n.logger.Debug("destroy", "handle", h)
	return nil
}

// setDestroyed marks the subtree destroyed and drops its links so the
// nodes can be collected independently.
func (n *Node) setDestroyed() {
	for _, child := range n.children {
		child.setDestroyed()
	}
	n.children = nil
	n.parent = nil
	n.handle = NoHandle
	n.dirty = 0
	n.index = -1
}
