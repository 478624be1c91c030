package flex

// Get returns the stored value of p. Enum properties come back as their
// numeric value.
func (n *Node) Get(p Prop) (float64, error) {
	if err := n.checkLive("get " + p.String()); err != nil {
		return 0, err
	}
	if !p.valid() {
		return 0, opError("get", normalizeErr(p))
	}
	return n.vals[p], nil
}

// Set stores v for p and marks p's group dirty if the value changed.
func (n *Node) Set(p Prop, v float64) error {
	if err := n.checkLive("set " + p.String()); err != nil {
		return err
	}
	if err := n.assign(p, v); err != nil {
		return opError("set", err)
	}
	return nil
}

// assign validates and stores one property on a live node.
func (n *Node) assign(p Prop, v float64) error {
	v, err := normalize(p, v)
	if err != nil {
		return err
	}
	n.markDirty(p, v)
	return nil
}

func normalizeErr(p Prop) error {
	_, err := normalize(p, 0)
	return err
}

func (n *Node) float(p Prop) (float32, error) {
	v, err := n.Get(p)
	return float32(v), err
}

// setEdges assigns four float properties in one live check.
func (n *Node) setEdges(op string, props [4]Prop, values [4]float32) error {
	if err := n.checkLive(op); err != nil {
		return err
	}
	for i, p := range props {
		n.markDirty(p, float64(values[i]))
	}
	return nil
}

// --- Size ---

// Width returns the requested width (NaN when unset).
func (n *Node) Width() (float32, error) { return n.float(PropWidth) }

// SetWidth sets the requested width. NaN unsets it.
func (n *Node) SetWidth(v float32) error { return n.Set(PropWidth, float64(v)) }

// Height returns the requested height (NaN when unset).
func (n *Node) Height() (float32, error) { return n.float(PropHeight) }

// SetHeight sets the requested height. NaN unsets it.
func (n *Node) SetHeight(v float32) error { return n.Set(PropHeight, float64(v)) }

// SetSize sets width and height together.
func (n *Node) SetSize(width, height float32) error {
	if err := n.checkLive("set size"); err != nil {
		return err
	}
	n.markDirty(PropWidth, float64(width))
	n.markDirty(PropHeight, float64(height))
	return nil
}

// --- Location ---

func (n *Node) Left() (float32, error)    { return n.float(PropLeft) }
func (n *Node) SetLeft(v float32) error   { return n.Set(PropLeft, float64(v)) }
func (n *Node) Right() (float32, error)   { return n.float(PropRight) }
func (n *Node) SetRight(v float32) error  { return n.Set(PropRight, float64(v)) }
func (n *Node) Top() (float32, error)     { return n.float(PropTop) }
func (n *Node) SetTop(v float32) error    { return n.Set(PropTop, float64(v)) }
func (n *Node) Bottom() (float32, error)  { return n.float(PropBottom) }
func (n *Node) SetBottom(v float32) error { return n.Set(PropBottom, float64(v)) }

// SetLocation sets the four absolute offsets, CSS order.
func (n *Node) SetLocation(top, right, bottom, left float32) error {
	return n.setEdges("set location",
		[4]Prop{PropTop, PropRight, PropBottom, PropLeft},
		[4]float32{top, right, bottom, left})
}

// --- Padding ---

func (n *Node) PaddingLeft() (float32, error)    { return n.float(PropPaddingLeft) }
func (n *Node) SetPaddingLeft(v float32) error   { return n.Set(PropPaddingLeft, float64(v)) }
func (n *Node) PaddingRight() (float32, error)   { return n.float(PropPaddingRight) }
func (n *Node) SetPaddingRight(v float32) error  { return n.Set(PropPaddingRight, float64(v)) }
func (n *Node) PaddingTop() (float32, error)     { return n.float(PropPaddingTop) }
func (n *Node) SetPaddingTop(v float32) error    { return n.Set(PropPaddingTop, float64(v)) }
func (n *Node) PaddingBottom() (float32, error)  { return n.float(PropPaddingBottom) }
func (n *Node) SetPaddingBottom(v float32) error { return n.Set(PropPaddingBottom, float64(v)) }

// SetPadding sets all four padding edges, CSS order.
func (n *Node) SetPadding(top, right, bottom, left float32) error {
	return n.setEdges("set padding",
		[4]Prop{PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft},
		[4]float32{top, right, bottom, left})
}

// SetUniformPadding sets every padding edge to v.
func (n *Node) SetUniformPadding(v float32) error {
	return n.SetPadding(v, v, v, v)
}

// --- Margin ---

func (n *Node) MarginLeft() (float32, error)    { return n.float(PropMarginLeft) }
func (n *Node) SetMarginLeft(v float32) error   { return n.Set(PropMarginLeft, float64(v)) }
func (n *Node) MarginRight() (float32, error)   { return n.float(PropMarginRight) }
func (n *Node) SetMarginRight(v float32) error  { return n.Set(PropMarginRight, float64(v)) }
func (n *Node) MarginTop() (float32, error)     { return n.float(PropMarginTop) }
func (n *Node) SetMarginTop(v float32) error    { return n.Set(PropMarginTop, float64(v)) }
func (n *Node) MarginBottom() (float32, error)  { return n.float(PropMarginBottom) }
func (n *Node) SetMarginBottom(v float32) error { return n.Set(PropMarginBottom, float64(v)) }

// SetMargin sets all four margin edges, CSS order.
func (n *Node) SetMargin(top, right, bottom, left float32) error {
	return n.setEdges("set margin",
		[4]Prop{PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft},
		[4]float32{top, right, bottom, left})
}

// SetUniformMargin sets every margin edge to v.
func (n *Node) SetUniformMargin(v float32) error {
	return n.SetMargin(v, v, v, v)
}

// --- Enums ---

func (n *Node) JustifyContent() (Align, error) {
	v, err := n.Get(PropJustifyContent)
	return Align(v), err
}

func (n *Node) SetJustifyContent(a Align) error { return n.Set(PropJustifyContent, float64(a)) }

func (n *Node) AlignContent() (Align, error) {
	v, err := n.Get(PropAlignContent)
	return Align(v), err
}

func (n *Node) SetAlignContent(a Align) error { return n.Set(PropAlignContent, float64(a)) }

func (n *Node) AlignItems() (Align, error) {
	v, err := n.Get(PropAlignItems)
	return Align(v), err
}

func (n *Node) SetAlignItems(a Align) error { return n.Set(PropAlignItems, float64(a)) }

// AlignSelf returns the per-item override of the parent's align_items.
func (n *Node) AlignSelf() (Align, error) {
	v, err := n.Get(PropAlignSelf)
	return Align(v), err
}

func (n *Node) SetAlignSelf(a Align) error { return n.Set(PropAlignSelf, float64(a)) }

func (n *Node) Position() (Position, error) {
	v, err := n.Get(PropPosition)
	return Position(v), err
}

func (n *Node) SetPosition(p Position) error { return n.Set(PropPosition, float64(p)) }

func (n *Node) Direction() (Direction, error) {
	v, err := n.Get(PropDirection)
	return Direction(v), err
}

func (n *Node) SetDirection(d Direction) error { return n.Set(PropDirection, float64(d)) }

func (n *Node) Wrap() (Wrap, error) {
	v, err := n.Get(PropWrap)
	return Wrap(v), err
}

func (n *Node) SetWrap(w Wrap) error { return n.Set(PropWrap, float64(w)) }

// --- Misc ---

func (n *Node) Grow() (float32, error)    { return n.float(PropGrow) }
func (n *Node) SetGrow(v float32) error   { return n.Set(PropGrow, float64(v)) }
func (n *Node) Shrink() (float32, error)  { return n.float(PropShrink) }
func (n *Node) SetShrink(v float32) error { return n.Set(PropShrink, float64(v)) }

func (n *Node) Order() (int32, error) {
	v, err := n.Get(PropOrder)
	return int32(v), err
}

func (n *Node) SetOrder(v int32) error { return n.Set(PropOrder, float64(v)) }

// Basis returns the main-axis base size (NaN when unset).
func (n *Node) Basis() (float32, error) { return n.float(PropBasis) }

func (n *Node) SetBasis(v float32) error { return n.Set(PropBasis, float64(v)) }
