package layout

import (
	"cmp"
	"slices"
)

// axes maps main/cross axis quantities onto width/height for one container.
type axes struct {
	vertical bool
	reverse  bool
}

func newAxes(d Direction) axes {
	return axes{vertical: d.IsVertical(), reverse: d.IsReverse()}
}

// split returns (main, cross) for a width/height pair.
func (a axes) split(width, height float32) (float32, float32) {
	if a.vertical {
		return height, width
	}
	return width, height
}

// join is the inverse of split.
func (a axes) join(main, cross float32) (width, height float32) {
	if a.vertical {
		return cross, main
	}
	return main, cross
}

// layoutItem arranges the children of it inside a width x height border box
// and recurses into each child once its frame is known.
func (e *Engine) layoutItem(it *item, width, height float32) {
	if len(it.children) == 0 {
		return
	}

	style := it.style
	ax := newAxes(style.Direction)

	// 1. Content box (border box minus padding)
	contentW := max(0, width-style.Padding.Horizontal())
	contentH := max(0, height-style.Padding.Vertical())
	mainDim, crossDim := ax.split(contentW, contentH)

	// 2. Absolute children are placed directly against the border box;
	// everything else takes part in the flex algorithm.
	var flow []*flexItem
	for _, child := range e.ordered(it) {
		if child.style.Position == PositionAbsolute {
			child.frame = absoluteFrame(child.style, width, height)
			e.layoutItem(child, child.frame.Width, child.frame.Height)
			continue
		}
		flow = append(flow, newFlexItem(child, ax))
	}
	if len(flow) == 0 {
		return
	}

	// 3. Break into lines and place the lines on the cross axis
	lines := breakLines(flow, style.Wrap != WrapNoWrap, mainDim, crossDim)
	placeLines(lines, style, crossDim)

	// 4. Main-axis sizing and positioning, then cross-axis alignment
	for _, line := range lines {
		growing := resolveFlexibleLengths(line, mainDim)
		justifyLine(line, style.JustifyContent, mainDim, growing, ax.reverse)
		alignLine(line, style.AlignItems)
	}

	// 5. Convert to frames and recurse
	for _, f := range flow {
		x, y := ax.join(f.mainPos, f.crossPos)
		w, h := ax.join(f.mainSize, f.crossSize)
		f.item.frame = Frame{
			X:      style.Padding.Left + x,
			Y:      style.Padding.Top + y,
			Width:  w,
			Height: h,
		}
		e.layoutItem(f.item, w, h)
	}
}

// ordered returns the children of it sorted by their order property.
// Children with equal order keep their insertion order.
func (e *Engine) ordered(it *item) []*item {
	out := make([]*item, len(it.children))
	needsSort := false
	for i, h := range it.children {
		out[i] = e.items[h-1]
		if out[i].style.Order != 0 {
			needsSort = true
		}
	}
	if needsSort {
		slices.SortStableFunc(out, func(a, b *item) int {
			return cmp.Compare(a.style.Order, b.style.Order)
		})
	}
	return out
}

// absoluteFrame resolves an absolutely positioned item against its
// container's border box. An unset size spans between opposite offsets
// when both are set, and collapses to 0 otherwise.
func absoluteFrame(s Style, width, height float32) Frame {
	w := absoluteSize(s.Width, s.Left, s.Right, width)
	h := absoluteSize(s.Height, s.Top, s.Bottom, height)
	return Frame{
		X:      absolutePos(s.Left, s.Right, w, width),
		Y:      absolutePos(s.Top, s.Bottom, h, height),
		Width:  w,
		Height: h,
	}
}

func absoluteSize(size, lead, trail, dim float32) float32 {
	switch {
	case !isNaN(size):
		return size
	case !isNaN(lead) && !isNaN(trail):
		return max(0, dim-lead-trail)
	default:
		return 0
	}
}

func absolutePos(lead, trail, size, dim float32) float32 {
	switch {
	case !isNaN(lead):
		return lead
	case !isNaN(trail):
		return dim - size - trail
	default:
		return 0
	}
}
