package layout

// flexItem holds intermediate calculation state for a child.
// It is allocated per layout call, not stored on items.
type flexItem struct {
	item *item

	mainSize  float32
	crossSize float32 // NaN until the line size is known

	mainLead, mainTrail   float32 // margins on the main axis
	crossLead, crossTrail float32 // margins on the cross axis

	mainPos  float32
	crossPos float32

	grow   float32
	shrink float32
}

// flexLine is one run of items along the main axis.
type flexLine struct {
	items     []*flexItem
	crossSize float32
	crossPos  float32
}

func newFlexItem(child *item, ax axes) *flexItem {
	s := child.style
	f := &flexItem{
		item:   child,
		grow:   max(0, s.Grow),
		shrink: max(0, s.Shrink),
	}
	f.mainSize, f.crossSize = ax.split(s.Width, s.Height)
	if ax.vertical {
		f.mainLead, f.mainTrail = s.Margin.Top, s.Margin.Bottom
		f.crossLead, f.crossTrail = s.Margin.Left, s.Margin.Right
	} else {
		f.mainLead, f.mainTrail = s.Margin.Left, s.Margin.Right
		f.crossLead, f.crossTrail = s.Margin.Top, s.Margin.Bottom
	}

	// Basis overrides the main-axis size; an unset main size starts at 0
	if !isNaN(s.Basis) {
		f.mainSize = max(0, s.Basis)
	}
	if isNaN(f.mainSize) {
		f.mainSize = 0
	}
	return f
}

// outerMain is the main-axis size including margins.
func (f *flexItem) outerMain() float32 {
	return f.mainLead + f.mainSize + f.mainTrail
}

// breakLines groups items into lines. Without wrapping every item lands on
// one line spanning the whole cross axis. With wrapping a line is closed as
// soon as the next item would overflow it, and each line is as thick as its
// thickest sized item.
func breakLines(items []*flexItem, wrap bool, mainDim, crossDim float32) []*flexLine {
	if !wrap {
		return []*flexLine{{items: items, crossSize: crossDim}}
	}

	var lines []*flexLine
	var cur *flexLine
	var used float32
	for _, f := range items {
		outer := f.outerMain()
		if cur == nil || (len(cur.items) > 0 && used+outer > mainDim) {
			cur = &flexLine{}
			lines = append(lines, cur)
			used = 0
		}
		cur.items = append(cur.items, f)
		used += outer
		if !isNaN(f.crossSize) {
			cur.crossSize = max(cur.crossSize, f.crossLead+f.crossSize+f.crossTrail)
		}
	}
	return lines
}

// placeLines distributes lines along the cross axis according to
// align_content. Stretch (and auto) grows every line by an equal share of
// the free cross space.
func placeLines(lines []*flexLine, style Style, crossDim float32) {
	if style.Wrap == WrapNoWrap {
		lines[0].crossPos = 0
		return
	}

	var total float32
	for _, line := range lines {
		total += line.crossSize
	}
	free := crossDim - total

	var pos, spacing float32
	if free > 0 {
		switch style.AlignContent {
		case AlignStretch, AlignAuto:
			extra := free / float32(len(lines))
			for _, line := range lines {
				line.crossSize += extra
			}
		default:
			pos, spacing = distribute(style.AlignContent, free, len(lines))
		}
	}

	for _, line := range lines {
		if style.Wrap == WrapReverse {
			line.crossPos = crossDim - pos - line.crossSize
		} else {
			line.crossPos = pos
		}
		pos += line.crossSize + spacing
	}
}

// resolveFlexibleLengths grows or shrinks the items of a line to fill
// mainDim. Growing items add a share of the free space to their base size
// in proportion to grow; shrinking items absorb the overflow in proportion
// to shrink. Returns true if any item grew.
func resolveFlexibleLengths(line *flexLine, mainDim float32) bool {
	free := mainDim
	var totalGrow, totalShrink float32
	for _, f := range line.items {
		free -= f.outerMain()
		totalGrow += f.grow
		totalShrink += f.shrink
	}

	switch {
	case free > 0 && totalGrow > 0:
		for _, f := range line.items {
			if f.grow > 0 {
				f.mainSize += free / totalGrow * f.grow
			}
		}
		return true
	case free < 0 && totalShrink > 0:
		for _, f := range line.items {
			if f.shrink > 0 {
				f.mainSize = max(0, f.mainSize+free/totalShrink*f.shrink)
			}
		}
	}
	return false
}

// justifyLine positions the items of a line along the main axis.
func justifyLine(line *flexLine, justify Align, mainDim float32, growing, reverse bool) {
	free := mainDim
	for _, f := range line.items {
		free -= f.outerMain()
	}

	var pos, spacing float32
	if !growing && free > 0 {
		switch justify {
		case AlignStretch, AlignAuto:
			// Nothing to stretch along the main axis
		default:
			pos, spacing = distribute(justify, free, len(line.items))
		}
	}

	if reverse {
		cursor := mainDim - pos
		for _, f := range line.items {
			cursor -= f.mainTrail + f.mainSize
			f.mainPos = cursor
			cursor -= f.mainLead + spacing
		}
		return
	}

	cursor := pos
	for _, f := range line.items {
		cursor += f.mainLead
		f.mainPos = cursor
		cursor += f.mainSize + f.mainTrail + spacing
	}
}

// alignLine positions the items of a line on the cross axis. Items without
// a cross size fill the line.
func alignLine(line *flexLine, alignItems Align) {
	for _, f := range line.items {
		align := f.item.style.AlignSelf
		if align == AlignAuto {
			align = alignItems
		}

		available := line.crossSize - f.crossLead - f.crossTrail
		if isNaN(f.crossSize) {
			f.crossSize = max(0, available)
			f.crossPos = line.crossPos + f.crossLead
			continue
		}

		var offset float32
		switch align {
		case AlignEnd:
			offset = line.crossSize - f.crossTrail - f.crossSize
		case AlignCenter:
			offset = f.crossLead + (available-f.crossSize)/2
		default: // AlignStart, AlignStretch with an explicit size
			offset = f.crossLead
		}
		f.crossPos = line.crossPos + offset
	}
}

// distribute returns the leading offset and the extra spacing between
// count items sharing free space under align.
func distribute(align Align, free float32, count int) (pos, spacing float32) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	n := float32(count)
	switch align {
	case AlignEnd:
		return free, 0
	case AlignCenter:
		return free / 2, 0
	case AlignSpaceBetween:
		if count > 1 {
			return 0, free / (n - 1)
		}
		return 0, 0
	case AlignSpaceAround:
		spacing = free / n
		return spacing / 2, spacing
	case AlignSpaceEvenly:
		spacing = free / (n + 1)
		return spacing, spacing
	default: // AlignStart
		return 0, 0
	}
}
