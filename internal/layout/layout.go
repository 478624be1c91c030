package layout

// Frame is the computed box of an item after layout.
// X and Y are relative to the parent's border box origin.
type Frame struct {
	X, Y          float32
	Width, Height float32
}

// IsEmpty returns true if the frame has zero or negative area.
func (f Frame) IsEmpty() bool {
	return f.Width <= 0 || f.Height <= 0
}
