package layout

import "math"

// Align is shared by justify_content, align_content, align_items and align_self.
type Align uint8

const (
	AlignAuto         Align = iota // Inherit (align_self) or engine default
	AlignStretch                   // Fill the cross axis / line
	AlignCenter                    // Center
	AlignStart                     // Pack at start
	AlignEnd                       // Pack at end
	AlignSpaceBetween              // Even space between, none at edges
	AlignSpaceAround               // Even space around each item
	AlignSpaceEvenly               // Equal space between and at edges
)

// Position selects flow layout or absolute placement.
type Position uint8

const (
	PositionRelative Position = iota // Laid out by the flex algorithm
	PositionAbsolute                 // Placed from left/right/top/bottom
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	DirectionRow           Direction = iota // Left to right
	DirectionRowReverse                     // Right to left
	DirectionColumn                         // Top to bottom
	DirectionColumnReverse                  // Bottom to top
)

// Wrap controls whether children may break into several lines.
type Wrap uint8

const (
	WrapNoWrap  Wrap = iota // Single line
	WrapWrap                // Lines stack along the cross axis
	WrapReverse             // Lines stack from the cross-axis end
)

// Valid reports whether a is a known align value.
func (a Align) Valid() bool { return a <= AlignSpaceEvenly }

// Valid reports whether p is a known position value.
func (p Position) Valid() bool { return p <= PositionAbsolute }

// Valid reports whether d is a known direction value.
func (d Direction) Valid() bool { return d <= DirectionColumnReverse }

// Valid reports whether w is a known wrap value.
func (w Wrap) Valid() bool { return w <= WrapReverse }

// IsVertical reports whether the main axis is vertical.
func (d Direction) IsVertical() bool {
	return d == DirectionColumn || d == DirectionColumnReverse
}

// IsReverse reports whether children are laid out from the main-axis end.
func (d Direction) IsReverse() bool {
	return d == DirectionRowReverse || d == DirectionColumnReverse
}

// Style contains all layout properties for an item.
// NaN marks an unset dimension.
type Style struct {
	// Sizing
	Width  float32
	Height float32

	// Absolute placement
	Left   float32
	Right  float32
	Top    float32
	Bottom float32

	// Spacing
	Padding Edges
	Margin  Edges

	// Flex container properties
	JustifyContent Align
	AlignContent   Align
	AlignItems     Align
	Direction      Direction
	Wrap           Wrap

	// Flex item properties
	AlignSelf Align
	Position  Position
	Grow      float32
	Shrink    float32
	Order     int32
	Basis     float32
}

// DefaultStyle returns the style every new item starts with.
func DefaultStyle() Style {
	nan := float32(math.NaN())
	return Style{
		Width:          nan,
		Height:         nan,
		Left:           nan,
		Right:          nan,
		Top:            nan,
		Bottom:         nan,
		JustifyContent: AlignStart,
		AlignContent:   AlignStretch,
		AlignItems:     AlignStretch,
		AlignSelf:      AlignAuto,
		Position:       PositionRelative,
		Direction:      DirectionColumn,
		Wrap:           WrapNoWrap,
		Shrink:         1,
		Basis:          nan,
	}
}

func isNaN(v float32) bool {
	return v != v
}
