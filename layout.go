// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// LocalEngine is the in-process flexbox engine returned by NewEngine.
type LocalEngine = layout.Engine

// NoHandle is the zero Handle; a destroyed node reports it.
const NoHandle = layout.NoHandle

// Align is used by justify_content, align_content, align_items and align_self.
type Align = layout.Align

const (
	AlignAuto         = layout.AlignAuto
	AlignStretch      = layout.AlignStretch
	AlignCenter       = layout.AlignCenter
	AlignStart        = layout.AlignStart
	AlignEnd          = layout.AlignEnd
	AlignSpaceBetween = layout.AlignSpaceBetween
	AlignSpaceAround  = layout.AlignSpaceAround
	AlignSpaceEvenly  = layout.AlignSpaceEvenly
)

// Position selects flow layout or absolute placement.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	DirectionRow           = layout.DirectionRow
	DirectionRowReverse    = layout.DirectionRowReverse
	DirectionColumn        = layout.DirectionColumn
	DirectionColumnReverse = layout.DirectionColumnReverse
)

// Wrap controls whether children may break into several lines.
type Wrap = layout.Wrap

const (
	WrapNoWrap  = layout.WrapNoWrap
	WrapWrap    = layout.WrapWrap
	WrapReverse = layout.WrapReverse
)

// Style is the full property set an engine item holds, as returned by
// LocalEngine.Style.
type Style = layout.Style

// Edges holds the four padding or margin edges of a Style.
type Edges = layout.Edges

// Frame is the computed box of a node, relative to its parent.
type Frame = layout.Frame

// Enums is the unpacked form of the word sent by SetEnumPropsBatch.
type Enums = layout.Enums

// UnpackEnums decodes a packed enum word.
func UnpackEnums(packed uint32) Enums {
	return layout.UnpackEnums(packed)
}

// ParseAlign parses an align name such as "center" or "space_between".
func ParseAlign(s string) (Align, error) {
	return layout.ParseAlign(s)
}

// ParsePosition parses "relative" or "absolute".
func ParsePosition(s string) (Position, error) {
	return layout.ParsePosition(s)
}

// ParseDirection parses a direction name such as "row_reverse".
func ParseDirection(s string) (Direction, error) {
	return layout.ParseDirection(s)
}

// ParseWrap parses "no_wrap", "wrap" or "wrap_reverse".
func ParseWrap(s string) (Wrap, error) {
	return layout.ParseWrap(s)
}
