package layout

// Bit offsets of each field inside the packed enum word.
// Every field is 4 bits wide.
const (
	ShiftJustifyContent = 0
	ShiftAlignContent   = 4
	ShiftAlignItems     = 8
	ShiftAlignSelf      = 12
	ShiftPosition       = 16
	ShiftDirection      = 20
	ShiftWrap           = 24

	enumMask = 0xF
)

// Enums is the unpacked form of the word passed to [Engine.SetEnumPropsBatch].
type Enums struct {
	JustifyContent Align
	AlignContent   Align
	AlignItems     Align
	AlignSelf      Align
	Position       Position
	Direction      Direction
	Wrap           Wrap
}

// Pack encodes e into a single word, 4 bits per field.
func (e Enums) Pack() uint32 {
	return uint32(e.JustifyContent)<<ShiftJustifyContent |
		uint32(e.AlignContent)<<ShiftAlignContent |
		uint32(e.AlignItems)<<ShiftAlignItems |
		uint32(e.AlignSelf)<<ShiftAlignSelf |
		uint32(e.Position)<<ShiftPosition |
		uint32(e.Direction)<<ShiftDirection |
		uint32(e.Wrap)<<ShiftWrap
}

// UnpackEnums decodes a word produced by [Enums.Pack].
func UnpackEnums(packed uint32) Enums {
	field := func(shift uint) uint8 {
		return uint8((packed >> shift) & enumMask)
	}
	return Enums{
		JustifyContent: Align(field(ShiftJustifyContent)),
		AlignContent:   Align(field(ShiftAlignContent)),
		AlignItems:     Align(field(ShiftAlignItems)),
		AlignSelf:      Align(field(ShiftAlignSelf)),
		Position:       Position(field(ShiftPosition)),
		Direction:      Direction(field(ShiftDirection)),
		Wrap:           Wrap(field(ShiftWrap)),
	}
}
