package layout

import "fmt"

var (
	alignNames     = []string{"auto", "stretch", "center", "start", "end", "space_between", "space_around", "space_evenly"}
	positionNames  = []string{"relative", "absolute"}
	directionNames = []string{"row", "row_reverse", "column", "column_reverse"}
	wrapNames      = []string{"no_wrap", "wrap", "wrap_reverse"}
)

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", v)
}

func parseEnum(kind string, names []string, s string) (uint8, error) {
	for i, name := range names {
		if name == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func (a Align) String() string     { return enumName(alignNames, uint8(a)) }
func (p Position) String() string  { return enumName(positionNames, uint8(p)) }
func (d Direction) String() string { return enumName(directionNames, uint8(d)) }
func (w Wrap) String() string      { return enumName(wrapNames, uint8(w)) }

// ParseAlign parses an align name such as "center" or "space_between".
func ParseAlign(s string) (Align, error) {
	v, err := parseEnum("align", alignNames, s)
	return Align(v), err
}

// ParsePosition parses "relative" or "absolute".
func ParsePosition(s string) (Position, error) {
	v, err := parseEnum("position", positionNames, s)
	return Position(v), err
}

// ParseDirection parses a direction name such as "row_reverse".
func ParseDirection(s string) (Direction, error) {
	v, err := parseEnum("direction", directionNames, s)
	return Direction(v), err
}

// ParseWrap parses "no_wrap", "wrap" or "wrap_reverse".
func ParseWrap(s string) (Wrap, error) {
	v, err := parseEnum("wrap", wrapNames, s)
	return Wrap(v), err
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	v, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	v, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (w Wrap) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wrap) UnmarshalText(text []byte) error {
	v, err := ParseWrap(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
