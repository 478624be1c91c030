package layout

import "testing"

func TestAlign_TextRoundTrip(t *testing.T) {
	for a := AlignAuto; a <= AlignSpaceEvenly; a++ {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error: %v", a, err)
		}
		var got Align
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if got != a {
			t.Errorf("round trip of %d = %d", a, got)
		}
	}
}

func TestParse(t *testing.T) {
	type tc struct {
		parse   func(string) (string, error)
		input   string
		want    string
		wantErr bool
	}

	asString := func(v interface{ String() string }, err error) (string, error) {
		return v.String(), err
	}

	tests := map[string]tc{
		"align space_between": {
			parse: func(s string) (string, error) { return asString(ParseAlign(s)) },
			input: "space_between",
			want:  "space_between",
		},
		"direction row_reverse": {
			parse: func(s string) (string, error) { return asString(ParseDirection(s)) },
			input: "row_reverse",
			want:  "row_reverse",
		},
		"position absolute": {
			parse: func(s string) (string, error) { return asString(ParsePosition(s)) },
			input: "absolute",
			want:  "absolute",
		},
		"wrap wrap_reverse": {
			parse: func(s string) (string, error) { return asString(ParseWrap(s)) },
			input: "wrap_reverse",
			want:  "wrap_reverse",
		},
		"unknown align": {
			parse:   func(s string) (string, error) { return asString(ParseAlign(s)) },
			input:   "middle",
			wantErr: true,
		},
		"css spelling rejected": {
			parse:   func(s string) (string, error) { return asString(ParseDirection(s)) },
			input:   "row-reverse",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestString_OutOfRange(t *testing.T) {
	if got := Align(42).String(); got != "42" {
		t.Errorf("Align(42).String() = %q, want %q", got, "42")
	}
	if Align(42).Valid() {
		t.Error("Align(42) should not be valid")
	}
}
