package flex

import "testing"

func TestRecordingEngine_Records(t *testing.T) {
	rec := NewRecordingEngine(nil)
	root := rec.Create()
	child := rec.Create()
	rec.Add(root, child)
	rec.SetSize(child, 4, 5)
	rec.Layout(root)

	if got := rec.Count(OpCreate); got != 2 {
		t.Errorf("Count(create) = %d, want 2", got)
	}
	if got := len(rec.Calls()); got != 5 {
		t.Errorf("len(Calls()) = %d, want 5", got)
	}
	if w := rec.FrameWidth(child); w != 4 {
		t.Errorf("FrameWidth() = %v, want 4", w)
	}
	if got := len(rec.Calls()); got != 5 {
		t.Errorf("frame reads should not be recorded, got %d calls", got)
	}

	rec.Reset()
	if got := len(rec.Calls()); got != 0 {
		t.Errorf("len(Calls()) after Reset = %d, want 0", got)
	}
}

func TestCall_String(t *testing.T) {
	type tc struct {
		call Call
		want string
	}

	tests := map[string]tc{
		"no args": {
			call: Call{Op: OpLayout, Handle: 1},
			want: "layout(1)",
		},
		"args": {
			call: Call{Op: OpSetSize, Handle: 3, Args: []float64{10, 2.5}},
			want: "set_size(3, 10, 2.5)",
		},
		"unknown op": {
			call: Call{Op: Op(99), Handle: 2},
			want: "Op(99)(2)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.call.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
