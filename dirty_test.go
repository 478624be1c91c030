package flex

import (
	"math"
	"testing"
)

// changedValue returns a valid value for p that differs from its default.
func changedValue(p Prop) float64 {
	v := defaultValues[p]
	if math.IsNaN(v) {
		return 5
	}
	return v + 1
}

func TestDirty_SetMarksOwnGroup(t *testing.T) {
	for _, p := range Props() {
		t.Run(p.String(), func(t *testing.T) {
			n := newNode(t, NewEngine())

			if err := n.Set(p, changedValue(p)); err != nil {
				t.Fatalf("Set(%s) error = %v", p, err)
			}
			groups, _ := n.DirtyGroups()
			if groups != p.Group() {
				t.Errorf("DirtyGroups() = %v, want %v", groups, p.Group())
			}
		})
	}
}

func TestDirty_SameValueIsNoOp(t *testing.T) {
	type tc struct {
		set func(n *Node) error
	}

	tests := map[string]tc{
		"NaN width over unset width": {
			set: func(n *Node) error { return n.SetWidth(nan()) },
		},
		"default grow": {
			set: func(n *Node) error { return n.SetGrow(0) },
		},
		"default shrink": {
			set: func(n *Node) error { return n.SetShrink(1) },
		},
		"default direction": {
			set: func(n *Node) error { return n.SetDirection(DirectionColumn) },
		},
		"default padding": {
			set: func(n *Node) error { return n.SetUniformPadding(0) },
		},
		"NaN location": {
			set: func(n *Node) error { return n.SetLocation(nan(), nan(), nan(), nan()) },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := newNode(t, NewEngine())

			if err := tt.set(n); err != nil {
				t.Fatalf("set error = %v", err)
			}
			if n.IsDirty() {
				groups, _ := n.DirtyGroups()
				t.Errorf("node dirty after writing stored value: %v", groups)
			}
		})
	}
}

func TestDirty_OnlyCommitClears(t *testing.T) {
	n := newNode(t, NewEngine())

	_ = n.SetWidth(10)
	_ = n.SetWidth(nan())

	groups, _ := n.DirtyGroups()
	if groups != GroupSize {
		t.Errorf("DirtyGroups() = %v after write and revert, want %v", groups, GroupSize)
	}

	_ = n.SetMarginTop(4)
	groups, _ = n.DirtyGroups()
	if groups != GroupSize|GroupMargin {
		t.Errorf("DirtyGroups() = %v, want %v", groups, GroupSize|GroupMargin)
	}

	_ = n.CommitProps()
	if n.IsDirty() {
		t.Error("CommitProps() should clear the dirty set")
	}
}

func TestDirty_CommitTwiceIsNoOp(t *testing.T) {
	rec := NewRecordingEngine(nil)
	n := newNode(t, rec, WithSize(10, 20), WithGrow(1))
	rec.Reset()

	_ = n.CommitProps()
	if got := len(rec.Calls()); got != 2 {
		t.Errorf("first commit made %d calls, want 2: %v", got, rec.Calls())
	}

	rec.Reset()
	_ = n.CommitProps()
	if got := len(rec.Calls()); got != 0 {
		t.Errorf("second commit made %d calls, want 0: %v", got, rec.Calls())
	}
}

func TestDirty_RewriteAfterCommitIsNoOp(t *testing.T) {
	rec := NewRecordingEngine(nil)
	n := newNode(t, rec)

	_ = n.SetWidth(10)
	_ = n.CommitProps()
	rec.Reset()

	_ = n.SetWidth(10)
	_ = n.CommitProps()
	if got := len(rec.Calls()); got != 0 {
		t.Errorf("commit made %d calls, want 0: %v", got, rec.Calls())
	}
}

func TestDirty_GroupBatching(t *testing.T) {
	rec := NewRecordingEngine(nil)
	n := newNode(t, rec)
	rec.Reset()

	_ = n.SetWidth(10)
	_ = n.SetHeight(20)
	_ = n.SetPaddingLeft(3)
	_ = n.CommitProps()

	calls := rec.Calls()
	if len(calls) != 2 {
		t.Fatalf("commit made %d calls, want 2: %v", len(calls), calls)
	}
	if calls[0].Op != OpSetSize || calls[1].Op != OpSetPadding {
		t.Errorf("calls = %v, want set_size then set_padding", calls)
	}
	if calls[0].Args[0] != 10 || calls[0].Args[1] != 20 {
		t.Errorf("set_size args = %v, want [10 20]", calls[0].Args)
	}
	if calls[1].Args[3] != 3 {
		t.Errorf("set_padding left = %v, want 3", calls[1].Args[3])
	}
}

func TestDirty_LastWriteWins(t *testing.T) {
	rec := NewRecordingEngine(nil)
	n := newNode(t, rec)
	rec.Reset()

	_ = n.SetGrow(1)
	_ = n.SetGrow(2)
	_ = n.SetGrow(3)
	_ = n.CommitProps()

	if got := rec.Count(OpSetMisc); got != 1 {
		t.Fatalf("set_misc calls = %d, want 1", got)
	}
	if grow := rec.Calls()[0].Args[0]; grow != 3 {
		t.Errorf("committed grow = %v, want 3", grow)
	}
}

func TestGroup_String(t *testing.T) {
	type tc struct {
		group Group
		want  string
	}

	tests := map[string]tc{
		"none":   {group: 0, want: "none"},
		"single": {group: GroupEnums, want: "enums"},
		"pair":   {group: GroupSize | GroupPadding, want: "size|padding"},
		"all": {
			group: GroupSize | GroupLocation | GroupPadding | GroupMargin | GroupEnums | GroupMisc,
			want:  "size|location|padding|margin|enums|misc",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.group.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
