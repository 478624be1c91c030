package flex

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// newNodes creates count detached nodes on e.
func newNodes(t *testing.T, e Engine, count int) []*Node {
	t.Helper()
	out := make([]*Node, count)
	for i := range out {
		out[i] = newNode(t, e)
	}
	return out
}

// assertChildren checks the shadow child list, every stored index and
// parent, and the engine's child list.
func assertChildren(t *testing.T, e *LocalEngine, parent *Node, want []*Node) {
	t.Helper()

	got, err := parent.Children()
	if err != nil {
		t.Fatalf("Children() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("parent has %d children, want %d", len(got), len(want))
	}
	for i, c := range want {
		if got[i] != c {
			t.Errorf("child %d = handle %d, want handle %d", i, got[i].Handle(), c.Handle())
		}
		if idx, _ := c.Index(); idx != i {
			t.Errorf("child %d Index() = %d, want %d", i, idx, i)
		}
		if p, _ := c.Parent(); p != parent {
			t.Errorf("child %d Parent() is not the parent", i)
		}
	}

	if n := e.Count(parent.Handle()); n != len(want) {
		t.Fatalf("engine has %d children, want %d", n, len(want))
	}
	for i, c := range want {
		if h := e.Child(parent.Handle(), i); h != c.Handle() {
			t.Errorf("engine child %d = %d, want %d", i, h, c.Handle())
		}
	}
}

func TestNode_Add(t *testing.T) {
	e := NewEngine()
	root := newNode(t, e)
	kids := newNodes(t, e, 3)

	for _, k := range kids {
		if err := root.Add(k); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	assertChildren(t, e, root, kids)
	if e.Parent(kids[0].Handle()) != root.Handle() {
		t.Error("engine parent of first child should be root")
	}
}

func TestNode_Insert(t *testing.T) {
	type tc struct {
		index int
		want  []int // positions of the initial children, -1 for the inserted node
	}

	tests := map[string]tc{
		"front":  {index: 0, want: []int{-1, 0, 1, 2}},
		"middle": {index: 1, want: []int{0, -1, 1, 2}},
		"before last": {
			index: 2,
			want:  []int{0, 1, -1, 2},
		},
		"append": {index: 3, want: []int{0, 1, 2, -1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			root := newNode(t, e)
			kids := newNodes(t, e, 3)
			for _, k := range kids {
				_ = root.Add(k)
			}
			inserted := newNode(t, e)

			if err := root.Insert(inserted, tt.index); err != nil {
				t.Fatalf("Insert() error = %v", err)
			}

			want := make([]*Node, len(tt.want))
			for i, pos := range tt.want {
				if pos < 0 {
					want[i] = inserted
				} else {
					want[i] = kids[pos]
				}
			}
			assertChildren(t, e, root, want)
		})
	}
}

func TestNode_InsertOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 3, 10} {
		rec := NewRecordingEngine(nil)
		root := newNode(t, rec)
		_ = root.Add(newNode(t, rec))
		_ = root.Add(newNode(t, rec))
		child := newNode(t, rec)
		rec.Reset()

		err := root.Insert(child, index)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Insert(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
		if n, _ := root.ChildCount(); n != 2 {
			t.Errorf("Insert(%d) changed ChildCount() to %d", index, n)
		}
		if p, _ := child.Parent(); p != nil {
			t.Errorf("Insert(%d) attached the child", index)
		}
		if len(rec.Calls()) != 0 {
			t.Errorf("Insert(%d) made engine calls: %v", index, rec.Calls())
		}
	}
}

func TestNode_Remove(t *testing.T) {
	type tc struct {
		remove int
		want   []int
	}

	tests := map[string]tc{
		"first":  {remove: 0, want: []int{1, 2, 3}},
		"second": {remove: 1, want: []int{0, 2, 3}},
		"third":  {remove: 2, want: []int{0, 1, 3}},
		"last":   {remove: 3, want: []int{0, 1, 2}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			root := newNode(t, e)
			kids := newNodes(t, e, 4)
			for _, k := range kids {
				_ = root.Add(k)
			}

			removed := kids[tt.remove]
			if err := root.Remove(removed); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}

			want := make([]*Node, len(tt.want))
			for i, pos := range tt.want {
				want[i] = kids[pos]
			}
			assertChildren(t, e, root, want)

			if p, _ := removed.Parent(); p != nil {
				t.Error("removed child should have no parent")
			}
			if idx, _ := removed.Index(); idx != -1 {
				t.Errorf("removed child Index() = %d, want -1", idx)
			}
			if e.Parent(removed.Handle()) != NoHandle {
				t.Error("removed child should be an engine root")
			}
		})
	}
}

func TestNode_RemoveKeepsSubtree(t *testing.T) {
	e := NewEngine()
	root := newNode(t, e)
	mid := newNode(t, e)
	leaf := newNode(t, e)
	_ = root.Add(mid)
	_ = mid.Add(leaf)

	if err := root.Remove(mid); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	assertChildren(t, e, mid, []*Node{leaf})
	if err := mid.CheckConsistency(); err != nil {
		t.Errorf("CheckConsistency() = %v", err)
	}
}

func TestNode_RemoveNotAChild(t *testing.T) {
	e := NewEngine()
	root := newNode(t, e)
	other := newNode(t, e)
	grandchild := newNode(t, e)
	child := newNode(t, e)
	_ = root.Add(child)
	_ = child.Add(grandchild)

	cases := map[string]*Node{
		"detached":   other,
		"grandchild": grandchild,
		"self":       root,
		"nil":        nil,
	}
	for name, n := range cases {
		if err := root.Remove(n); !errors.Is(err, ErrNotAChild) {
			t.Errorf("%s: Remove() error = %v, want ErrNotAChild", name, err)
		}
	}
	assertChildren(t, e, root, []*Node{child})
}

func TestNode_AlreadyParented(t *testing.T) {
	e := NewEngine()
	a := newNode(t, e)
	b := newNode(t, e)
	bKid := newNode(t, e)
	child := newNode(t, e)
	_ = a.Add(child)
	_ = b.Add(bKid)

	if err := b.Add(child); !errors.Is(err, ErrAlreadyParented) {
		t.Errorf("Add() error = %v, want ErrAlreadyParented", err)
	}
	if err := b.Insert(child, 0); !errors.Is(err, ErrAlreadyParented) {
		t.Errorf("Insert() error = %v, want ErrAlreadyParented", err)
	}
	if err := a.Add(child); !errors.Is(err, ErrAlreadyParented) {
		t.Errorf("re-Add() error = %v, want ErrAlreadyParented", err)
	}

	assertChildren(t, e, a, []*Node{child})
	assertChildren(t, e, b, []*Node{bKid})
}

func TestNode_Cycle(t *testing.T) {
	e := NewEngine()
	root := newNode(t, e)
	mid := newNode(t, e)
	leaf := newNode(t, e)
	_ = root.Add(mid)
	_ = mid.Add(leaf)

	if err := root.Add(root); !errors.Is(err, ErrCycle) {
		t.Errorf("Add(self) error = %v, want ErrCycle", err)
	}
	if err := leaf.Add(root); !errors.Is(err, ErrCycle) {
		t.Errorf("Add(ancestor) error = %v, want ErrCycle", err)
	}
	if err := leaf.Insert(root, 0); !errors.Is(err, ErrCycle) {
		t.Errorf("Insert(ancestor) error = %v, want ErrCycle", err)
	}
	if err := root.CheckConsistency(); err != nil {
		t.Errorf("CheckConsistency() = %v", err)
	}
}

func TestNode_AddAcrossEngines(t *testing.T) {
	root := newNode(t, NewEngine())
	foreign := newNode(t, NewEngine())

	if err := root.Add(foreign); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Add() error = %v, want ErrInvalidValue", err)
	}
	if err := root.Add(nil); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Add(nil) error = %v, want ErrInvalidValue", err)
	}
}

func TestNode_RemoveSelf(t *testing.T) {
	rec := NewRecordingEngine(nil)
	root := newNode(t, rec)
	a := newNode(t, rec)
	b := newNode(t, rec)
	_ = root.Add(a)
	_ = root.Add(b)
	rec.Reset()

	if err := root.RemoveSelf(); err != nil {
		t.Errorf("RemoveSelf() on a root error = %v, want nil", err)
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("RemoveSelf() on a root made engine calls: %v", rec.Calls())
	}

	if err := a.RemoveSelf(); err != nil {
		t.Fatalf("RemoveSelf() error = %v", err)
	}
	if idx, _ := b.Index(); idx != 0 {
		t.Errorf("b.Index() = %d, want 0", idx)
	}
	want := []Call{{Op: OpRemove, Handle: root.Handle(), Args: []float64{0}}}
	if got := rec.Calls(); !slices.EqualFunc(got, want, callEqual) {
		t.Errorf("calls = %v, want %v", got, want)
	}

	if err := a.RemoveSelf(); err != nil {
		t.Errorf("second RemoveSelf() error = %v, want nil", err)
	}
}

func TestNode_TreeEditsMirrorImmediately(t *testing.T) {
	rec := NewRecordingEngine(nil)
	root := newNode(t, rec)
	a := newNode(t, rec)
	b := newNode(t, rec)
	rec.Reset()

	_ = root.Add(a)
	_ = root.Insert(b, 0)
	_ = root.Remove(a)

	want := []Call{
		{Op: OpAdd, Handle: root.Handle(), Args: []float64{float64(a.Handle())}},
		{Op: OpInsert, Handle: root.Handle(), Args: []float64{float64(b.Handle()), 0}},
		{Op: OpRemove, Handle: root.Handle(), Args: []float64{1}},
	}
	if got := rec.Calls(); !slices.EqualFunc(got, want, callEqual) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

// TestNode_RandomEdits drives random add/insert/remove sequences and checks
// index bookkeeping and the engine tree against a plain slice model.
func TestNode_RandomEdits(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for round := range 20 {
		e := NewEngine()
		root := newNode(t, e)
		pool := newNodes(t, e, 12)
		var model []*Node

		for step := range 200 {
			var detached []*Node
			for _, n := range pool {
				if p, _ := n.Parent(); p == nil {
					detached = append(detached, n)
				}
			}

			switch op := r.IntN(3); {
			case op == 0 && len(detached) > 0:
				n := detached[r.IntN(len(detached))]
				if err := root.Add(n); err != nil {
					t.Fatalf("round %d step %d: Add() error = %v", round, step, err)
				}
				model = append(model, n)
			case op == 1 && len(detached) > 0:
				n := detached[r.IntN(len(detached))]
				idx := r.IntN(len(model) + 1)
				if err := root.Insert(n, idx); err != nil {
					t.Fatalf("round %d step %d: Insert(%d) error = %v", round, step, idx, err)
				}
				model = slices.Insert(model, idx, n)
			case len(model) > 0:
				idx := r.IntN(len(model))
				if err := root.Remove(model[idx]); err != nil {
					t.Fatalf("round %d step %d: Remove() error = %v", round, step, err)
				}
				model = slices.Delete(model, idx, idx+1)
			}

			for i, n := range model {
				if idx, _ := n.Index(); idx != i {
					t.Fatalf("round %d step %d: child %d Index() = %d", round, step, i, idx)
				}
			}
			if err := root.CheckConsistency(); err != nil {
				t.Fatalf("round %d step %d: CheckConsistency() = %v", round, step, err)
			}
		}
		assertChildren(t, e, root, model)
	}
}

func callEqual(a, b Call) bool {
	return a.Op == b.Op && a.Handle == b.Handle && slices.Equal(a.Args, b.Args)
}
