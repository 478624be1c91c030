package flex

import (
	"errors"
	"testing"
)

func TestCheckConsistency(t *testing.T) {
	type tc struct {
		corrupt func(e *LocalEngine, root, a, b *Node)
		wantErr bool
	}

	tests := map[string]tc{
		"healthy tree": {
			corrupt: func(*LocalEngine, *Node, *Node, *Node) {},
		},
		"stale index": {
			corrupt: func(_ *LocalEngine, _, a, _ *Node) { a.index = 1 },
			wantErr: true,
		},
		"wrong parent": {
			corrupt: func(_ *LocalEngine, _, _, b *Node) { b.parent = b },
			wantErr: true,
		},
		"engine missing child": {
			corrupt: func(e *LocalEngine, root, _, _ *Node) { e.Remove(root.Handle(), 1) },
			wantErr: true,
		},
		"engine order swapped": {
			corrupt: func(e *LocalEngine, root, a, _ *Node) {
				e.Remove(root.Handle(), 0)
				e.Add(root.Handle(), a.Handle())
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEngine()
			root := newNode(t, e)
			a := newNode(t, e)
			b := newNode(t, e)
			_ = root.Add(a)
			_ = root.Add(b)

			tt.corrupt(e, root, a, b)

			err := root.CheckConsistency()
			if tt.wantErr {
				if !errors.Is(err, ErrInconsistent) {
					t.Errorf("CheckConsistency() = %v, want ErrInconsistent", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckConsistency() = %v, want nil", err)
			}
		})
	}
}

func TestCheckConsistency_EngineRoot(t *testing.T) {
	e := NewEngine()
	root := newNode(t, e)
	mid := newNode(t, e)
	leaf := newNode(t, e)
	_ = root.Add(mid)
	_ = mid.Add(leaf)

	if err := leaf.CheckConsistency(); err != nil {
		t.Fatalf("CheckConsistency() = %v, want nil", err)
	}

	// Detach mid in the engine only; leaf's own links still match.
	e.Remove(root.Handle(), 0)
	if err := leaf.CheckConsistency(); !errors.Is(err, ErrInconsistent) {
		t.Errorf("CheckConsistency() = %v, want ErrInconsistent", err)
	}
}

func TestCheckConsistency_ThroughWrapper(t *testing.T) {
	rec := NewRecordingEngine(nil)
	root := newNode(t, rec)
	child := newNode(t, rec)
	_ = root.Add(child)

	if err := root.CheckConsistency(); err != nil {
		t.Fatalf("CheckConsistency() = %v, want nil", err)
	}

	rec.Unwrap().(*LocalEngine).Remove(root.Handle(), 0)
	if err := root.CheckConsistency(); !errors.Is(err, ErrInconsistent) {
		t.Errorf("CheckConsistency() = %v, want ErrInconsistent", err)
	}
	if err := child.CheckConsistency(); !errors.Is(err, ErrInconsistent) {
		t.Errorf("child.CheckConsistency() = %v, want ErrInconsistent", err)
	}
}

// opaqueEngine hides the Inspector methods of the engine it embeds.
type opaqueEngine struct {
	Engine
}

func TestCheckConsistency_WithoutInspector(t *testing.T) {
	e := opaqueEngine{NewEngine()}
	root := newNode(t, e)
	child := newNode(t, e)
	_ = root.Add(child)

	if err := root.CheckConsistency(); err != nil {
		t.Errorf("CheckConsistency() = %v, want nil", err)
	}

	child.index = 3
	if err := root.CheckConsistency(); !errors.Is(err, ErrInconsistent) {
		t.Errorf("CheckConsistency() = %v, want ErrInconsistent", err)
	}
}
