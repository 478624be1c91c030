package flex

import (
	"errors"
	"fmt"
)

// CheckConsistency verifies the subtree rooted at n. It checks that every
// child points back at its parent with its own index, and that no destroyed
// node is still linked. When the engine implements Inspector, either
// directly or through an Unwrap() Engine method, the engine tree is
// compared with the shadow tree as well.
//
// Every finding wraps ErrInconsistent; several are joined with errors.Join.
func (n *Node) CheckConsistency() error {
	if err := n.checkLive("check consistency"); err != nil {
		return err
	}

	var errs []error
	report := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInconsistent}, args...)...))
	}

	insp := inspectorOf(n.engine)
	if insp != nil {
		want := NoHandle
		if n.parent != nil {
			want = n.parent.handle
		}
		if got := insp.Parent(n.handle); got != want {
			report("node %d: engine parent %d, want %d", n.handle, got, want)
		}
		if got, root := insp.Root(n.handle), n.root().handle; got != root {
			report("node %d: engine root %d, want %d", n.handle, got, root)
		}
	}

	n.walk(func(p *Node) {
		if p.IsDestroyed() {
			report("destroyed node still attached under the tree")
			return
		}
		for i, c := range p.children {
			switch {
			case c.IsDestroyed():
				report("node %d: child %d is destroyed", p.handle, i)
			case c.parent != p:
				report("node %d: child %d (%d) has a different parent", p.handle, i, c.handle)
			case c.index != i:
				report("node %d: child %d (%d) records index %d", p.handle, i, c.handle, c.index)
			}
		}

		if insp == nil {
			return
		}
		if got := insp.Count(p.handle); got != len(p.children) {
			report("node %d: engine has %d children, shadow has %d", p.handle, got, len(p.children))
			return
		}
		for i, c := range p.children {
			if got := insp.Child(p.handle, i); got != c.handle {
				report("node %d: engine child %d is %d, shadow has %d", p.handle, i, got, c.handle)
			}
		}
	})

	return errors.Join(errs...)
}

// root returns the top-most ancestor of n.
func (n *Node) root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// inspectorOf finds an Inspector behind e, looking through wrapping engines.
func inspectorOf(e Engine) Inspector {
	for e != nil {
		if insp, ok := e.(Inspector); ok {
			return insp
		}
		u, ok := e.(interface{ Unwrap() Engine })
		if !ok {
			return nil
		}
		e = u.Unwrap()
	}
	return nil
}
