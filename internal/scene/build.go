package scene

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/grindlemire/go-flex"
)

// ErrDuplicateName is returned by Build when two items share a name.
var ErrDuplicateName = errors.New("duplicate item name")

// Tree is a built scene: the root node plus a name for every node.
type Tree struct {
	Root *flex.Node

	names  map[*flex.Node]string
	byName map[string]*flex.Node
	order  []string
}

// Build creates one node per item through e and links them with Add.
// Unnamed items are named after their position, e.g. "root.0.2". If any
// item fails, everything built so far is destroyed.
func Build(e flex.Engine, doc *Document) (*Tree, error) {
	t := &Tree{
		names:  make(map[*flex.Node]string),
		byName: make(map[string]*flex.Node),
	}

	root, err := t.build(e, &doc.Root, "root")
	if err != nil {
		if root != nil {
			_ = root.Destroy()
		}
		return nil, err
	}
	t.Root = root
	return t, nil
}

// build creates the node for it and its subtree. On error the returned node
// is the partially built subtree, still a root, for the caller to destroy.
func (t *Tree) build(e flex.Engine, it *Item, fallback string) (*flex.Node, error) {
	name := it.Name
	if name == "" {
		name = fallback
	}
	if _, ok := t.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	n, err := flex.New(e, it.Options()...)
	if err != nil {
		return nil, fmt.Errorf("item %q: %w", name, err)
	}
	t.names[n] = name
	t.byName[name] = n
	t.order = append(t.order, name)

	for i := range it.Children {
		child, err := t.build(e, &it.Children[i], name+"."+strconv.Itoa(i))
		if child != nil {
			if addErr := n.Add(child); addErr != nil {
				_ = child.Destroy()
				if err == nil {
					err = addErr
				}
			}
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Lookup returns the node built for the named item.
func (t *Tree) Lookup(name string) (*flex.Node, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// Name returns the item name of n.
func (t *Tree) Name(n *flex.Node) string {
	return t.names[n]
}

// Names lists item names in document order.
func (t *Tree) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Layout lays out the whole tree.
func (t *Tree) Layout() error {
	return t.Root.Layout()
}

// Destroy releases every node of the tree.
func (t *Tree) Destroy() error {
	return t.Root.Destroy()
}
