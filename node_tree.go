package flex

import "fmt"

// Add appends child to this node's children and mirrors the edit into the
// engine. The child must be a live root: re-parenting requires Remove first.
func (n *Node) Add(child *Node) error {
	if err := n.checkAttach("add", child); err != nil {
		return err
	}

	child.index = len(n.children)
	child.parent = n
	n.children = append(n.children, child)
	n.engine.Add(n.handle, child.handle)

	n.logger.Debug("add", "parent", n.handle, "child", child.handle, "index", child.index)
	return nil
}

// Insert places child at index, shifting later siblings up by one.
// index may equal the child count, which appends.
func (n *Node) Insert(child *Node, index int) error {
	if err := n.checkAttach("insert", child); err != nil {
		return err
	}
	if index < 0 || index > len(n.children) {
		return opError("insert", indexError(index, len(n.children)))
	}

	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	for i := index + 1; i < len(n.children); i++ {
		n.children[i].index = i
	}
	child.index = index
	child.parent = n
	n.engine.Insert(n.handle, child.handle, index)

	n.logger.Debug("insert", "parent", n.handle, "child", child.handle, "index", index)
	return nil
}

// Remove detaches a direct child, shifting later siblings down by one.
// The removed child becomes a root and keeps its own subtree.
func (n *Node) Remove(child *Node) error {
	if err := n.checkLive("remove"); err != nil {
		return err
	}
	if child == nil || child.parent != n {
		return opError("remove", ErrNotAChild)
	}

	index := child.index
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	for i := index; i < len(n.children); i++ {
		n.children[i].index = i
	}
	child.parent = nil
	child.index = -1
	n.engine.Remove(n.handle, index)

	n.logger.Debug("remove", "parent", n.handle, "child", child.handle, "index", index)
	return nil
}

// RemoveSelf detaches the node from its parent. It is a no-op on a node
// that has no parent.
func (n *Node) RemoveSelf() error {
	if err := n.checkLive("remove self"); err != nil {
		return err
	}
	if n.parent == nil {
		return nil
	}
	return n.parent.Remove(n)
}

// checkAttach validates the shared preconditions of Add and Insert.
func (n *Node) checkAttach(op string, child *Node) error {
	if err := n.checkLive(op); err != nil {
		return err
	}
	if child == nil {
		return opError(op, fmt.Errorf("nil child: %w", ErrInvalidValue))
	}
	if err := child.checkLive(op); err != nil {
		return err
	}
	if child.parent != nil {
		return opError(op, ErrAlreadyParented)
	}
	if child.engine != n.engine {
		return opError(op, fmt.Errorf("child belongs to another engine: %w", ErrInvalidValue))
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return opError(op, ErrCycle)
		}
	}
	return nil
}

func indexError(index, last int) error {
	return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, last)
}
