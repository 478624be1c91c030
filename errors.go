package flex

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Node methods. Match them with errors.Is.
// Every one of them is raised before any state changes.
var (
	// ErrDestroyed is returned by any call on a node whose handle was released.
	ErrDestroyed = errors.New("node has been destroyed")

	// ErrAlreadyParented is returned by Add/Insert when the child has a parent.
	ErrAlreadyParented = errors.New("child already has a parent")

	// ErrNotAChild is returned by Remove when the node is not a direct child.
	ErrNotAChild = errors.New("node is not a child of this node")

	// ErrIndexOutOfRange is returned by Insert and Child for a bad index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidDestroy is returned by Destroy on a node that has a parent.
	ErrInvalidDestroy = errors.New("only a root node can be destroyed")

	// ErrInvalidValue is returned when an enum value is out of range.
	ErrInvalidValue = errors.New("invalid property value")

	// ErrCycle is returned when a node would become its own ancestor.
	ErrCycle = errors.New("node cannot be added under itself")

	// ErrInconsistent is wrapped by every finding of CheckConsistency.
	ErrInconsistent = errors.New("tree is inconsistent")
)

func opError(op string, err error) error {
	return fmt.Errorf("flex: %s: %w", op, err)
}
