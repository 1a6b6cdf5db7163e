package nav

import "errors"

// Structural violations and invalid operations are surfaced to the caller
// immediately; silently continuing would desynchronize the visible UI from
// the caller's intent. Exhausted-navigation outcomes (cannot pop, delegate
// to system, pane empty) are tagged result values, never errors.
var (
	// ErrNodeNotFound reports a key that matches no node in the tree.
	ErrNodeNotFound = errors.New("node not found")

	// ErrNoActiveStack reports an active path that holds no stack.
	ErrNoActiveStack = errors.New("no active stack")

	// ErrCannotRemoveRoot reports an attempt to remove the tree root.
	ErrCannotRemoveRoot = errors.New("cannot remove root node")

	// ErrInvalidOperation reports a structurally illegal request, such as
	// removing one of a tab host's fixed stacks.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrEmptyStack reports an operation that needs at least one child.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrIndexOutOfBounds reports a tab index outside the host's range.
	ErrIndexOutOfBounds = errors.New("tab index out of bounds")
)
