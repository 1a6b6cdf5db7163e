package nav

// EmptyStackBehavior selects what Pop does when dropping the last child
// empties the active stack.
type EmptyStackBehavior int

const (
	// PreserveEmpty keeps the emptied stack in the tree with zero children.
	PreserveEmpty EmptyStackBehavior = iota
	// Cascade removes the emptied stack from its parent where the parent's
	// structure allows it. Tab and pane hosts keep their fixed slots, so an
	// emptied stack under them is preserved instead.
	Cascade
)

// Pop drops the last child of the active stack. The ok result is false when
// there is nothing to pop: the stack is already empty, or a root-level
// stack emptied under Cascade with no parent to cascade into.
func Pop(root Node, behavior EmptyStackBehavior) (Node, bool) {
	stack := ActiveStack(root)
	if stack == nil || len(stack.children) == 0 {
		return nil, false
	}
	popped := stack.withChildren(stack.children[:len(stack.children)-1])
	if popped.Size() > 0 || behavior == PreserveEmpty {
		return mustReplace(root, stack.key, popped), true
	}

	// cascade: try to drop the now-empty stack from its parent
	parent := parentOf(root, stack)
	if parent == nil {
		return nil, false
	}
	if p, ok := parent.(*StackNode); ok && len(p.children) > 1 {
		out, err := RemoveNode(root, stack.key)
		if err != nil {
			return nil, false
		}
		return out, true
	}
	// fixed slot (tab/pane) or sole child of its parent: preserve empty
	return mustReplace(root, stack.key, popped), true
}

// PopTo truncates the active stack back to its most recent child matching
// pred, dropping the match too when inclusive. Returns the root unchanged
// when nothing matches or truncation would empty the stack.
func PopTo(root Node, inclusive bool, pred func(Node) bool) Node {
	stack := ActiveStack(root)
	if stack == nil {
		return root
	}
	match := -1
	for i := len(stack.children) - 1; i >= 0; i-- {
		if pred(stack.children[i]) {
			match = i
			break
		}
	}
	if match < 0 {
		return root
	}
	end := match + 1
	if inclusive {
		end = match
	}
	if end == 0 || end >= len(stack.children) {
		return root
	}
	return mustReplace(root, stack.key, stack.withChildren(stack.children[:end]))
}

// PopToRoute truncates the active stack back to the most recent screen with
// the given route.
func PopToRoute(root Node, route string, inclusive bool) Node {
	return PopTo(root, inclusive, func(n Node) bool {
		screen, ok := n.(*ScreenNode)
		return ok && screen.dest.Route() == route
	})
}

// PopToDestination truncates the active stack back to the most recent
// screen whose destination is of type T.
func PopToDestination[T Destination](root Node, inclusive bool) Node {
	return PopTo(root, inclusive, func(n Node) bool {
		screen, ok := n.(*ScreenNode)
		if !ok {
			return false
		}
		_, is := screen.dest.(T)
		return is
	})
}

// mustReplace rebuilds the path to a node known to exist. Replacement of a
// node found on the active path cannot fail; a failure here is a defect in
// the tree itself.
func mustReplace(root Node, targetKey string, newNode Node) Node {
	out, err := ReplaceNode(root, targetKey, newNode)
	if err != nil {
		panic("nav: replace of known node failed: " + err.Error())
	}
	return out
}
