package nav

// CascadeBackState describes, without committing anything, what one step of
// back navigation would do. Gesture-driven hosts render it as a preview and
// either commit (PopWithTabBehavior) or abandon it; because both derive
// from the same plan, preview and commit always agree.
type CascadeBackState struct {
	// SourceNode is the node the gesture starts from: the active leaf, or
	// the deepest node on the active path when no leaf exists.
	SourceNode Node
	// ExitingNode is the node that visually leaves: a screen, an entire
	// stack, or an entire tab/pane host. Nil when back changes focus only
	// or delegates to the system.
	ExitingNode Node
	// TargetNode is the node that becomes visible after the step, nil when
	// delegating to the system.
	TargetNode Node
	// CascadeDepth counts the exhausted container levels the step spans;
	// 0 is a normal same-container pop.
	CascadeDepth int
	// DelegatesToSystem is set when the tree is exhausted and the host
	// platform takes over.
	DelegatesToSystem bool
}

// CalculateCascadeBackState computes the speculative result of one back
// step. It is read-only: no state is mutated and an abandoned preview needs
// no cleanup.
func CalculateCascadeBackState(root Node, compact bool) CascadeBackState {
	state := CascadeBackState{SourceNode: deepestActiveNode(root)}
	plan := planBack(root, compact)
	state.CascadeDepth = plan.depth

	switch plan.action {
	case backDelegate:
		state.DelegatesToSystem = true
		return state
	case backUnhandled:
		return state
	}

	committed := commitBack(root, plan)
	if committed.Outcome != BackHandled {
		return state
	}
	state.ExitingNode = topmostMissing(root, committed.State)
	state.TargetNode = deepestActiveNode(committed.State)
	return state
}

// deepestActiveNode returns the active leaf, falling back to the last node
// on the active path when the path ends in an empty stack.
func deepestActiveNode(root Node) Node {
	path := ActivePath(root)
	if len(path) == 0 {
		return nil
	}
	return path[len(path)-1]
}

// topmostMissing finds the shallowest node of the old tree that no longer
// exists in the new one: the subtree that visually exits. Nil when the step
// only moved focus.
func topmostMissing(oldRoot, newRoot Node) Node {
	if FindByKey(newRoot, oldRoot.Key()) == nil {
		return oldRoot
	}
	for _, child := range childNodes(oldRoot) {
		if missing := topmostMissing(child, newRoot); missing != nil {
			return missing
		}
	}
	return nil
}
