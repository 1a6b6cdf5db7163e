package nav

// BackOutcome tags the result of the cascading back decision procedure.
type BackOutcome int

const (
	// BackHandled carries the new root in BackResult.State.
	BackHandled BackOutcome = iota
	// BackDelegateToSystem means the tree is exhausted and the host
	// platform should handle back, typically by exiting.
	BackDelegateToSystem
	// BackCannotHandle reports an internal invariant violation: the tree
	// has no active stack or a dangling parent key.
	BackCannotHandle
)

// BackResult is the tagged outcome of back navigation.
type BackResult struct {
	Outcome BackOutcome
	State   Node
}

type backAction int

const (
	backPopScreen backAction = iota
	backRemoveNode
	backPaneBehavior
	backDelegate
	backUnhandled
)

// backPlan is the committed-to decision of one back evaluation. Both the
// committing path and the speculative preview derive from the same plan, so
// the two can never diverge.
type backPlan struct {
	action     backAction
	stackKey   string    // backPopScreen: stack losing its top screen
	removeKey  string    // backRemoveNode: subtree leaving the tree
	paneResult PopResult // backPaneBehavior: resolved pane pop
	depth      int       // exhausted container levels walked, 0 for same-container pops
}

// planBack walks the active path bottom-up and decides what back does:
// pop the active stack when it has history, otherwise cascade the removal
// decision through stack, tab and pane ancestors until one can absorb it or
// the root delegates to the system.
func planBack(root Node, compact bool) backPlan {
	stack := ActiveStack(root)
	if stack == nil {
		return backPlan{action: backUnhandled}
	}
	if len(stack.children) > 1 {
		return backPlan{action: backPopScreen, stackKey: stack.key}
	}

	var node Node = stack
	depth := 0
	for {
		depth++
		parentKey := node.ParentKey()
		if parentKey == "" {
			return backPlan{action: backDelegate, depth: depth}
		}
		parent := FindByKey(root, parentKey)
		if parent == nil {
			return backPlan{action: backUnhandled}
		}
		switch p := parent.(type) {
		case *StackNode:
			if len(p.children) > 1 {
				return backPlan{action: backRemoveNode, removeKey: node.Key(), depth: depth}
			}
			if p.ParentKey() == "" {
				// root stack holding only the exhausted subtree
				return backPlan{action: backDelegate, depth: depth}
			}
			node = p
		case *TabNode:
			// back never switches tabs: the whole tab host exits instead
			node = p
		case *PaneNode:
			if compact {
				if res := PopWithPaneBehavior(root); res.Handled() {
					return backPlan{action: backPaneBehavior, paneResult: res}
				}
			}
			// expanded layouts (or an exhausted pane) exit the pane host
			node = p
		default:
			return backPlan{action: backUnhandled}
		}
	}
}

func commitBack(root Node, plan backPlan) BackResult {
	switch plan.action {
	case backPopScreen:
		stack, ok := FindByKey(root, plan.stackKey).(*StackNode)
		if !ok {
			return BackResult{Outcome: BackCannotHandle}
		}
		return BackResult{Outcome: BackHandled, State: popTopOf(root, stack)}
	case backRemoveNode:
		newRoot, err := RemoveNode(root, plan.removeKey)
		if err != nil {
			return BackResult{Outcome: BackCannotHandle}
		}
		return BackResult{Outcome: BackHandled, State: newRoot}
	case backPaneBehavior:
		return BackResult{Outcome: BackHandled, State: plan.paneResult.State}
	case backDelegate:
		return BackResult{Outcome: BackDelegateToSystem}
	default:
		return BackResult{Outcome: BackCannotHandle}
	}
}

// PopWithTabBehavior performs one step of back navigation with the full
// cascade semantics. The compact flag selects the pane handling mode: in
// compact layouts the pane host's configured back behavior runs first; in
// expanded layouts back always exits the pane host.
func PopWithTabBehavior(root Node, compact bool) BackResult {
	return commitBack(root, planBack(root, compact))
}

// CanHandleBackNavigation reports whether back would be handled inside the
// tree, without building the resulting tree. Hosts use it to decide whether
// to intercept a back gesture at all.
func CanHandleBackNavigation(root Node, compact bool) bool {
	switch planBack(root, compact).action {
	case backPopScreen, backRemoveNode, backPaneBehavior:
		return true
	default:
		return false
	}
}
