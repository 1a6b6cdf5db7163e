package nav

import "fmt"

// PopOutcome tags the result of a pane-aware pop.
type PopOutcome int

const (
	// PopOutcomePopped carries the new root in PopResult.State.
	PopOutcomePopped PopOutcome = iota
	// PopOutcomeCannotPop means no pane had anything left to pop.
	PopOutcomeCannotPop
	// PopOutcomePaneEmpty means the role in PopResult.Role ran out of
	// content and the layout must decide what the empty slot shows.
	PopOutcomePaneEmpty
	// PopOutcomeScaffoldChange defers to the renderer for a layout-level
	// change, per PopUntilScaffoldValueChange.
	PopOutcomeScaffoldChange
)

// PopResult is the tagged outcome of a pane-aware pop. Only
// PopOutcomePopped carries a new tree; the other outcomes are signals the
// host layer branches on, not errors.
type PopResult struct {
	Outcome PopOutcome
	State   Node
	Role    PaneRole
}

// Handled reports whether the result carries a new tree.
func (r PopResult) Handled() bool { return r.Outcome == PopOutcomePopped }

func popped(state Node) PopResult { return PopResult{Outcome: PopOutcomePopped, State: state} }
func cannotPop() PopResult        { return PopResult{Outcome: PopOutcomeCannotPop} }

func paneEmpty(r PaneRole) PopResult {
	return PopResult{Outcome: PopOutcomePaneEmpty, Role: r}
}

// SwitchActivePane focuses another configured role of the named pane host.
// Focusing the already active role is a no-op returning the root unchanged.
func SwitchActivePane(root Node, paneKey string, role PaneRole) (Node, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, err
	}
	if _, ok := pane.panes[role]; !ok {
		return nil, fmt.Errorf("switch pane %q to %s: role not configured: %w", paneKey, role, ErrNodeNotFound)
	}
	if role == pane.active {
		return root, nil
	}
	return ReplaceNode(root, paneKey, pane.withActive(role))
}

// PopPane drops the top screen of the named pane host's active content
// stack, preserving the stack when it empties. The ok result is false when
// the stack has nothing to pop.
func PopPane(root Node, paneKey string) (Node, bool, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, false, err
	}
	stack := ActiveStack(pane.ActiveContent())
	if stack == nil {
		return nil, false, fmt.Errorf("pop pane %q: %s content holds no stack: %w", paneKey, pane.active, ErrNoActiveStack)
	}
	if len(stack.children) == 0 {
		return nil, false, nil
	}
	newRoot := mustReplace(root, stack.key, stack.withChildren(stack.children[:len(stack.children)-1]))
	return newRoot, true, nil
}

// SetPaneConfiguration sets or replaces the content slot for a role.
func SetPaneConfiguration(root Node, paneKey string, role PaneRole, cfg PaneConfiguration) (Node, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, err
	}
	if cfg.Content == nil {
		return nil, fmt.Errorf("set pane %q %s configuration: nil content: %w", paneKey, role, ErrInvalidOperation)
	}
	return ReplaceNode(root, paneKey, pane.withConfiguration(role, cfg))
}

// RemovePaneConfiguration drops a role's content slot. The primary role can
// never be removed; removing the active role refocuses primary.
func RemovePaneConfiguration(root Node, paneKey string, role PaneRole) (Node, error) {
	pane, err := paneByKey(root, paneKey)
	if err != nil {
		return nil, err
	}
	if role == PanePrimary {
		return nil, fmt.Errorf("remove pane %q primary configuration: %w", paneKey, ErrInvalidOperation)
	}
	if _, ok := pane.panes[role]; !ok {
		return nil, fmt.Errorf("remove pane %q %s configuration: role not configured: %w", paneKey, role, ErrNodeNotFound)
	}
	newPane := pane.withoutRole(role)
	if pane.active == role {
		newPane = newPane.withActive(PanePrimary)
	}
	return ReplaceNode(root, paneKey, newPane)
}

// PopWithPaneBehavior pops within the pane host on the active path,
// consulting the host's back behavior once the active stack would empty.
func PopWithPaneBehavior(root Node) PopResult {
	pane := activePane(root)
	if pane == nil {
		return cannotPop()
	}
	stack := ActiveStack(pane.ActiveContent())
	if stack == nil {
		return cannotPop()
	}
	if len(stack.children) > 1 {
		return popped(popTopOf(root, stack))
	}

	switch pane.backBehavior {
	case PopLatest:
		if len(stack.children) == 0 {
			return cannotPop()
		}
		return popped(popTopOf(root, stack))

	case PopUntilScaffoldValueChange:
		if pane.active != PanePrimary {
			return popped(mustReplace(root, pane.key, pane.withActive(PanePrimary)))
		}
		return PopResult{Outcome: PopOutcomeScaffoldChange}

	case PopUntilCurrentDestinationChange:
		for _, role := range pane.Roles() {
			if role == pane.active {
				continue
			}
			if ActiveLeaf(pane.panes[role].Content) != nil {
				return popped(mustReplace(root, pane.key, pane.withActive(role)))
			}
		}
		return paneEmpty(pane.active)

	case PopUntilContentChange:
		return popAnyPaneContent(root, pane)
	}
	return cannotPop()
}

// PopPaneAdaptive applies the configured pane back behavior in expanded
// layouts. In compact single-visible-pane layouts back is always a plain
// stack pop so it stays predictable.
func PopPaneAdaptive(root Node, compact bool) PopResult {
	if !compact {
		return PopWithPaneBehavior(root)
	}
	pane := activePane(root)
	if pane == nil {
		return cannotPop()
	}
	stack := ActiveStack(pane.ActiveContent())
	if stack == nil || len(stack.children) == 0 {
		return cannotPop()
	}
	return popped(popTopOf(root, stack))
}

// popAnyPaneContent implements PopUntilContentChange: pop whichever pane
// still has content, active role first. A non-primary pane that empties on
// pop is cleared and focus returns to primary.
func popAnyPaneContent(root Node, pane *PaneNode) PopResult {
	roles := append([]PaneRole{pane.active}, nonActiveRoles(pane)...)
	for _, role := range roles {
		stack := ActiveStack(pane.panes[role].Content)
		if stack == nil || len(stack.children) == 0 {
			continue
		}
		newStack := stack.withChildren(stack.children[:len(stack.children)-1])
		newPane, err := paneWithStack(pane, role, newStack)
		if err != nil {
			return cannotPop()
		}
		if newStack.Size() == 0 && role != PanePrimary {
			newPane = newPane.withActive(PanePrimary)
		} else if role != pane.active {
			newPane = newPane.withActive(role)
		}
		return popped(mustReplace(root, pane.key, newPane))
	}
	// nothing left to pop anywhere: clear the active non-primary pane
	if pane.active != PanePrimary {
		return popped(mustReplace(root, pane.key, pane.withActive(PanePrimary)))
	}
	return paneEmpty(pane.active)
}

func nonActiveRoles(pane *PaneNode) []PaneRole {
	out := make([]PaneRole, 0, len(pane.panes))
	for _, role := range pane.Roles() {
		if role != pane.active {
			out = append(out, role)
		}
	}
	return out
}

// paneWithStack rebuilds one role's content with a replacement stack.
func paneWithStack(pane *PaneNode, role PaneRole, newStack *StackNode) (*PaneNode, error) {
	content := pane.panes[role].Content
	newContent, err := ReplaceNode(content, newStack.key, newStack)
	if err != nil {
		return nil, err
	}
	return pane.withConfiguration(role, PaneConfiguration{Content: newContent}), nil
}

// popTopOf drops the last child of a stack known to be non-empty.
func popTopOf(root Node, stack *StackNode) Node {
	return mustReplace(root, stack.key, stack.withChildren(stack.children[:len(stack.children)-1]))
}

// activePane returns the deepest pane host on the active path.
func activePane(root Node) *PaneNode {
	var deepest *PaneNode
	for _, n := range ActivePath(root) {
		if pane, ok := n.(*PaneNode); ok {
			deepest = pane
		}
	}
	return deepest
}

func paneByKey(root Node, paneKey string) (*PaneNode, error) {
	node := FindByKey(root, paneKey)
	if node == nil {
		return nil, fmt.Errorf("pane %q: %w", paneKey, ErrNodeNotFound)
	}
	pane, ok := node.(*PaneNode)
	if !ok {
		return nil, fmt.Errorf("pane %q: node is %T: %w", paneKey, node, ErrInvalidOperation)
	}
	return pane, nil
}
