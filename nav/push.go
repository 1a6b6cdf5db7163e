package nav

import (
	"fmt"
	"reflect"
	"slices"
)

// Push appends a screen for dest onto the tree. Without registries it lands
// on the deepest active stack. With registries configured, the active path
// is walked leaf to root and the first applicable strategy wins:
//
//  1. a scoped container that rejects dest is escaped — the screen lands on
//     the stack above the container, preserving its internal state;
//  2. a scoped tab host that accepts dest switches to a non-active tab that
//     already shows a destination of the same type instead of duplicating;
//  3. a scoped pane host that accepts dest routes it into the pane role the
//     registry names, focusing that pane;
//  4. otherwise the screen lands on the deepest active stack.
//
// The leaf-to-root encounter order is the tie-break when several ancestors
// could claim the destination.
func (n *Navigator) Push(root Node, dest Destination) (Node, error) {
	if n.scopes == nil && n.paneRoles == nil {
		return n.pushToActiveStack(root, dest)
	}
	path := ActivePath(root)
	for i := len(path) - 1; i >= 0; i-- {
		switch container := path[i].(type) {
		case *StackNode:
			if container.scopeKey == "" {
				continue
			}
			if !n.inScope(container.scopeKey, dest) {
				return n.pushAbove(root, path[:i], container, dest)
			}
		case *TabNode:
			if container.scopeKey == "" {
				continue
			}
			if !n.inScope(container.scopeKey, dest) {
				return n.pushAbove(root, path[:i], container, dest)
			}
			if idx, ok := tabShowingType(container, dest); ok {
				return ReplaceNode(root, container.key, container.withActive(idx))
			}
		case *PaneNode:
			if container.scopeKey == "" {
				continue
			}
			if !n.inScope(container.scopeKey, dest) {
				return n.pushAbove(root, path[:i], container, dest)
			}
			if n.paneRoles != nil {
				if role, ok := n.paneRoles.PaneRoleFor(container.scopeKey, dest); ok {
					if _, configured := container.Configuration(role); configured {
						return n.pushToPane(root, container, role, dest, true)
					}
				}
			}
		}
	}
	return n.pushToActiveStack(root, dest)
}

// PushAll appends one screen per destination, in order, onto the active
// stack. No-op for an empty destination list.
func (n *Navigator) PushAll(root Node, dests ...Destination) (Node, error) {
	if len(dests) == 0 {
		return root, nil
	}
	stack := ActiveStack(root)
	if stack == nil {
		return nil, fmt.Errorf("push all: %w", ErrNoActiveStack)
	}
	children := slices.Clone(stack.children)
	for _, dest := range dests {
		children = append(children, n.newScreen(dest).withParent(stack.key))
	}
	return ReplaceNode(root, stack.key, stack.withChildren(children))
}

// ClearAndPush empties the active stack and pushes a single screen,
// making dest the new stack root.
func (n *Navigator) ClearAndPush(root Node, dest Destination) (Node, error) {
	stack := ActiveStack(root)
	if stack == nil {
		return nil, fmt.Errorf("clear and push %q: %w", dest.Route(), ErrNoActiveStack)
	}
	return n.resetStack(root, stack, dest)
}

// ClearStackAndPush empties the stack at stackKey and pushes a single
// screen onto it.
func (n *Navigator) ClearStackAndPush(root Node, stackKey string, dest Destination) (Node, error) {
	stack, err := stackByKey(root, stackKey)
	if err != nil {
		return nil, err
	}
	return n.resetStack(root, stack, dest)
}

// ReplaceCurrent swaps the active stack's top screen for dest, keeping the
// stack depth.
func (n *Navigator) ReplaceCurrent(root Node, dest Destination) (Node, error) {
	stack := ActiveStack(root)
	if stack == nil {
		return nil, fmt.Errorf("replace current with %q: %w", dest.Route(), ErrNoActiveStack)
	}
	if len(stack.children) == 0 {
		return nil, fmt.Errorf("replace current in %q: %w", stack.key, ErrEmptyStack)
	}
	children := slices.Clone(stack.children)
	children[len(children)-1] = n.newScreen(dest).withParent(stack.key)
	return ReplaceNode(root, stack.key, stack.withChildren(children))
}

// PushToStack appends a screen onto an explicitly keyed stack instead of
// the active one.
func (n *Navigator) PushToStack(root Node, stackKey string, dest Destination) (Node, error) {
	stack, err := stackByKey(root, stackKey)
	if err != nil {
		return nil, err
	}
	return n.pushToStackNode(root, stack, dest)
}

// NavigateToPane pushes dest into the named pane host's role slot,
// optionally switching focus to that role.
func (n *Navigator) NavigateToPane(root Node, paneKey string, role PaneRole, dest Destination, switchFocus bool) (Node, error) {
	node := FindByKey(root, paneKey)
	if node == nil {
		return nil, fmt.Errorf("navigate to pane %q: %w", paneKey, ErrNodeNotFound)
	}
	pane, ok := node.(*PaneNode)
	if !ok {
		return nil, fmt.Errorf("navigate to pane %q: node is %T: %w", paneKey, node, ErrInvalidOperation)
	}
	return n.pushToPane(root, pane, role, dest, switchFocus)
}

func (n *Navigator) pushToActiveStack(root Node, dest Destination) (Node, error) {
	stack := ActiveStack(root)
	if stack == nil {
		return nil, fmt.Errorf("push %q: %w", dest.Route(), ErrNoActiveStack)
	}
	return n.pushToStackNode(root, stack, dest)
}

func (n *Navigator) pushToStackNode(root Node, stack *StackNode, dest Destination) (Node, error) {
	screen := n.newScreen(dest).withParent(stack.key)
	children := append(slices.Clone(stack.children), Node(screen))
	return ReplaceNode(root, stack.key, stack.withChildren(children))
}

func (n *Navigator) resetStack(root Node, stack *StackNode, dest Destination) (Node, error) {
	screen := n.newScreen(dest).withParent(stack.key)
	return ReplaceNode(root, stack.key, stack.withChildren([]Node{screen}))
}

// pushAbove lands dest on the nearest stack ancestor above an escaped
// container, so the container keeps its internal state for later back
// navigation.
func (n *Navigator) pushAbove(root Node, ancestors []Node, container Node, dest Destination) (Node, error) {
	for i := len(ancestors) - 1; i >= 0; i-- {
		if stack, ok := ancestors[i].(*StackNode); ok {
			return n.pushToStackNode(root, stack, dest)
		}
	}
	return nil, fmt.Errorf("push %q out of scope of %q: container has no parent stack: %w", dest.Route(), container.Key(), ErrNoActiveStack)
}

func (n *Navigator) pushToPane(root Node, pane *PaneNode, role PaneRole, dest Destination, switchFocus bool) (Node, error) {
	cfg, ok := pane.Configuration(role)
	if !ok {
		return nil, fmt.Errorf("pane %q has no %s configuration: %w", pane.key, role, ErrNodeNotFound)
	}
	stack := deepestStackIn(cfg.Content)
	if stack == nil {
		return nil, fmt.Errorf("pane %q %s content holds no stack: %w", pane.key, role, ErrNoActiveStack)
	}
	screen := n.newScreen(dest).withParent(stack.key)
	children := append(slices.Clone(stack.children), Node(screen))
	newContent, err := ReplaceNode(cfg.Content, stack.key, stack.withChildren(children))
	if err != nil {
		return nil, err
	}
	newPane := pane.withConfiguration(role, PaneConfiguration{Content: newContent})
	if switchFocus {
		newPane = newPane.withActive(role)
	}
	return ReplaceNode(root, pane.key, newPane)
}

// deepestStackIn resolves a pane content subtree to the stack its active
// path terminates in.
func deepestStackIn(content Node) *StackNode {
	return ActiveStack(content)
}

func stackByKey(root Node, stackKey string) (*StackNode, error) {
	node := FindByKey(root, stackKey)
	if node == nil {
		return nil, fmt.Errorf("stack %q: %w", stackKey, ErrNodeNotFound)
	}
	stack, ok := node.(*StackNode)
	if !ok {
		return nil, fmt.Errorf("stack %q: node is %T: %w", stackKey, node, ErrInvalidOperation)
	}
	return stack, nil
}

// tabShowingType finds a non-active tab whose subtree already shows a
// destination of the same dynamic type as dest.
func tabShowingType(t *TabNode, dest Destination) (int, bool) {
	want := reflect.TypeOf(dest)
	for i, st := range t.stacks {
		if i == t.active {
			continue
		}
		if subtreeShowsType(st, want) {
			return i, true
		}
	}
	return 0, false
}

func subtreeShowsType(n Node, want reflect.Type) bool {
	if screen, ok := n.(*ScreenNode); ok {
		return reflect.TypeOf(screen.dest) == want
	}
	for _, child := range childNodes(n) {
		if subtreeShowsType(child, want) {
			return true
		}
	}
	return false
}
