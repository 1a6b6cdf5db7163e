package nav

import (
	"fmt"
	"slices"
)

// ReplaceNode produces a new tree with the node at targetKey substituted by
// newNode. Only the path from the root to the target is rebuilt; every
// sibling subtree is reused by reference.
func ReplaceNode(root Node, targetKey string, newNode Node) (Node, error) {
	if root.Key() == targetKey {
		return reparentNode(newNode, ""), nil
	}
	replaced, ok, err := replaceIn(root, targetKey, newNode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("replace %q: %w", targetKey, ErrNodeNotFound)
	}
	return replaced, nil
}

func replaceIn(n Node, targetKey string, newNode Node) (Node, bool, error) {
	switch node := n.(type) {
	case *StackNode:
		for i, child := range node.children {
			if child.Key() == targetKey {
				children := slices.Clone(node.children)
				children[i] = reparentNode(newNode, node.key)
				return node.withChildren(children), true, nil
			}
			replaced, ok, err := replaceIn(child, targetKey, newNode)
			if err != nil {
				return nil, false, err
			}
			if ok {
				children := slices.Clone(node.children)
				children[i] = replaced
				return node.withChildren(children), true, nil
			}
		}
	case *TabNode:
		for i, st := range node.stacks {
			if st.Key() == targetKey {
				stack, ok := newNode.(*StackNode)
				if !ok {
					return nil, false, fmt.Errorf("tab %q slots hold stacks, not %T: %w", node.key, newNode, ErrInvalidOperation)
				}
				return node.withStackAt(i, stack), true, nil
			}
			replaced, ok, err := replaceIn(st, targetKey, newNode)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return node.withStackAt(i, replaced.(*StackNode)), true, nil
			}
		}
	case *PaneNode:
		for _, role := range node.Roles() {
			content := node.panes[role].Content
			if content.Key() == targetKey {
				return node.withConfiguration(role, PaneConfiguration{Content: newNode}), true, nil
			}
			replaced, ok, err := replaceIn(content, targetKey, newNode)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return node.withConfiguration(role, PaneConfiguration{Content: replaced}), true, nil
			}
		}
	}
	return n, false, nil
}

// RemoveNode produces a new tree without the node at targetKey. Stacks drop
// the child from their list; a tab host refuses to lose one of its fixed
// stacks and a pane host refuses to lose a slot's content directly — switch
// tabs or remove the pane configuration instead.
func RemoveNode(root Node, targetKey string) (Node, error) {
	if root.Key() == targetKey {
		return nil, fmt.Errorf("remove %q: %w", targetKey, ErrCannotRemoveRoot)
	}
	removed, ok, err := removeIn(root, targetKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("remove %q: %w", targetKey, ErrNodeNotFound)
	}
	return removed, nil
}

func removeIn(n Node, targetKey string) (Node, bool, error) {
	switch node := n.(type) {
	case *StackNode:
		for i, child := range node.children {
			if child.Key() == targetKey {
				children := slices.Clone(node.children)
				children = append(children[:i], children[i+1:]...)
				return node.withChildren(children), true, nil
			}
			removed, ok, err := removeIn(child, targetKey)
			if err != nil {
				return nil, false, err
			}
			if ok {
				children := slices.Clone(node.children)
				children[i] = removed
				return node.withChildren(children), true, nil
			}
		}
	case *TabNode:
		for i, st := range node.stacks {
			if st.Key() == targetKey {
				return nil, false, fmt.Errorf("tab %q cannot remove a fixed stack, switch tabs instead: %w", node.key, ErrInvalidOperation)
			}
			removed, ok, err := removeIn(st, targetKey)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return node.withStackAt(i, removed.(*StackNode)), true, nil
			}
		}
	case *PaneNode:
		for _, role := range node.Roles() {
			content := node.panes[role].Content
			if content.Key() == targetKey {
				return nil, false, fmt.Errorf("pane %q cannot remove slot content directly, remove the %s configuration instead: %w", node.key, role, ErrInvalidOperation)
			}
			removed, ok, err := removeIn(content, targetKey)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return node.withConfiguration(role, PaneConfiguration{Content: removed}), true, nil
			}
		}
	}
	return n, false, nil
}

// Validate checks the structural invariants of a tree: globally unique
// keys, consistent parent links, at least one stack per tab host and a
// configured primary pane per pane host.
func Validate(root Node) error {
	if root == nil {
		return fmt.Errorf("validate: nil root")
	}
	if root.ParentKey() != "" {
		return fmt.Errorf("validate: root %q carries parent key %q", root.Key(), root.ParentKey())
	}
	seen := make(map[string]struct{})
	var walk func(n Node) error
	walk = func(n Node) error {
		if _, dup := seen[n.Key()]; dup {
			return fmt.Errorf("validate: duplicate key %q", n.Key())
		}
		seen[n.Key()] = struct{}{}
		if pane, ok := n.(*PaneNode); ok {
			if _, hasPrimary := pane.panes[PanePrimary]; !hasPrimary {
				return fmt.Errorf("validate: pane %q lost its primary role", pane.key)
			}
			if _, hasActive := pane.panes[pane.active]; !hasActive {
				return fmt.Errorf("validate: pane %q active role %q is not configured", pane.key, pane.active)
			}
		}
		for _, child := range childNodes(n) {
			if child.ParentKey() != n.Key() {
				return fmt.Errorf("validate: node %q carries parent key %q, want %q", child.Key(), child.ParentKey(), n.Key())
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}
