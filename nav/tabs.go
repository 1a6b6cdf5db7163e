package nav

import "fmt"

// SwitchTab selects a tab host's stack by index. Selecting the already
// active index is a no-op returning the root unchanged.
func SwitchTab(root Node, tabKey string, index int) (Node, error) {
	node := FindByKey(root, tabKey)
	if node == nil {
		return nil, fmt.Errorf("switch tab %q: %w", tabKey, ErrNodeNotFound)
	}
	tabs, ok := node.(*TabNode)
	if !ok {
		return nil, fmt.Errorf("switch tab %q: node is %T: %w", tabKey, node, ErrInvalidOperation)
	}
	if index < 0 || index >= len(tabs.stacks) {
		return nil, fmt.Errorf("switch tab %q to %d of %d: %w", tabKey, index, len(tabs.stacks), ErrIndexOutOfBounds)
	}
	if index == tabs.active {
		return root, nil
	}
	return ReplaceNode(root, tabKey, tabs.withActive(index))
}
