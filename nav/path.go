package nav

// ActivePath returns the root-to-leaf sequence of nodes selected at every
// branching container, inclusive of both ends. The path ends early at a
// stack that has no children.
func ActivePath(root Node) []Node {
	var path []Node
	n := root
	for n != nil {
		path = append(path, n)
		switch node := n.(type) {
		case *ScreenNode:
			n = nil
		case *StackNode:
			n = node.Active()
		case *TabNode:
			n = node.ActiveStack()
		case *PaneNode:
			n = node.ActiveContent()
		default:
			n = nil
		}
	}
	return path
}

// ActiveLeaf returns the screen at the end of the active path, or nil if
// the path terminates in an empty stack.
func ActiveLeaf(root Node) *ScreenNode {
	path := ActivePath(root)
	if leaf, ok := path[len(path)-1].(*ScreenNode); ok {
		return leaf
	}
	return nil
}

// ActiveStack returns the deepest stack on the active path: the stack whose
// last child is the active leaf. Nil is returned only for a tree without a
// stack on its active path, which a well-formed tree never produces.
func ActiveStack(root Node) *StackNode {
	var deepest *StackNode
	for _, n := range ActivePath(root) {
		if stack, ok := n.(*StackNode); ok {
			deepest = stack
		}
	}
	return deepest
}

// FindByKey depth-first searches the whole tree for a node key.
func FindByKey(root Node, key string) Node {
	if root == nil {
		return nil
	}
	if root.Key() == key {
		return root
	}
	for _, child := range childNodes(root) {
		if found := FindByKey(child, key); found != nil {
			return found
		}
	}
	return nil
}

// childNodes enumerates a node's direct children in the variant-specific
// order: stack children front to back, tab stacks left to right, pane
// contents in stable role order.
func childNodes(n Node) []Node {
	switch node := n.(type) {
	case *StackNode:
		return node.children
	case *TabNode:
		out := make([]Node, len(node.stacks))
		for i, st := range node.stacks {
			out[i] = st
		}
		return out
	case *PaneNode:
		roles := node.Roles()
		out := make([]Node, 0, len(roles))
		for _, role := range roles {
			out = append(out, node.panes[role].Content)
		}
		return out
	default:
		return nil
	}
}

// parentOf resolves a node's parent through its parent key. Returns nil for
// the root.
func parentOf(root, n Node) Node {
	if n.ParentKey() == "" {
		return nil
	}
	return FindByKey(root, n.ParentKey())
}
