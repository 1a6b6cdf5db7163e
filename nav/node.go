package nav

import (
	"fmt"
	"sort"
)

// Destination identifies where a screen navigates to. Callers define their
// own destination types; the engine only reads the route and, for tab
// deduplication and PopToDestination, the dynamic type.
type Destination interface {
	Route() string
}

// Node is one vertex of a navigation tree. Nodes are immutable value
// objects: every operation in this package returns a new root and reuses
// unchanged subtrees by reference.
type Node interface {
	Key() string
	ParentKey() string

	node()
}

// PaneRole names a slot in a multi-pane layout.
type PaneRole string

const (
	PanePrimary    PaneRole = "primary"
	PaneSupporting PaneRole = "supporting"
	PaneExtra      PaneRole = "extra"
)

// PaneBackBehavior selects what back does when a pane's stack would empty.
type PaneBackBehavior int

const (
	// PopLatest pops the active pane's stack and nothing else.
	PopLatest PaneBackBehavior = iota
	// PopUntilScaffoldValueChange refocuses the primary pane, then asks the
	// layout to change.
	PopUntilScaffoldValueChange
	// PopUntilCurrentDestinationChange refocuses any other pane that still
	// has content.
	PopUntilCurrentDestinationChange
	// PopUntilContentChange pops from whichever pane still has content,
	// clearing exhausted non-primary panes.
	PopUntilContentChange
)

func (b PaneBackBehavior) String() string {
	switch b {
	case PopLatest:
		return "pop-latest"
	case PopUntilScaffoldValueChange:
		return "pop-until-scaffold-value-change"
	case PopUntilCurrentDestinationChange:
		return "pop-until-current-destination-change"
	case PopUntilContentChange:
		return "pop-until-content-change"
	default:
		return fmt.Sprintf("pane-back-behavior(%d)", int(b))
	}
}

// ParsePaneBackBehavior maps a config string to a behavior.
func ParsePaneBackBehavior(s string) (PaneBackBehavior, error) {
	for _, b := range []PaneBackBehavior{PopLatest, PopUntilScaffoldValueChange, PopUntilCurrentDestinationChange, PopUntilContentChange} {
		if b.String() == s {
			return b, nil
		}
	}
	return PopLatest, fmt.Errorf("unknown pane back behavior %q", s)
}

// ScreenNode is a leaf holding a caller-owned destination.
type ScreenNode struct {
	key       string
	parentKey string
	dest      Destination
}

// NewScreen builds a screen leaf. The parent key is assigned when the screen
// is placed into a container.
func NewScreen(key string, dest Destination) *ScreenNode {
	return &ScreenNode{key: key, dest: dest}
}

func (s *ScreenNode) Key() string              { return s.key }
func (s *ScreenNode) ParentKey() string        { return s.parentKey }
func (s *ScreenNode) Destination() Destination { return s.dest }
func (s *ScreenNode) node()                    {}

func (s *ScreenNode) withParent(parent string) *ScreenNode {
	if s.parentKey == parent {
		return s
	}
	c := *s
	c.parentKey = parent
	return &c
}

// StackNode is an ordered list of children; the last child is active.
type StackNode struct {
	key       string
	parentKey string
	scopeKey  string
	children  []Node
}

// NewStack builds a stack, re-parenting the given children onto it.
func NewStack(key string, children ...Node) *StackNode {
	return NewScopedStack(key, "", children...)
}

// NewScopedStack builds a stack carrying a scope key for destination routing.
func NewScopedStack(key, scopeKey string, children ...Node) *StackNode {
	s := &StackNode{key: key, scopeKey: scopeKey}
	s.children = reparent(children, key)
	return s
}

func (s *StackNode) Key() string       { return s.key }
func (s *StackNode) ParentKey() string { return s.parentKey }
func (s *StackNode) ScopeKey() string  { return s.scopeKey }
func (s *StackNode) Size() int         { return len(s.children) }
func (s *StackNode) node()             {}

// Children returns the stack's children in order. Callers must not modify
// the returned slice.
func (s *StackNode) Children() []Node { return s.children }

// Active returns the last child, or nil for an empty stack.
func (s *StackNode) Active() Node {
	if len(s.children) == 0 {
		return nil
	}
	return s.children[len(s.children)-1]
}

func (s *StackNode) withParent(parent string) *StackNode {
	if s.parentKey == parent {
		return s
	}
	c := *s
	c.parentKey = parent
	return &c
}

func (s *StackNode) withChildren(children []Node) *StackNode {
	c := *s
	c.children = children
	return &c
}

// TabNode hosts a fixed set of parallel stacks, one per tab. The stack count
// never changes after construction; only the active index and the stacks'
// contents do.
type TabNode struct {
	key       string
	parentKey string
	scopeKey  string
	stacks    []*StackNode
	active    int
}

// NewTabs builds a tab host. Panics if no stacks are given or the active
// index is out of range; both are construction-time programmer errors.
func NewTabs(key string, active int, stacks ...*StackNode) *TabNode {
	return NewScopedTabs(key, "", active, stacks...)
}

// NewScopedTabs builds a tab host carrying a scope key.
func NewScopedTabs(key, scopeKey string, active int, stacks ...*StackNode) *TabNode {
	if len(stacks) == 0 {
		panic(fmt.Sprintf("tab node %q must hold at least one stack", key))
	}
	if active < 0 || active >= len(stacks) {
		panic(fmt.Sprintf("tab node %q active index %d out of range [0,%d)", key, active, len(stacks)))
	}
	owned := make([]*StackNode, len(stacks))
	for i, st := range stacks {
		owned[i] = st.withParent(key)
	}
	return &TabNode{key: key, scopeKey: scopeKey, stacks: owned, active: active}
}

func (t *TabNode) Key() string       { return t.key }
func (t *TabNode) ParentKey() string { return t.parentKey }
func (t *TabNode) ScopeKey() string  { return t.scopeKey }
func (t *TabNode) ActiveIndex() int  { return t.active }
func (t *TabNode) node()             {}

// Stacks returns the per-tab stacks in order. Callers must not modify the
// returned slice.
func (t *TabNode) Stacks() []*StackNode { return t.stacks }

// ActiveStack returns the stack selected by the active index.
func (t *TabNode) ActiveStack() *StackNode { return t.stacks[t.active] }

func (t *TabNode) withParent(parent string) *TabNode {
	if t.parentKey == parent {
		return t
	}
	c := *t
	c.parentKey = parent
	return &c
}

func (t *TabNode) withActive(index int) *TabNode {
	c := *t
	c.active = index
	return &c
}

func (t *TabNode) withStackAt(index int, stack *StackNode) *TabNode {
	c := *t
	c.stacks = make([]*StackNode, len(t.stacks))
	copy(c.stacks, t.stacks)
	c.stacks[index] = stack.withParent(t.key)
	return &c
}

// PaneConfiguration holds one pane slot's content subtree, usually a stack.
type PaneConfiguration struct {
	Content Node
}

// PaneNode lays out role-addressed content subtrees side by side. The
// primary role is always present and can never be removed.
type PaneNode struct {
	key          string
	parentKey    string
	scopeKey     string
	panes        map[PaneRole]PaneConfiguration
	active       PaneRole
	backBehavior PaneBackBehavior
}

// NewPanes builds a pane host. Panics if the primary role is missing or the
// active role is not configured; both are construction-time programmer
// errors.
func NewPanes(key string, behavior PaneBackBehavior, active PaneRole, panes map[PaneRole]PaneConfiguration) *PaneNode {
	return NewScopedPanes(key, "", behavior, active, panes)
}

// NewScopedPanes builds a pane host carrying a scope key.
func NewScopedPanes(key, scopeKey string, behavior PaneBackBehavior, active PaneRole, panes map[PaneRole]PaneConfiguration) *PaneNode {
	if _, ok := panes[PanePrimary]; !ok {
		panic(fmt.Sprintf("pane node %q must configure the primary role", key))
	}
	if _, ok := panes[active]; !ok {
		panic(fmt.Sprintf("pane node %q active role %q is not configured", key, active))
	}
	owned := make(map[PaneRole]PaneConfiguration, len(panes))
	for role, cfg := range panes {
		owned[role] = PaneConfiguration{Content: reparentNode(cfg.Content, key)}
	}
	return &PaneNode{key: key, scopeKey: scopeKey, panes: owned, active: active, backBehavior: behavior}
}

func (p *PaneNode) Key() string                    { return p.key }
func (p *PaneNode) ParentKey() string              { return p.parentKey }
func (p *PaneNode) ScopeKey() string               { return p.scopeKey }
func (p *PaneNode) ActiveRole() PaneRole           { return p.active }
func (p *PaneNode) BackBehavior() PaneBackBehavior { return p.backBehavior }
func (p *PaneNode) node()                          {}

// Configuration returns the content slot for a role.
func (p *PaneNode) Configuration(role PaneRole) (PaneConfiguration, bool) {
	cfg, ok := p.panes[role]
	return cfg, ok
}

// ActiveContent returns the active role's content subtree.
func (p *PaneNode) ActiveContent() Node {
	return p.panes[p.active].Content
}

// Roles lists the configured roles in stable order: primary, supporting,
// extra, then any custom roles lexicographically.
func (p *PaneNode) Roles() []PaneRole {
	return sortedRoles(p.panes)
}

func (p *PaneNode) withParent(parent string) *PaneNode {
	if p.parentKey == parent {
		return p
	}
	c := *p
	c.parentKey = parent
	return &c
}

func (p *PaneNode) withActive(role PaneRole) *PaneNode {
	c := *p
	c.active = role
	return &c
}

func (p *PaneNode) withConfiguration(role PaneRole, cfg PaneConfiguration) *PaneNode {
	c := *p
	c.panes = make(map[PaneRole]PaneConfiguration, len(p.panes)+1)
	for r, existing := range p.panes {
		c.panes[r] = existing
	}
	c.panes[role] = PaneConfiguration{Content: reparentNode(cfg.Content, p.key)}
	return &c
}

func (p *PaneNode) withoutRole(role PaneRole) *PaneNode {
	c := *p
	c.panes = make(map[PaneRole]PaneConfiguration, len(p.panes))
	for r, existing := range p.panes {
		if r != role {
			c.panes[r] = existing
		}
	}
	return &c
}

func sortedRoles(panes map[PaneRole]PaneConfiguration) []PaneRole {
	known := []PaneRole{PanePrimary, PaneSupporting, PaneExtra}
	out := make([]PaneRole, 0, len(panes))
	for _, role := range known {
		if _, ok := panes[role]; ok {
			out = append(out, role)
		}
	}
	var custom []PaneRole
	for role := range panes {
		if role != PanePrimary && role != PaneSupporting && role != PaneExtra {
			custom = append(custom, role)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i] < custom[j] })
	return append(out, custom...)
}

func reparent(children []Node, parent string) []Node {
	out := make([]Node, len(children))
	for i, child := range children {
		out[i] = reparentNode(child, parent)
	}
	return out
}

func reparentNode(n Node, parent string) Node {
	switch n := n.(type) {
	case *ScreenNode:
		return n.withParent(parent)
	case *StackNode:
		return n.withParent(parent)
	case *TabNode:
		return n.withParent(parent)
	case *PaneNode:
		return n.withParent(parent)
	default:
		return n
	}
}
