package nav

// Navigator carries the injected collaborators needed by key-minting
// operations: the key generator and the optional scope and pane-role
// registries. A Navigator holds no tree state; every operation takes the
// current root and returns a new one.
type Navigator struct {
	newKey    KeyGenerator
	scopes    ScopeRegistry
	paneRoles PaneRoleRegistry
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithKeyGenerator overrides the default random key generator. Tests pass
// SequentialKeys for deterministic trees.
func WithKeyGenerator(gen KeyGenerator) Option {
	return func(n *Navigator) { n.newKey = gen }
}

// WithScopeRegistry enables scope-aware destination routing on Push.
func WithScopeRegistry(r ScopeRegistry) Option {
	return func(n *Navigator) { n.scopes = r }
}

// WithPaneRoleRegistry enables pane-role destination routing on Push.
func WithPaneRoleRegistry(r PaneRoleRegistry) Option {
	return func(n *Navigator) { n.paneRoles = r }
}

// New builds a Navigator. With no options Push degrades to a plain append
// on the active stack.
func New(opts ...Option) *Navigator {
	n := &Navigator{newKey: NewKey}
	for _, opt := range opts {
		opt(n)
	}
	if n.newKey == nil {
		n.newKey = NewKey
	}
	return n
}

func (n *Navigator) inScope(scopeKey string, dest Destination) bool {
	if n.scopes == nil {
		return true
	}
	return n.scopes.IsInScope(scopeKey, dest)
}

func (n *Navigator) newScreen(dest Destination) *ScreenNode {
	return NewScreen(n.newKey(), dest)
}
