package nav

// ScopeRegistry decides whether a destination belongs inside a scoped
// container. A container whose scope rejects a destination is escaped: the
// destination lands on the stack above the container instead.
type ScopeRegistry interface {
	IsInScope(scopeKey string, dest Destination) bool
}

// PaneRoleRegistry maps a destination to the pane role it should open in,
// within a scoped pane host.
type PaneRoleRegistry interface {
	PaneRoleFor(scopeKey string, dest Destination) (PaneRole, bool)
}

// ScopeTable is a route-set backed ScopeRegistry. A scope key with no entry
// does not constrain membership.
type ScopeTable map[string][]string

func (t ScopeTable) IsInScope(scopeKey string, dest Destination) bool {
	routes, ok := t[scopeKey]
	if !ok {
		return true
	}
	for _, r := range routes {
		if r == dest.Route() {
			return true
		}
	}
	return false
}

// PaneRouteTable is a map-backed PaneRoleRegistry keyed by scope, then
// route.
type PaneRouteTable map[string]map[string]PaneRole

func (t PaneRouteTable) PaneRoleFor(scopeKey string, dest Destination) (PaneRole, bool) {
	routes, ok := t[scopeKey]
	if !ok {
		return "", false
	}
	role, ok := routes[dest.Route()]
	return role, ok
}
