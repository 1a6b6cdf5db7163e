package nav

import "testing"

// Caller-owned destination types. Distinct Go types matter for the
// tab-deduplication and PopToDestination paths.
type homeDest struct{}

func (homeDest) Route() string { return "home" }

type feedDest struct{}

func (feedDest) Route() string { return "feed" }

type profileDest struct{ user string }

func (profileDest) Route() string { return "profile" }

type settingsDest struct{}

func (settingsDest) Route() string { return "settings" }

type detailDest struct{ id string }

func (detailDest) Route() string { return "detail" }

// singleStackTree is the simplest well-formed tree: one root stack holding
// screens for each destination.
func singleStackTree(dests ...Destination) *StackNode {
	children := make([]Node, len(dests))
	for i, d := range dests {
		children[i] = NewScreen(d.Route()+"-scr", d)
	}
	return NewStack("root", children...)
}

// tabbedTree builds a root stack holding a tab host with a populated first
// tab and an empty second tab.
func tabbedTree() *StackNode {
	tabs := NewTabs("tabs", 0,
		NewStack("tab0", NewScreen("home-scr", homeDest{})),
		NewStack("tab1"),
	)
	return NewStack("root", tabs)
}

// panedTree builds a root stack holding a pane host with primary and
// supporting stacks.
func panedTree(behavior PaneBackBehavior, primary, supporting []Destination) *StackNode {
	mk := func(key string, dests []Destination) *StackNode {
		children := make([]Node, len(dests))
		for i, d := range dests {
			children[i] = NewScreen(key+"-"+d.Route(), d)
		}
		return NewStack(key, children...)
	}
	panes := NewPanes("panes", behavior, PanePrimary, map[PaneRole]PaneConfiguration{
		PanePrimary:    {Content: mk("pstack", primary)},
		PaneSupporting: {Content: mk("sstack", supporting)},
	})
	return NewStack("root", panes)
}

func activeRoutes(t *testing.T, root Node) []string {
	t.Helper()
	stack := ActiveStack(root)
	if stack == nil {
		t.Fatalf("tree has no active stack")
	}
	out := make([]string, 0, stack.Size())
	for _, child := range stack.Children() {
		screen, ok := child.(*ScreenNode)
		if !ok {
			t.Fatalf("active stack child %q is %T, not a screen", child.Key(), child)
		}
		out = append(out, screen.Destination().Route())
	}
	return out
}

func requireValid(t *testing.T, root Node) {
	t.Helper()
	if err := Validate(root); err != nil {
		t.Fatalf("tree invariant broken: %v", err)
	}
}
