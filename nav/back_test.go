package nav

import "testing"

func TestBackPopsActiveStackWithHistory(t *testing.T) {
	root := singleStackTree(homeDest{}, feedDest{})
	res := PopWithTabBehavior(root, false)
	if res.Outcome != BackHandled {
		t.Fatalf("expected handled, got %d", res.Outcome)
	}
	if got := activeRoutes(t, res.State); len(got) != 1 || got[0] != "home" {
		t.Fatalf("unexpected stack: %v", got)
	}
}

func TestBackRootStackDelegates(t *testing.T) {
	root := singleStackTree(homeDest{})
	res := PopWithTabBehavior(root, false)
	if res.Outcome != BackDelegateToSystem {
		t.Fatalf("root stack with one screen must delegate, got %d", res.Outcome)
	}
	if CanHandleBackNavigation(root, false) {
		t.Fatalf("predicate must agree with the delegate outcome")
	}
}

func TestBackRemovesExhaustedChildStack(t *testing.T) {
	child := NewStack("child", NewScreen("c1", detailDest{id: "1"}))
	root := NewStack("root", NewScreen("r1", homeDest{}), child)

	res := PopWithTabBehavior(root, false)
	if res.Outcome != BackHandled {
		t.Fatalf("expected handled, got %d", res.Outcome)
	}
	if FindByKey(res.State, "child") != nil {
		t.Fatalf("exhausted child stack should leave with its last screen")
	}
	if got := activeRoutes(t, res.State); len(got) != 1 || got[0] != "home" {
		t.Fatalf("unexpected stack: %v", got)
	}
}

func TestBackNeverSwitchesTabs(t *testing.T) {
	// active tab exhausted, sibling tab full: back removes the whole tab
	// host rather than switching
	tabs := NewTabs("tabs", 0,
		NewStack("tab0", NewScreen("t0s", homeDest{})),
		NewStack("tab1", NewScreen("t1s", feedDest{})),
	)
	root := NewStack("root", NewScreen("r1", settingsDest{}), tabs)

	res := PopWithTabBehavior(root, false)
	if res.Outcome != BackHandled {
		t.Fatalf("expected handled, got %d", res.Outcome)
	}
	if FindByKey(res.State, "tabs") != nil {
		t.Fatalf("the entire tab host should exit")
	}
}

func TestBackTabHostAloneInRootDelegates(t *testing.T) {
	// Stack[Tab{[home], []}]: after the tab stack empties, back can remove
	// neither the fixed slot nor the tab host from a root stack holding
	// nothing else
	root := tabbedTree()
	popped, ok := Pop(root, Cascade)
	if !ok {
		t.Fatalf("pop should succeed")
	}
	res := PopWithTabBehavior(popped, false)
	if res.Outcome != BackDelegateToSystem {
		t.Fatalf("expected delegate, got %d", res.Outcome)
	}
}

func TestBackCompactPaneUsesConfiguredBehavior(t *testing.T) {
	root := panedTree(PopUntilScaffoldValueChange, []Destination{homeDest{}}, []Destination{detailDest{id: "1"}})
	focused, err := SwitchActivePane(root, "panes", PaneSupporting)
	if err != nil {
		t.Fatalf("switch pane: %v", err)
	}
	res := PopWithTabBehavior(focused, true)
	if res.Outcome != BackHandled {
		t.Fatalf("expected handled, got %d", res.Outcome)
	}
	if FindByKey(res.State, "panes").(*PaneNode).ActiveRole() != PanePrimary {
		t.Fatalf("compact back should refocus primary via the pane behavior")
	}
}

func TestBackExpandedPaneExitsPaneHost(t *testing.T) {
	panes := NewPanes("panes", PopUntilScaffoldValueChange, PanePrimary, map[PaneRole]PaneConfiguration{
		PanePrimary:    {Content: NewStack("pstack", NewScreen("p1", homeDest{}))},
		PaneSupporting: {Content: NewStack("sstack", NewScreen("s1", detailDest{id: "1"}))},
	})
	root := NewStack("root", NewScreen("r1", settingsDest{}), panes)

	res := PopWithTabBehavior(root, false)
	if res.Outcome != BackHandled {
		t.Fatalf("expected handled, got %d", res.Outcome)
	}
	if FindByKey(res.State, "panes") != nil {
		t.Fatalf("expanded back must exit the whole pane host")
	}
}

func TestBackCascadeTerminates(t *testing.T) {
	// repeatedly applying back on any finite tree must reach the system
	trees := []Node{
		singleStackTree(homeDest{}, feedDest{}, settingsDest{}),
		tabbedTree(),
		panedTree(PopUntilContentChange, []Destination{homeDest{}, feedDest{}}, []Destination{detailDest{id: "1"}}),
		NewStack("root",
			NewScreen("r1", homeDest{}),
			NewTabs("tabs", 1,
				NewStack("tab0", NewScreen("t0s", feedDest{})),
				NewStack("tab1", NewScreen("t1s", profileDest{user: "x"}), NewScreen("t1s2", detailDest{id: "9"})),
			),
		),
	}
	for i, root := range trees {
		node := root
		for step := 0; step < 64; step++ {
			res := PopWithTabBehavior(node, true)
			switch res.Outcome {
			case BackHandled:
				node = res.State
				continue
			case BackDelegateToSystem:
				step = -1
			case BackCannotHandle:
				t.Fatalf("tree %d: cascade hit an invariant violation at step %d", i, step)
			}
			break
		}
		if PopWithTabBehavior(node, true).Outcome != BackDelegateToSystem {
			t.Fatalf("tree %d: cascade did not terminate in DelegateToSystem", i)
		}
	}
}

func TestCanHandleBackMirrorsOutcome(t *testing.T) {
	handled := singleStackTree(homeDest{}, feedDest{})
	if !CanHandleBackNavigation(handled, false) {
		t.Fatalf("two screens on the root stack must be handleable")
	}
	delegated := singleStackTree(homeDest{})
	if CanHandleBackNavigation(delegated, false) {
		t.Fatalf("an exhausted root stack is not handleable")
	}
}
