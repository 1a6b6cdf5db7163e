package nav

import (
	"errors"
	"testing"
)

func TestNavigateToPanePushesAndFocuses(t *testing.T) {
	n := New(WithKeyGenerator(SequentialKeys("k")))
	root := panedTree(PopLatest, []Destination{homeDest{}}, nil)

	newRoot, err := n.NavigateToPane(root, "panes", PaneSupporting, detailDest{id: "7"}, true)
	if err != nil {
		t.Fatalf("navigate to pane: %v", err)
	}
	requireValid(t, newRoot)
	pane := FindByKey(newRoot, "panes").(*PaneNode)
	if pane.ActiveRole() != PaneSupporting {
		t.Fatalf("focus should switch to supporting, got %s", pane.ActiveRole())
	}
	if FindByKey(newRoot, "sstack").(*StackNode).Size() != 1 {
		t.Fatalf("detail should land in the supporting stack")
	}
}

func TestNavigateToPaneWithoutFocusSwitch(t *testing.T) {
	n := New(WithKeyGenerator(SequentialKeys("k")))
	root := panedTree(PopLatest, []Destination{homeDest{}}, nil)
	newRoot, err := n.NavigateToPane(root, "panes", PaneSupporting, detailDest{id: "7"}, false)
	if err != nil {
		t.Fatalf("navigate to pane: %v", err)
	}
	if FindByKey(newRoot, "panes").(*PaneNode).ActiveRole() != PanePrimary {
		t.Fatalf("focus must stay on primary")
	}
}

func TestSwitchActivePaneRequiresConfiguredRole(t *testing.T) {
	root := panedTree(PopLatest, []Destination{homeDest{}}, nil)
	if _, err := SwitchActivePane(root, "panes", PaneExtra); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound for unconfigured role, got %v", err)
	}
	same, err := SwitchActivePane(root, "panes", PanePrimary)
	if err != nil || same != Node(root) {
		t.Fatalf("switching to the active role must be a no-op, got %v %v", same, err)
	}
}

func TestRemovePaneConfigurationInvariants(t *testing.T) {
	root := panedTree(PopLatest, []Destination{homeDest{}}, []Destination{detailDest{id: "1"}})

	if _, err := RemovePaneConfiguration(root, "panes", PanePrimary); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("primary removal must always fail, got %v", err)
	}

	focused, err := SwitchActivePane(root, "panes", PaneSupporting)
	if err != nil {
		t.Fatalf("switch pane: %v", err)
	}
	removed, err := RemovePaneConfiguration(focused, "panes", PaneSupporting)
	if err != nil {
		t.Fatalf("remove configuration: %v", err)
	}
	pane := FindByKey(removed, "panes").(*PaneNode)
	if pane.ActiveRole() != PanePrimary {
		t.Fatalf("removing the active role must refocus primary, got %s", pane.ActiveRole())
	}
	if _, ok := pane.Configuration(PaneSupporting); ok {
		t.Fatalf("supporting configuration should be gone")
	}
}

func TestSetPaneConfigurationAddsRole(t *testing.T) {
	root := panedTree(PopLatest, []Destination{homeDest{}}, nil)
	newRoot, err := SetPaneConfiguration(root, "panes", PaneExtra, PaneConfiguration{
		Content: NewStack("xstack", NewScreen("x1", settingsDest{})),
	})
	if err != nil {
		t.Fatalf("set configuration: %v", err)
	}
	requireValid(t, newRoot)
	if _, ok := FindByKey(newRoot, "panes").(*PaneNode).Configuration(PaneExtra); !ok {
		t.Fatalf("extra role should be configured")
	}
}

func TestPopWithPaneBehaviorPopLatest(t *testing.T) {
	root := panedTree(PopLatest, []Destination{homeDest{}, feedDest{}}, nil)
	res := PopWithPaneBehavior(root)
	if !res.Handled() {
		t.Fatalf("expected pop, got outcome %d", res.Outcome)
	}
	if got := activeRoutes(t, res.State); len(got) != 1 || got[0] != "home" {
		t.Fatalf("unexpected stack: %v", got)
	}

	// last screen pops to empty, then nothing is left
	res = PopWithPaneBehavior(res.State)
	if !res.Handled() {
		t.Fatalf("pop latest should pop the final screen")
	}
	res = PopWithPaneBehavior(res.State)
	if res.Outcome != PopOutcomeCannotPop {
		t.Fatalf("expected CannotPop on the emptied pane, got %d", res.Outcome)
	}
}

func TestPopWithPaneBehaviorScaffoldChange(t *testing.T) {
	root := panedTree(PopUntilScaffoldValueChange, []Destination{homeDest{}}, []Destination{detailDest{id: "1"}})
	focused, err := SwitchActivePane(root, "panes", PaneSupporting)
	if err != nil {
		t.Fatalf("switch pane: %v", err)
	}
	res := PopWithPaneBehavior(focused)
	if !res.Handled() {
		t.Fatalf("expected refocus to primary, got outcome %d", res.Outcome)
	}
	if FindByKey(res.State, "panes").(*PaneNode).ActiveRole() != PanePrimary {
		t.Fatalf("expected primary focus")
	}

	res = PopWithPaneBehavior(res.State)
	if res.Outcome != PopOutcomeScaffoldChange {
		t.Fatalf("expected RequiresScaffoldChange once primary is active, got %d", res.Outcome)
	}
}

func TestPopWithPaneBehaviorCurrentDestinationChange(t *testing.T) {
	root := panedTree(PopUntilCurrentDestinationChange, []Destination{homeDest{}}, []Destination{detailDest{id: "1"}})
	res := PopWithPaneBehavior(root)
	if !res.Handled() {
		t.Fatalf("expected switch to the supporting pane, got outcome %d", res.Outcome)
	}
	if FindByKey(res.State, "panes").(*PaneNode).ActiveRole() != PaneSupporting {
		t.Fatalf("expected supporting focus")
	}

	// no other pane has content left
	drained := panedTree(PopUntilCurrentDestinationChange, []Destination{homeDest{}}, nil)
	res = PopWithPaneBehavior(drained)
	if res.Outcome != PopOutcomePaneEmpty || res.Role != PanePrimary {
		t.Fatalf("expected PaneEmpty(primary), got %d %s", res.Outcome, res.Role)
	}
}

func TestPopWithPaneBehaviorContentChange(t *testing.T) {
	root := panedTree(PopUntilContentChange, []Destination{homeDest{}}, []Destination{detailDest{id: "1"}, detailDest{id: "2"}})

	// active primary has one screen: it pops, primary keeps focus
	res := PopWithPaneBehavior(root)
	if !res.Handled() {
		t.Fatalf("expected pop, got outcome %d", res.Outcome)
	}
	if FindByKey(res.State, "pstack").(*StackNode).Size() != 0 {
		t.Fatalf("primary stack should have popped to empty")
	}

	// primary is empty now: pops come from the supporting pane
	res = PopWithPaneBehavior(res.State)
	if !res.Handled() {
		t.Fatalf("expected supporting pop, got outcome %d", res.Outcome)
	}
	supporting := FindByKey(res.State, "sstack").(*StackNode)
	if supporting.Size() != 1 {
		t.Fatalf("supporting stack should have lost its top screen, size=%d", supporting.Size())
	}
}

func TestPopPaneAdaptiveCompactIsPlainPop(t *testing.T) {
	root := panedTree(PopUntilScaffoldValueChange, []Destination{homeDest{}, feedDest{}}, nil)
	res := PopPaneAdaptive(root, true)
	if !res.Handled() {
		t.Fatalf("compact back should be a plain pop")
	}
	if got := activeRoutes(t, res.State); len(got) != 1 || got[0] != "home" {
		t.Fatalf("unexpected stack: %v", got)
	}
}

func TestPopPaneByKey(t *testing.T) {
	root := panedTree(PopLatest, []Destination{homeDest{}, feedDest{}}, nil)
	newRoot, ok, err := PopPane(root, "panes")
	if err != nil || !ok {
		t.Fatalf("pop pane: ok=%v err=%v", ok, err)
	}
	if got := activeRoutes(t, newRoot); len(got) != 1 {
		t.Fatalf("unexpected stack: %v", got)
	}
	if _, _, err := PopPane(root, "ghost"); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}
