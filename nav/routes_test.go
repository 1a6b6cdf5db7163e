package nav

import "testing"

func TestRoutesDepthFirstDistinct(t *testing.T) {
	root := NewStack("root",
		NewScreen("a", homeDest{}),
		NewTabs("tabs", 0,
			NewStack("tab0", NewScreen("b", feedDest{}), NewScreen("c", homeDest{})),
			NewStack("tab1", NewScreen("d", settingsDest{})),
		),
	)
	got := Routes(root)
	want := []string{"home", "feed", "settings"}
	if len(got) != len(want) {
		t.Fatalf("routes: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("routes out of order: %v", got)
		}
	}
}

func TestClosestRouteSuggestsNearMiss(t *testing.T) {
	candidates := []string{"home", "settings", "profile"}
	got, ok := ClosestRoute("setings", candidates)
	if !ok || got != "settings" {
		t.Fatalf("expected settings, got %q ok=%v", got, ok)
	}
	if _, ok := ClosestRoute("zzzzzzz", candidates); ok {
		t.Fatalf("a far-off input must not match")
	}
	if _, ok := ClosestRoute("home", nil); ok {
		t.Fatalf("no candidates, no match")
	}
}

func TestSequentialKeysAreDistinct(t *testing.T) {
	gen := SequentialKeys("scr")
	a, b := gen(), gen()
	if a == b {
		t.Fatalf("generator repeated a key: %q", a)
	}
	if NewKey() == NewKey() {
		t.Fatalf("random keys collided")
	}
}
