package tui

import (
	"fmt"

	"github.com/jermeyyy/quo-vadis-sub007/nav"
)

// The demo application is a small mail client: an inbox tab with a
// list/detail pane pair, an archive tab, and a few pushable screens.

type inboxDest struct{}

func (inboxDest) Route() string { return "inbox" }

type archiveDest struct{}

func (archiveDest) Route() string { return "archive" }

type messageDest struct{ ID string }

func (messageDest) Route() string { return "message" }

type composeDest struct{}

func (composeDest) Route() string { return "compose" }

type settingsDest struct{}

func (settingsDest) Route() string { return "settings" }

type searchDest struct{ Query string }

func (searchDest) Route() string { return "search" }

func destTitle(d nav.Destination) string {
	switch d := d.(type) {
	case messageDest:
		return "Message " + d.ID
	case searchDest:
		return fmt.Sprintf("Search %q", d.Query)
	case inboxDest:
		return "Inbox"
	case archiveDest:
		return "Archive"
	case composeDest:
		return "Compose"
	case settingsDest:
		return "Settings"
	default:
		return d.Route()
	}
}

// destByRoute builds a fresh destination for a route name, used by the jump
// picker. Parameterized destinations get demo arguments.
func destByRoute(route string) (nav.Destination, bool) {
	switch route {
	case "inbox":
		return inboxDest{}, true
	case "archive":
		return archiveDest{}, true
	case "message":
		return messageDest{ID: "1"}, true
	case "compose":
		return composeDest{}, true
	case "settings":
		return settingsDest{}, true
	case "search":
		return searchDest{Query: ""}, true
	default:
		return nil, false
	}
}

func knownRoutes() []string {
	return []string{"inbox", "archive", "message", "compose", "settings", "search"}
}

func closestKnownRoute(input string) (string, bool) {
	return nav.ClosestRoute(input, knownRoutes())
}
