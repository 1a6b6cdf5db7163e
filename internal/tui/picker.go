package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// jumpPicker is a type-to-filter route list. Candidates are ranked by edit
// distance to the query so near-misses still surface.
type jumpPicker struct {
	routes []string
	query  string
	cursor int
}

func newJumpPicker(routes []string) *jumpPicker {
	return &jumpPicker{routes: routes}
}

// ranked returns the candidate routes for the current query, best match
// first. An empty query keeps the original order.
func (p *jumpPicker) ranked() []string {
	if strings.TrimSpace(p.query) == "" {
		return p.routes
	}
	q := strings.ToUpper(p.query)
	out := make([]string, len(p.routes))
	copy(out, p.routes)
	sort.SliceStable(out, func(i, j int) bool {
		return levenshtein.ComputeDistance(q, strings.ToUpper(out[i])) <
			levenshtein.ComputeDistance(q, strings.ToUpper(out[j]))
	})
	return out
}

func (p *jumpPicker) selected() (string, bool) {
	items := p.ranked()
	if len(items) == 0 || p.cursor < 0 || p.cursor >= len(items) {
		return "", false
	}
	return items[p.cursor], true
}

func (p *jumpPicker) move(delta int) {
	items := p.ranked()
	if len(items) == 0 {
		p.cursor = 0
		return
	}
	p.cursor = (p.cursor + delta + len(items)) % len(items)
}

func (a App) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	picker := a.picker
	switch msg.String() {
	case "esc":
		a.picker = nil
		return a, nil
	case "enter":
		route, ok := picker.selected()
		a.picker = nil
		if !ok {
			return a, nil
		}
		dest, known := destByRoute(route)
		if !known {
			a.setStatus(suggestRoute(route))
			return a, nil
		}
		a.push(dest)
		return a, nil
	case "up":
		picker.move(-1)
		return a, nil
	case "down":
		picker.move(1)
		return a, nil
	case "backspace":
		if picker.query != "" {
			picker.query = picker.query[:len(picker.query)-1]
			picker.cursor = 0
		}
		return a, nil
	}
	if msg.Type == tea.KeyRunes {
		picker.query += string(msg.Runes)
		picker.cursor = 0
	}
	return a, nil
}

// suggestRoute builds a "did you mean" status line for an unknown route.
func suggestRoute(input string) string {
	if best, ok := closestKnownRoute(input); ok {
		return "Unknown route " + input + ", did you mean " + best + "?"
	}
	return "Unknown route " + input
}
