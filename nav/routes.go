package nav

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Routes collects the distinct destination routes present in a tree, in
// depth-first encounter order.
func Routes(root Node) []string {
	seen := make(map[string]struct{})
	var out []string
	var walk func(n Node)
	walk = func(n Node) {
		if screen, ok := n.(*ScreenNode); ok {
			route := screen.dest.Route()
			if _, dup := seen[route]; !dup {
				seen[route] = struct{}{}
				out = append(out, route)
			}
			return
		}
		for _, child := range childNodes(n) {
			walk(child)
		}
	}
	walk(root)
	return out
}

// ClosestRoute returns the candidate nearest to input by edit distance,
// used for "did you mean" suggestions on unknown routes. Matches further
// than 40% of the longer string apart are rejected.
func ClosestRoute(input string, candidates []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(strings.ToUpper(input), strings.ToUpper(candidate))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if bestDist < 0 {
		return "", false
	}
	maxlen := len(input)
	if len(best) > maxlen {
		maxlen = len(best)
	}
	if maxlen == 0 || float64(bestDist)/float64(maxlen) >= 0.4 {
		return "", false
	}
	return best, true
}
