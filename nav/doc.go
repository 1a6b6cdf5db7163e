// Package nav implements an immutable navigation-state tree and its
// mutation algebra: screen stacks, tab hosts and multi-pane layouts.
//
// Allowed here:
// - node model, active-path resolution, key-addressed tree rebuilds
// - push/pop/tab/pane operations and the cascading back decision procedure
// - speculative back previews for gesture-driven navigation
//
// Not allowed here:
// - rendering, animation or any terminal I/O
// - persistence of tree snapshots
// - deep-link parsing into destinations
package nav
