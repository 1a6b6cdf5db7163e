package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jermeyyy/quo-vadis-sub007/internal/config"
	"github.com/jermeyyy/quo-vadis-sub007/nav"
)

// App is the bubbletea host. It owns the single current navigation root and
// replaces it wholesale with the output of each operation; the engine itself
// holds no state.
type App struct {
	cfg  config.Config
	keys keyMap
	nav  *nav.Navigator
	root nav.Node

	width   int
	height  int
	compact bool

	status    string
	statusErr bool
	preview   *nav.CascadeBackState
	picker    *jumpPicker
	msgSeq    int
	quitting  bool
}

const (
	keyRoot        = "root"
	keyTabs        = "tabs"
	keyTabInbox    = "tab-inbox"
	keyTabArchive  = "tab-archive"
	keyInboxSplit  = "inbox-split"
	keyInboxList   = "inbox-list"
	keyInboxDetail = "inbox-detail"
)

// Scope and pane-role wiring for the demo tree. The compose flow keeps only
// its own screens; everything else escapes above it. Message details always
// land in the supporting pane of the inbox split.
var (
	appScopes = nav.ScopeTable{
		"compose":     {"compose"},
		keyInboxSplit: {"inbox", "message", "search"},
	}
	appPaneRoles = nav.PaneRouteTable{
		keyInboxSplit: {"message": nav.PaneSupporting},
	}
)

// New builds the host around a fresh demo tree. A nil generator means random
// node keys; pass nav.SequentialKeys for reproducible sessions.
func New(cfg config.Config, gen nav.KeyGenerator) App {
	opts := []nav.Option{
		nav.WithScopeRegistry(appScopes),
		nav.WithPaneRoleRegistry(appPaneRoles),
	}
	if gen != nil {
		opts = append(opts, nav.WithKeyGenerator(gen))
	}
	return App{
		cfg:     cfg,
		keys:    defaultKeyMap(),
		nav:     nav.New(opts...),
		root:    initialTree(cfg),
		width:   100,
		height:  32,
		compact: cfg.Layout.ForceCompact,
		status:  "Ready",
	}
}

// initialTree is the start state: an inbox tab holding a list/detail pane
// pair, and an archive tab.
func initialTree(cfg config.Config) nav.Node {
	split := nav.NewScopedPanes(keyInboxSplit, keyInboxSplit, cfg.BackBehavior(), nav.PanePrimary,
		map[nav.PaneRole]nav.PaneConfiguration{
			nav.PanePrimary:    {Content: nav.NewStack(keyInboxList, nav.NewScreen("scr-inbox", inboxDest{}))},
			nav.PaneSupporting: {Content: nav.NewStack(keyInboxDetail)},
		})
	tabs := nav.NewTabs(keyTabs, 0,
		nav.NewStack(keyTabInbox, split),
		nav.NewStack(keyTabArchive, nav.NewScreen("scr-archive", archiveDest{})),
	)
	return nav.NewStack(keyRoot, tabs)
}

// Root exposes the current tree for tests.
func (a App) Root() nav.Node { return a.root }

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.compact = a.cfg.Layout.ForceCompact || msg.Width < a.cfg.Layout.CompactWidth
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.picker != nil {
		return a.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.Back):
		return a.goBack()
	case key.Matches(msg, a.keys.Preview):
		return a.togglePreview()
	case key.Matches(msg, a.keys.NextTab):
		return a.cycleTab()
	case key.Matches(msg, a.keys.Compose):
		a.push(composeDest{})
		return a, nil
	case key.Matches(msg, a.keys.Open):
		a.msgSeq++
		a.push(messageDest{ID: fmt.Sprintf("%d", a.msgSeq)})
		return a, nil
	case key.Matches(msg, a.keys.Settings):
		a.push(settingsDest{})
		return a, nil
	case key.Matches(msg, a.keys.Pane):
		return a.switchPane()
	case key.Matches(msg, a.keys.Jump):
		a.picker = newJumpPicker(routesInTree(a.root))
		return a, nil
	}
	return a, nil
}

func (a *App) push(d nav.Destination) {
	newRoot, err := a.nav.Push(a.root, d)
	if err != nil {
		a.setError(err)
		return
	}
	a.root = newRoot
	a.preview = nil
	a.setStatus("Opened " + destTitle(d))
}

func (a App) goBack() (tea.Model, tea.Cmd) {
	res := nav.PopWithTabBehavior(a.root, a.compact)
	switch res.Outcome {
	case nav.BackHandled:
		a.root = res.State
		a.preview = nil
		if leaf := nav.ActiveLeaf(a.root); leaf != nil {
			a.setStatus("Back to " + destTitle(leaf.Destination()))
		} else {
			a.setStatus("Back")
		}
		return a, nil
	case nav.BackDelegateToSystem:
		a.quitting = true
		return a, tea.Quit
	default:
		a.setError(fmt.Errorf("back navigation failed"))
		return a, nil
	}
}

func (a App) togglePreview() (tea.Model, tea.Cmd) {
	if a.preview != nil {
		a.preview = nil
		return a, nil
	}
	state := nav.CalculateCascadeBackState(a.root, a.compact)
	a.preview = &state
	return a, nil
}

func (a App) cycleTab() (tea.Model, tea.Cmd) {
	tabs := activeTabHost(a.root)
	if tabs == nil {
		a.setStatus("No tabs here")
		return a, nil
	}
	next := (tabs.ActiveIndex() + 1) % len(tabs.Stacks())
	newRoot, err := nav.SwitchTab(a.root, tabs.Key(), next)
	if err != nil {
		a.setError(err)
		return a, nil
	}
	a.root = newRoot
	a.preview = nil
	a.setStatus(fmt.Sprintf("Tab %d", next+1))
	return a, nil
}

func (a App) switchPane() (tea.Model, tea.Cmd) {
	pane := activePaneHost(a.root)
	if pane == nil {
		a.setStatus("No panes here")
		return a, nil
	}
	roles := pane.Roles()
	if len(roles) < 2 {
		return a, nil
	}
	next := roles[0]
	for i, r := range roles {
		if r == pane.ActiveRole() {
			next = roles[(i+1)%len(roles)]
			break
		}
	}
	newRoot, err := nav.SwitchActivePane(a.root, pane.Key(), next)
	if err != nil {
		a.setError(err)
		return a, nil
	}
	a.root = newRoot
	a.preview = nil
	a.setStatus("Pane: " + string(next))
	return a, nil
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// activeTabHost returns the deepest tab node on the active path.
func activeTabHost(root nav.Node) *nav.TabNode {
	var found *nav.TabNode
	for _, n := range nav.ActivePath(root) {
		if t, ok := n.(*nav.TabNode); ok {
			found = t
		}
	}
	return found
}

// activePaneHost returns the deepest pane node on the active path.
func activePaneHost(root nav.Node) *nav.PaneNode {
	var found *nav.PaneNode
	for _, n := range nav.ActivePath(root) {
		if p, ok := n.(*nav.PaneNode); ok {
			found = p
		}
	}
	return found
}

// routesInTree merges the routes present in the tree with the statically
// known ones, so the jump picker can reach screens not yet pushed.
func routesInTree(root nav.Node) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range nav.Routes(root) {
		seen[r] = struct{}{}
		out = append(out, r)
	}
	for _, r := range knownRoutes() {
		if _, dup := seen[r]; !dup {
			out = append(out, r)
		}
	}
	return out
}
