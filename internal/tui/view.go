package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jermeyyy/quo-vadis-sub007/nav"
)

func (a App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	header := a.renderHeader()
	status := a.renderStatusBar()
	footer := a.renderFooter()
	available := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}

	var body string
	if available > 0 {
		body = a.renderBody(max(1, a.width-2), available)
		if a.picker != nil {
			body = overlay(body, a.renderPicker(), max(1, a.width-2), available)
		} else if a.preview != nil {
			body = overlay(body, a.renderPreview(), max(1, a.width-2), available)
		}
	}
	body = fitHeight(body, available)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, a.height))
	return appStyle.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}

func (a App) renderHeader() string {
	left := headerAppStyle.Render("Quo Vadis")
	var right string
	if tabs := activeTabHost(a.root); tabs != nil {
		labels := make([]string, 0, len(tabs.Stacks()))
		for i, s := range tabs.Stacks() {
			label := fmt.Sprintf("%d:%s", i+1, stackLabel(s))
			if i == tabs.ActiveIndex() {
				labels = append(labels, activeTabStyle.Render(label))
			} else {
				labels = append(labels, inactiveTabStyle.Render(label))
			}
		}
		right = tabSepStyle.Render(" ") + strings.Join(labels, tabSepStyle.Render("│"))
	}
	right = ansi.Truncate(right, max(1, a.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < a.width {
		gap = a.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, a.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func (a App) renderBody(width, height int) string {
	crumb := screenUnderStyle.Render(breadcrumb(a.root))
	bodyHeight := max(1, height-2)

	var main string
	if pane := activePaneHost(a.root); pane != nil && !a.compact {
		main = a.renderPaneColumns(pane, width, bodyHeight)
	} else {
		main = a.renderStackColumn(nav.ActiveStack(a.root), "", true, width, bodyHeight)
	}
	return crumb + "\n\n" + main
}

func (a App) renderPaneColumns(pane *nav.PaneNode, width, height int) string {
	roles := pane.Roles()
	colWidth := max(20, width/max(1, len(roles))-2)
	cols := make([]string, 0, len(roles))
	for _, role := range roles {
		cfg, ok := pane.Configuration(role)
		if !ok {
			continue
		}
		stack, _ := cfg.Content.(*nav.StackNode)
		cols = append(cols, a.renderStackColumn(stack, string(role), role == pane.ActiveRole(), colWidth, height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (a App) renderStackColumn(stack *nav.StackNode, title string, active bool, width, height int) string {
	lines := make([]string, 0, 8)
	if title != "" {
		lines = append(lines, screenUnderStyle.Render(title))
	}
	if stack == nil || stack.Size() == 0 {
		lines = append(lines, screenUnderStyle.Render("(empty)"))
	} else {
		children := stack.Children()
		// top of stack first
		for i := len(children) - 1; i >= 0; i-- {
			label := nodeLabel(children[i])
			if i == len(children)-1 {
				lines = append(lines, screenTopStyle.Render("▸ "+label))
			} else {
				lines = append(lines, screenUnderStyle.Render("  "+label))
			}
		}
	}
	style := paneStyle
	if active {
		style = paneActiveStyle
	}
	content := strings.Join(lines, "\n")
	return style.Width(max(10, width-2)).MaxHeight(max(3, height)).Render(content)
}

func (a App) renderPreview() string {
	p := a.preview
	lines := []string{headerAppStyle.Render("Back preview"), ""}
	if p.DelegatesToSystem {
		lines = append(lines, "Delegates to the system (would exit)")
	} else {
		lines = append(lines,
			"From:    "+nodeLabel(p.SourceNode),
			"Leaves:  "+nodeLabel(p.ExitingNode),
			"Reveals: "+nodeLabel(p.TargetNode),
			fmt.Sprintf("Cascade: %d level(s)", p.CascadeDepth),
		)
	}
	lines = append(lines, "", screenUnderStyle.Render("esc commits, p dismisses"))
	return previewBoxStyle.Render(strings.Join(lines, "\n"))
}

func (a App) renderPicker() string {
	p := a.picker
	q := strings.TrimSpace(p.query)
	if q == "" {
		q = "(type to filter)"
	}
	lines := []string{headerAppStyle.Render("Jump to route"), "Filter: " + q, ""}
	items := p.ranked()
	if len(items) == 0 {
		lines = append(lines, "  No routes")
	}
	for i, route := range items {
		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+route)
	}
	lines = append(lines, "", screenUnderStyle.Render("Enter opens, esc cancels"))
	return previewBoxStyle.Render(strings.Join(lines, "\n"))
}

func (a App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.compact {
		msg = "[compact] " + msg
	}
	if a.statusErr {
		return renderBar(statusErrBarStyle, max(1, a.width), msg, colorSurface)
	}
	return renderBar(statusBarStyle, max(1, a.width), msg, colorSurface)
}

func (a App) renderFooter() string {
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	bindings := a.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	return renderBar(footerStyle, max(1, a.width), line, colorMantle)
}

// breadcrumb renders the active path as container labels.
func breadcrumb(root nav.Node) string {
	path := nav.ActivePath(root)
	parts := make([]string, 0, len(path))
	for _, n := range path {
		parts = append(parts, nodeLabel(n))
	}
	return strings.Join(parts, " › ")
}

func nodeLabel(n nav.Node) string {
	switch n := n.(type) {
	case nil:
		return "(none)"
	case *nav.ScreenNode:
		return destTitle(n.Destination())
	case *nav.StackNode:
		return stackLabel(n)
	case *nav.TabNode:
		return fmt.Sprintf("Tabs[%d]", n.ActiveIndex()+1)
	case *nav.PaneNode:
		return "Panes(" + string(n.ActiveRole()) + ")"
	default:
		return n.Key()
	}
}

// stackLabel names a stack after its bottom screen, falling back to the key.
func stackLabel(s *nav.StackNode) string {
	if s == nil {
		return "(none)"
	}
	if s.Size() > 0 {
		if screen, ok := s.Children()[0].(*nav.ScreenNode); ok {
			return destTitle(screen.Destination())
		}
	}
	return s.Key()
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// overlay centers a box over the body.
func overlay(body, box string, width, height int) string {
	_ = body
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
