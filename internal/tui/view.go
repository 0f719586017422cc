package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kodex/kodexdash/internal/widgets"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading…"
	}
	g := m.geometry()

	body := m.renderMain(g)
	if !g.compact {
		side := m.sidebar("").Render(g.sidebar.W, g.bodyH)
		body = lipgloss.JoinHorizontal(lipgloss.Top, side, m.separatorColumn(g.bodyH), body)
	}
	if m.dash.Menus.Profile.IsOpen() {
		body = widgets.Overlay(body, m.profilePanel(), g.profilePanel.X, g.profilePanel.Y, m.width)
	}
	if m.dash.Menus.Period.IsOpen() {
		body = widgets.Overlay(body, m.periodPanel(), g.periodPanel.X, g.periodPanel.Y, m.width)
	}
	if g.compact && m.dash.Menus.Drawer.IsOpen() {
		drawer := m.sidebar(closeGlyph).Render(g.sidebar.W-1, g.bodyH)
		drawer = lipgloss.JoinHorizontal(lipgloss.Top, m.styles.drawer.Render(drawer), m.separatorColumn(g.bodyH))
		body = widgets.Overlay(widgets.Backdrop(body, m.styles.backdrop), drawer, 0, 0, m.width)
	}
	return body + "\n" + m.renderStatus() + "\n" + m.renderFooter()
}

func (m *Model) sidebar(closeMark string) widgets.Sidebar {
	return widgets.Sidebar{
		Brand:      m.layout.Brand,
		Rows:       m.dash.NavRows(),
		Cursor:     m.navCursor,
		Focused:    m.focus == focusSidebar,
		Account:    m.layout.Account,
		Palette:    m.styles.palette,
		CloseGlyph: closeMark,
	}
}

func (m *Model) separatorColumn(height int) string {
	col := make([]string, height)
	for i := range col {
		col[i] = m.styles.separator.Render("│")
	}
	return strings.Join(col, "\n")
}

func (m *Model) renderMain(g geometry) string {
	rel := func(x int) int { return x - g.main.X }
	s := m.styles

	header := ""
	if g.compact {
		header = placeAt(header, rel(g.menuGlyph.X), s.control.Render(menuGlyph))
	}
	searchStyle := s.prompt
	if m.focus == focusSearch {
		searchStyle = s.active
	}
	header = placeAt(header, rel(g.search.X), searchStyle.Render("⌕ ")+widgets.PadRight(m.search.View(), g.searchWidth))
	header = placeAt(header, rel(g.theme.X), s.control.Render(m.themeLabel()))
	header = placeAt(header, rel(g.bell.X), s.badge.Render(m.bellLabel()))
	profile := s.control
	if m.dash.Menus.Profile.IsOpen() {
		profile = s.active
	}
	header = placeAt(header, rel(g.profileAnchor.X), profile.Render(profileLabel))

	lines := []string{
		header,
		s.rule.Render(strings.Repeat("─", g.main.W)),
		s.greeting.Render(m.layout.Greeting),
		s.subtitle.Render(m.layout.Subtitle),
		"",
	}
	lines = append(lines, m.renderCards(g)...)
	lines = append(lines, "")

	period := s.control
	if m.dash.Menus.Period.IsOpen() {
		period = s.active
	}
	lines = append(lines, placeAt(s.section.Render("Revenue"), rel(g.periodAnchor.X), period.Render(m.periodLabel())))

	cursor := -1
	if m.focus == focusChart {
		cursor = m.chartCursor
	}
	chart := widgets.RevenueChart{Data: m.dash.Chart(), Cursor: cursor, Palette: s.palette}
	lines = append(lines, chart.Render(g.chart.W, g.chart.H))
	return widgets.Fit(strings.Join(lines, "\n"), g.main.W, g.bodyH)
}

func (m *Model) renderCards(g geometry) []string {
	top, rest := m.dash.CardRows()
	if len(top) == 0 {
		msg := m.styles.muted.Render(`No cards match "` + m.dash.Search.Query() + `".`)
		hint := ""
		if title, ok := m.dash.SearchHint(); ok {
			hint = m.styles.hint.Render(`Did you mean "` + title + `"?`)
		}
		return []string{msg, hint}
	}
	out := []string{widgets.CardRow(top, m.styles.palette).Render(g.main.W, widgets.CardHeight)}
	if len(rest) > 0 {
		out = append(out, widgets.CardRow(rest, m.styles.palette).Render(g.main.W, widgets.CardHeight))
	}
	return out
}

func (m *Model) renderStatus() string {
	return m.styles.status.Render(widgets.PadRight(m.toast, m.width))
}

func (m *Model) renderFooter() string {
	return m.styles.footer.Render(widgets.PadRight(m.help.ShortHelpView(m.keys.HelpBindings(m.scope())), m.width))
}

// placeAt pads or cuts line to column x and appends piece there.
func placeAt(line string, x int, piece string) string {
	return widgets.PadRight(line, max(0, x)) + piece
}
