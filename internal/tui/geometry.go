package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/kodex/kodexdash/internal/viewstate"
	"github.com/kodex/kodexdash/internal/widgets"
)

const (
	sidebarWidth = 26
	headerLines  = 5 // header, rule, greeting, subtitle, blank
	chromeLines  = 2 // status line and footer
	minChart     = 6
	profileLabel = "◍ Admin ▾"
	menuGlyph    = "≡"
	closeGlyph   = "✕"
)

// geometry holds every clickable region of the current frame in absolute
// terminal cells. View draws from it and mouse handling hit-tests against
// it, so the two always agree.
type geometry struct {
	compact bool
	bodyH   int

	sidebar     viewstate.Rect
	drawerClose viewstate.Rect
	main        viewstate.Rect

	menuGlyph     viewstate.Rect
	search        viewstate.Rect
	searchWidth   int
	theme         viewstate.Rect
	bell          viewstate.Rect
	profileAnchor viewstate.Rect
	profilePanel  viewstate.Rect

	cardsY       int
	cardsH       int
	revenueY     int
	periodAnchor viewstate.Rect
	periodPanel  viewstate.Rect
	chart        viewstate.Rect
}

func (m *Model) geometry() geometry {
	g := geometry{compact: m.compact(), bodyH: max(1, m.height-chromeLines)}
	if g.compact {
		g.main = viewstate.Rect{X: 0, Y: 0, W: m.width, H: g.bodyH}
		g.sidebar = viewstate.Rect{X: 0, Y: 0, W: min(sidebarWidth, m.width), H: g.bodyH}
		g.drawerClose = viewstate.Rect{X: g.sidebar.W - 3, Y: 0, W: 1, H: 1}
	} else {
		g.sidebar = viewstate.Rect{X: 0, Y: 0, W: sidebarWidth, H: g.bodyH}
		g.main = viewstate.Rect{X: sidebarWidth + 1, Y: 0, W: max(1, m.width-sidebarWidth-1), H: g.bodyH}
	}

	x := g.main.X
	if g.compact {
		g.menuGlyph = viewstate.Rect{X: x, Y: 0, W: lipgloss.Width(menuGlyph), H: 1}
		x += g.menuGlyph.W + 1
	}
	g.searchWidth = min(36, max(12, g.main.W/3))
	g.search = viewstate.Rect{X: x, Y: 0, W: 2 + g.searchWidth, H: 1}

	right := g.main.X + g.main.W - 1
	g.profileAnchor = viewstate.Rect{X: right - lipgloss.Width(profileLabel), Y: 0, W: lipgloss.Width(profileLabel), H: 1}
	g.bell = viewstate.Rect{X: g.profileAnchor.X - 2 - lipgloss.Width(m.bellLabel()), Y: 0, W: lipgloss.Width(m.bellLabel()), H: 1}
	g.theme = viewstate.Rect{X: g.bell.X - 2 - lipgloss.Width(m.themeLabel()), Y: 0, W: lipgloss.Width(m.themeLabel()), H: 1}
	pw, ph := widgets.Size(m.profilePanel())
	g.profilePanel = viewstate.Rect{X: max(0, g.profileAnchor.X+g.profileAnchor.W-pw), Y: 1, W: pw, H: ph}

	g.cardsY = headerLines
	top, rest := m.dash.CardRows()
	switch {
	case len(top) == 0:
		g.cardsH = 2
	case len(rest) == 0:
		g.cardsH = widgets.CardHeight
	default:
		g.cardsH = 2 * widgets.CardHeight
	}
	g.revenueY = g.cardsY + g.cardsH + 1
	aw := lipgloss.Width(m.periodLabel())
	g.periodAnchor = viewstate.Rect{X: right - aw, Y: g.revenueY, W: aw, H: 1}
	pw, ph = widgets.Size(m.periodPanel())
	g.periodPanel = viewstate.Rect{X: max(0, g.periodAnchor.X+g.periodAnchor.W-pw), Y: g.revenueY + 1, W: pw, H: ph}

	chartY := g.revenueY + 1
	g.chart = viewstate.Rect{X: g.main.X, Y: chartY, W: g.main.W, H: max(minChart, g.bodyH-chartY)}
	return g
}

func (m *Model) themeLabel() string {
	if m.dash.Theme.Get() == viewstate.Dark {
		return "☾"
	}
	return "☀"
}

func (m *Model) bellLabel() string {
	return "⚑ " + strconv.Itoa(m.dash.Notifications())
}

func (m *Model) periodLabel() string {
	return "[" + string(m.dash.Period.Current()) + " ▾]"
}

func (m *Model) profilePanel() string {
	return widgets.MenuPanel{Items: m.layout.Profile, Cursor: m.profileCursor, Selected: -1, Palette: m.styles.palette}.Render(12)
}

func (m *Model) periodPanel() string {
	opts := m.dash.Period.Options()
	items := make([]string, len(opts))
	for i, o := range opts {
		items[i] = string(o)
	}
	return widgets.MenuPanel{Items: items, Cursor: m.periodCursor, Selected: m.dash.Period.Index(), Palette: m.styles.palette}.Render(12)
}
