package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kodex/kodexdash/internal/viewstate"
	"github.com/kodex/kodexdash/internal/widgets"
)

const logoutItem = "Logout"

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.search.Width = m.geometry().searchWidth - 1
		if !m.compact() {
			m.dash.Menus.Drawer.Close()
		}
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	return m, tea.Batch(cmd, m.flushToast())
}

func (m *Model) flushToast() tea.Cmd {
	if !m.toastPending {
		return nil
	}
	m.toastPending = false
	seq := m.toastSeq
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keyName := msg.String()
	scope := m.scope()
	b := m.keys.Lookup(keyName, scope)
	if b == nil {
		if scope == scopeSearch {
			return m.updateSearchInput(msg)
		}
		return nil
	}

	switch b.Action {
	case actionQuit:
		return m.quit()
	case actionCloseAll, actionClose:
		if n := m.dash.Menus.CloseAll(); n > 0 {
			m.logger.Debug("popovers closed", "count", n)
		}
	case actionNextFocus:
		m.setFocus((m.focus + 1) % 3)
		return m.searchFocusCmd()
	case actionFocusSearch:
		m.setFocus(focusSearch)
		return m.searchFocusCmd()
	case actionLeaveSearch:
		if m.dash.Menus.CloseAll() == 0 {
			m.setFocus(focusSidebar)
		}
	case actionSubmitSearch:
		m.dash.Search.Submit()
		m.logger.Info("search submitted", "query", m.dash.Search.Query(), "matches", len(m.dash.FilteredCards()))
	case actionToggleTheme:
		m.toggleTheme()
	case actionProfileMenu:
		m.toggleProfile()
	case actionPeriodPicker:
		m.togglePeriod()
	case actionToggleDrawer:
		m.toggleDrawer()
	case actionNavigate:
		m.navigate(isUpKey(keyName), scope)
	case actionToggleGroup:
		m.activateRow(m.navCursor)
	case actionMonth:
		m.moveMonth(isLeftKey(keyName))
	case actionSelect:
		if scope == scopePeriodPicker {
			m.selectPeriod(m.periodCursor)
		} else {
			return m.selectProfile(m.profileCursor)
		}
	}
	return nil
}

func (m *Model) updateSearchInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.dash.Search.SetQuery(m.search.Value())
	return cmd
}

func (m *Model) searchFocusCmd() tea.Cmd {
	if m.focus == focusSearch {
		return textinput.Blink
	}
	return nil
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	if f == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
	if f == focusChart && m.chartCursor < 0 {
		m.chartCursor = peakMonth(m.dash.Chart().Points)
	}
}

func peakMonth(points []viewstate.RevenuePoint) int {
	best := 0
	for i, p := range points {
		if p.Amount > points[best].Amount {
			best = i
		}
	}
	return best
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.logger.Info("dashboard closed")
	return tea.Quit
}

func (m *Model) toggleTheme() {
	m.dash.Theme.Toggle(m.ctx)
}

func (m *Model) toggleProfile() {
	m.profileCursor = 0
	m.dash.Menus.Profile.Toggle()
}

func (m *Model) togglePeriod() {
	m.periodCursor = m.dash.Period.Index()
	m.dash.Menus.Period.Toggle()
}

func (m *Model) toggleDrawer() {
	if !m.compact() {
		return
	}
	m.dash.Menus.Drawer.Toggle()
	if m.dash.Menus.Drawer.IsOpen() {
		m.setFocus(focusSidebar)
	}
}

func (m *Model) navigate(up bool, scope string) {
	step := 1
	if up {
		step = -1
	}
	switch scope {
	case scopeProfileMenu:
		m.profileCursor = wrap(m.profileCursor+step, len(m.layout.Profile))
	case scopePeriodPicker:
		m.periodCursor = wrap(m.periodCursor+step, len(m.dash.Period.Options()))
	default:
		m.navCursor = clamp(m.navCursor+step, len(m.dash.NavRows()))
	}
}

// activateRow toggles the group under row. Leaves and child links have
// no destination in this build and are ignored.
func (m *Model) activateRow(row int) {
	rows := m.dash.NavRows()
	if row < 0 || row >= len(rows) {
		return
	}
	m.navCursor = row
	if r := rows[row]; r.Group {
		m.dash.Nav.Toggle(r.Label)
		m.navCursor = clamp(m.navCursor, len(m.dash.NavRows()))
	}
}

func (m *Model) moveMonth(left bool) {
	n := len(m.dash.Chart().Points)
	if left {
		m.chartCursor = clamp(m.chartCursor-1, n)
	} else {
		m.chartCursor = clamp(m.chartCursor+1, n)
	}
}

func (m *Model) selectPeriod(i int) {
	opts := m.dash.Period.Options()
	if i < 0 || i >= len(opts) {
		return
	}
	if m.dash.Period.Select(opts[i]) {
		m.logger.Debug("reporting period selected", "period", string(opts[i]))
	}
}

func (m *Model) selectProfile(i int) tea.Cmd {
	if i < 0 || i >= len(m.layout.Profile) {
		return nil
	}
	m.dash.Menus.Profile.Close()
	return m.openAccountItem(m.layout.Profile[i])
}

func (m *Model) openAccountItem(item string) tea.Cmd {
	if item == logoutItem {
		return m.quit()
	}
	m.pushToast(item + " is not available yet.")
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	pt := viewstate.Point{X: msg.X, Y: msg.Y}
	g := m.geometry()

	// Snapshot before outside handling so a press on an open panel's items
	// still reaches them.
	profileOpen := m.dash.Menus.Profile.IsOpen()
	periodOpen := m.dash.Menus.Period.IsOpen()
	if closed := m.dash.Outside.Dispatch(pt); len(closed) > 0 {
		m.logger.Debug("popovers closed by outside press", "closed", closed)
	}

	if g.compact && m.dash.Menus.Drawer.IsOpen() {
		if !g.sidebar.Contains(pt) || g.drawerClose.Contains(pt) {
			m.dash.Menus.Drawer.Close()
			return nil
		}
		return m.clickSidebar(pt, g)
	}

	switch {
	case periodOpen && g.periodPanel.Contains(pt):
		if i, ok := widgets.MenuItemAt(pt.Y-g.periodPanel.Y, len(m.dash.Period.Options())); ok {
			m.selectPeriod(i)
		}
	case profileOpen && g.profilePanel.Contains(pt):
		if i, ok := widgets.MenuItemAt(pt.Y-g.profilePanel.Y, len(m.layout.Profile)); ok {
			return m.selectProfile(i)
		}
	case g.profileAnchor.Contains(pt):
		m.toggleProfile()
	case g.periodAnchor.Contains(pt):
		m.togglePeriod()
	case g.theme.Contains(pt):
		m.toggleTheme()
	case g.bell.Contains(pt):
		m.pushToast(strconv.Itoa(m.dash.Notifications()) + " unread notifications")
	case g.search.Contains(pt):
		m.setFocus(focusSearch)
		return m.searchFocusCmd()
	case g.compact && g.menuGlyph.Contains(pt):
		m.toggleDrawer()
	case g.chart.Contains(pt):
		c := widgets.RevenueChart{Data: m.dash.Chart()}
		if i, ok := c.MonthAt(pt.X-g.chart.X, g.chart.W, g.chart.H); ok {
			m.setFocus(focusChart)
			m.chartCursor = i
		}
	case !g.compact && g.sidebar.Contains(pt):
		return m.clickSidebar(pt, g)
	}
	return nil
}

func (m *Model) clickSidebar(pt viewstate.Point, g geometry) tea.Cmd {
	row, acct, ok := widgets.SidebarHit(pt.Y-g.sidebar.Y, len(m.dash.NavRows()), len(m.layout.Account))
	if !ok {
		return nil
	}
	m.setFocus(focusSidebar)
	if acct >= 0 {
		return m.openAccountItem(m.layout.Account[acct])
	}
	m.activateRow(row)
	return nil
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}
