package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kodex/kodexdash/internal/layout"
	"github.com/kodex/kodexdash/internal/viewstate"
	"github.com/kodex/kodexdash/internal/widgets"
)

const (
	defaultCompactWidth = 100
	defaultToastTTL     = 3 * time.Second
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusSearch
	focusChart
)

// Options configures a dashboard model.
type Options struct {
	Layout layout.Layout
	Store  viewstate.PreferenceStore
	// CompactWidth is the terminal width below which the sidebar becomes a
	// drawer.
	CompactWidth int
	ToastTTL     time.Duration
	Logger       *slog.Logger
}

type toastExpiredMsg struct{ seq int }

// Model is the bubbletea model of the admin dashboard. All view state
// lives in the viewstate.Dashboard; the model only adds cursors, focus and
// the terminal geometry.
type Model struct {
	ctx    context.Context
	dash   *viewstate.Dashboard
	layout layout.Layout
	keys   *KeyRegistry
	search textinput.Model
	help   help.Model
	styles styles
	logger *slog.Logger

	width        int
	height       int
	compactWidth int
	toastTTL     time.Duration

	focus         focusArea
	navCursor     int
	chartCursor   int
	profileCursor int
	periodCursor  int

	toast        string
	toastSeq     int
	toastPending bool
	quitting     bool
	cancels      []func()
}

// New builds the dashboard state from opts.Layout and loads the persisted
// theme.
func New(ctx context.Context, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.CompactWidth <= 0 {
		opts.CompactWidth = defaultCompactWidth
	}
	if opts.ToastTTL <= 0 {
		opts.ToastTTL = defaultToastTTL
	}

	m := &Model{
		ctx:          ctx,
		layout:       opts.Layout,
		keys:         NewKeyRegistry(),
		help:         help.New(),
		logger:       opts.Logger,
		compactWidth: opts.CompactWidth,
		toastTTL:     opts.ToastTTL,
		chartCursor:  -1,
	}
	m.dash = viewstate.NewDashboard(opts.Layout.Dashboard(), opts.Store, viewstate.NotifyFunc(m.pushToast), opts.Logger)

	m.search = textinput.New()
	m.search.Placeholder = "Search…"
	m.search.Prompt = ""

	mode := m.dash.Init(ctx)
	m.applyTheme(mode)
	theme := m.dash.Theme.Context()
	m.cancels = append(m.cancels, theme.Subscribe(func() { m.applyTheme(theme.Mode()) }))

	m.dash.Outside.Register(m.dash.Menus.Profile, func() []viewstate.Rect {
		g := m.geometry()
		return []viewstate.Rect{g.profileAnchor, g.profilePanel}
	})
	m.dash.Outside.Register(m.dash.Menus.Period, func() []viewstate.Rect {
		g := m.geometry()
		return []viewstate.Rect{g.periodAnchor, g.periodPanel}
	})
	return m
}

// Dashboard exposes the underlying view state.
func (m *Model) Dashboard() *viewstate.Dashboard {
	return m.dash
}

// Close releases the model's subscriptions.
func (m *Model) Close() {
	for _, c := range m.cancels {
		c()
	}
	m.cancels = nil
	m.dash.Close()
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.layout.Brand + " admin")
}

func (m *Model) applyTheme(mode viewstate.ThemeMode) {
	m.styles = newStyles(widgets.PaletteFor(mode))
	m.help.Styles = m.styles.helpStyles()
}

func (m *Model) compact() bool {
	return m.width > 0 && m.width < m.compactWidth
}

// pushToast is the search acknowledgement sink; the expiry tick is
// scheduled when the current update returns.
func (m *Model) pushToast(message string) {
	m.toast = message
	m.toastSeq++
	m.toastPending = true
}

func (m *Model) scope() string {
	switch {
	case m.dash.Menus.Period.IsOpen():
		return scopePeriodPicker
	case m.dash.Menus.Profile.IsOpen():
		return scopeProfileMenu
	case m.focus == focusSearch:
		return scopeSearch
	case m.focus == focusChart:
		return scopeChart
	default:
		return scopeSidebar
	}
}
