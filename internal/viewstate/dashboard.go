package viewstate

import (
	"context"
	"log/slog"
	"slices"
)

// Config is the static content a dashboard is built from.
type Config struct {
	Menu          []MenuItem
	Expanded      []string
	Cards         []StatCard
	Revenue       []RevenuePoint
	Periods       []ReportingPeriod
	Currency      string
	Notifications int
}

// ChartData is what the chart renderer needs: the series plus its
// formatters.
type ChartData struct {
	Series       ReportingPeriod
	Points       []RevenuePoint
	AxisTick     func(amount float64) string
	TooltipValue func(amount int64) (value, series string)
	TooltipLabel func(month string) string
}

// Dashboard composes the state units. Every derived value is recomputed
// when the unit it depends on reports a change, never on read.
type Dashboard struct {
	Theme   *ThemePreference
	Nav     *NavigationTree
	Search  *SearchFilter
	Menus   *TransientMenus
	Period  *ReportingPeriodSelector
	Revenue *RevenueSeriesFormatter
	Outside *OutsideListener

	cards         []StatCard
	notifications int

	filtered []StatCard
	chart    ChartData
	rows     []NavRow

	cancels []func()
	notifier
}

// NewDashboard wires the units together. store and sink may be nil.
func NewDashboard(cfg Config, store PreferenceStore, sink Notifier, logger *slog.Logger) *Dashboard {
	menus := NewTransientMenus()
	period := NewReportingPeriodSelector(cfg.Periods, menus.Period)
	d := &Dashboard{
		Theme:         NewThemePreference(store, logger),
		Nav:           NewNavigationTree(cfg.Menu, cfg.Expanded),
		Search:        NewSearchFilter(sink),
		Menus:         menus,
		Period:        period,
		Revenue:       NewRevenueSeriesFormatter(cfg.Revenue, period, cfg.Currency),
		Outside:       &OutsideListener{},
		cards:         slices.Clone(cfg.Cards),
		notifications: cfg.Notifications,
	}

	d.recomputeCards()
	d.recomputeChart()
	d.recomputeRows()

	d.cancels = append(d.cancels,
		d.Search.Subscribe(func() { d.recomputeCards(); d.notify() }),
		d.Period.Subscribe(func() { d.recomputeChart(); d.notify() }),
		d.Nav.Subscribe(func() { d.recomputeRows(); d.notify() }),
		d.Theme.Subscribe(d.notify),
		d.Menus.Subscribe(d.notify),
	)
	return d
}

// Init loads the persisted theme.
func (d *Dashboard) Init(ctx context.Context) ThemeMode {
	return d.Theme.Init(ctx)
}

// Close drops the internal subscriptions.
func (d *Dashboard) Close() {
	for _, c := range d.cancels {
		c()
	}
	d.cancels = nil
}

func (d *Dashboard) recomputeCards() {
	d.filtered = d.Search.Filtered(d.cards)
}

func (d *Dashboard) recomputeChart() {
	d.chart = ChartData{
		Series:       d.Revenue.SeriesName(),
		Points:       d.Revenue.Series(),
		AxisTick:     d.Revenue.AxisTick,
		TooltipValue: d.Revenue.TooltipValue,
		TooltipLabel: d.Revenue.TooltipLabel,
	}
}

func (d *Dashboard) recomputeRows() {
	d.rows = d.Nav.Rows()
}

// Cards returns the full, unfiltered card list.
func (d *Dashboard) Cards() []StatCard {
	return slices.Clone(d.cards)
}

func (d *Dashboard) FilteredCards() []StatCard {
	return slices.Clone(d.filtered)
}

// CardRows splits the filtered cards the way the page lays them out: the
// first two in the wide top row, the rest below.
func (d *Dashboard) CardRows() (top, rest []StatCard) {
	n := min(2, len(d.filtered))
	return slices.Clone(d.filtered[:n]), slices.Clone(d.filtered[n:])
}

// SearchHint suggests the nearest card title when the query matches
// nothing.
func (d *Dashboard) SearchHint() (string, bool) {
	if len(d.filtered) > 0 || d.Search.Query() == "" {
		return "", false
	}
	return ClosestTitle(d.cards, d.Search.Query())
}

func (d *Dashboard) Chart() ChartData {
	c := d.chart
	c.Points = slices.Clone(c.Points)
	return c
}

func (d *Dashboard) NavRows() []NavRow {
	return slices.Clone(d.rows)
}

// Notifications is the unread badge count.
func (d *Dashboard) Notifications() int {
	return d.notifications
}
