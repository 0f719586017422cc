package viewstate

import (
	"context"
	"slices"
	"testing"
)

func TestDashboardDerivedCardsFollowSearch(t *testing.T) {
	d := NewDashboard(sampleConfig(), nil, nil, nil)
	defer d.Close()

	if got := len(d.FilteredCards()); got != 5 {
		t.Fatalf("initial filtered = %d, want 5", got)
	}
	top, rest := d.CardRows()
	if len(top) != 2 || len(rest) != 3 {
		t.Fatalf("rows = %d/%d, want 2/3", len(top), len(rest))
	}

	d.Search.SetQuery("modules")
	if got := titles(d.FilteredCards()); !slices.Equal(got, []string{"Number of Modules"}) {
		t.Fatalf("filtered = %v", got)
	}
	top, rest = d.CardRows()
	if len(top) != 1 || len(rest) != 0 {
		t.Fatalf("rows = %d/%d, want 1/0", len(top), len(rest))
	}

	d.Search.SetQuery("zzz")
	if len(d.FilteredCards()) != 0 {
		t.Fatal("expected no cards")
	}
	if _, ok := d.SearchHint(); !ok {
		t.Fatal("expected a hint for an empty result")
	}

	d.Search.SetQuery("")
	if len(d.FilteredCards()) != 5 {
		t.Fatal("clearing the query should restore every card")
	}
	if _, ok := d.SearchHint(); ok {
		t.Fatal("no hint expected when cards are shown")
	}
}

func TestDashboardChartRelabelsOnPeriodSelect(t *testing.T) {
	d := NewDashboard(sampleConfig(), nil, nil, nil)
	defer d.Close()

	if d.Chart().Series != "This Year" {
		t.Fatalf("series = %q", d.Chart().Series)
	}
	before := d.Chart().Points

	d.Menus.Period.Open()
	d.Period.Select("Last Year")
	chart := d.Chart()
	if chart.Series != "Last Year" {
		t.Fatalf("series = %q, want Last Year", chart.Series)
	}
	if d.Menus.Period.IsOpen() {
		t.Fatal("selecting a period should close the picker")
	}
	if !slices.Equal(chart.Points, before) {
		t.Fatal("period selection must not change the series")
	}
	if _, series := chart.TooltipValue(10); series != "Last Year" {
		t.Fatalf("tooltip series = %q", series)
	}
	if chart.AxisTick(1500000) != "1500k" || chart.TooltipLabel("Jul") != "Month: Jul" {
		t.Fatal("chart formatters not wired")
	}
}

func TestDashboardNavRowsFollowToggle(t *testing.T) {
	d := NewDashboard(sampleConfig(), nil, nil, nil)
	defer d.Close()
	n := len(d.NavRows())
	d.Nav.Toggle("User Management")
	if got := len(d.NavRows()); got != n-2 {
		t.Fatalf("rows = %d, want %d", got, n-2)
	}
	d.Nav.Toggle("Payments")
	if got := len(d.NavRows()); got != n-2 {
		t.Fatalf("leaf toggle changed rows to %d", got)
	}
}

func TestDashboardNotifiesOnEveryUnit(t *testing.T) {
	store := newMemStore()
	store.values[ThemeKey] = "dark"
	d := NewDashboard(sampleConfig(), store, nil, nil)
	changes := 0
	d.Subscribe(func() { changes++ })

	if d.Init(context.Background()) != Dark {
		t.Fatal("expected persisted dark theme")
	}
	d.Search.SetQuery("t")
	d.Period.Select("2023")
	d.Nav.Toggle("Course Oversight")
	d.Menus.Profile.Toggle()
	d.Theme.Toggle(context.Background())
	if changes != 6 {
		t.Fatalf("changes = %d, want 6", changes)
	}

	d.Close()
	d.Search.SetQuery("x")
	if changes != 6 {
		t.Fatal("closed dashboard still notifies")
	}
	if store.values[ThemeKey] != "light" {
		t.Fatalf("stored theme = %q", store.values[ThemeKey])
	}
}

func TestDashboardNotificationBadge(t *testing.T) {
	d := NewDashboard(sampleConfig(), nil, nil, nil)
	if d.Notifications() != 3 {
		t.Fatalf("Notifications() = %d", d.Notifications())
	}
}
