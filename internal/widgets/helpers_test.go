package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/kodex/kodexdash/internal/viewstate"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func sampleRows() []viewstate.NavRow {
	menu := []viewstate.MenuItem{
		{Label: "Dashboard", Icon: "▦", Active: true},
		{Label: "User Management", Icon: "◉", Children: []viewstate.ChildLink{{Label: "Users"}, {Label: "Roles"}}},
		{Label: "Course Oversight", Icon: "▤", Children: []viewstate.ChildLink{{Label: "Courses"}}},
		{Label: "Payments", Icon: "▭"},
	}
	return viewstate.NewNavigationTree(menu, []string{"User Management"}).Rows()
}

func sampleChart() viewstate.ChartData {
	amounts := []int64{0, 0, 0, 0, 0, 0, 200000, 1500000, 10000, 20000, 10000, 20000}
	pts := make([]viewstate.RevenuePoint, len(amounts))
	for i, a := range amounts {
		pts[i] = viewstate.RevenuePoint{Month: viewstate.Months[i], Amount: a}
	}
	f := viewstate.NewRevenueSeriesFormatter(pts, nil, "NGN")
	return viewstate.ChartData{
		Series:       f.SeriesName(),
		Points:       f.Series(),
		AxisTick:     f.AxisTick,
		TooltipValue: f.TooltipValue,
		TooltipLabel: f.TooltipLabel,
	}
}
