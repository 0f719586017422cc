package widgets

import (
	"strings"
	"testing"
)

func TestRevenueChartTooltipFollowsCursor(t *testing.T) {
	c := RevenueChart{Data: sampleChart(), Cursor: 7, Palette: DarkPalette}
	out := strings.Join(plainLines(c.Render(80, 14)), "\n")
	if !strings.Contains(out, "Month: Aug") {
		t.Fatalf("missing tooltip label:\n%s", out)
	}
	if !strings.Contains(out, "This Year: ₦1,500,000") {
		t.Fatalf("missing tooltip value:\n%s", out)
	}

	c.Cursor = -1
	out = strings.Join(plainLines(c.Render(80, 14)), "\n")
	if strings.Contains(out, "Month:") {
		t.Fatal("tooltip shown without a cursor")
	}
}

func TestRevenueChartFitsRequestedSize(t *testing.T) {
	c := RevenueChart{Data: sampleChart(), Cursor: 0, Palette: LightPalette}
	lines := plainLines(c.Render(60, 12))
	if len(lines) != 12 {
		t.Fatalf("lines = %d, want 12", len(lines))
	}
}

func TestRevenueChartEmpty(t *testing.T) {
	out := RevenueChart{Palette: DarkPalette}.Render(30, 3)
	if !strings.Contains(out, "No revenue data.") {
		t.Fatalf("empty chart = %q", out)
	}
}

func TestMonthAtInvertsMonthColumn(t *testing.T) {
	c := RevenueChart{Data: sampleChart(), Palette: DarkPalette}
	chart := c.build(80, 14)
	for _, month := range []int{0, 5, 11} {
		x := monthColumn(&chart, monthTime(month))
		got, ok := c.MonthAt(x, 80, 14)
		if !ok || got != month {
			t.Fatalf("MonthAt(col of %d) = %d, %v", month, got, ok)
		}
	}
	if _, ok := c.MonthAt(-1, 80, 14); ok {
		t.Fatal("click left of the axis should not pick a month")
	}
}

func TestYScaleRoundSteps(t *testing.T) {
	step, yMax := yScale(1500000, 12)
	if step != 500000 || yMax != 1500000 {
		t.Fatalf("yScale = %v, %v", step, yMax)
	}
	if step, yMax := yScale(0, 12); step != 1 || yMax != 1 {
		t.Fatalf("yScale(0) = %v, %v", step, yMax)
	}
}

func TestYLabelFormatterUsesAxisTick(t *testing.T) {
	f := yLabelFormatter(500000, 1500000, sampleChart().AxisTick)
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0k"},
		{500000, "500k"},
		{1510000, "1500k"},
		{250000, ""},
		{2100000, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := f(0, tt.in); got != tt.want {
			t.Errorf("label(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMonthLabelFormatterLabelsEachMonthOnce(t *testing.T) {
	f := monthLabelFormatter(12, 80)
	jan := float64(monthTime(0).Unix())
	if got := f(0, jan); got != "Jan" {
		t.Fatalf("first Jan = %q", got)
	}
	if got := f(1, jan+3600); got != "" {
		t.Fatalf("repeat Jan = %q", got)
	}
	if got := f(2, float64(monthTime(1).Unix())); got != "Feb" {
		t.Fatalf("Feb = %q", got)
	}

	narrow := monthLabelFormatter(12, 30)
	if got := narrow(0, float64(monthTime(1).Unix())); got != "" {
		t.Fatalf("narrow Feb = %q, want skipped", got)
	}
}
