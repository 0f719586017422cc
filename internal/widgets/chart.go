package widgets

import (
	"math"
	"strconv"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/kodex/kodexdash/internal/viewstate"
)

// RevenueChart draws the monthly revenue line. Cursor selects the month
// whose tooltip is shown; a negative cursor hides it.
type RevenueChart struct {
	Data    viewstate.ChartData
	Cursor  int
	Palette Palette
}

const chartYear = 2000

func monthTime(i int) time.Time {
	return time.Date(chartYear, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
}

func (c RevenueChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Data.Points) == 0 {
		return Fit(lipgloss.NewStyle().Foreground(c.Palette.Muted).Render("No revenue data."), width, height)
	}
	chart := c.build(width, height)
	if c.Cursor >= 0 && c.Cursor < len(c.Data.Points) {
		drawCursor(&chart, monthColumn(&chart, monthTime(c.Cursor)), lipgloss.NewStyle().Foreground(c.Palette.Focus))
	}
	out := chart.View()
	if tip, x, ok := c.tooltip(&chart, width); ok {
		out = Overlay(out, tip, x, 0, width)
	}
	return Fit(out, width, height)
}

func (c RevenueChart) build(width, height int) tslc.Model {
	pts := c.Data.Points
	start, end := monthTime(0), monthTime(len(pts)-1)
	maxVal := 0.0
	for _, p := range pts {
		maxVal = math.Max(maxVal, float64(p.Amount))
	}

	chart := tslc.New(width, height)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(c.Palette.Line))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(c.Palette.Border)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(c.Palette.Muted)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)

	step, yMax := yScale(maxVal, chart.GraphHeight())
	chart.SetYRange(0, yMax)
	chart.SetViewYRange(0, yMax)
	chart.Model.XLabelFormatter = monthLabelFormatter(len(pts), chart.Width()-chart.Origin().X)
	chart.Model.YLabelFormatter = yLabelFormatter(step, yMax, c.Data.AxisTick)

	for i, p := range pts {
		chart.Push(tslc.TimePoint{Time: monthTime(i), Value: float64(p.Amount)})
	}
	chart.DrawBraille()
	return chart
}

// MonthAt returns the month whose column is nearest to x, for a chart
// rendered at width x height.
func (c RevenueChart) MonthAt(x, width, height int) (int, bool) {
	if len(c.Data.Points) == 0 || width <= 0 || height <= 0 {
		return 0, false
	}
	chart := c.build(width, height)
	if x <= chart.Origin().X {
		return 0, false
	}
	best, bestDist := 0, math.MaxInt
	for i := range c.Data.Points {
		if d := absInt(monthColumn(&chart, monthTime(i)) - x); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

func (c RevenueChart) tooltip(chart *tslc.Model, width int) (string, int, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Data.Points) || c.Data.TooltipValue == nil || c.Data.TooltipLabel == nil {
		return "", 0, false
	}
	p := c.Data.Points[c.Cursor]
	value, series := c.Data.TooltipValue(p.Amount)
	body := lipgloss.NewStyle().Foreground(c.Palette.Text).Bold(true).Render(c.Data.TooltipLabel(p.Month)) + "\n" +
		lipgloss.NewStyle().Foreground(c.Palette.Line).Render(series+": "+value)
	tip := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Palette.Border).
		Padding(0, 1).
		Render(body)
	tw, _ := Size(tip)
	col := monthColumn(chart, monthTime(c.Cursor))
	x := col + 2
	if x+tw > width {
		x = col - tw - 1
	}
	return tip, max(chart.Origin().X+1, x), true
}

// monthColumn is the canvas column a month's first day lands on.
func monthColumn(chart *tslc.Model, ts time.Time) int {
	point := canvas.Float64Point{X: float64(ts.Unix()), Y: chart.ViewMinY()}
	scaled := chart.ScaleFloat64Point(point)
	p := canvas.CanvasPointFromFloat64Point(chart.Origin(), scaled)
	if chart.YStep() > 0 {
		p.X++
	}
	return p.X
}

func drawCursor(chart *tslc.Model, x int, style lipgloss.Style) {
	origin := chart.Origin()
	if x <= origin.X || x >= chart.Width() {
		return
	}
	for y := max(0, origin.Y-chart.GraphHeight()); y < origin.Y; y++ {
		p := canvas.Point{X: x, Y: y}
		if chart.Canvas.Cell(p).Rune != 0 {
			continue
		}
		chart.Canvas.SetRuneWithStyle(p, '│', style)
	}
}

// monthLabelFormatter labels the first column of each month. When the
// graph is too narrow for every label, only every other month is shown.
func monthLabelFormatter(months, graphCols int) linechart.LabelFormatter {
	stride := 1
	if months > 0 && graphCols/months < 4 {
		stride = 2
	}
	seen := make(map[time.Month]bool)
	return func(_ int, v float64) string {
		m := time.Unix(int64(v), 0).UTC().Month()
		if seen[m] {
			return ""
		}
		seen[m] = true
		if (int(m)-1)%stride != 0 {
			return ""
		}
		return m.String()[:3]
	}
}

func yScale(maxVal float64, graphHeight int) (step, yMax float64) {
	if maxVal <= 0 {
		maxVal = 1
	}
	ticks := max(3, min(6, graphHeight/3))
	step = niceCeil(maxVal / float64(ticks-1))
	if step < 1 {
		step = 1
	}
	yMax = math.Max(math.Ceil(maxVal/step)*step, step)
	return step, yMax
}

func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(v)))
	switch f := v / pow; {
	case f <= 1:
		return pow
	case f <= 2:
		return 2 * pow
	case f <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// yLabelFormatter only labels values close to a multiple of step, so
// the axis reads in round steps whatever the graph height.
func yLabelFormatter(step, yMax float64, tick func(float64) string) linechart.LabelFormatter {
	tolerance := step * 0.2
	return func(_ int, v float64) string {
		if v < 0 {
			return ""
		}
		nearest := math.Round(v/step) * step
		if nearest > yMax+step*0.01 || math.Abs(v-nearest) > tolerance {
			return ""
		}
		if tick == nil {
			return strconv.FormatFloat(nearest, 'f', 0, 64)
		}
		return tick(nearest)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
