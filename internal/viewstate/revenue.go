package viewstate

import (
	"slices"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCurrency is the ISO code revenue amounts are shown in.
const DefaultCurrency = "NGN"

// PeriodSource supplies the label used as the tooltip series name.
type PeriodSource interface {
	Current() ReportingPeriod
}

// RevenueSeriesFormatter prepares the fixed revenue series for the chart
// renderer: axis ticks, tooltip value and tooltip label.
type RevenueSeriesFormatter struct {
	points   []RevenuePoint
	period   PeriodSource
	currency *money.Formatter
}

// NewRevenueSeriesFormatter formats amounts in the given ISO currency with
// no fraction digits. Unknown codes fall back to DefaultCurrency.
func NewRevenueSeriesFormatter(points []RevenuePoint, period PeriodSource, currencyCode string) *RevenueSeriesFormatter {
	return &RevenueSeriesFormatter{
		points:   slices.Clone(points),
		period:   period,
		currency: wholeCurrencyFormatter(currencyCode),
	}
}

func wholeCurrencyFormatter(code string) *money.Formatter {
	c := money.GetCurrency(strings.TrimSpace(code))
	if c == nil {
		c = money.GetCurrency(DefaultCurrency)
	}
	return money.NewFormatter(0, c.Decimal, c.Thousand, c.Grapheme, c.Template)
}

// Series returns the twelve monthly points in calendar order.
func (f *RevenueSeriesFormatter) Series() []RevenuePoint {
	return slices.Clone(f.points)
}

// AxisTick renders a y-axis value in thousands: 1500000 becomes "1500k".
func (f *RevenueSeriesFormatter) AxisTick(amount float64) string {
	return strconv.FormatFloat(amount/1000, 'f', -1, 64) + "k"
}

// TooltipValue returns the amount as whole-unit currency text together with
// the series name, which is the selected reporting period.
func (f *RevenueSeriesFormatter) TooltipValue(amount int64) (value, series string) {
	return f.currency.Format(amount), string(f.SeriesName())
}

// TooltipLabel renders the tooltip heading for a month.
func (f *RevenueSeriesFormatter) TooltipLabel(month string) string {
	return "Month: " + month
}

// SeriesName is the legend label for the plotted series.
func (f *RevenueSeriesFormatter) SeriesName() ReportingPeriod {
	if f.period == nil {
		return DefaultPeriods[0]
	}
	return f.period.Current()
}

// Tooltip renders the full tooltip for the point at index i.
func (f *RevenueSeriesFormatter) Tooltip(i int) (label, line string, ok bool) {
	if i < 0 || i >= len(f.points) {
		return "", "", false
	}
	p := f.points[i]
	value, series := f.TooltipValue(p.Amount)
	return f.TooltipLabel(p.Month), series + ": " + value, true
}
