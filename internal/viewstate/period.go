package viewstate

import "slices"

type ReportingPeriod string

// DefaultPeriods is the selectable list when none is configured.
var DefaultPeriods = []ReportingPeriod{"This Year", "Last Year", "2023"}

// ReportingPeriodSelector holds exactly one selected period out of a fixed
// list. The selection only relabels the chart; the revenue series is the
// same for every period.
type ReportingPeriodSelector struct {
	options []ReportingPeriod
	current ReportingPeriod
	picker  *Popover
	notifier
}

// NewReportingPeriodSelector selects the first option. picker is the popover
// closed on selection and may be nil.
func NewReportingPeriodSelector(options []ReportingPeriod, picker *Popover) *ReportingPeriodSelector {
	if len(options) == 0 {
		options = DefaultPeriods
	}
	return &ReportingPeriodSelector{
		options: slices.Clone(options),
		current: options[0],
		picker:  picker,
	}
}

func (s *ReportingPeriodSelector) Current() ReportingPeriod {
	return s.current
}

func (s *ReportingPeriodSelector) Options() []ReportingPeriod {
	return slices.Clone(s.options)
}

// Index is the position of the current period in Options.
func (s *ReportingPeriodSelector) Index() int {
	return slices.Index(s.options, s.current)
}

// Select makes p current and closes the picker. Values outside the option
// list are ignored and leave both the selection and the picker untouched.
func (s *ReportingPeriodSelector) Select(p ReportingPeriod) bool {
	if !slices.Contains(s.options, p) {
		return false
	}
	if s.picker != nil {
		s.picker.Close()
	}
	if p != s.current {
		s.current = p
		s.notify()
	}
	return true
}
