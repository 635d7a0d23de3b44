package timewindow

import "time"

// RecurrencePattern is a tagged union of the six recurrence shapes. Only
// the fields relevant to Type are consulted; the rest are ignored the way
// a sum type's unused variant fields would be, but kept inline (rather
// than behind an interface) so JSON round-trips without a custom
// unmarshaler.
type RecurrencePattern struct {
	Type PatternType `json:"type"`

	// Common to all patterns.
	Interval int `json:"interval"`

	// Weekly (DaysOfWeek is also used by RelativeMonthly, RelativeYearly).
	DaysOfWeek     []time.Weekday `json:"daysOfWeek,omitempty"`
	FirstDayOfWeek time.Weekday   `json:"firstDayOfWeek,omitempty"`

	// AbsoluteMonthly, AbsoluteYearly.
	DayOfMonth int `json:"dayOfMonth,omitempty"`

	// RelativeMonthly, RelativeYearly.
	Index WeekIndex `json:"index,omitempty"`

	// AbsoluteYearly, RelativeYearly.
	Month time.Month `json:"month,omitempty"`
}

// hasWeekdaySelection reports whether the pattern type uses DaysOfWeek.
func (p *RecurrencePattern) hasWeekdaySelection() bool {
	return p.Type == PatternWeekly || p.Type.IsRelative()
}

// weekdaySet returns DaysOfWeek as a set for O(1) membership checks.
func (p *RecurrencePattern) weekdaySet() map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(p.DaysOfWeek))
	for _, d := range p.DaysOfWeek {
		set[d] = true
	}
	return set
}

// intervalDuration returns the conservative lower bound on the gap between
// two consecutive occurrences.
func (p *RecurrencePattern) intervalDuration() time.Duration {
	n := p.Interval
	if n < 1 {
		n = 1
	}
	switch p.Type {
	case PatternDaily:
		return time.Duration(n) * 24 * time.Hour
	case PatternWeekly:
		return time.Duration(n) * 7 * 24 * time.Hour
	case PatternAbsoluteMonthly, PatternRelativeMonthly:
		return time.Duration(n) * 28 * 24 * time.Hour
	case PatternAbsoluteYearly, PatternRelativeYearly:
		return time.Duration(n) * 365 * 24 * time.Hour
	default:
		return 0
	}
}
