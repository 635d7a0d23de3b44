package timewindow

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"
)

// timeWeekdayToRRule converts a stdlib time.Weekday to an rrule.Weekday,
// following atime.TimeWeekdayToRRuleWeekday.
func timeWeekdayToRRule(d time.Weekday) rrule.Weekday {
	switch d {
	case time.Sunday:
		return rrule.SU
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.MO
	}
}

// sortWeekdaysByRRuleOrder returns a copy of days sorted in rrule-go's
// Monday-first weekday order, giving the weekly previous-occurrence scan a
// canonical candidate order independent of the order days were listed in.
func sortWeekdaysByRRuleOrder(days []time.Weekday) []time.Weekday {
	sorted := make([]time.Weekday, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		wi := timeWeekdayToRRule(sorted[i])
		wj := timeWeekdayToRRule(sorted[j])
		return wi.Day() < wj.Day()
	})
	return sorted
}
