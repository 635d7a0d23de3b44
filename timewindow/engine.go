package timewindow

import "time"

// resolveOffset picks the fixed UTC offset all calendar alignment for this
// window is done in: the recurrence's explicit RecurrenceTimeZone if set,
// otherwise the offset Start itself carries.
func resolveOffset(recurrenceTimeZone string, start time.Time) (offsetSeconds int, ok bool) {
	if recurrenceTimeZone == "" {
		_, offset := start.Zone()
		return offset, true
	}
	return parseRecurrenceTimeZone(recurrenceTimeZone)
}

// IsActive reports whether t falls inside settings' active window.
// Callers are expected to run Validate first; IsActive does not
// re-validate and returns false on malformed recurrence time zones rather
// than panicking.
func IsActive(settings *TimeWindowSettings, t time.Time) bool {
	if t.Before(settings.Start) {
		return false
	}

	dur := settings.End.Sub(settings.Start)

	if settings.Recurrence == nil {
		return !t.After(settings.Start.Add(dur))
	}

	r := settings.Recurrence
	offset, ok := resolveOffset(r.Range.RecurrenceTimeZone, settings.Start)
	if !ok {
		return false
	}

	alignedStart := alignToOffset(settings.Start, offset)
	at := alignToOffset(t, offset)

	occ, k := previousOccurrence(&r.Pattern, alignedStart, at)

	switch r.Range.Type {
	case RangeEndDate:
		endDate := truncateToDate(alignToOffset(r.Range.EndDate, offset))
		if truncateToDate(occ).After(endDate) {
			return false
		}
	case RangeNumbered:
		if k >= r.Range.NumberOfOccurrences {
			return false
		}
	}

	return !t.After(occ.Add(dur))
}
