package timewindow

import (
	"sort"
	"time"

	"github.com/corebridge/featuregate/errs"
)

// Validate checks a TimeWindowSettings against the required-field rules
// and the five structural invariants, in that order, returning the first
// failure found. A nil error means settings is safe to pass to IsActive.
func Validate(settings *TimeWindowSettings) *errs.ValidationError {
	if settings == nil {
		return errs.NewValidationError("", errs.ReasonRequired, "time window settings are required")
	}
	if settings.Start.IsZero() {
		return errs.NewValidationError("start", errs.ReasonRequired, "start is required")
	}
	if settings.End.IsZero() {
		return errs.NewValidationError("end", errs.ReasonRequired, "end is required")
	}
	if !settings.End.After(settings.Start) {
		return errs.NewValidationError("end", errs.ReasonOutOfRange, "end must be after start")
	}

	if settings.Recurrence == nil {
		return nil
	}
	r := settings.Recurrence
	p := &r.Pattern

	if !p.Type.IsValid() {
		return errs.NewValidationError("recurrence.pattern.type", errs.ReasonUnrecognizable, "unrecognized pattern type %q", p.Type)
	}
	if p.Interval < 1 {
		return errs.NewValidationError("recurrence.pattern.interval", errs.ReasonOutOfRange, "interval must be >= 1")
	}

	if err := validatePatternFields(p); err != nil {
		return err
	}

	if !r.Range.Type.IsValid() {
		return errs.NewValidationError("recurrence.range.type", errs.ReasonUnrecognizable, "unrecognized range type %q", r.Range.Type)
	}
	if r.Range.RecurrenceTimeZone != "" {
		if _, ok := parseRecurrenceTimeZone(r.Range.RecurrenceTimeZone); !ok {
			_, startOffset := settings.Start.Zone()
			return errs.NewValidationError("recurrence.range.recurrenceTimeZone", errs.ReasonUnrecognizable, "recurrence time zone %q does not match UTC±HH:MM (start's own offset resolves to %s)", r.Range.RecurrenceTimeZone, describeOffsetForDiagnostics(startOffset))
		}
	}
	if r.Range.Type == RangeEndDate && r.Range.EndDate.IsZero() {
		return errs.NewValidationError("recurrence.range.endDate", errs.ReasonRequired, "endDate is required when range type is endDate")
	}
	if r.Range.Type == RangeNumbered && r.Range.NumberOfOccurrences < 1 {
		return errs.NewValidationError("recurrence.range.numberOfOccurrences", errs.ReasonOutOfRange, "numberOfOccurrences must be >= 1 when range type is numbered")
	}

	offset, ok := resolveOffset(r.Range.RecurrenceTimeZone, settings.Start)
	if !ok {
		_, startOffset := settings.Start.Zone()
		return errs.NewValidationError("recurrence.range.recurrenceTimeZone", errs.ReasonUnrecognizable, "recurrence time zone %q does not match UTC±HH:MM (start's own offset resolves to %s)", r.Range.RecurrenceTimeZone, describeOffsetForDiagnostics(startOffset))
	}
	alignedStart := alignToOffset(settings.Start, offset)

	// Invariant 1: the window duration never exceeds the smallest possible
	// gap between consecutive occurrences.
	dur := settings.End.Sub(settings.Start)
	minGap := p.intervalDuration()
	if p.Type == PatternWeekly && p.hasWeekdaySelection() {
		minGap = weeklyMinGap(p)
	}
	if dur > minGap {
		return errs.NewValidationError("end", errs.ReasonOutOfRange, "window duration exceeds the minimum gap between occurrences")
	}

	// Invariant 2: start must itself be a valid first occurrence of the
	// pattern.
	if !isValidFirstOccurrence(alignedStart, p) {
		return errs.NewValidationError("start", errs.ReasonNotMatched, "start does not fall on a valid occurrence of the recurrence pattern")
	}

	// Invariant 3 (endDate range): endDate's calendar date must not precede
	// start's calendar date. Compared at the date level, matching IsActive's
	// own truncateToDate comparison against occ, so an endDate set to
	// start's own day is accepted even though its time-of-day is midnight.
	if r.Range.Type == RangeEndDate {
		endDate := alignToOffset(r.Range.EndDate, offset)
		if truncateToDate(endDate).Before(truncateToDate(alignedStart)) {
			return errs.NewValidationError("recurrence.range.endDate", errs.ReasonOutOfRange, "endDate must not precede start")
		}
	}

	return nil
}

func validatePatternFields(p *RecurrencePattern) *errs.ValidationError {
	switch p.Type {
	case PatternDaily:
		return nil

	case PatternWeekly:
		if len(p.DaysOfWeek) == 0 {
			return errs.NewValidationError("recurrence.pattern.daysOfWeek", errs.ReasonRequired, "daysOfWeek is required for weekly patterns")
		}
		for _, d := range p.DaysOfWeek {
			if d < time.Sunday || d > time.Saturday {
				return errs.NewValidationError("recurrence.pattern.daysOfWeek", errs.ReasonOutOfRange, "weekday %d is out of range", d)
			}
		}
		if p.FirstDayOfWeek < time.Sunday || p.FirstDayOfWeek > time.Saturday {
			return errs.NewValidationError("recurrence.pattern.firstDayOfWeek", errs.ReasonOutOfRange, "firstDayOfWeek %d is out of range", p.FirstDayOfWeek)
		}
		return nil

	case PatternAbsoluteMonthly:
		if p.DayOfMonth < 1 || p.DayOfMonth > 31 {
			return errs.NewValidationError("recurrence.pattern.dayOfMonth", errs.ReasonOutOfRange, "dayOfMonth must be between 1 and 31")
		}
		return nil

	case PatternRelativeMonthly:
		if len(p.DaysOfWeek) == 0 {
			return errs.NewValidationError("recurrence.pattern.daysOfWeek", errs.ReasonRequired, "daysOfWeek is required for relative monthly patterns")
		}
		if !p.Index.IsValid() {
			return errs.NewValidationError("recurrence.pattern.index", errs.ReasonUnrecognizable, "unrecognized week index %q", p.Index)
		}
		return nil

	case PatternAbsoluteYearly:
		if p.Month < time.January || p.Month > time.December {
			return errs.NewValidationError("recurrence.pattern.month", errs.ReasonOutOfRange, "month must be between 1 and 12")
		}
		if p.DayOfMonth < 1 || p.DayOfMonth > 31 {
			return errs.NewValidationError("recurrence.pattern.dayOfMonth", errs.ReasonOutOfRange, "dayOfMonth must be between 1 and 31")
		}
		return nil

	case PatternRelativeYearly:
		if p.Month < time.January || p.Month > time.December {
			return errs.NewValidationError("recurrence.pattern.month", errs.ReasonOutOfRange, "month must be between 1 and 12")
		}
		if len(p.DaysOfWeek) == 0 {
			return errs.NewValidationError("recurrence.pattern.daysOfWeek", errs.ReasonRequired, "daysOfWeek is required for relative yearly patterns")
		}
		if !p.Index.IsValid() {
			return errs.NewValidationError("recurrence.pattern.index", errs.ReasonUnrecognizable, "unrecognized week index %q", p.Index)
		}
		return nil
	}
	return nil
}

// weeklyMinGap returns the smallest gap, in whole days, between two
// selected weekdays within the same interval cycle (wrapping around to the
// next cycle's earliest day). With a single selected weekday this equals
// intervalDuration; with several, consecutive weekdays can be much closer
// together than a full interval apart.
func weeklyMinGap(p *RecurrencePattern) time.Duration {
	if len(p.DaysOfWeek) < 2 {
		return p.intervalDuration()
	}
	firstDOW := p.FirstDayOfWeek
	offsets := make([]int, len(p.DaysOfWeek))
	for i, d := range p.DaysOfWeek {
		offsets[i] = (int(d) - int(firstDOW) + 7) % 7
	}
	sort.Ints(offsets)

	minGapDays := offsets[0] + 7*positiveInterval(p.Interval) - offsets[len(offsets)-1]
	for i := 1; i < len(offsets); i++ {
		if gap := offsets[i] - offsets[i-1]; gap < minGapDays {
			minGapDays = gap
		}
	}
	return time.Duration(minGapDays) * 24 * time.Hour
}

// isValidFirstOccurrence reports whether aligned (already expressed in the
// recurrence time zone) itself lands on an occurrence of pattern.
func isValidFirstOccurrence(aligned time.Time, pattern *RecurrencePattern) bool {
	switch pattern.Type {
	case PatternDaily:
		return true

	case PatternWeekly:
		return pattern.weekdaySet()[aligned.Weekday()]

	case PatternAbsoluteMonthly:
		return aligned.Day() == pattern.DayOfMonth

	case PatternRelativeMonthly:
		for _, d := range pattern.DaysOfWeek {
			if sameDate(nthWeekdayOfMonth(aligned.Year(), aligned.Month(), pattern.Index, d), aligned) {
				return true
			}
		}
		return false

	case PatternAbsoluteYearly:
		return aligned.Month() == pattern.Month && aligned.Day() == pattern.DayOfMonth

	case PatternRelativeYearly:
		if aligned.Month() != pattern.Month {
			return false
		}
		for _, d := range pattern.DaysOfWeek {
			if sameDate(nthWeekdayOfMonth(aligned.Year(), aligned.Month(), pattern.Index, d), aligned) {
				return true
			}
		}
		return false
	}
	return false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
