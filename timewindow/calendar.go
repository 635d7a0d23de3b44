package timewindow

import "time"

// addMonthsClamped adds n months to t, clamping the day-of-month to the
// last day of the target month when the source day doesn't exist there
// (e.g. Jan 31 + 1 month -> Feb 28/29, not Mar 2/3 as time.AddDate would
// produce via rollover). Clamping keeps month-end anchors stable across
// short months instead of sliding them into the following month.
func addMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, second, nsec := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()

	totalMonths := int(month) - 1 + n
	targetYear := year + totalMonths/12
	targetMonthIdx := totalMonths % 12
	if targetMonthIdx < 0 {
		targetMonthIdx += 12
		targetYear--
	}
	targetMonth := time.Month(targetMonthIdx + 1)

	lastDay := daysInMonth(targetYear, targetMonth)
	if day > lastDay {
		day = lastDay
	}
	return time.Date(targetYear, targetMonth, day, hour, minute, second, nsec, t.Location())
}

// addYearsClamped adds n years to t, clamping Feb 29 to Feb 28 when the
// target year is not a leap year.
func addYearsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, second, nsec := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()

	targetYear := year + n
	lastDay := daysInMonth(targetYear, month)
	if day > lastDay {
		day = lastDay
	}
	return time.Date(targetYear, month, day, hour, minute, second, nsec, t.Location())
}

// daysInMonth returns the number of days in the given calendar month.
func daysInMonth(year int, month time.Month) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	lastOfThis := firstOfNext.AddDate(0, 0, -1)
	return lastOfThis.Day()
}

// nthWeekdayOfMonth returns the date of the index-th occurrence of weekday
// within the given month: start from day 1, advance to the first
// occurrence of weekday, then add 7*ordinal(index) days. Index=Last is
// optimistically tried as the fifth occurrence and falls back to the
// fourth if that lands outside the month.
func nthWeekdayOfMonth(year int, month time.Month, index WeekIndex, weekday time.Weekday) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	firstOccurrence := first.AddDate(0, 0, offset)

	candidate := firstOccurrence.AddDate(0, 0, 7*index.ordinal())
	if candidate.Month() != month {
		candidate = firstOccurrence.AddDate(0, 0, 7*3)
	}
	return candidate
}

// earliestNthWeekday returns the earliest of nthWeekdayOfMonth(year, month,
// index, d) across all d in days: a multi-weekday relative pattern fires
// once per interval, on the earliest selected weekday.
func earliestNthWeekday(year int, month time.Month, index WeekIndex, days []time.Weekday) time.Time {
	var earliest time.Time
	for _, d := range days {
		candidate := nthWeekdayOfMonth(year, month, index, d)
		if earliest.IsZero() || candidate.Before(earliest) {
			earliest = candidate
		}
	}
	return earliest
}

// dayOfYear returns t's 1-based ordinal day within its calendar year.
func dayOfYear(t time.Time) int {
	return t.YearDay()
}

// truncateToDate zeroes out the time-of-day component, keeping t's
// location.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// combineDateAndTimeOfDay returns a timestamp on date's calendar day using
// timeOfDay's hour/minute/second/nanosecond, both interpreted in
// timeOfDay's location (both are expected to already share a location).
func combineDateAndTimeOfDay(date, timeOfDay time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, timeOfDay.Hour(), timeOfDay.Minute(), timeOfDay.Second(), timeOfDay.Nanosecond(), timeOfDay.Location())
}
