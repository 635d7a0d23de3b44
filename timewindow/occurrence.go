package timewindow

import "time"

// positiveInterval clamps an unset/invalid interval to 1, so the
// occurrence search never divides by zero on settings that slipped past
// Validate (e.g. in a test harness).
func positiveInterval(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// floorDivInt is integer division that rounds toward negative infinity,
// unlike Go's native "/" which truncates toward zero.
func floorDivInt(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func timeOfDayDuration(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// previousOccurrence dispatches to the per-pattern-type algorithm.
// alignedStart and at must already be expressed in the recurrence time
// zone (see alignToOffset); the returned occ is too.
// k is the 0-based index of occ within the occurrence sequence counted
// from alignedStart (k=0 means occ==alignedStart).
func previousOccurrence(pattern *RecurrencePattern, alignedStart, at time.Time) (occ time.Time, k int) {
	switch pattern.Type {
	case PatternDaily:
		return previousOccurrenceDaily(pattern, alignedStart, at)
	case PatternWeekly:
		return previousOccurrenceWeekly(pattern, alignedStart, at)
	case PatternAbsoluteMonthly:
		return previousOccurrenceAbsoluteMonthly(pattern, alignedStart, at)
	case PatternRelativeMonthly:
		return previousOccurrenceRelativeMonthly(pattern, alignedStart, at)
	case PatternAbsoluteYearly:
		return previousOccurrenceAbsoluteYearly(pattern, alignedStart, at)
	case PatternRelativeYearly:
		return previousOccurrenceRelativeYearly(pattern, alignedStart, at)
	default:
		return alignedStart, 0
	}
}

func previousOccurrenceDaily(pattern *RecurrencePattern, alignedStart, at time.Time) (time.Time, int) {
	interval := positiveInterval(pattern.Interval)
	gap := at.Sub(alignedStart)
	step := time.Duration(interval) * 24 * time.Hour
	n := int(gap / step)
	occ := alignedStart.AddDate(0, 0, n*interval)
	return occ, n
}

// previousOccurrenceWeekly locates the most recent matching weekday at or
// before `at`, advancing by whole `interval`-week cycles without
// enumerating every week in between. Each cycle's occurrences fall in the
// single week beginning at cycleWeek (the week containing alignedStart,
// shifted by cycle*interval weeks); the interval's remaining weeks carry
// no occurrences, matching the RFC 5545 WEEKLY;INTERVAL semantics the
// source mirrors.
func previousOccurrenceWeekly(pattern *RecurrencePattern, alignedStart, at time.Time) (time.Time, int) {
	interval := positiveInterval(pattern.Interval)
	firstDOW := pattern.FirstDayOfWeek
	days := sortWeekdaysByRRuleOrder(pattern.DaysOfWeek)

	weekStartOf := func(t time.Time) time.Time {
		d := truncateToDate(t)
		delta := (int(d.Weekday()) - int(firstDOW) + 7) % 7
		return d.AddDate(0, 0, -delta)
	}

	startWeek := weekStartOf(alignedStart)
	startDate := truncateToDate(alignedStart)
	atWeek := weekStartOf(at)
	weeksBetween := int(atWeek.Sub(startWeek).Hours() / (24 * 7))
	cycle := weeksBetween / interval

	candidatesForCycle := func(c int) []time.Time {
		cycleWeek := startWeek.AddDate(0, 0, c*interval*7)
		cands := make([]time.Time, 0, len(days))
		for _, d := range days {
			offset := (int(d) - int(firstDOW) + 7) % 7
			cand := cycleWeek.AddDate(0, 0, offset)
			if c == 0 && cand.Before(startDate) {
				continue
			}
			cands = append(cands, cand)
		}
		return cands
	}

	cycle0Count := len(candidatesForCycle(0))

	for c := cycle; c >= 0; c-- {
		cands := candidatesForCycle(c)
		var prevDate time.Time
		matchedInCycle := 0
		for _, cand := range cands {
			ts := combineDateAndTimeOfDay(cand, alignedStart)
			if !ts.After(at) {
				if cand.After(prevDate) {
					prevDate = cand
				}
				matchedInCycle++
			}
		}
		if prevDate.IsZero() {
			continue
		}
		var priorCount int
		if c == 0 {
			priorCount = 0
		} else {
			priorCount = cycle0Count + (c-1)*len(days)
		}
		k := priorCount + (matchedInCycle - 1)
		return combineDateAndTimeOfDay(prevDate, alignedStart), k
	}
	return alignedStart, 0
}

func previousOccurrenceAbsoluteMonthly(pattern *RecurrencePattern, alignedStart, at time.Time) (time.Time, int) {
	interval := positiveInterval(pattern.Interval)
	monthGap := 12*(at.Year()-alignedStart.Year()) + (int(at.Month()) - int(alignedStart.Month()))
	if at.Day() < alignedStart.Day() || (at.Day() == alignedStart.Day() && timeOfDayDuration(at) < timeOfDayDuration(alignedStart)) {
		monthGap--
	}
	n := floorDivInt(monthGap, interval)
	occ := addMonthsClamped(alignedStart, n*interval)
	return occ, n
}

func previousOccurrenceRelativeMonthly(pattern *RecurrencePattern, alignedStart, at time.Time) (time.Time, int) {
	interval := positiveInterval(pattern.Interval)
	monthGap := 12*(at.Year()-alignedStart.Year()) + (int(at.Month()) - int(alignedStart.Month()))

	targetThisMonth := earliestNthWeekday(at.Year(), at.Month(), pattern.Index, pattern.DaysOfWeek)
	threshold := combineDateAndTimeOfDay(targetThisMonth, alignedStart)
	if at.Before(threshold) {
		monthGap--
	}

	n := floorDivInt(monthGap, interval)
	targetYear, targetMonth := addMonthsToYM(alignedStart.Year(), alignedStart.Month(), n*interval)
	occDate := earliestNthWeekday(targetYear, targetMonth, pattern.Index, pattern.DaysOfWeek)
	occ := combineDateAndTimeOfDay(occDate, alignedStart)
	return occ, n
}

func previousOccurrenceAbsoluteYearly(pattern *RecurrencePattern, alignedStart, at time.Time) (time.Time, int) {
	interval := positiveInterval(pattern.Interval)
	yearGap := at.Year() - alignedStart.Year()
	if at.YearDay() < alignedStart.YearDay() || (at.YearDay() == alignedStart.YearDay() && timeOfDayDuration(at) < timeOfDayDuration(alignedStart)) {
		yearGap--
	}
	n := floorDivInt(yearGap, interval)
	occ := addYearsClamped(alignedStart, n*interval)
	return occ, n
}

func previousOccurrenceRelativeYearly(pattern *RecurrencePattern, alignedStart, at time.Time) (time.Time, int) {
	interval := positiveInterval(pattern.Interval)
	yearGap := at.Year() - alignedStart.Year()

	if at.Month() < pattern.Month {
		yearGap--
	} else if at.Month() == pattern.Month {
		targetThisYear := earliestNthWeekday(at.Year(), pattern.Month, pattern.Index, pattern.DaysOfWeek)
		threshold := combineDateAndTimeOfDay(targetThisYear, alignedStart)
		if at.Before(threshold) {
			yearGap--
		}
	}

	n := floorDivInt(yearGap, interval)
	targetYear := alignedStart.Year() + n*interval
	occDate := earliestNthWeekday(targetYear, pattern.Month, pattern.Index, pattern.DaysOfWeek)
	occ := combineDateAndTimeOfDay(occDate, alignedStart)
	return occ, n
}

// addMonthsToYM adds n months to a (year, month) pair without reference to
// any particular day, for patterns that resolve their day independently
// (RelativeMonthly/RelativeYearly).
func addMonthsToYM(year int, month time.Month, n int) (int, time.Month) {
	total := int(month) - 1 + n
	y := year + total/12
	mIdx := total % 12
	if mIdx < 0 {
		mIdx += 12
		y--
	}
	return y, time.Month(mIdx + 1)
}
