package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC)
}

// Scenario 1/2: Daily, interval=2, NoEnd.
func TestIsActive_Daily_Interval(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: utc(2023, time.September, 1, 8, 0),
		End:   utc(2023, time.September, 1, 10, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 2},
			Range:   RecurrenceRange{Type: RangeNoEnd},
		},
	}
	require.Nil(t, Validate(settings))

	assert.True(t, IsActive(settings, utc(2023, time.September, 3, 9, 0)))
	assert.False(t, IsActive(settings, utc(2023, time.September, 2, 9, 0)))
}

// Scenario 3: Weekly, days={Mon,Wed}, interval=1, first_day=Sun.
func TestIsActive_Weekly_MidCycleDay(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: utc(2023, time.September, 4, 8, 0), // Monday
		End:   utc(2023, time.September, 4, 9, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{
				Type:           PatternWeekly,
				Interval:       1,
				DaysOfWeek:     []time.Weekday{time.Monday, time.Wednesday},
				FirstDayOfWeek: time.Sunday,
			},
			Range: RecurrenceRange{Type: RangeNoEnd},
		},
	}
	require.Nil(t, Validate(settings))

	assert.True(t, IsActive(settings, utc(2023, time.September, 6, 8, 30))) // Wednesday
}

// Counting occurrences chronologically, Sep4/Sep6/Sep11 are the
// 1st/2nd/3rd occurrences (k=0,1,2). With Numbered=3 the count-th (3rd)
// occurrence is still included, so Sep11 is active. See DESIGN.md for why
// this is the third occurrence, not the fourth.
func TestIsActive_Weekly_NumberedBoundary(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: utc(2023, time.September, 4, 8, 0),
		End:   utc(2023, time.September, 4, 9, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{
				Type:           PatternWeekly,
				Interval:       1,
				DaysOfWeek:     []time.Weekday{time.Monday, time.Wednesday},
				FirstDayOfWeek: time.Sunday,
			},
			Range: RecurrenceRange{Type: RangeNumbered, NumberOfOccurrences: 3},
		},
	}
	require.Nil(t, Validate(settings))

	assert.True(t, IsActive(settings, utc(2023, time.September, 11, 8, 30)))
	// The following (would-be) 4th occurrence, Sep 13, is excluded.
	assert.False(t, IsActive(settings, utc(2023, time.September, 13, 8, 30)))
}

// Scenario 5: AbsoluteMonthly, day_of_month=15.
func TestIsActive_AbsoluteMonthly(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: utc(2023, time.January, 15, 12, 0),
		End:   utc(2023, time.January, 15, 13, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternAbsoluteMonthly, Interval: 1, DayOfMonth: 15},
			Range:   RecurrenceRange{Type: RangeNoEnd},
		},
	}
	require.Nil(t, Validate(settings))

	assert.True(t, IsActive(settings, utc(2023, time.February, 15, 12, 30)))
}

// Scenario 6: RelativeMonthly, 1st Friday.
func TestIsActive_RelativeMonthly(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: utc(2023, time.September, 1, 8, 0), // 1st Friday of September
		End:   utc(2023, time.September, 1, 9, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{
				Type:       PatternRelativeMonthly,
				Interval:   1,
				DaysOfWeek: []time.Weekday{time.Friday},
				Index:      IndexFirst,
			},
			Range: RecurrenceRange{Type: RangeNoEnd},
		},
	}
	require.Nil(t, Validate(settings))

	assert.True(t, IsActive(settings, utc(2023, time.October, 6, 8, 30))) // 1st Friday of October
}

// Scenario 7: AbsoluteYearly, Feb 29, only matches on leap years.
func TestIsActive_AbsoluteYearly_LeapDay(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: utc(2020, time.February, 29, 0, 0),
		End:   utc(2020, time.February, 29, 1, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternAbsoluteYearly, Interval: 1, Month: time.February, DayOfMonth: 29},
			Range:   RecurrenceRange{Type: RangeNoEnd},
		},
	}
	require.Nil(t, Validate(settings))

	assert.False(t, IsActive(settings, utc(2021, time.February, 28, 0, 30)))
	assert.True(t, IsActive(settings, utc(2024, time.February, 29, 0, 30)))
}

// Scenario 10: RecurrenceTimeZone UTC+05:30 overrides a UTC start offset.
func TestIsActive_RecurrenceTimeZoneOverride(t *testing.T) {
	// Wall clock 09:00 in +05:30 is 03:30Z.
	start := utc(2023, time.September, 1, 3, 30)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 1},
			Range:   RecurrenceRange{Type: RangeNoEnd, RecurrenceTimeZone: "UTC+05:30"},
		},
	}
	require.Nil(t, Validate(settings))

	// Wall clock 09:30 in +05:30 is 04:00Z.
	assert.True(t, IsActive(settings, utc(2023, time.September, 1, 4, 0)))
}

// Universal invariant 1: before start is never active.
func TestIsActive_BeforeStartIsNeverActive(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: utc(2023, time.September, 4, 8, 0),
		End:   utc(2023, time.September, 4, 9, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{
				Type:       PatternWeekly,
				Interval:   1,
				DaysOfWeek: []time.Weekday{time.Monday},
			},
			Range: RecurrenceRange{Type: RangeNoEnd},
		},
	}
	require.Nil(t, Validate(settings))
	assert.False(t, IsActive(settings, settings.Start.Add(-time.Second)))
}

// Universal invariant 2: start is always active, recurring or not.
func TestIsActive_StartIsAlwaysActive(t *testing.T) {
	plain := &TimeWindowSettings{Start: utc(2023, 1, 1, 0, 0), End: utc(2023, 1, 1, 1, 0)}
	require.Nil(t, Validate(plain))
	assert.True(t, IsActive(plain, plain.Start))

	recurring := &TimeWindowSettings{
		Start: utc(2023, time.September, 1, 8, 0),
		End:   utc(2023, time.September, 1, 9, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternAbsoluteYearly, Interval: 1, Month: time.September, DayOfMonth: 1},
			Range:   RecurrenceRange{Type: RangeNoEnd},
		},
	}
	require.Nil(t, Validate(recurring))
	assert.True(t, IsActive(recurring, recurring.Start))
}

// Universal invariant 4: decreasing number_of_occurrences never enlarges the
// active set.
func TestIsActive_RangeCountMonotonicity(t *testing.T) {
	base := &TimeWindowSettings{
		Start: utc(2023, time.September, 1, 8, 0),
		End:   utc(2023, time.September, 1, 9, 0),
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 1},
		},
	}
	query := utc(2023, time.September, 10, 8, 30)

	wide := *base
	wide.Recurrence = &Recurrence{Pattern: base.Recurrence.Pattern, Range: RecurrenceRange{Type: RangeNumbered, NumberOfOccurrences: 20}}
	narrow := *base
	narrow.Recurrence = &Recurrence{Pattern: base.Recurrence.Pattern, Range: RecurrenceRange{Type: RangeNumbered, NumberOfOccurrences: 2}}

	require.Nil(t, Validate(&wide))
	require.Nil(t, Validate(&narrow))

	if IsActive(&narrow, query) {
		assert.True(t, IsActive(&wide, query))
	}
}
