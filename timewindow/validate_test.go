package timewindow

import (
	"testing"
	"time"

	"github.com/corebridge/featuregate/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NonRecurring_OK(t *testing.T) {
	settings := &TimeWindowSettings{
		Start: time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.September, 1, 10, 0, 0, 0, time.UTC),
	}
	assert.Nil(t, Validate(settings))
}

func TestValidate_RequiredFields(t *testing.T) {
	assert.Equal(t, errs.ReasonRequired, Validate(nil).Reason)

	ve := Validate(&TimeWindowSettings{})
	require.NotNil(t, ve)
	assert.Equal(t, "start", ve.FieldPath)
	assert.Equal(t, errs.ReasonRequired, ve.Reason)

	ve = Validate(&TimeWindowSettings{Start: time.Now()})
	require.NotNil(t, ve)
	assert.Equal(t, "end", ve.FieldPath)
	assert.Equal(t, errs.ReasonRequired, ve.Reason)
}

func TestValidate_EndBeforeStart(t *testing.T) {
	start := time.Date(2023, time.September, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	ve := Validate(&TimeWindowSettings{Start: start, End: end})
	require.NotNil(t, ve)
	assert.Equal(t, "end", ve.FieldPath)
	assert.Equal(t, errs.ReasonOutOfRange, ve.Reason)
}

func TestValidate_Weekly_MissingDaysOfWeek(t *testing.T) {
	start := time.Date(2023, time.September, 4, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternWeekly, Interval: 1},
			Range:   RecurrenceRange{Type: RangeNoEnd},
		},
	}
	ve := Validate(settings)
	require.NotNil(t, ve)
	assert.Equal(t, "recurrence.pattern.daysOfWeek", ve.FieldPath)
	assert.Equal(t, errs.ReasonRequired, ve.Reason)
}

func TestValidate_WindowLongerThanInterval(t *testing.T) {
	start := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 1},
			Range:   RecurrenceRange{Type: RangeNoEnd},
		},
	}
	ve := Validate(settings)
	require.NotNil(t, ve)
	assert.Equal(t, "end", ve.FieldPath)
	assert.Equal(t, errs.ReasonOutOfRange, ve.Reason)
}

func TestValidate_StartNotOnPattern(t *testing.T) {
	// start is a Tuesday, but the pattern only selects Monday/Wednesday.
	start := time.Date(2023, time.September, 5, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{
				Type:       PatternWeekly,
				Interval:   1,
				DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
			},
			Range: RecurrenceRange{Type: RangeNoEnd},
		},
	}
	ve := Validate(settings)
	require.NotNil(t, ve)
	assert.Equal(t, "start", ve.FieldPath)
	assert.Equal(t, errs.ReasonNotMatched, ve.Reason)
}

func TestValidate_EndDateBeforeStart(t *testing.T) {
	start := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 1},
			Range: RecurrenceRange{
				Type:    RangeEndDate,
				EndDate: start.Add(-24 * time.Hour),
			},
		},
	}
	ve := Validate(settings)
	require.NotNil(t, ve)
	assert.Equal(t, "recurrence.range.endDate", ve.FieldPath)
	assert.Equal(t, errs.ReasonOutOfRange, ve.Reason)
}

func TestValidate_EndDateOnStartsOwnDateIsValid(t *testing.T) {
	start := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 1},
			Range: RecurrenceRange{
				Type:    RangeEndDate,
				EndDate: time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	assert.Nil(t, Validate(settings))
}

func TestValidate_NumberedRequiresPositiveCount(t *testing.T) {
	start := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 1},
			Range:   RecurrenceRange{Type: RangeNumbered, NumberOfOccurrences: 0},
		},
	}
	ve := Validate(settings)
	require.NotNil(t, ve)
	assert.Equal(t, "recurrence.range.numberOfOccurrences", ve.FieldPath)
	assert.Equal(t, errs.ReasonOutOfRange, ve.Reason)
}

func TestValidate_BadRecurrenceTimeZone(t *testing.T) {
	start := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: PatternDaily, Interval: 1},
			Range:   RecurrenceRange{Type: RangeNoEnd, RecurrenceTimeZone: "EST"},
		},
	}
	ve := Validate(settings)
	require.NotNil(t, ve)
	assert.Equal(t, "recurrence.range.recurrenceTimeZone", ve.FieldPath)
	assert.Equal(t, errs.ReasonUnrecognizable, ve.Reason)
}

func TestValidate_UnrecognizedPatternType(t *testing.T) {
	start := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{Type: "fortnightly", Interval: 1},
			Range:   RecurrenceRange{Type: RangeNoEnd},
		},
	}
	ve := Validate(settings)
	require.NotNil(t, ve)
	assert.Equal(t, "recurrence.pattern.type", ve.FieldPath)
	assert.Equal(t, errs.ReasonUnrecognizable, ve.Reason)
}

func TestWeeklyMinGap_MultipleWeekdaysAllowsTighterWindow(t *testing.T) {
	// Mon/Wed selection: the tightest gap is two days (Mon->Wed), so a
	// window up to 48h should validate even though intervalDuration (7
	// days) alone would reject it.
	start := time.Date(2023, time.September, 4, 8, 0, 0, 0, time.UTC) // Monday
	end := start.Add(47 * time.Hour)
	settings := &TimeWindowSettings{
		Start: start,
		End:   end,
		Recurrence: &Recurrence{
			Pattern: RecurrencePattern{
				Type:       PatternWeekly,
				Interval:   1,
				DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
			},
			Range: RecurrenceRange{Type: RangeNoEnd},
		},
	}
	assert.Nil(t, Validate(settings))
}
