package crontab

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// CrontabExpression is a compiled 5-field crontab expression: minute,
// hour, day-of-month, month, day-of-week. Each field is stored as the set
// of integers it accepts, so Matches is five O(1) membership checks.
type CrontabExpression struct {
	minute     map[int]bool
	hour       map[int]bool
	dayOfMonth map[int]bool
	month      map[int]bool
	dayOfWeek  map[int]bool
	raw        string
}

// Matches reports whether t's wall-clock minute, hour, day-of-month, month
// and day-of-week are all accepted by the expression. It applies no time
// zone conversion -- the caller decides which wall-clock t represents.
func (ce *CrontabExpression) Matches(t time.Time) bool {
	return ce.minute[t.Minute()] &&
		ce.hour[t.Hour()] &&
		ce.dayOfMonth[t.Day()] &&
		ce.month[int(t.Month())] &&
		ce.dayOfWeek[int(t.Weekday())]
}

// String renders the expression back to crontab syntax in a canonical
// form: "*" for a field that accepts its entire domain, otherwise a
// sorted, comma-separated list of the accepted values. Re-parsing this
// output always reproduces the same field sets.
func (ce *CrontabExpression) String() string {
	fields := []map[int]bool{ce.minute, ce.hour, ce.dayOfMonth, ce.month, ce.dayOfWeek}
	parts := make([]string, len(fields))
	for i, set := range fields {
		parts[i] = unparseField(fieldSpecs[i], set)
	}
	return strings.Join(parts, " ")
}

func unparseField(spec fieldSpec, set map[int]bool) string {
	if isFullDomain(spec, set) {
		return "*"
	}
	values := make([]int, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Ints(values)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func isFullDomain(spec fieldSpec, set map[int]bool) bool {
	for v := spec.lo; v <= spec.hi; v++ {
		if !set[normalize(spec, v)] {
			return false
		}
	}
	return true
}
