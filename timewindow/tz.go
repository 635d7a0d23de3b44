package timewindow

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/mileusna/timezones"
)

// tzPattern matches the fixed-offset external format:
// ^UTC[+-](0\d|1[0-4]):[0-5]\d$
var tzPattern = regexp.MustCompile(`^UTC([+-])(0\d|1[0-4]):([0-5]\d)$`)

// parseRecurrenceTimeZone parses a "UTC±HH:MM" string into a signed offset
// in seconds. An empty string does not match and yields ok=false;
// resolveOffset handles the empty case itself, falling back to the offset
// of TimeWindowSettings.Start.
func parseRecurrenceTimeZone(s string) (offsetSeconds int, ok bool) {
	m := tzPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	offsetSeconds = hours*3600 + minutes*60
	if m[1] == "-" {
		offsetSeconds = -offsetSeconds
	}
	return offsetSeconds, true
}

// FormatOffset renders a signed offset in seconds as "UTC±HH:MM".
func FormatOffset(offsetSeconds int) string {
	sign := "+"
	abs := offsetSeconds
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, abs/3600, (abs%3600)/60)
}

// alignToOffset re-expresses t in a fixed zone at offsetSeconds, giving
// the aligned wall-clock time used as the common frame for calendar
// arithmetic.
func alignToOffset(t time.Time, offsetSeconds int) time.Time {
	return t.In(time.FixedZone(FormatOffset(offsetSeconds), offsetSeconds))
}

// DescribeOffset returns a human-readable IANA zone name whose offset in
// effect at the current time (daylight saving included) matches offsetSeconds, for diagnostics and log messages
// only — it plays no part in IsActive or Validate's semantics. Returns ""
// if no match is found among the OS's known zones.
func DescribeOffset(offsetSeconds int) string {
	for _, name := range timezones.List() {
		loc, err := time.LoadLocation(name)
		if err != nil {
			continue
		}
		_, off := time.Now().In(loc).Zone()
		if off == offsetSeconds {
			return name
		}
	}
	return ""
}

// describeOffsetForDiagnostics renders offsetSeconds as a named zone when
// DescribeOffset finds one, falling back to the bare "UTC±HH:MM" form
// otherwise, so validation error messages always carry a human-readable
// offset.
func describeOffsetForDiagnostics(offsetSeconds int) string {
	if name := DescribeOffset(offsetSeconds); name != "" {
		return fmt.Sprintf("%s (%s)", name, FormatOffset(offsetSeconds))
	}
	return FormatOffset(offsetSeconds)
}
