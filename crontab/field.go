package crontab

import (
	"golang.org/x/text/cases"
)

// fieldSpec describes one of the five crontab positions: its numeric
// domain and, for month/weekday, the named aliases a token may use
// instead of a number.
type fieldSpec struct {
	name    string
	lo, hi  int
	aliases map[string]int
}

var foldCase = cases.Fold()

var monthAliases = buildAliases([]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}, 1)

// weekdayAliases covers Sun(0)..Sat(6). A literal "7" is not an alias
// (aliases are names, not digits): it is read as a number, admitted by the
// dayOfWeek domain (0..7), and folded to 0 by normalize after parsing.
var weekdayAliases = buildAliases([]string{
	"sun", "mon", "tue", "wed", "thu", "fri", "sat",
}, 0)

func buildAliases(names []string, base int) map[string]int {
	m := make(map[string]int, len(names))
	for i, name := range names {
		m[name] = base + i
	}
	return m
}

var fieldSpecs = [5]fieldSpec{
	{name: "minute", lo: 0, hi: 59},
	{name: "hour", lo: 0, hi: 23},
	{name: "dayOfMonth", lo: 1, hi: 31},
	{name: "month", lo: 1, hi: 12, aliases: monthAliases},
	{name: "dayOfWeek", lo: 0, hi: 7, aliases: weekdayAliases},
}

// resolveToken turns a single alias or numeric token into its integer
// value, case-insensitively for aliases. It does not check domain bounds;
// callers apply those separately, and the dayOfWeek domain admits 7 so
// normalize can fold it onto 0 afterwards.
func resolveToken(spec fieldSpec, token string) (int, bool) {
	if spec.aliases != nil {
		if v, ok := spec.aliases[foldCase.String(token)]; ok {
			return v, true
		}
	}
	return parseUint(token)
}

// normalize folds the day-of-week alias 7 onto 0 (both mean Sunday); all
// other fields pass through unchanged.
func normalize(spec fieldSpec, v int) int {
	if spec.name == "dayOfWeek" && v == 7 {
		return 0
	}
	return v
}

func parseUint(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
