package crontab

import (
	"strings"

	"github.com/corebridge/featuregate/errs"
)

// Parse compiles a whitespace-separated 5-field crontab expression into a
// CrontabExpression. Empty tokens between fields are ignored by
// strings.Fields; exactly 5 non-empty fields are required.
func Parse(expression string) (*CrontabExpression, *errs.ParseError) {
	fields := strings.Fields(expression)
	if len(fields) != 5 {
		return nil, errs.NewParseError("", 0, "field_count", "expected 5 fields, got %d", len(fields))
	}

	sets := make([]map[int]bool, 5)
	for i, token := range fields {
		set, err := parseField(fieldSpecs[i], i, token)
		if err != nil {
			return nil, err
		}
		sets[i] = set
	}

	return &CrontabExpression{
		minute:     sets[0],
		hour:       sets[1],
		dayOfMonth: sets[2],
		month:      sets[3],
		dayOfWeek:  sets[4],
		raw:        expression,
	}, nil
}

// parseField compiles one field's token into the set of integers it
// accepts: "*", "N", "A-B", "*/S", "A-B/S", and comma-separated unions of
// those.
func parseField(spec fieldSpec, index int, token string) (map[int]bool, *errs.ParseError) {
	set := make(map[int]bool)

	for _, segment := range strings.Split(token, ",") {
		if segment == "" {
			return nil, errs.NewParseError(spec.name, index, "empty_segment", "empty segment in field %q", token)
		}

		base := segment
		step := 1
		if idx := strings.IndexByte(segment, '/'); idx >= 0 {
			base = segment[:idx]
			stepStr := segment[idx+1:]
			s, ok := parseUint(stepStr)
			if !ok || s < 1 {
				return nil, errs.NewParseError(spec.name, index, "bad_step", "invalid step %q", stepStr)
			}
			step = s
		}

		lo, hi, perr := resolveBaseRange(spec, index, base)
		if perr != nil {
			return nil, perr
		}
		if lo < spec.lo || hi > spec.hi || hi < lo {
			return nil, errs.NewParseError(spec.name, index, "out_of_range", "value out of range in %q", base)
		}

		for v := lo; v <= hi; v += step {
			set[normalize(spec, v)] = true
		}
	}

	return set, nil
}

// resolveBaseRange resolves the non-step part of a segment ("*", "N", or
// "A-B") into an inclusive [lo, hi] range of raw (pre-normalization)
// values.
func resolveBaseRange(spec fieldSpec, index int, base string) (lo, hi int, perr *errs.ParseError) {
	switch {
	case base == "*":
		return spec.lo, spec.hi, nil

	case strings.Contains(base, "-"):
		parts := strings.SplitN(base, "-", 2)
		a, ok1 := resolveToken(spec, parts[0])
		b, ok2 := resolveToken(spec, parts[1])
		if !ok1 || !ok2 {
			return 0, 0, errs.NewParseError(spec.name, index, "unrecognizable", "invalid range %q", base)
		}
		return a, b, nil

	default:
		v, ok := resolveToken(spec, base)
		if !ok {
			return 0, 0, errs.NewParseError(spec.name, index, "unrecognizable", "invalid value %q", base)
		}
		return v, v, nil
	}
}
