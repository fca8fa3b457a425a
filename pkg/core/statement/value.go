package statement

import (
	"math"
	"strconv"
	"strings"
)

// RawValue is the explicit sum type for values found in collaborator bundles:
// either a scalar or a time-ordered series where the last entry is the most
// recent reading. It replaces ad hoc runtime type inspection at call sites.
type RawValue struct {
	series []float64
	scalar float64
	isSeq  bool
}

// Scalar wraps a single numeric reading.
func Scalar(v float64) RawValue {
	return RawValue{scalar: v}
}

// Series wraps a time-ordered sequence of readings, oldest first.
func Series(vs ...float64) RawValue {
	return RawValue{series: vs, isSeq: true}
}

// MostRecent extracts the authoritative value: the scalar itself, or the last
// element of a series. Returns false for an empty series or a non-finite value.
func (r RawValue) MostRecent() (float64, bool) {
	v := r.scalar
	if r.isSeq {
		if len(r.series) == 0 {
			return 0, false
		}
		v = r.series[len(r.series)-1]
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Coerce converts a JSON-decoded bundle value into a RawValue. Supported
// shapes: numbers, numeric strings (thousands separators and currency symbols
// tolerated), and sequences of either. Anything else is dropped.
func Coerce(v interface{}) (RawValue, bool) {
	switch t := v.(type) {
	case float64:
		return Scalar(t), true
	case float32:
		return Scalar(float64(t)), true
	case int:
		return Scalar(float64(t)), true
	case int64:
		return Scalar(float64(t)), true
	case string:
		f, ok := parseNumeric(t)
		if !ok {
			return RawValue{}, false
		}
		return Scalar(f), true
	case []interface{}:
		var seq []float64
		for _, e := range t {
			rv, ok := Coerce(e)
			if !ok {
				continue
			}
			f, ok := rv.MostRecent()
			if !ok {
				continue
			}
			seq = append(seq, f)
		}
		if len(seq) == 0 {
			return RawValue{}, false
		}
		return Series(seq...), true
	case []float64:
		if len(t) == 0 {
			return RawValue{}, false
		}
		return Series(t...), true
	case RawValue:
		return t, true
	}
	return RawValue{}, false
}

// parseNumeric coerces a numeric-looking string to a float. "1,250,000",
// "$500", "(300)" (accounting negative) and "12.5%" all parse.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimLeft(s, "$€£ ")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}
