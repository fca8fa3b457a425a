// Package ratio computes the canonical ratio categories from a normalized
// statement mapping under a single safe-division policy.
package ratio

import (
	"encoding/json"
	"fmt"
	"math"
)

// Status distinguishes the three outcomes of a ratio computation. "Absent"
// means a required input was unknown; "Indeterminate" means every input was
// present but the denominator was exactly zero. The two are different facts
// and are never conflated in output.
type Status int

const (
	Present Status = iota
	Absent
	Indeterminate
)

func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Absent:
		return "absent"
	case Indeterminate:
		return "indeterminate"
	}
	return "unknown"
}

// Value is a tri-state ratio result.
type Value struct {
	V      float64
	Status Status
}

// Of wraps a computed float as a present value. Non-finite input collapses to
// Indeterminate so NaN never escapes into output.
func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{Status: Indeterminate}
	}
	return Value{V: v, Status: Present}
}

// None is the absent value.
func None() Value { return Value{Status: Absent} }

// Indet marks a degenerate (zero-denominator) computation.
func Indet() Value { return Value{Status: Indeterminate} }

// Float returns the numeric value and whether it is usable.
func (v Value) Float() (float64, bool) {
	return v.V, v.Status == Present
}

// Or returns the numeric value, or the fallback when not present.
func (v Value) Or(fallback float64) float64 {
	if v.Status == Present {
		return v.V
	}
	return fallback
}

// MarshalJSON emits {"value": <number|null>, "status": "..."} so consumers
// can tell a missing input from a divide-by-zero.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Status != Present {
		return []byte(fmt.Sprintf(`{"value":null,"status":%q}`, v.Status.String())), nil
	}
	num, err := json.Marshal(v.V)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(`{"value":%s,"status":%q}`, num, v.Status.String())), nil
}

// UnmarshalJSON accepts the wire form produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var wire struct {
		Value  *float64 `json:"value"`
		Status string   `json:"status"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Status {
	case "present":
		if wire.Value == nil {
			return fmt.Errorf("present ratio value missing number")
		}
		*v = Of(*wire.Value)
	case "indeterminate":
		*v = Indet()
	default:
		*v = None()
	}
	return nil
}

// safeDiv implements the single division policy: Absent when either side is
// unknown, Indeterminate when the denominator is exactly zero.
func safeDiv(num float64, numOK bool, den float64, denOK bool) Value {
	if !numOK || !denOK {
		return None()
	}
	if den == 0 {
		return Indet()
	}
	return Of(num / den)
}
