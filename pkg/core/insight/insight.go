// Package insight evaluates rule cascades over a ratio set and produces
// prioritized natural-language observations and recommendations.
package insight

import "encoding/json"

// Priority ranks an insight; lower rank sorts first.
type Priority int

const (
	Critical Priority = iota
	High
	Medium
	Low
)

func (p Priority) String() string {
	switch p {
	case Critical:
		return "Critical"
	case High:
		return "High"
	case Medium:
		return "Medium"
	case Low:
		return "Low"
	}
	return "Unknown"
}

// MarshalJSON emits the priority label, matching the wire format consumers
// expect.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts the priority label.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Critical":
		*p = Critical
	case "High":
		*p = High
	case "Medium":
		*p = Medium
	default:
		*p = Low
	}
	return nil
}

// Insight is an immutable observation/recommendation/impact triple. It keeps
// no back-reference to the ratios that produced it.
type Insight struct {
	Category       string   `json:"category"`
	Insight        string   `json:"insight"`
	Recommendation string   `json:"recommendation"`
	Impact         string   `json:"impact"`
	Priority       Priority `json:"priority"`
}
