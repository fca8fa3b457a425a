// Package anomaly flags ratios that cross fixed risk thresholds.
package anomaly

import (
	"math"

	"finanalyzer/pkg/core/ratio"
)

// Severity levels, ordered from most to least severe.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// Anomaly is an immutable record of one threshold breach.
type Anomaly struct {
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	ExpectedRange string  `json:"expected_range"`
	Severity      string  `json:"severity"`
	Explanation   string  `json:"explanation"`
}

// predicate is one independent threshold check. Predicates only fire on
// present ratios; absence is insufficient data, not a breach.
type predicate struct {
	category ratio.Category
	name     string
	fires    func(v float64) bool
	build    func(v float64) Anomaly
}

// predicates in declaration order: liquidity, then leverage, then
// profitability. Emission order follows this order, not severity; callers
// needing severity ordering sort downstream.
var predicates = []predicate{
	{
		category: ratio.Liquidity,
		name:     "current_ratio",
		fires:    func(v float64) bool { return v < 1.0 },
		build: func(v float64) Anomaly {
			return Anomaly{
				Metric:        "Current Ratio",
				Value:         round2(v),
				ExpectedRange: "1.5 - 3.0",
				Severity:      SeverityHigh,
				Explanation:   "Current assets may not cover short-term liabilities",
			}
		},
	},
	{
		category: ratio.Leverage,
		name:     "debt_to_equity",
		fires:    func(v float64) bool { return v > 2.0 },
		build: func(v float64) Anomaly {
			return Anomaly{
				Metric:        "Debt-to-Equity",
				Value:         round2(v),
				ExpectedRange: "0.5 - 1.5",
				Severity:      SeverityMedium,
				Explanation:   "High leverage may indicate financial risk",
			}
		},
	},
	{
		category: ratio.Leverage,
		name:     "interest_coverage",
		fires:    func(v float64) bool { return v < 1.0 },
		build: func(v float64) Anomaly {
			return Anomaly{
				Metric:        "Interest Coverage",
				Value:         round2(v),
				ExpectedRange: "> 3.0",
				Severity:      SeverityCritical,
				Explanation:   "Operating earnings do not cover interest expense",
			}
		},
	},
	{
		category: ratio.Profitability,
		name:     "net_margin",
		fires:    func(v float64) bool { return v < 0 },
		build: func(v float64) Anomaly {
			return Anomaly{
				Metric:        "Net Margin",
				Value:         round2(v * 100),
				ExpectedRange: "10% - 20%",
				Severity:      SeverityHigh,
				Explanation:   "Negative margins indicate operational losses",
			}
		},
	},
}

// Detect evaluates every predicate against the ratio set. Predicates are
// independent: multiple anomalies may fire and none suppresses another.
func Detect(rs *ratio.Set) []Anomaly {
	anomalies := []Anomaly{}
	for _, p := range predicates {
		v, ok := rs.Get(p.category, p.name).Float()
		if !ok || !p.fires(v) {
			continue
		}
		anomalies = append(anomalies, p.build(v))
	}
	return anomalies
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
