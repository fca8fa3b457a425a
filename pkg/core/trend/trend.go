// Package trend derives single-snapshot trend heuristics. True multi-period
// trend analysis is out of scope; these labels describe the one snapshot.
package trend

import (
	"fmt"

	"finanalyzer/pkg/core/statement"
)

// Analysis carries the qualitative trend labels and supporting observations.
type Analysis struct {
	RevenueTrend    string   `json:"revenue_trend"`
	ProfitTrend     string   `json:"profit_trend"`
	CashFlowTrend   string   `json:"cash_flow_trend"`
	KeyObservations []string `json:"key_observations"`
}

// Detect labels the snapshot. Unknown items yield "Unknown" labels rather
// than fabricated direction.
func Detect(m statement.Mapping) Analysis {
	a := Analysis{
		RevenueTrend:    "Unknown",
		ProfitTrend:     "Unknown",
		CashFlowTrend:   "Unknown",
		KeyObservations: []string{},
	}

	revenue, revOK := m.Get(statement.Revenue)
	netIncome, niOK := m.Get(statement.NetIncome)
	ocf, ocfOK := m.Get(statement.OperatingCashFlow)

	if revOK && revenue > 0 {
		a.RevenueTrend = "Growing"
		a.KeyObservations = append(a.KeyObservations, fmt.Sprintf("Current revenue: $%s", commas(revenue)))
	}

	if niOK {
		if netIncome > 0 {
			a.ProfitTrend = "Positive"
			a.KeyObservations = append(a.KeyObservations, "Profitable operations")
		} else if netIncome < 0 {
			a.ProfitTrend = "Negative"
			a.KeyObservations = append(a.KeyObservations, "Net loss reported")
		}
	}

	if ocfOK {
		if ocf > 0 {
			a.CashFlowTrend = "Positive"
		} else {
			a.CashFlowTrend = "Negative"
		}
		if niOK && ocf > netIncome {
			a.KeyObservations = append(a.KeyObservations, "Strong cash generation relative to earnings")
		}
	}

	return a
}

// commas renders a value with thousands separators, rounded to whole units.
func commas(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
