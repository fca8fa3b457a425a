// Package health maps ratio categories to 0-100 scores and a composite
// rating.
package health

import (
	"finanalyzer/pkg/core/ratio"
)

// Report carries the per-category scores, their mean, and the rating band.
type Report struct {
	Liquidity     float64 `json:"liquidity"`
	Leverage      float64 `json:"leverage"`
	Profitability float64 `json:"profitability"`
	Efficiency    float64 `json:"efficiency"`
	Overall       float64 `json:"overall"`
	Rating        string  `json:"rating"`
}

// ByCategory returns the score for one of the four core categories.
func (r Report) ByCategory(c ratio.Category) float64 {
	switch c {
	case ratio.Liquidity:
		return r.Liquidity
	case ratio.Leverage:
		return r.Leverage
	case ratio.Profitability:
		return r.Profitability
	case ratio.Efficiency:
		return r.Efficiency
	}
	return 0
}

// Score computes all category scores, the overall score (arithmetic mean of
// the four core categories) and the rating band. Absent ratios never crash
// scoring; every sub-score declares its missing-data default.
func Score(rs *ratio.Set) Report {
	r := Report{
		Liquidity:     scoreLiquidity(rs),
		Leverage:      scoreLeverage(rs),
		Profitability: scoreProfitability(rs),
		Efficiency:    scoreEfficiency(rs),
	}
	r.Overall = (r.Liquidity + r.Leverage + r.Profitability + r.Efficiency) / 4
	r.Rating = Rating(r.Overall)
	return r
}

// Rating maps a score to its band: >=80 Excellent, >=65 Good, >=50 Fair,
// else Poor.
func Rating(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 65:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Poor"
	}
}

// scoreLiquidity averages the current-ratio and quick-ratio sub-scores.
// Missing current_ratio defaults to the worst band score (30); missing
// quick_ratio falls to its natural floor of 0.
func scoreLiquidity(rs *ratio.Set) float64 {
	var currentScore float64 = 30
	if cr, ok := rs.Get(ratio.Liquidity, "current_ratio").Float(); ok {
		switch {
		case cr >= 1.5 && cr <= 3.0:
			currentScore = 100
		case cr < 1.0:
			currentScore = 30
		case cr < 1.5:
			currentScore = 60
		default:
			currentScore = 75
		}
	}

	var quickScore float64
	if qr, ok := rs.Get(ratio.Liquidity, "quick_ratio").Float(); ok {
		if qr >= 1.0 {
			quickScore = 100
		} else {
			quickScore = qr * 100
		}
	}

	return clamp((currentScore + quickScore) / 2)
}

// scoreLeverage averages the debt-to-equity and interest-coverage sub-scores.
// Both default to their natural floor of 0 when the ratio is unknown (the
// worst-case leverage reading).
func scoreLeverage(rs *ratio.Set) float64 {
	var dteScore float64
	if dte, ok := rs.Get(ratio.Leverage, "debt_to_equity").Float(); ok {
		switch {
		case dte <= 0.5:
			dteScore = 100
		case dte <= 1.5:
			dteScore = 80
		case dte <= 2.0:
			dteScore = 60
		default:
			dteScore = 60 - (dte-2.0)*20
		}
	}

	var icScore float64
	if ic, ok := rs.Get(ratio.Leverage, "interest_coverage").Float(); ok {
		switch {
		case ic >= 5.0:
			icScore = 100
		case ic >= 2.5:
			icScore = 80
		case ic > 0:
			icScore = ic * 20
		}
	}

	return clamp((clamp(dteScore) + clamp(icScore)) / 2)
}

// scoreProfitability averages the ROE and net-margin sub-scores; both floor
// at 0 for losses or missing data.
func scoreProfitability(rs *ratio.Set) float64 {
	var roeScore float64
	if roe, ok := rs.Get(ratio.Profitability, "roe").Float(); ok {
		switch {
		case roe >= 0.20:
			roeScore = 100
		case roe >= 0.10:
			roeScore = 70
		case roe > 0:
			roeScore = roe * 350
		}
	}

	var marginScore float64
	if nm, ok := rs.Get(ratio.Profitability, "net_margin").Float(); ok {
		switch {
		case nm >= 0.15:
			marginScore = 100
		case nm >= 0.05:
			marginScore = 70
		case nm > 0:
			marginScore = nm * 350
		}
	}

	return clamp((clamp(roeScore) + clamp(marginScore)) / 2)
}

// scoreEfficiency averages asset-turnover and cash-conversion-cycle
// sub-scores. Missing turnover floors at 0; a missing cycle takes the
// neutral 90-day reading (score 60) rather than the best or worst band.
func scoreEfficiency(rs *ratio.Set) float64 {
	var atScore float64
	if at, ok := rs.Get(ratio.Efficiency, "asset_turnover").Float(); ok {
		switch {
		case at >= 2.0:
			atScore = 100
		case at >= 1.0:
			atScore = 80
		default:
			atScore = at * 50
		}
	}

	ccc := rs.Get(ratio.Efficiency, "cash_conversion_cycle").Or(90)
	var cccScore float64
	switch {
	case ccc <= 30:
		cccScore = 100
	case ccc <= 60:
		cccScore = 80
	case ccc <= 90:
		cccScore = 60
	default:
		cccScore = 60 - (ccc-90)*0.5
	}

	return clamp((clamp(atScore) + clamp(cccScore)) / 2)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
