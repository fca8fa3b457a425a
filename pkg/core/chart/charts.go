// Package chart reshapes computed ratios into presentation-ready series.
// It is a derived view only; no new computation happens here.
package chart

import (
	"finanalyzer/pkg/core/ratio"
)

// Chart is one named payload for the visualization layer.
type Chart struct {
	Type        string                 `json:"chart_type"`
	Title       string                 `json:"title"`
	Data        map[string]interface{} `json:"data"`
	Explanation string                 `json:"explanation"`
}

// Build produces the standard chart set: liquidity radar, margin bars,
// leverage gauge, and the DuPont waterfall. Ratios that are not present
// render as zero — charts are presentation, and the precise status lives in
// the ratio set itself.
func Build(rs *ratio.Set) []Chart {
	return []Chart{
		liquidityRadar(rs),
		marginBars(rs),
		leverageGauge(rs),
		dupontWaterfall(rs),
	}
}

func liquidityRadar(rs *ratio.Set) Chart {
	return Chart{
		Type:  "radar",
		Title: "Liquidity Health",
		Data: map[string]interface{}{
			"metrics": []string{"Current Ratio", "Quick Ratio", "Cash Ratio"},
			"values": []float64{
				rs.Get(ratio.Liquidity, "current_ratio").Or(0),
				rs.Get(ratio.Liquidity, "quick_ratio").Or(0),
				rs.Get(ratio.Liquidity, "cash_ratio").Or(0),
			},
			"benchmarks": []float64{2.0, 1.5, 0.5},
		},
		Explanation: "Measures ability to meet short-term obligations",
	}
}

func marginBars(rs *ratio.Set) Chart {
	return Chart{
		Type:  "bar",
		Title: "Profit Margins",
		Data: map[string]interface{}{
			"labels": []string{"Gross", "Operating", "Net", "EBITDA"},
			"values": []float64{
				rs.Get(ratio.Profitability, "gross_margin").Or(0) * 100,
				rs.Get(ratio.Profitability, "operating_margin").Or(0) * 100,
				rs.Get(ratio.Profitability, "net_margin").Or(0) * 100,
				rs.Get(ratio.Profitability, "ebitda_margin").Or(0) * 100,
			},
		},
		Explanation: "Profitability at different operational levels",
	}
}

func leverageGauge(rs *ratio.Set) Chart {
	return Chart{
		Type:  "gauge",
		Title: "Leverage Risk",
		Data: map[string]interface{}{
			"value": rs.Get(ratio.Leverage, "debt_to_equity").Or(0),
			"max":   3.0,
			"zones": []map[string]interface{}{
				{"from": 0.0, "to": 0.5, "color": "green"},
				{"from": 0.5, "to": 1.5, "color": "yellow"},
				{"from": 1.5, "to": 3.0, "color": "red"},
			},
		},
		Explanation: "Debt-to-equity ratio indicates financial leverage",
	}
}

func dupontWaterfall(rs *ratio.Set) Chart {
	return Chart{
		Type:  "waterfall",
		Title: "DuPont ROE Analysis",
		Data: map[string]interface{}{
			"components": []string{"Profit Margin", "Asset Turnover", "Equity Multiplier"},
			"values": []float64{
				rs.Get(ratio.Profitability, "dupont_profit_margin").Or(0),
				rs.Get(ratio.Profitability, "dupont_asset_turnover").Or(0),
				rs.Get(ratio.Profitability, "dupont_equity_multiplier").Or(0),
			},
			"roe": rs.Get(ratio.Profitability, "roe").Or(0),
		},
		Explanation: "ROE decomposition showing drivers of return on equity",
	}
}
