package insight

import (
	"fmt"
	"sort"

	"finanalyzer/pkg/core/health"
	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/trend"
)

// Generate evaluates every category cascade and appends the overall
// assessment, then stably sorts by priority rank. Equal priorities keep
// their category-then-submetric emission order, so identical inputs always
// produce the identical sequence.
func Generate(rs *ratio.Set, scores health.Report, tr *trend.Analysis) []Insight {
	insights := []Insight{}
	insights = append(insights, analyzeLiquidity(rs)...)
	insights = append(insights, analyzeLeverage(rs)...)
	insights = append(insights, analyzeProfitability(rs)...)
	insights = append(insights, analyzeEfficiency(rs)...)
	insights = append(insights, overallAssessment(scores, tr))

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority < insights[j].Priority
	})
	return insights
}

// analyzeLiquidity covers current_ratio with an exhaustive, non-overlapping
// band cascade (<1.0 Critical, [1.0,1.5) High, (3.0,inf) Medium, [1.5,3.0]
// Low) plus a conditional quick-ratio check. Absent ratios contribute
// nothing.
func analyzeLiquidity(rs *ratio.Set) []Insight {
	var insights []Insight

	if cr, ok := rs.Get(ratio.Liquidity, "current_ratio").Float(); ok {
		switch {
		case cr < 1.0:
			insights = append(insights, Insight{
				Category:       "Liquidity",
				Insight:        fmt.Sprintf("Critical liquidity concern: Current ratio of %.2f indicates insufficient short-term assets to cover liabilities.", cr),
				Recommendation: "Immediately focus on: 1) Accelerating receivables collection, 2) Reducing inventory levels, 3) Negotiating extended payment terms with suppliers, or 4) Securing short-term credit line.",
				Impact:         "High risk of cash flow crisis and potential inability to meet obligations",
				Priority:       Critical,
			})
		case cr < 1.5:
			insights = append(insights, Insight{
				Category:       "Liquidity",
				Insight:        fmt.Sprintf("Liquidity is below healthy range. Current ratio of %.2f suggests tight working capital.", cr),
				Recommendation: "Build cash reserves by improving collection processes and optimizing inventory turnover. Target current ratio above 1.5.",
				Impact:         "May face challenges during economic downturns or unexpected expenses",
				Priority:       High,
			})
		case cr > 3.0:
			insights = append(insights, Insight{
				Category:       "Liquidity",
				Insight:        fmt.Sprintf("Excess liquidity detected. Current ratio of %.2f may indicate inefficient asset utilization.", cr),
				Recommendation: "Consider investing excess cash in growth initiatives, reducing expensive debt, or returning capital to shareholders.",
				Impact:         "Opportunity cost of holding idle assets instead of productive investments",
				Priority:       Medium,
			})
		default:
			insights = append(insights, Insight{
				Category:       "Liquidity",
				Insight:        fmt.Sprintf("Strong liquidity position with current ratio of %.2f in healthy range (1.5-3.0).", cr),
				Recommendation: "Maintain current working capital management practices. Continue monitoring receivables and inventory levels.",
				Impact:         "Well-positioned to handle normal business operations and moderate challenges",
				Priority:       Low,
			})
		}
	}

	if qr, ok := rs.Get(ratio.Liquidity, "quick_ratio").Float(); ok && qr < 1.0 {
		insights = append(insights, Insight{
			Category:       "Liquidity",
			Insight:        fmt.Sprintf("Quick ratio of %.2f shows dependence on inventory to meet obligations.", qr),
			Recommendation: "Reduce inventory dependency by accelerating cash conversion cycle. Focus on receivables management.",
			Impact:         "Vulnerable if inventory cannot be quickly converted to cash",
			Priority:       High,
		})
	}

	return insights
}

func analyzeLeverage(rs *ratio.Set) []Insight {
	var insights []Insight

	if dte, ok := rs.Get(ratio.Leverage, "debt_to_equity").Float(); ok {
		switch {
		case dte > 2.0:
			insights = append(insights, Insight{
				Category:       "Leverage",
				Insight:        fmt.Sprintf("High leverage: Debt-to-equity ratio of %.2f significantly exceeds healthy range (0.5-1.5).", dte),
				Recommendation: "Priority: Deleveraging through: 1) Debt paydown from operating cash, 2) Equity raising if feasible, 3) Asset sales of non-core holdings. Avoid new debt.",
				Impact:         "High financial risk, vulnerability to interest rate increases, reduced financial flexibility",
				Priority:       Critical,
			})
		case dte > 1.5:
			insights = append(insights, Insight{
				Category:       "Leverage",
				Insight:        fmt.Sprintf("Elevated leverage at %.2f debt-to-equity ratio.", dte),
				Recommendation: "Focus on gradual deleveraging. Prioritize debt repayment in capital allocation. Monitor credit metrics closely.",
				Impact:         "Moderate financial risk, may face constraints in raising additional capital",
				Priority:       High,
			})
		case dte < 0.3:
			insights = append(insights, Insight{
				Category:       "Leverage",
				Insight:        fmt.Sprintf("Conservative capital structure with %.2f debt-to-equity ratio.", dte),
				Recommendation: "Consider strategic use of debt to optimize capital structure and potentially reduce WACC. Tax benefits of debt may be underutilized.",
				Impact:         "Potential to enhance returns through modest leverage in favorable market conditions",
				Priority:       Low,
			})
		}
	}

	if ic, ok := rs.Get(ratio.Leverage, "interest_coverage").Float(); ok {
		if ic > 0 && ic < 2.5 {
			insights = append(insights, Insight{
				Category:       "Leverage",
				Insight:        fmt.Sprintf("Weak interest coverage at %.2fx indicates limited buffer for debt service.", ic),
				Recommendation: "Improve EBITDA through operational efficiency and revenue growth. Consider refinancing at lower rates if possible.",
				Impact:         "Risk of debt default if earnings decline or interest rates rise",
				Priority:       Critical,
			})
		} else if ic > 5.0 {
			insights = append(insights, Insight{
				Category:       "Leverage",
				Insight:        fmt.Sprintf("Strong interest coverage of %.2fx provides comfortable debt service cushion.", ic),
				Recommendation: "Debt service is well-covered. Opportunity to take on additional leverage for growth if strategic opportunities arise.",
				Impact:         "Low financial distress risk, flexibility for additional borrowing",
				Priority:       Low,
			})
		}
	}

	return insights
}

func analyzeProfitability(rs *ratio.Set) []Insight {
	var insights []Insight

	if nm, ok := rs.Get(ratio.Profitability, "net_margin").Float(); ok {
		netMargin := nm * 100
		switch {
		case netMargin < 0:
			insights = append(insights, Insight{
				Category:       "Profitability",
				Insight:        fmt.Sprintf("Operating at a loss with %.1f%% net margin.", netMargin),
				Recommendation: "Urgent focus needed on: 1) Revenue growth through market expansion, 2) Cost reduction across all expense categories, 3) Product mix optimization toward higher-margin offerings, 4) Pricing power assessment.",
				Impact:         "Unsustainable business model, cash burn threatens viability",
				Priority:       Critical,
			})
		case netMargin < 5.0:
			insights = append(insights, Insight{
				Category:       "Profitability",
				Insight:        fmt.Sprintf("Thin margins at %.1f%% leave little buffer for market changes.", netMargin),
				Recommendation: "Focus on margin expansion through operational leverage, pricing optimization, and cost discipline. Benchmark against industry leaders.",
				Impact:         "Vulnerable to competitive pressure and cost increases",
				Priority:       High,
			})
		case netMargin > 20.0:
			insights = append(insights, Insight{
				Category:       "Profitability",
				Insight:        fmt.Sprintf("Exceptional profitability with %.1f%% net margin, exceeding industry standards.", netMargin),
				Recommendation: "Strong competitive position. Consider reinvesting excess returns in growth initiatives or innovation while maintaining pricing discipline.",
				Impact:         "Market-leading profitability provides strategic options and resilience",
				Priority:       Low,
			})
		}
	}

	if r, ok := rs.Get(ratio.Profitability, "roe").Float(); ok {
		roe := r * 100
		if roe > 0 && roe < 10.0 {
			insights = append(insights, Insight{
				Category:       "Profitability",
				Insight:        fmt.Sprintf("ROE of %.1f%% below cost of equity threshold.", roe),
				Recommendation: "Shareholders are not earning adequate returns. Focus on DuPont components: improve margins, increase asset turnover, or optimize capital structure.",
				Impact:         "Poor shareholder value creation, may struggle to attract capital",
				Priority:       High,
			})
		} else if roe > 20.0 {
			insights = append(insights, Insight{
				Category:       "Profitability",
				Insight:        fmt.Sprintf("Outstanding ROE of %.1f%% demonstrates superior capital efficiency.", roe),
				Recommendation: "Sustain competitive advantages driving high returns. Monitor for mean reversion and invest in moats.",
				Impact:         "Strong value creation, attractive investment profile",
				Priority:       Low,
			})
		}
	}

	return insights
}

func analyzeEfficiency(rs *ratio.Set) []Insight {
	var insights []Insight

	if at, ok := rs.Get(ratio.Efficiency, "asset_turnover").Float(); ok {
		if at < 0.5 {
			insights = append(insights, Insight{
				Category:       "Efficiency",
				Insight:        fmt.Sprintf("Low asset turnover of %.2f indicates underutilized assets.", at),
				Recommendation: "Improve asset productivity through: 1) Revenue growth on existing asset base, 2) Divesting non-productive assets, 3) Optimizing capacity utilization.",
				Impact:         "Suboptimal return on invested capital",
				Priority:       Medium,
			})
		} else if at > 2.0 {
			insights = append(insights, Insight{
				Category:       "Efficiency",
				Insight:        fmt.Sprintf("High asset turnover of %.2f shows efficient asset utilization.", at),
				Recommendation: "Strong operational efficiency. Ensure growth doesn't strain capacity. Plan capital investments proactively.",
				Impact:         "Efficient operations supporting strong financial performance",
				Priority:       Low,
			})
		}
	}

	if ccc, ok := rs.Get(ratio.Efficiency, "cash_conversion_cycle").Float(); ok {
		if ccc > 90 {
			insights = append(insights, Insight{
				Category:       "Efficiency",
				Insight:        fmt.Sprintf("Extended cash conversion cycle of %.0f days ties up significant working capital.", ccc),
				Recommendation: "Accelerate cash conversion by: 1) Reducing DSO through better collections, 2) Optimizing inventory levels, 3) Extending DPO where feasible without harming supplier relationships.",
				Impact:         fmt.Sprintf("Approximately $%.0f in excess working capital tied up (estimated)", (ccc-60)*1000),
				Priority:       High,
			})
		} else if ccc < 30 {
			insights = append(insights, Insight{
				Category:       "Efficiency",
				Insight:        fmt.Sprintf("Excellent cash conversion cycle of %.0f days demonstrates superior working capital management.", ccc),
				Recommendation: "Maintain best-in-class working capital practices. This is a competitive advantage worth protecting.",
				Impact:         "Efficient cash generation supports growth without additional financing needs",
				Priority:       Low,
			})
		}
	}

	return insights
}

// overallAssessment builds the always-appended composite insight. The
// recommendation names the single weakest and strongest core category; min
// and max selection walks CoreCategories in declaration order, so ties break
// toward liquidity -> leverage -> profitability -> efficiency.
func overallAssessment(scores health.Report, tr *trend.Analysis) Insight {
	weakest := ratio.CoreCategories[0]
	strongest := ratio.CoreCategories[0]
	for _, c := range ratio.CoreCategories[1:] {
		if scores.ByCategory(c) < scores.ByCategory(weakest) {
			weakest = c
		}
		if scores.ByCategory(c) > scores.ByCategory(strongest) {
			strongest = c
		}
	}

	priority := Medium
	if scores.Overall < 60 {
		priority = High
	}

	text := fmt.Sprintf(
		"Financial Health Score: %.0f/100 - %s. Breakdown: Liquidity %.0f, Leverage %.0f, Profitability %.0f, Efficiency %.0f.",
		scores.Overall, scores.Rating, scores.Liquidity, scores.Leverage, scores.Profitability, scores.Efficiency)
	if tr != nil && len(tr.KeyObservations) > 0 {
		text += " " + tr.KeyObservations[0] + "."
	}

	return Insight{
		Category:       "Overall Assessment",
		Insight:        text,
		Recommendation: strategicRecommendation(weakest, strongest),
		Impact:         fmt.Sprintf("Company demonstrates %s financial performance relative to industry standards.", lower(scores.Rating)),
		Priority:       priority,
	}
}

var strategicFocus = map[ratio.Category]string{
	ratio.Liquidity:     "Strengthen working capital management and cash reserves",
	ratio.Leverage:      "Focus on deleveraging and improving debt service coverage",
	ratio.Profitability: "Enhance margins through operational improvements and pricing power",
	ratio.Efficiency:    "Optimize asset utilization and accelerate cash conversion",
}

func strategicRecommendation(weakest, strongest ratio.Category) string {
	return fmt.Sprintf("Strategic priority: %s. Leverage strength in %s to support improvements in %s.",
		strategicFocus[weakest], strongest.String(), weakest.String())
}

func lower(rating string) string {
	switch rating {
	case "Excellent":
		return "excellent"
	case "Good":
		return "good"
	case "Fair":
		return "fair"
	default:
		return "poor"
	}
}
