package ratio

import (
	"finanalyzer/pkg/core/statement"
)

// Set groups computed ratios by category. Map keys are ratio names; values
// carry the tri-state outcome of each computation.
type Set struct {
	Liquidity     map[string]Value `json:"liquidity"`
	Leverage      map[string]Value `json:"leverage"`
	Profitability map[string]Value `json:"profitability"`
	Efficiency    map[string]Value `json:"efficiency"`
	Valuation     map[string]Value `json:"valuation"`
	Growth        map[string]Value `json:"growth"`
}

// ByCategory returns the ratio map for a category.
func (s *Set) ByCategory(c Category) map[string]Value {
	switch c {
	case Liquidity:
		return s.Liquidity
	case Leverage:
		return s.Leverage
	case Profitability:
		return s.Profitability
	case Efficiency:
		return s.Efficiency
	case Valuation:
		return s.Valuation
	case Growth:
		return s.Growth
	}
	return nil
}

// Get looks a ratio up by category and name, returning Absent for unknown
// names so callers never branch on map misses.
func (s *Set) Get(c Category, name string) Value {
	ratios := s.ByCategory(c)
	if ratios == nil {
		return None()
	}
	if v, ok := ratios[name]; ok {
		return v
	}
	return None()
}

// Engine computes a Set from a statement mapping against one benchmark
// profile. Engines hold no mutable state and are safe for concurrent use.
type Engine struct {
	profile Profile
}

// NewEngine builds an engine bound to a benchmark profile.
func NewEngine(profile Profile) *Engine {
	return &Engine{profile: profile}
}

// Profile exposes the benchmark profile the engine interprets against.
func (e *Engine) Profile() Profile { return e.profile }

// Growth defaults reported when no multi-period data exists. They are
// documented assumptions, not measurements, and the report layer labels
// them as such.
const (
	DefaultRevenueGrowth  = 0.15
	DefaultEarningsGrowth = 0.12
	DefaultAssetGrowth    = 0.10
)

// Compute derives every ratio category from the mapping. A ratio is Present
// only when its inputs are; a present-but-zero denominator yields
// Indeterminate. No input combination panics.
func (e *Engine) Compute(m statement.Mapping) *Set {
	return &Set{
		Liquidity:     liquidityRatios(m),
		Leverage:      leverageRatios(m),
		Profitability: profitabilityRatios(m),
		Efficiency:    efficiencyRatios(m),
		Valuation:     valuationRatios(),
		Growth:        growthRatios(),
	}
}

func liquidityRatios(m statement.Mapping) map[string]Value {
	ca, caOK := m.Get(statement.CurrentAssets)
	cl, clOK := m.Get(statement.CurrentLiabilities)
	cash, cashOK := m.Get(statement.Cash)
	inv, invOK := m.Get(statement.Inventory)

	r := map[string]Value{
		"current_ratio": safeDiv(ca, caOK, cl, clOK),
		"cash_ratio":    safeDiv(cash, cashOK, cl, clOK),
		"quick_ratio":   safeDiv(ca-inv, caOK && invOK, cl, clOK),
	}

	if caOK && clOK {
		r["working_capital"] = Of(ca - cl)
	} else {
		r["working_capital"] = None()
	}
	return r
}

func leverageRatios(m statement.Mapping) map[string]Value {
	tl, tlOK := m.Get(statement.TotalLiabilities)
	ta, taOK := m.Get(statement.TotalAssets)
	eq, eqOK := m.Get(statement.Equity)
	ie, ieOK := m.Get(statement.InterestExpense)

	// EBIT falls back to operating income when not separately reported.
	ebit, ebitOK := m.Get(statement.EBIT)
	if !ebitOK {
		ebit, ebitOK = m.Get(statement.OperatingIncome)
	}
	ebitda, ebitdaOK := ebitdaOf(m)

	return map[string]Value{
		"debt_to_equity":    safeDiv(tl, tlOK, eq, eqOK),
		"debt_ratio":        safeDiv(tl, tlOK, ta, taOK),
		"equity_multiplier": safeDiv(ta, taOK, eq, eqOK),
		"equity_ratio":      safeDiv(eq, eqOK, ta, taOK),
		"interest_coverage": safeDiv(ebit, ebitOK, ie, ieOK),
		"dscr":              safeDiv(ebitda, ebitdaOK, ie, ieOK),
	}
}

func profitabilityRatios(m statement.Mapping) map[string]Value {
	rev, revOK := m.Get(statement.Revenue)
	gp, gpOK := m.Get(statement.GrossProfit)
	oi, oiOK := m.Get(statement.OperatingIncome)
	ni, niOK := m.Get(statement.NetIncome)
	ta, taOK := m.Get(statement.TotalAssets)
	eq, eqOK := m.Get(statement.Equity)
	tl, tlOK := m.Get(statement.TotalLiabilities)
	ebitda, ebitdaOK := ebitdaOf(m)

	r := map[string]Value{
		"gross_margin":     safeDiv(gp, gpOK, rev, revOK),
		"operating_margin": safeDiv(oi, oiOK, rev, revOK),
		"net_margin":       safeDiv(ni, niOK, rev, revOK),
		"ebitda_margin":    safeDiv(ebitda, ebitdaOK, rev, revOK),
		"roa":              safeDiv(ni, niOK, ta, taOK),
		"roe":              safeDiv(ni, niOK, eq, eqOK),
		"roic":             safeDiv(ni, niOK, eq+tl, eqOK && tlOK),
	}

	// DuPont components are reported individually; the product approximates
	// ROE and is not forced to reconcile exactly.
	r["dupont_profit_margin"] = r["net_margin"]
	r["dupont_asset_turnover"] = safeDiv(rev, revOK, ta, taOK)
	r["dupont_equity_multiplier"] = safeDiv(ta, taOK, eq, eqOK)
	return r
}

func efficiencyRatios(m statement.Mapping) map[string]Value {
	rev, revOK := m.Get(statement.Revenue)
	cogs, cogsOK := m.Get(statement.COGS)
	ta, taOK := m.Get(statement.TotalAssets)
	ca, caOK := m.Get(statement.CurrentAssets)
	cl, clOK := m.Get(statement.CurrentLiabilities)
	inv, invOK := m.Get(statement.Inventory)
	rec, recOK := m.Get(statement.Receivables)
	pay, payOK := m.Get(statement.Payables)

	r := map[string]Value{
		"asset_turnover":       safeDiv(rev, revOK, ta, taOK),
		"inventory_turnover":   safeDiv(cogs, cogsOK, inv, invOK),
		"receivables_turnover": safeDiv(rev, revOK, rec, recOK),
		"payables_turnover":    safeDiv(cogs, cogsOK, pay, payOK),
	}

	r["days_inventory"] = daysFrom(r["inventory_turnover"])
	r["days_sales_outstanding"] = daysFrom(r["receivables_turnover"])
	r["days_payables_outstanding"] = daysFrom(r["payables_turnover"])
	r["cash_conversion_cycle"] = cycleOf(r["days_inventory"], r["days_sales_outstanding"], r["days_payables_outstanding"])

	wc := ca - cl
	r["working_capital_turnover"] = safeDiv(rev, revOK, wc, caOK && clOK)
	return r
}

// valuationRatios are explicit placeholders: market price and share count are
// out of scope, and placeholder values are never fabricated as real results.
func valuationRatios() map[string]Value {
	return map[string]Value{
		"pe_ratio": None(),
		"pb_ratio": None(),
		"ps_ratio": None(),
		"eps":      None(),
	}
}

// growthRatios report the documented single-snapshot default assumptions;
// true growth needs multi-period data this system does not keep.
func growthRatios() map[string]Value {
	return map[string]Value{
		"revenue_growth":  Of(DefaultRevenueGrowth),
		"earnings_growth": Of(DefaultEarningsGrowth),
		"asset_growth":    Of(DefaultAssetGrowth),
	}
}

// ebitdaOf prefers the reported item, falling back to
// operating income + depreciation + amortization when all three are present.
func ebitdaOf(m statement.Mapping) (float64, bool) {
	if v, ok := m.Get(statement.EBITDA); ok {
		return v, true
	}
	if m.Has(statement.OperatingIncome, statement.Depreciation, statement.Amortization) {
		oi, _ := m.Get(statement.OperatingIncome)
		dep, _ := m.Get(statement.Depreciation)
		amo, _ := m.Get(statement.Amortization)
		return oi + dep + amo, true
	}
	return 0, false
}

// daysFrom converts a turnover ratio into days (365/turnover), propagating
// absence and degeneracy.
func daysFrom(turnover Value) Value {
	f, ok := turnover.Float()
	if !ok {
		return Value{Status: turnover.Status}
	}
	if f == 0 {
		return Indet()
	}
	return Of(365.0 / f)
}

// cycleOf combines the three day measures into the cash conversion cycle.
// Any absent component makes the cycle absent; otherwise any indeterminate
// component makes it indeterminate.
func cycleOf(dio, dso, dpo Value) Value {
	for _, v := range []Value{dio, dso, dpo} {
		if v.Status == Absent {
			return None()
		}
	}
	for _, v := range []Value{dio, dso, dpo} {
		if v.Status == Indeterminate {
			return Indet()
		}
	}
	return Of(dio.V + dso.V - dpo.V)
}
