package ratio

import (
	"encoding/json"
	"math"
	"testing"

	"finanalyzer/pkg/core/statement"
)

const tol = 0.0001

// goldenStatement is the fixed fixture the numeric expectations below were
// computed from by hand.
func goldenStatement() statement.Mapping {
	return statement.Mapping{
		statement.CurrentAssets:      1000000,
		statement.CurrentLiabilities: 500000,
		statement.TotalAssets:        2000000,
		statement.TotalLiabilities:   800000,
		statement.Equity:             1200000,
		statement.Cash:               300000,
		statement.Inventory:          200000,
		statement.Receivables:        250000,
		statement.Revenue:            5000000,
		statement.COGS:               3000000,
		statement.GrossProfit:        2000000,
		statement.OperatingIncome:    800000,
		statement.NetIncome:          600000,
		statement.InterestExpense:    50000,
	}
}

func mustPresent(t *testing.T, v Value, name string) float64 {
	t.Helper()
	f, ok := v.Float()
	if !ok {
		t.Fatalf("%s expected present, got %s", name, v.Status)
	}
	return f
}

func TestGoldenExample(t *testing.T) {
	rs := NewEngine(DefaultProfile()).Compute(goldenStatement())

	checks := []struct {
		cat  Category
		name string
		want float64
	}{
		{Liquidity, "current_ratio", 2.0},
		{Liquidity, "quick_ratio", 1.6},
		{Liquidity, "cash_ratio", 0.6},
		{Liquidity, "working_capital", 500000},
		{Leverage, "debt_to_equity", 0.6667},
		{Leverage, "debt_ratio", 0.4},
		{Leverage, "interest_coverage", 16.0},
		{Profitability, "gross_margin", 0.4},
		{Profitability, "operating_margin", 0.16},
		{Profitability, "net_margin", 0.12},
		{Profitability, "roa", 0.3},
		{Profitability, "roe", 0.5},
		{Efficiency, "asset_turnover", 2.5},
		{Efficiency, "inventory_turnover", 15.0},
		{Efficiency, "receivables_turnover", 20.0},
	}
	for _, c := range checks {
		got := mustPresent(t, rs.Get(c.cat, c.name), c.name)
		if math.Abs(got-c.want) > tol {
			t.Errorf("%s: expected %f, got %f", c.name, c.want, got)
		}
	}
}

func TestDuPontDecomposition(t *testing.T) {
	rs := NewEngine(DefaultProfile()).Compute(goldenStatement())

	pm := mustPresent(t, rs.Get(Profitability, "dupont_profit_margin"), "dupont_profit_margin")
	at := mustPresent(t, rs.Get(Profitability, "dupont_asset_turnover"), "dupont_asset_turnover")
	em := mustPresent(t, rs.Get(Profitability, "dupont_equity_multiplier"), "dupont_equity_multiplier")
	roe := mustPresent(t, rs.Get(Profitability, "roe"), "roe")

	// Components multiply out to ROE for a consistent statement.
	if math.Abs(pm*at*em-roe) > tol {
		t.Errorf("DuPont product %f should approximate ROE %f", pm*at*em, roe)
	}
}

func TestMissingDenominatorIsAbsent(t *testing.T) {
	m := statement.Mapping{statement.CurrentAssets: 1000}
	rs := NewEngine(DefaultProfile()).Compute(m)

	if got := rs.Get(Liquidity, "current_ratio"); got.Status != Absent {
		t.Errorf("current_ratio with missing liabilities should be absent, got %s", got.Status)
	}
	if got := rs.Get(Liquidity, "working_capital"); got.Status != Absent {
		t.Errorf("working_capital with missing liabilities should be absent, got %s", got.Status)
	}
}

func TestZeroDenominatorIsIndeterminate(t *testing.T) {
	m := statement.Mapping{
		statement.CurrentAssets:      1000,
		statement.CurrentLiabilities: 0,
	}
	rs := NewEngine(DefaultProfile()).Compute(m)

	got := rs.Get(Liquidity, "current_ratio")
	if got.Status != Indeterminate {
		t.Errorf("current_ratio with zero liabilities should be indeterminate, got %s", got.Status)
	}
	if _, ok := got.Float(); ok {
		t.Error("indeterminate ratio must not expose a numeric value")
	}
	// Working capital is a subtraction and stays well-defined.
	if wc := mustPresent(t, rs.Get(Liquidity, "working_capital"), "working_capital"); wc != 1000 {
		t.Errorf("Expected working_capital 1000, got %f", wc)
	}
}

func TestNegativeInputsDoNotPanic(t *testing.T) {
	m := statement.Mapping{
		statement.CurrentAssets:      -200000,
		statement.CurrentLiabilities: 500000,
		statement.Revenue:            1000000,
		statement.NetIncome:          -300000,
		statement.Equity:             -50000,
		statement.TotalLiabilities:   900000,
		statement.TotalAssets:        850000,
	}
	rs := NewEngine(DefaultProfile()).Compute(m)

	if cr := mustPresent(t, rs.Get(Liquidity, "current_ratio"), "current_ratio"); cr != -0.4 {
		t.Errorf("Expected current_ratio -0.4, got %f", cr)
	}
	if nm := mustPresent(t, rs.Get(Profitability, "net_margin"), "net_margin"); nm != -0.3 {
		t.Errorf("Expected net_margin -0.3, got %f", nm)
	}
	if roe := mustPresent(t, rs.Get(Profitability, "roe"), "roe"); roe != 6.0 {
		t.Errorf("Expected roe 6.0 (loss over negative equity), got %f", roe)
	}
}

func TestCashConversionCycle(t *testing.T) {
	m := statement.Mapping{
		statement.Revenue:     3650000,
		statement.COGS:        1825000,
		statement.Inventory:   100000,
		statement.Receivables: 200000,
		statement.Payables:    50000,
	}
	rs := NewEngine(DefaultProfile()).Compute(m)

	dio := mustPresent(t, rs.Get(Efficiency, "days_inventory"), "days_inventory")
	dso := mustPresent(t, rs.Get(Efficiency, "days_sales_outstanding"), "days_sales_outstanding")
	dpo := mustPresent(t, rs.Get(Efficiency, "days_payables_outstanding"), "days_payables_outstanding")
	ccc := mustPresent(t, rs.Get(Efficiency, "cash_conversion_cycle"), "cash_conversion_cycle")

	if math.Abs(ccc-(dio+dso-dpo)) > tol {
		t.Errorf("CCC %f should equal DIO+DSO-DPO %f", ccc, dio+dso-dpo)
	}

	// Missing payables makes the cycle absent, not zero.
	delete(m, statement.Payables)
	rs = NewEngine(DefaultProfile()).Compute(m)
	if got := rs.Get(Efficiency, "cash_conversion_cycle"); got.Status != Absent {
		t.Errorf("CCC without payables should be absent, got %s", got.Status)
	}
}

func TestValuationPlaceholders(t *testing.T) {
	rs := NewEngine(DefaultProfile()).Compute(goldenStatement())
	for _, name := range []string{"pe_ratio", "pb_ratio", "ps_ratio", "eps"} {
		if got := rs.Get(Valuation, name); got.Status != Absent {
			t.Errorf("%s should be an absent placeholder, got %s", name, got.Status)
		}
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	cases := []Value{Of(2.0), None(), Indet()}
	for _, v := range cases {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back Value
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back.Status != v.Status || back.Or(-1) != v.Or(-1) {
			t.Errorf("round trip changed %+v to %+v (%s)", v, back, data)
		}
	}

	// Absent and indeterminate must serialize distinguishably.
	a, _ := json.Marshal(None())
	i, _ := json.Marshal(Indet())
	if string(a) == string(i) {
		t.Error("absent and indeterminate must not share a wire form")
	}
}

func TestInterpret(t *testing.T) {
	b := Benchmark{Target: 2.0, HigherBetter: true}
	if got := Interpret(Of(2.5), b); got != "Excellent - significantly above benchmark" {
		t.Errorf("unexpected interpretation %q", got)
	}
	if got := Interpret(Of(1.0), b); got != "Concerning - below benchmark" {
		t.Errorf("unexpected interpretation %q", got)
	}
	if got := Interpret(None(), b); got != "Insufficient data" {
		t.Errorf("unexpected interpretation %q", got)
	}

	lower := Benchmark{Target: 1.0, HigherBetter: false}
	if got := Interpret(Of(0.5), lower); got != "Excellent - significantly below benchmark" {
		t.Errorf("unexpected interpretation %q", got)
	}
}
