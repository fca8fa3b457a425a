package statement

import (
	"math"
	"testing"
)

func TestNormalizeMergePrecedence(t *testing.T) {
	// Later sources overwrite earlier ones: metrics beats balance_sheet,
	// aggregated beats metrics, sheets beat aggregated.
	b := &Bundle{
		BalanceSheet: map[string]interface{}{"cash": 100.0},
		Metrics:      map[string]interface{}{"cash": 200.0},
		Aggregated:   map[string]interface{}{"cash": 300.0},
		Sheets: map[string]map[string]interface{}{
			"Balance Sheet": {"cash": 400.0},
		},
	}
	m := Normalize(b)
	if v := m[Cash]; v != 400.0 {
		t.Errorf("Expected sheet value 400 to win, got %f", v)
	}
}

func TestNormalizeSeriesTakesLast(t *testing.T) {
	b := &Bundle{
		Metrics: map[string]interface{}{
			"revenue": []interface{}{100.0, 250.0, 500.0},
		},
	}
	m := Normalize(b)
	if v := m[Revenue]; v != 500.0 {
		t.Errorf("Expected most recent series value 500, got %f", v)
	}
}

func TestNormalizeCoercion(t *testing.T) {
	b := &Bundle{
		Metrics: map[string]interface{}{
			"total_assets":       "2,000,000",
			"net_income":         "(300)",
			"inventory":          42,
			"cogs":               "not a number",
			"interest_expense":   math.NaN(),
			"operating_expenses": math.Inf(1),
		},
	}
	m := Normalize(b)

	if v := m[TotalAssets]; v != 2000000.0 {
		t.Errorf("Expected comma string coerced to 2000000, got %f", v)
	}
	if v := m[NetIncome]; v != -300.0 {
		t.Errorf("Expected accounting negative -300, got %f", v)
	}
	if v := m[Inventory]; v != 42.0 {
		t.Errorf("Expected int coerced to 42, got %f", v)
	}
	if _, ok := m.Get(COGS); ok {
		t.Error("Non-numeric value should be dropped, not stored")
	}
	if _, ok := m.Get(InterestExpense); ok {
		t.Error("NaN should be dropped")
	}
	if _, ok := m.Get(OperatingExpense); ok {
		t.Error("Inf should be dropped")
	}
}

func TestNormalizeAliases(t *testing.T) {
	b := &Bundle{
		Metrics: map[string]interface{}{
			"Cost of Goods Sold":  3000000.0,
			"Shareholders Equity": 1200000.0,
			"Accounts Receivable": 250000.0,
		},
	}
	m := Normalize(b)
	if v := m[COGS]; v != 3000000.0 {
		t.Errorf("Expected cogs alias, got %f", v)
	}
	if v := m[Equity]; v != 1200000.0 {
		t.Errorf("Expected equity alias, got %f", v)
	}
	if v := m[Receivables]; v != 250000.0 {
		t.Errorf("Expected receivables alias, got %f", v)
	}
}

func TestInferenceChain(t *testing.T) {
	// total_assets is inferred from liabilities + equity, then the
	// current-assets heuristic consumes the inferred total in the same pass.
	b := &Bundle{
		Metrics: map[string]interface{}{
			"total_liabilities": 800000.0,
			"equity":            1200000.0,
			"revenue":           5000000.0,
			"cogs":              3000000.0,
		},
	}
	m := Normalize(b)

	if v := m[TotalAssets]; v != 2000000.0 {
		t.Errorf("Expected inferred total_assets 2000000, got %f", v)
	}
	if v := m[GrossProfit]; v != 2000000.0 {
		t.Errorf("Expected inferred gross_profit 2000000, got %f", v)
	}
	if v := m[CurrentAssets]; v != 800000.0 {
		t.Errorf("Expected current_assets heuristic 0.4*2000000, got %f", v)
	}
}

func TestInferenceDoesNotOverwrite(t *testing.T) {
	b := &Bundle{
		Metrics: map[string]interface{}{
			"total_liabilities": 800000.0,
			"equity":            1200000.0,
			"total_assets":      1900000.0, // reported, keep as-is
			"operating_income":  800000.0,
		},
	}
	m := Normalize(b)
	if v := m[TotalAssets]; v != 1900000.0 {
		t.Errorf("Reported total_assets must win over inference, got %f", v)
	}
	if v := m[EBIT]; v != 800000.0 {
		t.Errorf("Expected ebit aliased from operating_income, got %f", v)
	}
}

func TestNormalizeEmptyBundle(t *testing.T) {
	m := Normalize(&Bundle{})
	if len(m) != 0 {
		t.Errorf("Empty bundle should normalize to empty mapping, got %d items", len(m))
	}
	m = Normalize(nil)
	if len(m) != 0 {
		t.Errorf("Nil bundle should normalize to empty mapping, got %d items", len(m))
	}
}

func TestRecordsMerge(t *testing.T) {
	b := &Bundle{
		Records: []map[string]interface{}{
			{"item": "revenue", "value": 5000000.0},
			{"metric": "net income", "amount": "600,000"},
			{"note": "no label"},
		},
	}
	m := Normalize(b)
	if v := m[Revenue]; v != 5000000.0 {
		t.Errorf("Expected record revenue 5000000, got %f", v)
	}
	if v := m[NetIncome]; v != 600000.0 {
		t.Errorf("Expected record net_income 600000, got %f", v)
	}
	if len(m) != 2 {
		t.Errorf("Unlabeled record should be skipped, got %d items", len(m))
	}
}
