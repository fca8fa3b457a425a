package statement

import (
	"math"
	"sort"
)

// Mapping is the normalized statement: canonical item -> most recent value.
// A missing key means the item is unknown. All stored values are finite.
type Mapping map[Item]float64

// Get returns the value for an item and whether it is known.
func (m Mapping) Get(item Item) (float64, bool) {
	v, ok := m[item]
	return v, ok
}

// Has reports whether every listed item is known.
func (m Mapping) Has(items ...Item) bool {
	for _, it := range items {
		if _, ok := m[it]; !ok {
			return false
		}
	}
	return true
}

// Set stores a value, silently dropping non-finite input. The mapping never
// holds NaN or infinities.
func (m Mapping) Set(item Item, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	m[item] = v
}

// Bundle is the raw collaborator output the normalizer consumes. Any subset
// of the fields may be populated; an entirely empty bundle normalizes to an
// empty Mapping.
type Bundle struct {
	// Flat metric mappings. Values may be numbers, numeric strings, or
	// time-ordered sequences (last entry authoritative).
	Metrics    map[string]interface{} `json:"metrics,omitempty"`
	Aggregated map[string]interface{} `json:"aggregated_metrics,omitempty"`

	// Per-statement mappings produced by the text extractor.
	BalanceSheet    map[string]interface{} `json:"balance_sheet,omitempty"`
	IncomeStatement map[string]interface{} `json:"income_statement,omitempty"`
	CashFlow        map[string]interface{} `json:"cash_flow,omitempty"`

	// Per-sheet mappings from spreadsheet extraction (sheet name -> metrics).
	Sheets map[string]map[string]interface{} `json:"sheets,omitempty"`

	// Flat record list from tabular sources. Each record carries a label
	// column ("item", "metric" or "name") and a value column ("value" or
	// "amount").
	Records []map[string]interface{} `json:"records,omitempty"`
}

// IsEmpty reports whether the bundle carries no recognized structure.
func (b *Bundle) IsEmpty() bool {
	if b == nil {
		return true
	}
	return len(b.Metrics) == 0 && len(b.Aggregated) == 0 &&
		len(b.BalanceSheet) == 0 && len(b.IncomeStatement) == 0 &&
		len(b.CashFlow) == 0 && len(b.Sheets) == 0 && len(b.Records) == 0
}

// Normalize merges every metric-bearing structure in the bundle into one
// Mapping and backfills missing items via accounting-identity inference.
// Later sources overwrite earlier ones on key collision; source order is
// fixed (statements, metrics, aggregated, sheets by name, records in order)
// so identical bundles always normalize identically.
func Normalize(b *Bundle) Mapping {
	m := make(Mapping)
	if b == nil {
		return m
	}

	mergeMetrics(m, b.BalanceSheet)
	mergeMetrics(m, b.IncomeStatement)
	mergeMetrics(m, b.CashFlow)
	mergeMetrics(m, b.Metrics)
	mergeMetrics(m, b.Aggregated)

	sheetNames := make([]string, 0, len(b.Sheets))
	for name := range b.Sheets {
		sheetNames = append(sheetNames, name)
	}
	sort.Strings(sheetNames)
	for _, name := range sheetNames {
		mergeMetrics(m, b.Sheets[name])
	}

	for _, rec := range b.Records {
		label, raw, ok := splitRecord(rec)
		if !ok {
			continue
		}
		storeRaw(m, label, raw)
	}

	inferMissing(m)
	return m
}

// mergeMetrics folds a flat metrics mapping into m in deterministic key order.
func mergeMetrics(m Mapping, metrics map[string]interface{}) {
	if len(metrics) == 0 {
		return
	}
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		storeRaw(m, k, metrics[k])
	}
}

func storeRaw(m Mapping, label string, raw interface{}) {
	rv, ok := Coerce(raw)
	if !ok {
		return
	}
	v, ok := rv.MostRecent()
	if !ok {
		return
	}
	m.Set(Canonicalize(label), v)
}

func splitRecord(rec map[string]interface{}) (string, interface{}, bool) {
	var label string
	for _, key := range []string{"item", "metric", "name", "label"} {
		if s, ok := rec[key].(string); ok && s != "" {
			label = s
			break
		}
	}
	if label == "" {
		return "", nil, false
	}
	for _, key := range []string{"value", "amount"} {
		if raw, ok := rec[key]; ok {
			return label, raw, true
		}
	}
	return "", nil, false
}

// inferMissing applies the fixed, ordered accounting-identity rules. Each
// rule fires only when its target is absent and all inputs are present, and
// later rules may consume values produced by earlier ones in the same pass.
// The current-assets heuristic runs last: it is an estimate (40% of total
// assets, conservative) with no countervailing real data.
func inferMissing(m Mapping) {
	if !m.Has(TotalAssets) && m.Has(TotalLiabilities, Equity) {
		m.Set(TotalAssets, m[TotalLiabilities]+m[Equity])
	}
	if !m.Has(GrossProfit) && m.Has(Revenue, COGS) {
		m.Set(GrossProfit, m[Revenue]-m[COGS])
	}
	if !m.Has(EBIT) && m.Has(OperatingIncome) {
		m.Set(EBIT, m[OperatingIncome])
	}
	if !m.Has(CurrentAssets) && m.Has(TotalAssets) {
		m.Set(CurrentAssets, m[TotalAssets]*0.4)
	}
}
