package ingest

import (
	"regexp"
	"strings"

	"finanalyzer/pkg/core/statement"
)

// =============================================================================
// TEXT EXTRACTION
// Pattern-matched line items plus aligned-number table detection. Patterns
// run in a fixed order so the same text always yields the same bundle.
// =============================================================================

type textPattern struct {
	item string
	re   *regexp.Regexp
}

func pat(item, expr string) textPattern {
	return textPattern{item: item, re: regexp.MustCompile(`(?i)` + expr)}
}

var balanceSheetPatterns = []textPattern{
	pat("total_assets", `total\s+assets?\s*:?\s*(\d[\d,\.]*)`),
	pat("current_assets", `current\s+assets?\s*:?\s*(\d[\d,\.]*)`),
	pat("total_liabilities", `total\s+liabilities?\s*:?\s*(\d[\d,\.]*)`),
	pat("current_liabilities", `current\s+liabilities?\s*:?\s*(\d[\d,\.]*)`),
	pat("equity", `(?:shareholders?|stockholders?)\s+equity\s*:?\s*(\d[\d,\.]*)`),
	pat("cash", `cash\s+(?:and\s+)?(?:cash\s+)?equivalents?\s*:?\s*(\d[\d,\.]*)`),
	pat("inventory", `inventor(?:y|ies)\s*:?\s*(\d[\d,\.]*)`),
	pat("receivables", `(?:accounts?\s+)?receivables?\s*:?\s*(\d[\d,\.]*)`),
}

var incomeStatementPatterns = []textPattern{
	pat("revenue", `(?:total\s+)?(?:revenue|sales)\s*:?\s*(\d[\d,\.]*)`),
	pat("gross_profit", `gross\s+profit\s*:?\s*(\d[\d,\.]*)`),
	pat("operating_income", `operating\s+income\s*:?\s*(\d[\d,\.]*)`),
	pat("net_income", `net\s+(?:income|profit)\s*:?\s*(\d[\d,\.]*)`),
	pat("ebitda", `ebitda\s*:?\s*(\d[\d,\.]*)`),
	pat("cogs", `cost\s+of\s+(?:goods\s+sold|revenue|sales)\s*:?\s*(\d[\d,\.]*)`),
	pat("operating_expenses", `operating\s+expenses?\s*:?\s*(\d[\d,\.]*)`),
}

var cashFlowPatterns = []textPattern{
	pat("operating_cash_flow", `(?:cash\s+from\s+)?operating\s+activities\s*:?\s*(\d[\d,\.]*)`),
	pat("investing_cash_flow", `(?:cash\s+from\s+)?investing\s+activities\s*:?\s*(\d[\d,\.]*)`),
	pat("financing_cash_flow", `(?:cash\s+from\s+)?financing\s+activities\s*:?\s*(\d[\d,\.]*)`),
	pat("free_cash_flow", `free\s+cash\s+flow\s*:?\s*(\d[\d,\.]*)`),
}

// FromText extracts statement line items from free-form report text.
// Captured figures stay as strings; the normalizer's coercion handles
// thousands separators and decimal points.
func FromText(text string) *statement.Bundle {
	b := &statement.Bundle{
		BalanceSheet:    matchPatterns(text, balanceSheetPatterns),
		IncomeStatement: matchPatterns(text, incomeStatementPatterns),
		CashFlow:        matchPatterns(text, cashFlowPatterns),
	}

	// Aligned number rows often carry items the sentence patterns miss.
	for _, tbl := range ExtractTables(text) {
		b.Records = append(b.Records, tbl.Records()...)
	}
	return b
}

func matchPatterns(text string, patterns []textPattern) map[string]interface{} {
	out := map[string]interface{}{}
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			out[p.item] = m[1]
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// =============================================================================
// TABLE DETECTION
// =============================================================================

// Table is a run of consecutive text lines that each carry at least two
// numbers, i.e. a label column followed by period columns.
type Table struct {
	Rows []string `json:"rows"`
}

var numberRe = regexp.MustCompile(`-?\d+(?:,\d{3})*(?:\.\d+)?`)

// ExtractTables finds aligned numeric blocks in text. A block needs at least
// two qualifying rows to count as a table.
func ExtractTables(text string) []Table {
	var tables []Table
	var current []string

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, Table{Rows: current})
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if len(numberRe.FindAllString(line, -1)) >= 2 {
			current = append(current, line)
		} else {
			flush()
		}
	}
	flush()
	return tables
}

// Records converts table rows into label/value records. The label is the text
// before the first number; the first number is taken as the most recent
// period. Rows without a label are skipped.
func (t Table) Records() []map[string]interface{} {
	var recs []map[string]interface{}
	for _, row := range t.Rows {
		loc := numberRe.FindStringIndex(row)
		if loc == nil {
			continue
		}
		label := strings.Trim(strings.TrimSpace(row[:loc[0]]), ":.-")
		if label == "" {
			continue
		}
		recs = append(recs, map[string]interface{}{
			"item":  label,
			"value": row[loc[0]:loc[1]],
		})
	}
	return recs
}
