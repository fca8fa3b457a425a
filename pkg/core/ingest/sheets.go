package ingest

import (
	"sort"
	"strings"

	"finanalyzer/pkg/core/statement"
)

// FromSheets routes named spreadsheet tabs onto statement sections by tab
// name. Tabs are visited in sorted name order so collisions resolve the same
// way every run; unrecognized tabs stay in the bundle's Sheets map.
func FromSheets(sheets map[string]map[string]interface{}) *statement.Bundle {
	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	b := &statement.Bundle{}
	for _, name := range names {
		metrics := sheets[name]
		if len(metrics) == 0 {
			continue
		}
		switch classifySheet(name) {
		case "balance_sheet":
			b.BalanceSheet = mergeSheet(b.BalanceSheet, metrics)
		case "income_statement":
			b.IncomeStatement = mergeSheet(b.IncomeStatement, metrics)
		case "cash_flow":
			b.CashFlow = mergeSheet(b.CashFlow, metrics)
		default:
			if b.Sheets == nil {
				b.Sheets = map[string]map[string]interface{}{}
			}
			b.Sheets[name] = metrics
		}
	}
	return b
}

func classifySheet(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "balance") || strings.Contains(n, "bs"):
		return "balance_sheet"
	case strings.Contains(n, "income") || strings.Contains(n, "p&l") || strings.Contains(n, "pnl"):
		return "income_statement"
	case strings.Contains(n, "cash") || strings.Contains(n, "cf"):
		return "cash_flow"
	}
	return ""
}

func mergeSheet(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = map[string]interface{}{}
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
