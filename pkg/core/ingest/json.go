package ingest

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"finanalyzer/pkg/core/statement"
)

// FromJSON parses a JSON document into a bundle. Export pipelines produce
// sloppy JSON often enough that strict parsing alone is not viable, so the
// strategies cascade:
//  1. strict encoding/json
//  2. json-repair (trailing commas, single quotes, unclosed brackets)
//  3. Hjson (comments, unquoted keys, optional commas)
//
// The document may either already be bundle-shaped (balance_sheet /
// income_statement / metrics keys) or be one flat metrics object; a flat
// object is folded into Metrics.
func FromJSON(data []byte) (*statement.Bundle, error) {
	raw, err := lenientParse(data)
	if err != nil {
		return nil, err
	}
	return bundleFrom(raw), nil
}

func lenientParse(data []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err == nil {
		return raw, nil
	}

	if repaired, err := jsonrepair.RepairJSON(string(data)); err == nil {
		if err := json.Unmarshal([]byte(repaired), &raw); err == nil {
			return raw, nil
		}
	}

	// Hjson round-trips through standard JSON so nested values come back as
	// plain maps rather than the decoder's own container types.
	var loose interface{}
	if err := hjson.Unmarshal(data, &loose); err == nil {
		if normalized, err := json.Marshal(loose); err == nil {
			if err := json.Unmarshal(normalized, &raw); err == nil {
				return raw, nil
			}
		}
	}

	return nil, fmt.Errorf("document is not an object in any accepted JSON dialect")
}

// bundleKeys are the top-level keys that mark a document as bundle-shaped.
var bundleKeys = []string{
	"metrics", "aggregated_metrics",
	"balance_sheet", "income_statement", "cash_flow",
	"sheets", "records",
}

func bundleFrom(raw map[string]interface{}) *statement.Bundle {
	shaped := false
	for _, k := range bundleKeys {
		if _, ok := raw[k]; ok {
			shaped = true
			break
		}
	}
	if !shaped {
		return &statement.Bundle{Metrics: raw}
	}

	b := &statement.Bundle{
		Metrics:         objectAt(raw, "metrics"),
		Aggregated:      objectAt(raw, "aggregated_metrics"),
		BalanceSheet:    objectAt(raw, "balance_sheet"),
		IncomeStatement: objectAt(raw, "income_statement"),
		CashFlow:        objectAt(raw, "cash_flow"),
	}
	if sheets := objectAt(raw, "sheets"); sheets != nil {
		b.Sheets = map[string]map[string]interface{}{}
		for name, v := range sheets {
			if sheet, ok := v.(map[string]interface{}); ok {
				b.Sheets[name] = sheet
			}
		}
	}
	if list, ok := raw["records"].([]interface{}); ok {
		for _, v := range list {
			if rec, ok := v.(map[string]interface{}); ok {
				b.Records = append(b.Records, rec)
			}
		}
	}
	return b
}

func objectAt(raw map[string]interface{}, key string) map[string]interface{} {
	if obj, ok := raw[key].(map[string]interface{}); ok {
		return obj
	}
	return nil
}
