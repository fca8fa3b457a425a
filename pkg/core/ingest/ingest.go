// Package ingest turns uploaded documents into raw statement bundles.
// Each format has its own adapter; Process routes on the file extension.
package ingest

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"finanalyzer/pkg/core/statement"
)

// Result is the adapter output handed to the normalizer.
type Result struct {
	Format  string            `json:"format"`
	Bundle  *statement.Bundle `json:"bundle"`
	Preview Preview           `json:"preview"`
}

// Preview summarizes which statement sections the adapter recognized.
type Preview struct {
	HasBalanceSheet    bool `json:"has_balance_sheet"`
	HasIncomeStatement bool `json:"has_income_statement"`
	HasCashFlow        bool `json:"has_cash_flow"`
}

// SupportedExtensions lists the file extensions Process accepts.
var SupportedExtensions = []string{"txt", "text", "md", "csv", "json", "hjson", "html", "htm"}

// DetectFormat returns the normalized extension for a filename, or an error
// when no adapter handles it.
func DetectFormat(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, s := range SupportedExtensions {
		if ext == s {
			return ext, nil
		}
	}
	return "", fmt.Errorf("unsupported file type: %q", ext)
}

// Process parses an uploaded document into a statement bundle. The adapter is
// chosen by extension; the bundle is raw material for statement.Normalize.
func Process(filename string, data []byte) (*Result, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	var bundle *statement.Bundle
	switch format {
	case "txt", "text", "md":
		bundle = FromText(string(data))
	case "csv":
		bundle, err = FromCSV(data)
	case "json", "hjson":
		bundle, err = FromJSON(data)
	case "html", "htm":
		bundle, err = FromHTML(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}

	log.Printf("[Ingest] %s parsed as %s (empty=%v)", filename, format, bundle.IsEmpty())

	return &Result{
		Format:  format,
		Bundle:  bundle,
		Preview: previewOf(bundle),
	}, nil
}

func previewOf(b *statement.Bundle) Preview {
	return Preview{
		HasBalanceSheet:    len(b.BalanceSheet) > 0,
		HasIncomeStatement: len(b.IncomeStatement) > 0,
		HasCashFlow:        len(b.CashFlow) > 0,
	}
}
