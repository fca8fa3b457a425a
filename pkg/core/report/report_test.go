package report

import (
	"strings"
	"testing"
	"time"

	"finanalyzer/pkg/core/pipeline"
	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/statement"
)

func sampleResult() *pipeline.Result {
	b := &statement.Bundle{
		BalanceSheet: map[string]interface{}{
			"total_assets":        1000000,
			"current_assets":      400000,
			"total_liabilities":   400000,
			"current_liabilities": 200000,
			"equity":              600000,
			"cash":                100000,
			"inventory":           80000,
		},
		IncomeStatement: map[string]interface{}{
			"revenue":          1000000,
			"cogs":             600000,
			"operating_income": 200000,
			"net_income":       120000,
		},
	}
	return pipeline.New(ratio.DefaultProfile()).Run(b)
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sampleResult(), ratio.DefaultProfile(), Meta{
		AnalysisID:  "4b7e2a10-0000-0000-0000-000000000000",
		Filename:    "fy2024.txt",
		Industry:    "default",
		GeneratedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	})

	for _, section := range []string{
		"# Financial Analysis Report",
		"## Executive Summary",
		"## Health Score",
		"## Key Financial Metrics",
		"## Strategic Recommendations",
		"## Trends",
		"## Assumptions",
	} {
		if !strings.Contains(md, section) {
			t.Errorf("report missing section %q", section)
		}
	}

	if !strings.Contains(md, "Financial Health Score:") {
		t.Error("executive summary should carry the overall assessment text")
	}
	if !strings.Contains(md, "| Liquidity | Current ratio") && !strings.Contains(md, "| Liquidity | Current Ratio") {
		t.Error("metrics table missing current ratio row")
	}
	if !strings.Contains(md, "Revenue Growth: 15%") {
		t.Error("assumptions section should disclose the default revenue growth")
	}
}

func TestMarkdownIsDeterministic(t *testing.T) {
	res := sampleResult()
	meta := Meta{GeneratedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)}
	a := Markdown(res, ratio.DefaultProfile(), meta)
	b := Markdown(res, ratio.DefaultProfile(), meta)
	if a != b {
		t.Error("same result and meta should render identical markdown")
	}
}

func TestMarkdownOmitsEmptyAnomalies(t *testing.T) {
	md := Markdown(sampleResult(), ratio.DefaultProfile(), Meta{})
	if strings.Contains(md, "## Anomalies") {
		t.Error("healthy statement should not have an anomalies section")
	}
}

func TestHTMLRenders(t *testing.T) {
	html, err := HTML(sampleResult(), ratio.DefaultProfile(), Meta{})
	if err != nil {
		t.Fatal(err)
	}
	s := string(html)
	if !strings.Contains(s, "<h1") || !strings.Contains(s, "<table>") {
		t.Errorf("expected rendered headings and tables, got %.200s", s)
	}
}

func TestMarkdownEmptyResult(t *testing.T) {
	res := pipeline.New(ratio.DefaultProfile()).Run(&statement.Bundle{})
	md := Markdown(res, ratio.DefaultProfile(), Meta{})
	if !strings.Contains(md, "N/A") {
		t.Error("absent ratios should render as N/A")
	}
	if !strings.Contains(md, "Insufficient data") {
		t.Error("absent ratios should interpret as insufficient data")
	}
}
