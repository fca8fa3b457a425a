// Package report renders an analysis result as a Markdown document and, via
// goldmark, as standalone HTML.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"finanalyzer/pkg/core/pipeline"
	"finanalyzer/pkg/core/ratio"
)

// Meta carries the per-run information that deliberately stays out of
// pipeline.Result.
type Meta struct {
	AnalysisID  string
	Filename    string
	Industry    string
	GeneratedAt time.Time
}

// markdown converter shared by all renders. Table extension is required for
// the metrics section; unsafe raw HTML stays off.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// Markdown builds the full analysis report. Section order is fixed; ratio
// rows are emitted in category order and sorted by name within a category,
// so the same result always renders the same document.
func Markdown(res *pipeline.Result, profile ratio.Profile, meta Meta) string {
	var b strings.Builder

	b.WriteString("# Financial Analysis Report\n\n")
	if meta.Filename != "" {
		fmt.Fprintf(&b, "**Source:** %s  \n", meta.Filename)
	}
	if meta.Industry != "" {
		fmt.Fprintf(&b, "**Industry profile:** %s  \n", meta.Industry)
	}
	if !meta.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "**Generated:** %s  \n", meta.GeneratedAt.UTC().Format("January 2, 2006 15:04 MST"))
	}
	if meta.AnalysisID != "" {
		fmt.Fprintf(&b, "**Analysis ID:** %s  \n", meta.AnalysisID)
	}
	b.WriteString("\n")

	writeSummary(&b, res)
	writeHealth(&b, res)
	writeMetrics(&b, res, profile)
	writeAnomalies(&b, res)
	writeRecommendations(&b, res)
	writeTrends(&b, res)
	writeAssumptions(&b, res)

	return b.String()
}

// HTML renders the Markdown report to HTML.
func HTML(res *pipeline.Result, profile ratio.Profile, meta Meta) ([]byte, error) {
	var out bytes.Buffer
	if err := converter.Convert([]byte(Markdown(res, profile, meta)), &out); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return out.Bytes(), nil
}

func writeSummary(b *strings.Builder, res *pipeline.Result) {
	b.WriteString("## Executive Summary\n\n")
	for _, ins := range res.Insights {
		if ins.Category == "Overall Assessment" {
			b.WriteString(ins.Insight + "\n\n")
			return
		}
	}
	b.WriteString("Analysis complete.\n\n")
}

func writeHealth(b *strings.Builder, res *pipeline.Result) {
	h := res.Health
	b.WriteString("## Health Score\n\n")
	fmt.Fprintf(b, "**Overall: %.1f/100 (%s)**\n\n", h.Overall, h.Rating)
	b.WriteString("| Category | Score |\n|---|---|\n")
	for _, c := range ratio.CoreCategories {
		fmt.Fprintf(b, "| %s | %.1f |\n", c.Title(), h.ByCategory(c))
	}
	b.WriteString("\n")
}

func writeMetrics(b *strings.Builder, res *pipeline.Result, profile ratio.Profile) {
	b.WriteString("## Key Financial Metrics\n\n")
	b.WriteString("| Category | Metric | Value | Benchmark | Interpretation |\n|---|---|---|---|---|\n")

	for _, c := range ratio.CoreCategories {
		ratios := res.Ratios.ByCategory(c)
		names := make([]string, 0, len(ratios))
		for name := range ratios {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			v := ratios[name]
			value := "N/A"
			if f, ok := v.Float(); ok {
				value = fmt.Sprintf("%.2f", f)
			}
			bench, interp := "N/A", "Insufficient data"
			if bm, ok := profile.Benchmark(name); ok {
				bench = fmt.Sprintf("%.2f", bm.Target)
				interp = ratio.Interpret(v, bm)
			}
			fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
				c.Title(), titleCase(name), value, bench, interp)
		}
	}
	b.WriteString("\n")
}

func writeAnomalies(b *strings.Builder, res *pipeline.Result) {
	if len(res.Anomalies) == 0 {
		return
	}
	b.WriteString("## Anomalies\n\n")
	for _, a := range res.Anomalies {
		fmt.Fprintf(b, "- **%s** (%s): %s Expected range: %s.\n",
			titleCase(a.Metric), a.Severity, a.Explanation, a.ExpectedRange)
	}
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder, res *pipeline.Result) {
	b.WriteString("## Strategic Recommendations\n\n")
	for _, ins := range res.Insights {
		if ins.Category == "Overall Assessment" {
			continue
		}
		fmt.Fprintf(b, "**%s Priority - %s**\n\n", ins.Priority, ins.Category)
		fmt.Fprintf(b, "%s\n\n", ins.Recommendation)
		fmt.Fprintf(b, "*Expected Impact: %s*\n\n", ins.Impact)
	}
}

func writeTrends(b *strings.Builder, res *pipeline.Result) {
	tr := res.Trends
	b.WriteString("## Trends\n\n")
	fmt.Fprintf(b, "- Revenue: %s\n- Profit: %s\n- Cash flow: %s\n",
		tr.RevenueTrend, tr.ProfitTrend, tr.CashFlowTrend)
	for _, obs := range tr.KeyObservations {
		fmt.Fprintf(b, "- %s\n", obs)
	}
	b.WriteString("\n")
}

// writeAssumptions discloses the growth figures, which are modeling defaults
// rather than measurements when only one period of data exists.
func writeAssumptions(b *strings.Builder, res *pipeline.Result) {
	growth := res.Ratios.ByCategory(ratio.Growth)
	if len(growth) == 0 {
		return
	}
	b.WriteString("## Assumptions\n\n")
	b.WriteString("Growth rates below are standing assumptions, not measured values:\n\n")
	names := make([]string, 0, len(growth))
	for name := range growth {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if f, ok := growth[name].Float(); ok {
			fmt.Fprintf(b, "- %s: %.0f%%\n", titleCase(name), f*100)
		}
	}
	b.WriteString("\n")
}

func titleCase(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
