// Command analyze runs the analysis pipeline on a local document and writes
// the report to stdout. Useful for batch runs and eyeballing results without
// the API server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finanalyzer/pkg/core/ingest"
	"finanalyzer/pkg/core/pipeline"
	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/report"
)

func main() {
	godotenv.Load()

	industry := flag.String("industry", "default", "benchmark profile name")
	format := flag.String("format", "markdown", "output format: markdown, html, json")
	benchmarks := flag.String("benchmarks", "config/benchmarks.yaml", "benchmark profile YAML")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [flags] <document>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	profiles, err := ratio.Profiles(*benchmarks)
	if err != nil {
		fatal("load benchmarks: %v", err)
	}
	profile, ok := profiles[*industry]
	if !ok {
		fatal("unknown industry profile: %q", *industry)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read document: %v", err)
	}
	parsed, err := ingest.Process(path, data)
	if err != nil {
		fatal("parse document: %v", err)
	}

	result := pipeline.New(profile).Run(parsed.Bundle)
	meta := report.Meta{
		Filename:    path,
		Industry:    profile.Name,
		GeneratedAt: time.Now().UTC(),
	}

	switch *format {
	case "markdown":
		fmt.Print(report.Markdown(result, profile, meta))
	case "html":
		html, err := report.HTML(result, profile, meta)
		if err != nil {
			fatal("render html: %v", err)
		}
		os.Stdout.Write(html)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fatal("encode json: %v", err)
		}
	default:
		fatal("unsupported format: %q", *format)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[FATAL] "+format+"\n", args...)
	os.Exit(1)
}
