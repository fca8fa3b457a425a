package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"finanalyzer/pkg/api/analyze"
	"finanalyzer/pkg/api/report"
	"finanalyzer/pkg/api/upload"
	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Benchmark profiles: built-ins plus optional YAML overrides
	benchmarkPath := os.Getenv("BENCHMARK_CONFIG")
	if benchmarkPath == "" {
		benchmarkPath = "config/benchmarks.yaml"
	}
	profiles, err := ratio.Profiles(benchmarkPath)
	if err != nil {
		fmt.Printf("[FATAL] Failed to load benchmark profiles: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[CONFIG] Loaded %d benchmark profiles\n", len(profiles))

	// Storage: Postgres when DATABASE_URL is set, file cache otherwise
	ctx := context.Background()
	var analysisStore *store.AnalysisStore
	if err := store.InitDB(ctx); err != nil {
		fmt.Printf("[WARNING] Database unavailable (%v), using file storage\n", err)
		analysisStore = store.NewAnalysisStore(nil, "")
	} else {
		analysisStore = store.NewAnalysisStore(store.GetPool(), "")
		defer store.Close()
	}

	// Endpoint wiring
	analyze.InitHandler(profiles, analysisStore)
	report.InitHandler(profiles, analysisStore)
	http.HandleFunc("/api/upload", upload.HandleUpload)
	http.HandleFunc("/api/analyze", analyze.HandleAnalyze)
	http.HandleFunc("/api/report", report.HandleReport)
	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"healthy","service":"finanalyzer"}`)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("API server starting on :%s...\n", port)
	fmt.Println("  - POST /api/upload   (parse document, return preview)")
	fmt.Println("  - POST /api/analyze  (full analysis, ?industry=<profile>)")
	fmt.Println("  - GET  /api/report   (?id=<analysis>&format=markdown|html)")
	fmt.Println("  - GET  /api/health")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
