// Package report serves rendered reports for stored analyses.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"

	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/report"
	"finanalyzer/pkg/core/store"
	"finanalyzer/pkg/models"
)

var (
	profiles      map[string]ratio.Profile
	analysisStore *store.AnalysisStore
)

// InitHandler wires the benchmark profiles and the persistence layer.
func InitHandler(p map[string]ratio.Profile, s *store.AnalysisStore) {
	profiles = p
	analysisStore = s
}

// HandleReport renders a stored analysis. GET with query parameters:
// id (required), format ("markdown", default, or "html").
func HandleReport(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing id parameter"))
		return
	}

	rec, err := analysisStore.Get(r.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			writeError(w, http.StatusNotFound, err)
		} else {
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	profile, ok := profiles[rec.Industry]
	if !ok {
		profile = ratio.DefaultProfile()
	}
	meta := report.Meta{
		AnalysisID:  rec.ID,
		Filename:    rec.Filename,
		Industry:    rec.Industry,
		GeneratedAt: rec.CreatedAt,
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		fmt.Fprint(w, report.Markdown(rec.Result, profile, meta))
	case "html":
		html, err := report.HTML(rec.Result, profile, meta)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported format: %q", format))
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: err.Error()})
}
