// Package analyze runs the full pipeline on an uploaded document.
package analyze

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"finanalyzer/pkg/api/upload"
	"finanalyzer/pkg/core/ingest"
	"finanalyzer/pkg/core/pipeline"
	"finanalyzer/pkg/core/ratio"
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

// HandleAnalyze ingests an upload, runs the pipeline against the requested
// industry profile ("industry" query parameter, default profile otherwise),
// stores the result, and returns it. POST multipart/form-data with "file".
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filename, data, err := upload.ReadFilePart(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := ingest.Process(filename, data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	industry := r.URL.Query().Get("industry")
	profile, err := profileFor(industry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result := pipeline.New(profile).Run(res.Bundle)

	rec := &store.Record{
		ID:        uuid.NewString(),
		Filename:  filename,
		Industry:  profile.Name,
		CreatedAt: time.Now().UTC(),
		Result:    result,
	}
	if analysisStore != nil {
		if err := analysisStore.Save(r.Context(), rec); err != nil {
			// Analysis still succeeded; only report regeneration is affected.
			fmt.Printf("[ANALYZE] store save failed for %s: %v\n", rec.ID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.AnalysisResponse{
		Success:    true,
		AnalysisID: rec.ID,
		Filename:   filename,
		Industry:   profile.Name,
		AnalyzedAt: rec.CreatedAt,
		Result:     result,
	})
}

func profileFor(industry string) (ratio.Profile, error) {
	if industry == "" {
		industry = "default"
	}
	if p, ok := profiles[industry]; ok {
		return p, nil
	}
	return ratio.Profile{}, fmt.Errorf("unknown industry profile: %q", industry)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: err.Error()})
}
