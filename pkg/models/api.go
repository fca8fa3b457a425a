// Package models defines the HTTP API response shapes.
package models

import (
	"time"

	"finanalyzer/pkg/core/ingest"
	"finanalyzer/pkg/core/pipeline"
)

// UploadResponse confirms a parsed upload before analysis runs.
type UploadResponse struct {
	Success     bool           `json:"success"`
	Filename    string         `json:"filename"`
	FileType    string         `json:"file_type"`
	DataPreview ingest.Preview `json:"data_preview"`
	Message     string         `json:"message"`
}

// AnalysisResponse is the full analysis payload. The embedded result is the
// deterministic pipeline output; id and timestamp identify this run.
type AnalysisResponse struct {
	Success    bool             `json:"success"`
	AnalysisID string           `json:"analysis_id"`
	Filename   string           `json:"filename"`
	Industry   string           `json:"industry"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
	Result     *pipeline.Result `json:"result"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
