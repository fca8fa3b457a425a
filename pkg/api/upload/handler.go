// Package upload handles document upload and parsing without analysis.
package upload

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"finanalyzer/pkg/core/ingest"
	"finanalyzer/pkg/models"
)

// maxUploadBytes caps the multipart form we are willing to buffer.
const maxUploadBytes = 32 << 20

// HandleUpload parses an uploaded document and returns which statement
// sections were recognized. POST multipart/form-data with a "file" part.
func HandleUpload(w http.ResponseWriter, r *http.Request) {
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

	filename, data, err := ReadFilePart(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := ingest.Process(filename, data)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.UploadResponse{
		Success:     true,
		Filename:    filename,
		FileType:    res.Format,
		DataPreview: res.Preview,
		Message:     "File processed successfully",
	})
}

// ReadFilePart extracts the "file" part of a multipart request. Shared with
// the analyze handler, which accepts the same upload shape.
func ReadFilePart(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, fmt.Errorf("parse upload: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("missing file part: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	return header.Filename, data, nil
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: err.Error()})
}
