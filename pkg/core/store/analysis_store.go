// Package store persists analysis results so reports can be regenerated
// after the upload request has completed. Storage is hybrid: Postgres when a
// pool is configured, JSON files on disk otherwise. Only the latest result
// per analysis id is kept; there is no history.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"finanalyzer/pkg/core/pipeline"
)

// Record is one stored analysis: the deterministic pipeline result plus the
// run metadata that stays out of the result itself.
type Record struct {
	ID        string           `json:"id"`
	Filename  string           `json:"filename"`
	Industry  string           `json:"industry"`
	CreatedAt time.Time        `json:"created_at"`
	Result    *pipeline.Result `json:"result"`
}

// ErrNotFound is returned when no record exists for an id.
var ErrNotFound = fmt.Errorf("analysis not found")

// AnalysisStore reads and writes Records.
// Schema assumption for the DB path:
//
//	CREATE TABLE IF NOT EXISTS analyses (
//	  id TEXT PRIMARY KEY,
//	  filename TEXT,
//	  industry TEXT,
//	  result_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
type AnalysisStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewAnalysisStore creates a store. A nil pool selects the file backend; an
// empty dir then defaults to .cache/analyses.
func NewAnalysisStore(pool *pgxpool.Pool, dir string) *AnalysisStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "analyses")
	}
	if pool == nil {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] analysis store dir: %v\n", err)
		}
	}
	return &AnalysisStore{pool: pool, fileDir: dir}
}

// Save upserts a record under its id.
func (s *AnalysisStore) Save(ctx context.Context, rec *Record) error {
	if s.pool != nil {
		resultJSON, err := json.Marshal(rec.Result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		query := `
			INSERT INTO analyses (id, filename, industry, result_json, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id)
			DO UPDATE SET
				filename = EXCLUDED.filename,
				industry = EXCLUDED.industry,
				result_json = EXCLUDED.result_json,
				created_at = EXCLUDED.created_at;
		`
		if _, err := s.pool.Exec(ctx, query, rec.ID, rec.Filename, rec.Industry, resultJSON, rec.CreatedAt); err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return os.WriteFile(s.path(rec.ID), data, 0644)
}

// Get loads the record for an id, or ErrNotFound.
func (s *AnalysisStore) Get(ctx context.Context, id string) (*Record, error) {
	if s.pool != nil {
		query := `SELECT filename, industry, result_json, created_at FROM analyses WHERE id = $1`
		rec := Record{ID: id}
		var resultJSON []byte
		err := s.pool.QueryRow(ctx, query, id).Scan(&rec.Filename, &rec.Industry, &resultJSON, &rec.CreatedAt)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("load analysis: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		return &rec, nil
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read analysis file: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &rec, nil
}

// Delete removes a record. Deleting a missing id is not an error.
func (s *AnalysisStore) Delete(ctx context.Context, id string) error {
	if s.pool != nil {
		_, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
		return err
	}
	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *AnalysisStore) path(id string) string {
	return filepath.Join(s.fileDir, id+".json")
}
