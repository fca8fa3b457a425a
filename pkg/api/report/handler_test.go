package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"finanalyzer/pkg/core/pipeline"
	"finanalyzer/pkg/core/ratio"
	"finanalyzer/pkg/core/statement"
	"finanalyzer/pkg/core/store"
)

func setup(t *testing.T) string {
	t.Helper()
	profiles, err := ratio.Profiles("")
	if err != nil {
		t.Fatal(err)
	}
	s := store.NewAnalysisStore(nil, t.TempDir())
	InitHandler(profiles, s)

	res := pipeline.New(ratio.DefaultProfile()).Run(&statement.Bundle{
		Metrics: map[string]interface{}{
			"total_assets": 1000000,
			"revenue":      1000000,
			"net_income":   120000,
		},
	})
	rec := &store.Record{
		ID:        uuid.NewString(),
		Filename:  "fy2024.txt",
		Industry:  "default",
		CreatedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Result:    res,
	}
	if err := s.Save(context.Background(), rec); err != nil {
		t.Fatal(err)
	}
	return rec.ID
}

func TestHandleReportMarkdown(t *testing.T) {
	id := setup(t)

	rr := httptest.NewRecorder()
	HandleReport(rr, httptest.NewRequest("GET", "/api/report?id="+id, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("unexpected content type %s", ct)
	}
	if !strings.Contains(rr.Body.String(), "# Financial Analysis Report") {
		t.Error("markdown body missing title")
	}
}

func TestHandleReportHTML(t *testing.T) {
	id := setup(t)

	rr := httptest.NewRecorder()
	HandleReport(rr, httptest.NewRequest("GET", "/api/report?id="+id+"&format=html", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "<h1") {
		t.Error("html body missing rendered heading")
	}
}

func TestHandleReportNotFound(t *testing.T) {
	setup(t)

	rr := httptest.NewRecorder()
	HandleReport(rr, httptest.NewRequest("GET", "/api/report?id="+uuid.NewString(), nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestHandleReportMissingID(t *testing.T) {
	setup(t)

	rr := httptest.NewRecorder()
	HandleReport(rr, httptest.NewRequest("GET", "/api/report", nil))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestHandleReportBadFormat(t *testing.T) {
	id := setup(t)

	rr := httptest.NewRecorder()
	HandleReport(rr, httptest.NewRequest("GET", "/api/report?id="+id+"&format=pdf", nil))
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}
