package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"finanalyzer/pkg/core/statement"
)

// FromCSV parses a delimited table into bundle records. The first row is the
// header; every following row becomes one record keyed by the lowercased
// header names, which is the shape splitRecord-style consumers expect
// ("item"/"metric"/"name" label column plus "value"/"amount" column).
func FromCSV(data []byte) (*statement.Bundle, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // ragged rows tolerated

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return &statement.Bundle{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	b := &statement.Bundle{}
	for _, row := range rows[1:] {
		rec := map[string]interface{}{}
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			rec[header[i]] = strings.TrimSpace(cell)
		}
		if len(rec) > 0 {
			b.Records = append(b.Records, rec)
		}
	}
	return b, nil
}
