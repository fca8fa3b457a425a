package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"finanalyzer/pkg/core/statement"
)

// FromHTML extracts label/value rows from every table in an HTML document.
// A qualifying row has a textual first cell and at least one later cell that
// carries a number; the first numeric cell wins (leftmost column is the most
// recent period in statement tables).
func FromHTML(html string) (*statement.Bundle, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	b := &statement.Bundle{}
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			if rec := rowRecord(row); rec != nil {
				b.Records = append(b.Records, rec)
			}
		})
	})
	return b, nil
}

func rowRecord(row *goquery.Selection) map[string]interface{} {
	cells := row.Find("td, th")
	if cells.Length() < 2 {
		return nil
	}

	label := strings.TrimSpace(cells.First().Text())
	if label == "" || numberRe.MatchString(label) {
		return nil
	}

	var value string
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		text := strings.TrimSpace(cell.Text())
		if m := numberRe.FindString(text); m != "" {
			value = m
			return false
		}
		return true
	})
	if value == "" {
		return nil
	}

	return map[string]interface{}{"item": label, "value": value}
}
