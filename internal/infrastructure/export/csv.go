package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// CSVWriter builds an in-memory CSV document with a fixed header row.
// Every row must carry exactly as many cells as the header.
type CSVWriter struct {
	headers []string
	rows    [][]string
}

// NewCSVWriter creates a writer for the given column headers
func NewCSVWriter(headers ...string) *CSVWriter {
	return &CSVWriter{headers: headers}
}

// AppendRow adds one data row. Cells are stringified with fmt.Sprint;
// time.Time cells are formatted as RFC 3339 dates.
func (w *CSVWriter) AppendRow(cells ...any) error {
	if len(cells) != len(w.headers) {
		return fmt.Errorf("csv row has %d cells, header has %d", len(cells), len(w.headers))
	}
	row := make([]string, len(cells))
	for i, cell := range cells {
		switch v := cell.(type) {
		case nil:
			row[i] = ""
		case string:
			row[i] = v
		case time.Time:
			row[i] = v.Format("2006-01-02")
		case fmt.Stringer:
			row[i] = v.String()
		default:
			row[i] = fmt.Sprint(v)
		}
	}
	w.rows = append(w.rows, row)
	return nil
}

// Bytes renders the document, header first
func (w *CSVWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(w.headers); err != nil {
		return nil, err
	}
	if err := cw.WriteAll(w.rows); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds a dated export file name like "expenses_2026-09-01.csv"
func Filename(dataset string, at time.Time) string {
	return fmt.Sprintf("%s_%s.csv", dataset, at.Format("2006-01-02"))
}
