package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
)

var (
	// ErrEmptyFile is returned when a file holds no header row.
	ErrEmptyFile = errors.New("empty file: no header row")

	// ErrFileTooLarge is wrapped when an input exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// ReadCSV parses a CSV extract into a table.
// The first non-empty record is the header; later empty records are dropped.
func ReadCSV(source string, r io.Reader) (core.Table, error) {
	reader := csv.NewReader(WrapForStreaming(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	t := core.Table{Source: source}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return core.Table{}, fmt.Errorf("invalid csv: %w", err)
		}
		if core.IsEmptyRow(record) {
			continue
		}
		if t.Header == nil {
			t.Header = record
			continue
		}
		t.Rows = append(t.Rows, record)
	}

	if t.Header == nil {
		return core.Table{}, ErrEmptyFile
	}
	return t, nil
}
