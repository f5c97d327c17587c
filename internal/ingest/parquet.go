package ingest

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
)

// parquetBatchSize is how many rows are pulled from a row group per read.
const parquetBatchSize = 256

// ReadParquet reads a flat Parquet file into a table. Column names become the
// header and every value is rendered as text so the file flows through the
// same validation as CSV input. Nested or repeated columns are rejected.
func ReadParquet(source string, r io.ReaderAt, size int64) (core.Table, error) {
	f, err := parquet.OpenFile(r, size)
	if err != nil {
		return core.Table{}, fmt.Errorf("invalid parquet: %w", err)
	}

	fields := f.Schema().Fields()
	if len(fields) == 0 {
		return core.Table{}, ErrEmptyFile
	}

	t := core.Table{Source: source, Header: make([]string, len(fields))}
	for i, field := range fields {
		if !field.Leaf() || field.Repeated() {
			return core.Table{}, fmt.Errorf("invalid parquet: column %q is nested or repeated", field.Name())
		}
		t.Header[i] = field.Name()
	}

	for _, rg := range f.RowGroups() {
		if err := appendRowGroup(&t, rg); err != nil {
			return core.Table{}, fmt.Errorf("invalid parquet: %w", err)
		}
	}
	return t, nil
}

func appendRowGroup(t *core.Table, rg parquet.RowGroup) error {
	rows := rg.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, parquetBatchSize)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			if record := parquetRecord(row, len(t.Header)); !core.IsEmptyRow(record) {
				t.Rows = append(t.Rows, record)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func parquetRecord(row parquet.Row, width int) []string {
	record := make([]string, width)
	for _, v := range row {
		col := v.Column()
		if col < 0 || col >= width || v.IsNull() {
			continue
		}
		record[col] = parquetText(v)
	}
	return record
}

func parquetText(v parquet.Value) string {
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'f', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}
