package ingest

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestReadParquet(t *testing.T) {
	data := parquetBytes(t, []enrolmentRecord{
		{Date: "01-03-2025", State: "Odisha", District: "Cuttack", Pincode: "753001", Age0To5: 10, Age5To17: 20, Age18Greater: 30},
		{Date: "01-03-2025", State: "Odisha", District: "Puri", Pincode: "752001", Age0To5: 5},
	})

	got, err := ReadParquet("enrolment.parquet", bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("ReadParquet() error: %v", err)
	}

	wantHeader := []string{"date", "state", "district", "pincode", "age_0_5", "age_5_17", "age_18_greater"}
	if !reflect.DeepEqual(got.Header, wantHeader) {
		t.Errorf("Header = %v, want %v", got.Header, wantHeader)
	}

	wantRows := [][]string{
		{"01-03-2025", "Odisha", "Cuttack", "753001", "10", "20", "30"},
		{"01-03-2025", "Odisha", "Puri", "752001", "5", "0", "0"},
	}
	if !reflect.DeepEqual(got.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", got.Rows, wantRows)
	}
}

func TestReadParquet_Invalid(t *testing.T) {
	data := []byte("PAR1 definitely not parquet")

	_, err := ReadParquet("broken.parquet", bytes.NewReader(data), int64(len(data)))
	if err == nil {
		t.Fatal("ReadParquet() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid parquet") {
		t.Errorf("ReadParquet() error = %q, want it to contain %q", err, "invalid parquet")
	}
}
