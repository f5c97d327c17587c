package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	_ "github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core/tables"
)

const (
	enrolmentCSV = "date,state,district,pincode,age_0_5,age_5_17,age_18_greater\n" +
		"01-03-2025,Odisha,Cuttack,753001,10,20,30\n" +
		"01-03-2025,orissa,puri,752001,5,0,5\n"

	biometricCSV = "date,state,district,pincode,bio_age_5_17,bio_age_17_\n" +
		"01-03-2025,Odisha,Cuttack,753001,40,60\n"

	demographicCSV = "date,state,district,pincode,demo_age_5_17,demo_age_17_\n" +
		"01-03-2025,Odisha,Puri,752001,7,3\n"

	noPincodeCSV = "date,state,district,age_0_5,age_5_17,age_18_greater\n" +
		"01-03-2025,Odisha,Cuttack,1,1,1\n"
)

// zipBytes builds an archive with members written in the given order.
func zipBytes(t *testing.T, members ...[2]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range members {
		w, err := zw.Create(m[0])
		if err != nil {
			t.Fatalf("zip Create(%q) error: %v", m[0], err)
		}
		if _, err := w.Write([]byte(m[1])); err != nil {
			t.Fatalf("zip Write(%q) error: %v", m[0], err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip Close() error: %v", err)
	}
	return buf.Bytes()
}

type enrolmentRecord struct {
	Date         string `parquet:"date"`
	State        string `parquet:"state"`
	District     string `parquet:"district"`
	Pincode      string `parquet:"pincode"`
	Age0To5      int64  `parquet:"age_0_5"`
	Age5To17     int64  `parquet:"age_5_17"`
	Age18Greater int64  `parquet:"age_18_greater"`
}

func parquetBytes(t *testing.T, records []enrolmentRecord) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := parquet.NewGenericWriter[enrolmentRecord](&buf)
	if _, err := w.Write(records); err != nil {
		t.Fatalf("parquet Write() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("parquet Close() error: %v", err)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error: %v", path, err)
	}
	return path
}

func source(name string, data []byte) Source {
	return Source{Name: name, Reader: bytes.NewReader(data), Size: int64(len(data))}
}
