package ingest

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
)

// macOSMetadataDir holds resource forks that Finder adds to archives.
const macOSMetadataDir = "__MACOSX/"

// Entry is one CSV member of an archive. Exactly one of Table and Err is set.
type Entry struct {
	Source string // archive.zip/member.csv
	Table  core.Table
	Err    error
}

// WalkArchive reads each CSV member of a zip archive in order and passes it
// to fn. Members larger than maxEntrySize are reported through Entry.Err
// without being read; a limit of zero disables the check. It returns the
// number of CSV members seen, or an error when the archive cannot be opened.
// Cancelling ctx stops the walk between members and returns ctx.Err().
func WalkArchive(ctx context.Context, source string, r io.ReaderAt, size, maxEntrySize int64, fn func(Entry)) (int, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return 0, fmt.Errorf("invalid archive: %w", err)
	}

	seen := 0
	for _, f := range zr.File {
		if !isArchivedCSV(f) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return seen, err
		}
		seen++
		fn(readEntry(source, f, maxEntrySize))
	}
	return seen, nil
}

func isArchivedCSV(f *zip.File) bool {
	if f.FileInfo().IsDir() || strings.HasPrefix(f.Name, macOSMetadataDir) {
		return false
	}
	return strings.EqualFold(path.Ext(f.Name), ".csv")
}

func readEntry(source string, f *zip.File, maxEntrySize int64) Entry {
	entry := Entry{Source: source + "/" + f.Name}

	if maxEntrySize > 0 && f.UncompressedSize64 > uint64(maxEntrySize) {
		entry.Err = fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, f.UncompressedSize64, maxEntrySize)
		return entry
	}

	rc, err := f.Open()
	if err != nil {
		entry.Err = fmt.Errorf("invalid archive: %w", err)
		return entry
	}
	defer rc.Close()

	return readMember(entry, rc, maxEntrySize)
}

// readMember parses an inflated member. The header size can lie, so at most
// maxEntrySize+1 bytes are inflated and the extra byte rejects the member.
func readMember(entry Entry, r io.Reader, maxEntrySize int64) Entry {
	counter := &byteCounter{reader: r}
	var body io.Reader = counter
	if maxEntrySize > 0 {
		body = io.LimitReader(counter, maxEntrySize+1)
	}

	entry.Table, entry.Err = ReadCSV(entry.Source, body)
	if maxEntrySize > 0 && counter.n > maxEntrySize {
		entry.Table = core.Table{}
		entry.Err = fmt.Errorf("%w: more than %d bytes inflated", ErrFileTooLarge, maxEntrySize)
	}
	return entry
}
