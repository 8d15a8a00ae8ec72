package connector

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"autoviz/internal/dataset"
)

// LoadCSV reads a CSV/TSV file into a table. The delimiter is sniffed from
// the extension and the header line unless Options.Delimiter is set.
func LoadCSV(path string, opt Options) (*dataset.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	if opt.Delimiter == 0 {
		opt.Delimiter = sniffDelimiter(path, raw)
	}
	return ParseCSV(raw, opt)
}

// ParseCSV materializes in-memory CSV bytes, sniffing the delimiter from the
// header when Options.Delimiter is unset.
func ParseCSV(raw []byte, opt Options) (*dataset.Table, error) {
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter("", raw)
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, dataset.ErrNoColumns
	}
	return dataset.FromRecords(records[0], capRows(records[1:], opt.MaxRows))
}

// sniffDelimiter picks the candidate most frequent in the header line, with
// the .tsv extension as a shortcut.
func sniffDelimiter(path string, raw []byte) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	header := string(raw)
	if i := strings.IndexByte(header, '\n'); i >= 0 {
		header = header[:i]
	}
	best, bestCount := ',', 0
	for _, cand := range []rune{',', ';', '\t'} {
		if n := strings.Count(header, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	return best
}
