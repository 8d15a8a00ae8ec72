// Package connector materializes tabular datasets from external sources:
// CSV/TSV files, JSON files or inline documents, Excel workbooks, HTTP APIs,
// and PostgreSQL.
// The front door auto-detects the source type so callers can hand over a
// bare string and get a table back.
package connector

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"autoviz/internal/dataset"
)

// SourceType identifies which connector handles a source.
type SourceType string

const (
	TypeCSV   SourceType = "csv"
	TypeJSON  SourceType = "json"
	TypeExcel SourceType = "excel"
	TypeAPI   SourceType = "api"
	TypeSQL   SourceType = "sql"
)

// Options tunes connector behavior. The zero value is usable.
type Options struct {
	// MaxRows caps materialized rows; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV; 0 sniffs among ',', ';', '\t'.
	Delimiter rune
	// HTTPTimeout bounds API fetches; 0 means 30s.
	HTTPTimeout time.Duration
	// DataPath is a dotted path into API responses, e.g. "data.results".
	DataPath string
	// PostgresDSN is the connection string for SQL sources.
	PostgresDSN string
	// SheetName selects a worksheet for Excel sources; empty means the first.
	SheetName string
}

// Detect guesses the source type from the shape of the source string:
// URL scheme, file extension, SQL prefix, or parseable inline JSON.
func Detect(source string) (SourceType, error) {
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return TypeAPI, nil
	}
	trimmed := strings.TrimSpace(strings.ToLower(source))
	if strings.HasPrefix(trimmed, "select ") ||
		strings.HasPrefix(trimmed, "postgres://") || strings.HasPrefix(trimmed, "postgresql://") {
		return TypeSQL, nil
	}
	if _, err := os.Stat(source); err == nil {
		switch strings.ToLower(filepath.Ext(source)) {
		case ".csv", ".tsv":
			return TypeCSV, nil
		case ".json":
			return TypeJSON, nil
		case ".xlsx":
			return TypeExcel, nil
		}
	}
	if json.Valid([]byte(source)) && (strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{")) {
		return TypeJSON, nil
	}
	return "", fmt.Errorf("connector: could not detect source type for %q", source)
}

// Load materializes the source into a table. An empty typ auto-detects.
func Load(source string, typ SourceType, opt Options) (*dataset.Table, error) {
	if typ == "" {
		t, err := Detect(source)
		if err != nil {
			return nil, err
		}
		typ = t
	}
	switch typ {
	case TypeCSV:
		return LoadCSV(source, opt)
	case TypeJSON:
		return LoadJSON(source, opt)
	case TypeExcel:
		return LoadXLSX(source, opt)
	case TypeAPI:
		return LoadAPI(source, opt)
	case TypeSQL:
		return LoadPostgres(source, opt)
	default:
		return nil, fmt.Errorf("connector: unsupported source type %q", typ)
	}
}

func capRows(rows [][]string, max int) [][]string {
	if max > 0 && len(rows) > max {
		return rows[:max]
	}
	return rows
}
