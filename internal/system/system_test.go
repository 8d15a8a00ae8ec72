package system

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"autoviz/internal/config"
	"autoviz/internal/profile"
)

func writeCSV(t *testing.T, dir, name string, rows int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("x,y,z\n")
	for i := 0; i < rows; i++ {
		sb.WriteString(strconv.Itoa(i) + "," + strconv.Itoa(2*i) + "," + strconv.Itoa(i*i) + "\n")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func testConfig(dir string) *config.Global {
	return &config.Global{OutputDir: dir, MaxRows: 1000, HTTPTimeoutSec: 5}
}

func TestAnalyze(t *testing.T) {
	dir := t.TempDir()
	src := writeCSV(t, dir, "data.csv", 15)
	sys := New(testConfig(dir), false)

	p, err := sys.Analyze(src, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if p.RowCount != 15 || p.ColumnCount != 3 {
		t.Fatalf("profile = %dx%d, want 15x3", p.RowCount, p.ColumnCount)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	src := writeCSV(t, dir, "data.csv", 15)
	sys := New(testConfig(dir), false)

	reportPath := filepath.Join(dir, "report.json")
	res, err := sys.Generate(src, GenerateOptions{ReportPath: reportPath})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.VizType != profile.VizScatter3D {
		t.Fatalf("viz = %q, want 3d_scatter", res.VizType)
	}
	if res.Report == nil {
		t.Fatal("report missing")
	}
	if _, err := os.Stat(res.OutputPath); err != nil {
		t.Fatalf("visualization not written: %v", err)
	}
	raw, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(raw), `"data_summary"`) {
		t.Fatal("report json missing data_summary")
	}
}

func TestGenerateSkipAnalytics(t *testing.T) {
	dir := t.TempDir()
	src := writeCSV(t, dir, "data.csv", 15)
	sys := New(testConfig(dir), false)

	res, err := sys.Generate(src, GenerateOptions{SkipAnalytics: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Report != nil {
		t.Fatal("report present despite SkipAnalytics")
	}
}

func TestGenerateFallbackOnBadPreference(t *testing.T) {
	dir := t.TempDir()
	src := writeCSV(t, dir, "data.csv", 15)
	sys := New(testConfig(dir), false)

	// network is not a candidate for a plain numeric table.
	res, err := sys.Generate(src, GenerateOptions{VizType: profile.VizNetwork})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.VizType == profile.VizNetwork {
		t.Fatal("unavailable preference should fall back to autonomous choice")
	}
}

func TestBatchIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeCSV(t, dir, "good.csv", 15)
	missing := filepath.Join(dir, "missing.csv")

	sys := New(testConfig(dir), false)
	results, err := sys.Batch([]string{good, missing}, filepath.Join(dir, "out"), GenerateOptions{})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("good source failed: %v", results[0].Err)
	}
	if _, err := os.Stat(results[0].OutputPath); err != nil {
		t.Fatalf("batch output missing: %v", err)
	}
	if results[1].Err == nil {
		t.Fatal("missing source did not fail")
	}
}

func TestBatchNames(t *testing.T) {
	if got := batchName("/tmp/sales_data.csv", 0); got != "sales_data" {
		t.Fatalf("batchName = %q", got)
	}
	if got := batchName(`[{"a":1}]`, 2); got != "dataset_3" {
		t.Fatalf("inline source name = %q", got)
	}
}
