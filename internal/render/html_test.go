package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autoviz/internal/dataset"
	"autoviz/internal/profile"
)

func mustTable(t *testing.T, header []string, rows [][]string) *dataset.Table {
	t.Helper()
	tab, err := dataset.FromRecords(header, rows)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return tab
}

func TestAutoBind(t *testing.T) {
	tab := mustTable(t, []string{"a", "b", "c", "label"}, [][]string{
		{"1", "2", "3", "red"},
		{"4", "5", "6", "blue"},
	})
	b := AutoBind(tab, profile.VizScatter3D, Bindings{})
	if b.X != "a" || b.Y != "b" || b.Z != "c" {
		t.Fatalf("axes = %q,%q,%q", b.X, b.Y, b.Z)
	}
	if b.Color != "label" {
		t.Fatalf("color = %q, want label", b.Color)
	}

	// Explicit bindings survive.
	b = AutoBind(tab, profile.VizScatter3D, Bindings{X: "c"})
	if b.X != "c" {
		t.Fatalf("X = %q, want c", b.X)
	}
}

func TestAutoBindNetwork(t *testing.T) {
	tab := mustTable(t, []string{"source", "target"}, [][]string{{"a", "b"}})
	b := AutoBind(tab, profile.VizNetwork, Bindings{})
	if b.SourceCol != "source" || b.TargetCol != "target" {
		t.Fatalf("edge bindings = %q,%q", b.SourceCol, b.TargetCol)
	}
}

func TestWriteHTML(t *testing.T) {
	tab := mustTable(t, []string{"x", "y", "z"}, [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
	})
	path := filepath.Join(t.TempDir(), "out.html")
	if err := WriteHTML(tab, profile.VizScatter3D, "", path, Bindings{}); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(raw)
	for _, want := range []string{"plotly", `"3d_scatter"`, `["x","y","z"]`, "scatter: x vs y"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDefaultTitle(t *testing.T) {
	got := defaultTitle(profile.VizSurface3D, Bindings{X: "a", Y: "b"})
	if got != "surface: a vs b" {
		t.Fatalf("title = %q", got)
	}
}
