package dataset

import (
	"errors"
	"testing"
)

func TestFromRecordsClassification(t *testing.T) {
	header := []string{"amount", "when", "label", "blank"}
	rows := [][]string{
		{"1.5", "2024-01-01", "alpha", ""},
		{"2", "2024-01-02", "beta", ""},
		{"", "2024-01-03", "42ish", ""},
	}
	tab, err := FromRecords(header, rows)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	if tab.RowCount() != 3 || tab.ColumnCount() != 4 {
		t.Fatalf("got %dx%d, want 3x4", tab.RowCount(), tab.ColumnCount())
	}

	want := map[string]Kind{
		"amount": KindNumeric,
		"when":   KindTemporal,
		"label":  KindText,
		"blank":  KindUnknown,
	}
	for name, kind := range want {
		c, err := tab.Column(name)
		if err != nil {
			t.Fatalf("Column(%q): %v", name, err)
		}
		if c.Kind != kind {
			t.Errorf("column %q: kind = %q, want %q", name, c.Kind, kind)
		}
	}
}

func TestFromRecordsMixedColumnIsText(t *testing.T) {
	// One non-numeric cell demotes the whole column to text.
	tab, err := FromRecords([]string{"v"}, [][]string{{"1"}, {"2"}, {"x"}})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	c, _ := tab.Column("v")
	if c.Kind != KindText {
		t.Fatalf("kind = %q, want text", c.Kind)
	}
	if got := c.Strings(); len(got) != 3 || got[2] != "x" {
		t.Fatalf("Strings() = %v", got)
	}
}

func TestFromRecordsMissingAndPadding(t *testing.T) {
	tab, err := FromRecords([]string{"a", "b"}, [][]string{
		{"1", "x"},
		{"2"}, // short row, b missing
		{"", "z"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	a, _ := tab.Column("a")
	b, _ := tab.Column("b")
	if a.Missing() != 1 || b.Missing() != 1 {
		t.Fatalf("missing = %d,%d, want 1,1", a.Missing(), b.Missing())
	}
	if tab.MissingCells() != 2 {
		t.Fatalf("MissingCells() = %d, want 2", tab.MissingCells())
	}
	if got := a.Floats(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Floats() = %v", got)
	}
}

func TestFromRecordsNoColumns(t *testing.T) {
	if _, err := FromRecords(nil, nil); !errors.Is(err, ErrNoColumns) {
		t.Fatalf("err = %v, want ErrNoColumns", err)
	}
}

func TestColumnLookupUnknown(t *testing.T) {
	tab, _ := FromRecords([]string{"a"}, [][]string{{"1"}})
	if _, err := tab.Column("nope"); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("err = %v, want ErrUnknownColumn", err)
	}
}

func TestPairedFloats(t *testing.T) {
	tab, err := FromRecords([]string{"x", "y"}, [][]string{
		{"1", "10"},
		{"2", ""},
		{"3", "30"},
		{"", "40"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	x, _ := tab.Column("x")
	y, _ := tab.Column("y")
	xs, ys := tab.PairedFloats(x, y)
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("paired lengths = %d,%d, want 2,2", len(xs), len(ys))
	}
	if xs[0] != 1 || ys[0] != 10 || xs[1] != 3 || ys[1] != 30 {
		t.Fatalf("paired = %v, %v", xs, ys)
	}
}

func TestFromValues(t *testing.T) {
	tab, err := FromValues([]string{"n", "s"}, map[string][]any{
		"n": {1.0, 2.5, nil},
		"s": {"a", "b", "c"},
	})
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	n, _ := tab.Column("n")
	if n.Kind != KindNumeric || n.Missing() != 1 {
		t.Fatalf("n: kind=%q missing=%d", n.Kind, n.Missing())
	}
	s, _ := tab.Column("s")
	if s.Kind != KindText {
		t.Fatalf("s: kind=%q, want text", s.Kind)
	}
}

func TestCellRendering(t *testing.T) {
	tab, _ := FromRecords([]string{"v"}, [][]string{{"1.5"}, {""}})
	c, _ := tab.Column("v")
	if got := c.Cell(0); got != "1.5" {
		t.Fatalf("Cell(0) = %q", got)
	}
	if got := c.Cell(1); got != "" {
		t.Fatalf("Cell(1) = %q, want empty", got)
	}
}
