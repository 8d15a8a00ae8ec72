package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNoColumns is returned when a table has no columns at all.
	ErrNoColumns = errors.New("dataset: table has no columns")
	// ErrUnknownColumn is returned when a requested column does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")
)

// Kind is the intrinsic storage type of a column, recoverable without
// scanning the whole table again once materialized.
type Kind string

const (
	KindNumeric  Kind = "numeric"
	KindTemporal Kind = "temporal"
	KindText     Kind = "text"
	KindUnknown  Kind = "unknown"
)

// Column is a single named, typed column. Exactly one of the value slices is
// populated depending on Kind; Valid marks non-missing cells and always has
// one entry per row.
type Column struct {
	Name  string
	Kind  Kind
	Nums  []float64
	Times []time.Time
	Strs  []string
	Valid []bool
}

// Missing reports the number of missing cells in the column.
func (c *Column) Missing() int {
	n := 0
	for _, ok := range c.Valid {
		if !ok {
			n++
		}
	}
	return n
}

// Floats returns the non-missing numeric values in row order.
// It returns nil for non-numeric columns.
func (c *Column) Floats() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Nums))
	for i, v := range c.Nums {
		if c.Valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// Strings returns the non-missing text values in row order.
// It returns nil for non-text columns.
func (c *Column) Strings() []string {
	if c.Kind != KindText {
		return nil
	}
	out := make([]string, 0, len(c.Strs))
	for i, v := range c.Strs {
		if c.Valid[i] {
			out = append(out, v)
		}
	}
	return out
}

// Cell renders the value at row i as a string, or "" when missing.
func (c *Column) Cell(i int) string {
	if i < 0 || i >= len(c.Valid) || !c.Valid[i] {
		return ""
	}
	switch c.Kind {
	case KindNumeric:
		return strconv.FormatFloat(c.Nums[i], 'g', -1, 64)
	case KindTemporal:
		return c.Times[i].Format(time.RFC3339)
	case KindText:
		return c.Strs[i]
	}
	return ""
}

// Table is an immutable in-memory tabular dataset with named columns in a
// stable order. Connectors materialize one per source; the profiling and
// insight engines only ever read it.
type Table struct {
	cols []*Column
	rows int
}

// New assembles a table from prepared columns. All columns must carry the
// same number of rows.
func New(cols []*Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	rows := len(cols[0].Valid)
	for _, c := range cols {
		if len(c.Valid) != rows {
			return nil, fmt.Errorf("dataset: column %q has %d rows, want %d", c.Name, len(c.Valid), rows)
		}
	}
	return &Table{cols: cols, rows: rows}, nil
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return t.rows }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.cols) }

// Names returns column names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name
	}
	return out
}

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column { return t.cols }

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// NumericColumns returns the numeric columns in declaration order.
func (t *Table) NumericColumns() []*Column {
	var out []*Column
	for _, c := range t.cols {
		if c.Kind == KindNumeric {
			out = append(out, c)
		}
	}
	return out
}

// TextColumns returns the text columns in declaration order.
func (t *Table) TextColumns() []*Column {
	var out []*Column
	for _, c := range t.cols {
		if c.Kind == KindText {
			out = append(out, c)
		}
	}
	return out
}

// PairedFloats returns the jointly non-missing values of two numeric columns.
func (t *Table) PairedFloats(a, b *Column) (x, y []float64) {
	if a.Kind != KindNumeric || b.Kind != KindNumeric {
		return nil, nil
	}
	for i := 0; i < t.rows; i++ {
		if a.Valid[i] && b.Valid[i] {
			x = append(x, a.Nums[i])
			y = append(y, b.Nums[i])
		}
	}
	return x, y
}

// MissingCells returns the total number of missing cells across all columns.
func (t *Table) MissingCells() int {
	n := 0
	for _, c := range t.cols {
		n += c.Missing()
	}
	return n
}

// ByteSize estimates the in-memory footprint of the column data.
func (t *Table) ByteSize() int {
	n := 0
	for _, c := range t.cols {
		n += len(c.Valid)
		n += 8 * len(c.Nums)
		n += 24 * len(c.Times)
		for _, s := range c.Strs {
			n += 16 + len(s)
		}
	}
	return n
}

var timeLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05",
}

func parseTimeMaybe(s string) (time.Time, bool) {
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseFloatMaybe(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FromRecords builds a table from a header and string rows, as read from CSV
// or a database cursor. A column is numeric when every non-empty cell parses
// as a number, temporal when every non-empty cell parses as a date/time, and
// text otherwise. Empty cells are missing; a fully empty column stays unknown.
// Short rows are padded with missing cells.
func FromRecords(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrNoColumns
	}
	ncol := len(header)
	nrow := len(rows)

	cols := make([]*Column, ncol)
	for j, name := range header {
		cols[j] = &Column{Name: strings.TrimSpace(name), Valid: make([]bool, nrow)}
	}

	cell := func(rec []string, j int) string {
		if j < len(rec) {
			return strings.TrimSpace(rec[j])
		}
		return ""
	}

	for j := 0; j < ncol; j++ {
		numeric, temporal, seen := true, true, false
		for _, rec := range rows {
			v := cell(rec, j)
			if v == "" {
				continue
			}
			seen = true
			if _, ok := parseFloatMaybe(v); !ok {
				numeric = false
			}
			if _, ok := parseTimeMaybe(v); !ok {
				temporal = false
			}
			if !numeric && !temporal {
				break
			}
		}
		c := cols[j]
		switch {
		case !seen:
			c.Kind = KindUnknown
		case numeric:
			c.Kind = KindNumeric
			c.Nums = make([]float64, nrow)
		case temporal:
			c.Kind = KindTemporal
			c.Times = make([]time.Time, nrow)
		default:
			c.Kind = KindText
			c.Strs = make([]string, nrow)
		}
		for i, rec := range rows {
			v := cell(rec, j)
			if v == "" {
				continue
			}
			c.Valid[i] = true
			switch c.Kind {
			case KindNumeric:
				c.Nums[i], _ = parseFloatMaybe(v)
			case KindTemporal:
				c.Times[i], _ = parseTimeMaybe(v)
			case KindText:
				c.Strs[i] = v
			}
		}
	}
	return New(cols)
}

// FromValues builds a table from decoded JSON column arrays. Numbers become
// numeric cells, strings that parse as timestamps become temporal cells when
// the whole column does, and everything else is text. Nil entries are missing.
func FromValues(names []string, columns map[string][]any) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	nrow := 0
	for _, vs := range columns {
		if len(vs) > nrow {
			nrow = len(vs)
		}
	}
	rows := make([][]string, nrow)
	for i := range rows {
		rows[i] = make([]string, len(names))
	}
	for j, name := range names {
		for i, v := range columns[name] {
			rows[i][j] = renderValue(v)
		}
	}
	return FromRecords(names, rows)
}

func renderValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// SortedCopy returns the non-missing values of a numeric column, sorted
// ascending. Quantile helpers expect this form.
func SortedCopy(vals []float64) []float64 {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	return cp
}
