package profile

import "autoviz/internal/dataset"

// ColumnType is the semantic classification of a column, independent of how
// the source stored it.
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeTemporal    ColumnType = "temporal"
	TypeCategorical ColumnType = "categorical"
	TypeUnknown     ColumnType = "unknown"
)

// Classify maps every column of the table to its semantic type. The mapping
// is pure and deterministic: a column's intrinsic kind decides the type, so
// empty columns classify by declared kind rather than by value inspection.
func Classify(t *dataset.Table) map[string]ColumnType {
	types := make(map[string]ColumnType, t.ColumnCount())
	for _, c := range t.Columns() {
		types[c.Name] = classifyKind(c.Kind)
	}
	return types
}

func classifyKind(k dataset.Kind) ColumnType {
	switch k {
	case dataset.KindNumeric:
		return TypeNumeric
	case dataset.KindTemporal:
		return TypeTemporal
	case dataset.KindText:
		return TypeCategorical
	default:
		return TypeUnknown
	}
}
