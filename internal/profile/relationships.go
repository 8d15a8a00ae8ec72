package profile

import (
	"math"

	"autoviz/internal/dataset"
	"autoviz/internal/stat"
)

// Relationship kinds, bucketed from the absolute Pearson correlation of a
// numeric column pair.
const (
	RelStrong         = "strong_correlation"
	RelStrongNegative = "strong_negative_correlation"
	RelModerate       = "moderate_correlation"
	RelModerateNeg    = "moderate_negative_correlation"
)

// Relationship records a correlated column pair. A and B follow the original
// column order (A appears before B in the table).
type Relationship struct {
	A    string `json:"column_a"`
	B    string `json:"column_b"`
	Kind string `json:"kind"`
}

// Relationships computes pairwise Pearson correlations across all numeric
// columns and keeps the pairs whose |r| exceeds 0.4. Fewer than two numeric
// columns yields an empty result, not an error. Pairs appear in outer-index,
// then inner-index order, each unordered pair exactly once.
func Relationships(t *dataset.Table, types map[string]ColumnType) []Relationship {
	var numeric []*dataset.Column
	for _, c := range t.Columns() {
		if types[c.Name] == TypeNumeric {
			numeric = append(numeric, c)
		}
	}
	if len(numeric) < 2 {
		return nil
	}

	var out []Relationship
	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			x, y := t.PairedFloats(numeric[i], numeric[j])
			r := stat.Pearson(x, y)
			kind, ok := bucketCorrelation(r)
			if !ok {
				continue
			}
			out = append(out, Relationship{A: numeric[i].Name, B: numeric[j].Name, Kind: kind})
		}
	}
	return out
}

func bucketCorrelation(r float64) (string, bool) {
	abs := math.Abs(r)
	switch {
	case abs > 0.7:
		if r > 0 {
			return RelStrong, true
		}
		return RelStrongNegative, true
	case abs > 0.4:
		if r > 0 {
			return RelModerate, true
		}
		return RelModerateNeg, true
	}
	return "", false
}
