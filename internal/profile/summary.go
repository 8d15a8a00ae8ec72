package profile

import (
	"sort"

	"autoviz/internal/dataset"
	"autoviz/internal/stat"
)

// NumericSummary captures the descriptive statistics of one numeric column.
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// CategoricalSummary captures cardinality facts of one categorical column.
type CategoricalSummary struct {
	UniqueCount int    `json:"unique_count"`
	MostCommon  string `json:"most_common"`
}

// StatisticalSummary aggregates per-column statistics plus the global
// missing-value counts.
type StatisticalSummary struct {
	Numeric       map[string]NumericSummary     `json:"numeric_stats"`
	Categorical   map[string]CategoricalSummary `json:"categorical_stats"`
	MissingValues map[string]int                `json:"missing_values"`
}

// Summarize computes the statistical summary for every column. Columns with
// no non-missing values contribute only to the missing counts.
func Summarize(t *dataset.Table, types map[string]ColumnType) StatisticalSummary {
	s := StatisticalSummary{
		Numeric:       map[string]NumericSummary{},
		Categorical:   map[string]CategoricalSummary{},
		MissingValues: map[string]int{},
	}
	for _, c := range t.Columns() {
		s.MissingValues[c.Name] = c.Missing()
		switch types[c.Name] {
		case TypeNumeric:
			vals := c.Floats()
			if len(vals) == 0 {
				continue
			}
			sorted := dataset.SortedCopy(vals)
			s.Numeric[c.Name] = NumericSummary{
				Mean:   stat.Mean(vals),
				Std:    stat.Std(vals),
				Min:    sorted[0],
				Max:    sorted[len(sorted)-1],
				Median: stat.Median(vals),
			}
		case TypeCategorical:
			vals := c.Strings()
			if len(vals) == 0 {
				continue
			}
			s.Categorical[c.Name] = summarizeCategories(vals)
		}
	}
	return s
}

func summarizeCategories(vals []string) CategoricalSummary {
	counts := map[string]int{}
	for _, v := range vals {
		counts[v]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	// Deterministic mode: highest count, lexicographic tie-break.
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] == counts[keys[j]] {
			return keys[i] < keys[j]
		}
		return counts[keys[i]] > counts[keys[j]]
	})
	return CategoricalSummary{UniqueCount: len(counts), MostCommon: keys[0]}
}
