// Package profile implements the autonomous profiling side of the engine:
// semantic column classification, structural pattern detection, relationship
// analysis, and confidence-scored visualization recommendation. Everything
// here is pure computation over an in-memory table; profiling the same table
// twice yields identical results.
package profile

import (
	"autoviz/internal/dataset"
)

// DataProfile is the immutable result of one profiling pass.
type DataProfile struct {
	RowCount    int                   `json:"row_count"`
	ColumnCount int                   `json:"column_count"`
	ColumnNames []string              `json:"column_names"`
	ColumnTypes map[string]ColumnType `json:"column_types"`

	HasTemporal    bool `json:"has_temporal"`
	HasCategorical bool `json:"has_categorical"`
	HasNumeric     bool `json:"has_numeric"`
	HasNetwork     bool `json:"has_network_structure"`

	Relationships []Relationship     `json:"relationships"`
	Statistics    StatisticalSummary `json:"statistical_summary"`

	// SuggestedVisualizations is ordered by descending confidence and is
	// never empty; every entry has a matching ConfidenceScores key.
	SuggestedVisualizations []string           `json:"suggested_visualizations"`
	ConfidenceScores        map[string]float64 `json:"confidence_scores"`
}

// Profile analyzes the table and produces its profile. The only failure mode
// is a table without columns; degenerate statistics are skipped silently.
func Profile(t *dataset.Table) (*DataProfile, error) {
	if t == nil || t.ColumnCount() == 0 {
		return nil, dataset.ErrNoColumns
	}

	types := Classify(t)
	patterns := DetectPatterns(t, types)

	p := &DataProfile{
		RowCount:    t.RowCount(),
		ColumnCount: t.ColumnCount(),
		ColumnNames: t.Names(),
		ColumnTypes: types,

		HasTemporal: patterns.HasTemporal,
		HasNetwork:  patterns.HasNetwork,

		Relationships: Relationships(t, types),
		Statistics:    Summarize(t, types),
	}
	for _, ct := range types {
		switch ct {
		case TypeNumeric:
			p.HasNumeric = true
		case TypeCategorical:
			p.HasCategorical = true
		}
	}

	suggestions := Recommend(t.RowCount(), types, patterns)
	p.ConfidenceScores = make(map[string]float64, len(suggestions))
	for _, s := range suggestions {
		p.SuggestedVisualizations = append(p.SuggestedVisualizations, s.Type)
		p.ConfidenceScores[s.Type] = s.Confidence
	}
	return p, nil
}

// Decide profiles the table and selects the visualization type. A caller
// preference wins only when it appears among the ranked candidates;
// otherwise the top-ranked suggestion is the autonomous choice.
func Decide(t *dataset.Table, preference string) (string, *DataProfile, error) {
	p, err := Profile(t)
	if err != nil {
		return "", nil, err
	}
	if preference != "" {
		for _, s := range p.SuggestedVisualizations {
			if s == preference {
				return preference, p, nil
			}
		}
	}
	return p.SuggestedVisualizations[0], p, nil
}
