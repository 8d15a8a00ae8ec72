package insight

import (
	"fmt"
	"math"

	"autoviz/internal/dataset"
	"autoviz/internal/stat"
)

// Relationships tests whether categorical columns explain the spread of
// numeric columns, by comparing the variance of per-group means against the
// overall column variance. Only the first two columns of each kind are
// examined. Zero overall variance carries no signal and is skipped.
func Relationships(t *dataset.Table) []Insight {
	var out []Insight
	categorical := t.TextColumns()
	numeric := t.NumericColumns()

	for ci := 0; ci < len(categorical) && ci < 2; ci++ {
		for ni := 0; ni < len(numeric) && ni < 2; ni++ {
			cat, num := categorical[ci], numeric[ni]
			means := groupMeans(t, cat, num)
			if len(means) < 2 {
				continue
			}
			overall := stat.Variance(num.Floats())
			if overall == 0 {
				continue
			}
			ratio := stat.Variance(means) / overall
			if ratio <= 0.3 {
				continue
			}
			out = append(out, Insight{
				Category:    CategoryRelationship,
				Title:       fmt.Sprintf("%s Influences %s", cat.Name, num.Name),
				Description: fmt.Sprintf("%s groups show distinct %s values", cat.Name, num.Name),
				Confidence:  math.Min(ratio, 1.0),
				Severity:    SeverityMedium,
				DataPoints: map[string]any{
					"categorical":    cat.Name,
					"numeric":        num.Name,
					"variance_ratio": ratio,
				},
				Recommendation: fmt.Sprintf("Use %s for color/grouping in visualizations", cat.Name),
			})
		}
	}
	return out
}

// groupMeans returns the mean of num per cat group, keeping only groups with
// at least 3 jointly non-missing members. Order follows first appearance so
// repeated runs are identical.
func groupMeans(t *dataset.Table, cat, num *dataset.Column) []float64 {
	type acc struct {
		sum float64
		n   int
	}
	accs := map[string]*acc{}
	var order []string
	for i := 0; i < t.RowCount(); i++ {
		if !cat.Valid[i] || !num.Valid[i] {
			continue
		}
		key := cat.Strs[i]
		a := accs[key]
		if a == nil {
			a = &acc{}
			accs[key] = a
			order = append(order, key)
		}
		a.sum += num.Nums[i]
		a.n++
	}
	var means []float64
	for _, key := range order {
		if a := accs[key]; a.n >= 3 {
			means = append(means, a.sum/float64(a.n))
		}
	}
	return means
}
