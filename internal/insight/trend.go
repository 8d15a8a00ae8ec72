package insight

import (
	"fmt"
	"math"

	"autoviz/internal/dataset"
	"autoviz/internal/stat"
)

// Trends runs two independent checks: strong pairwise correlations among the
// leading numeric columns, and monotonic drift of the leading numeric columns
// against row position. Both bound the columns inspected to keep the cost
// near-linear in row count.
//
// The positional check treats the table's materialized row order as the
// inherent ordering; connectors preserve source order, so a freshly loaded
// table always qualifies.
func Trends(t *dataset.Table) []Insight {
	var out []Insight
	numeric := t.NumericColumns()

	if len(numeric) >= 2 {
		for i := 0; i < len(numeric) && i < 3; i++ {
			for j := i + 1; j < len(numeric) && j < 4; j++ {
				x, y := t.PairedFloats(numeric[i], numeric[j])
				if len(x) < 10 {
					continue
				}
				r := stat.Pearson(x, y)
				if math.Abs(r) <= 0.7 {
					continue
				}
				direction := "positive"
				if r < 0 {
					direction = "negative"
				}
				strength := "moderate"
				severity := SeverityMedium
				if math.Abs(r) > 0.9 {
					strength = "strong"
					severity = SeverityHigh
				}
				out = append(out, Insight{
					Category: CategoryTrend,
					Title:    fmt.Sprintf("%s %s Correlation", titleCase(strength), titleCase(direction)),
					Description: fmt.Sprintf("%s and %s show %s %s correlation (r=%.3f)",
						numeric[i].Name, numeric[j].Name, strength, direction, r),
					Confidence: math.Abs(r),
					Severity:   severity,
					DataPoints: map[string]any{
						"col1":        numeric[i].Name,
						"col2":        numeric[j].Name,
						"correlation": r,
					},
					Recommendation: fmt.Sprintf("Strong relationship between %s and %s suggests predictive potential",
						numeric[i].Name, numeric[j].Name),
				})
			}
		}
	}

	for i := 0; i < len(numeric) && i < 3; i++ {
		c := numeric[i]
		vals := c.Floats()
		if len(vals) < 10 {
			continue
		}
		slope := stat.LinearSlope(vals)
		sorted := dataset.SortedCopy(vals)
		valueRange := sorted[len(sorted)-1] - sorted[0]
		if valueRange == 0 {
			continue
		}
		normalized := slope * float64(len(vals)) / valueRange
		if math.Abs(normalized) <= 0.3 {
			continue
		}
		direction := "increasing"
		if normalized < 0 {
			direction = "decreasing"
		}
		out = append(out, Insight{
			Category:    CategoryTrend,
			Title:       fmt.Sprintf("%s Trend in %s", titleCase(direction), c.Name),
			Description: fmt.Sprintf("%s shows a clear %s trend over the dataset", c.Name, direction),
			Confidence:  math.Min(math.Abs(normalized), 1.0),
			Severity:    SeverityMedium,
			DataPoints: map[string]any{
				"column": c.Name,
				"slope":  slope,
			},
			Recommendation: fmt.Sprintf("Monitor %s - trend suggests continued %s pattern", c.Name, direction),
		})
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
