package insight

import (
	"fmt"
	"math"

	"autoviz/internal/dataset"
	"autoviz/internal/stat"
)

// Statistical extracts distribution-shape insights per numeric column:
// pronounced skewness and high coefficient of variation. Columns with no
// non-missing values are skipped.
func Statistical(t *dataset.Table) []Insight {
	var out []Insight
	for _, c := range t.NumericColumns() {
		vals := c.Floats()
		if len(vals) == 0 {
			continue
		}
		mean := stat.Mean(vals)
		std := stat.Std(vals)

		skew := stat.Skewness(vals)
		if math.Abs(skew) > 1.0 {
			severity := SeverityMedium
			if math.Abs(skew) > 2.0 {
				severity = SeverityHigh
			}
			direction := "right"
			if skew < 0 {
				direction = "left"
			}
			out = append(out, Insight{
				Category:    CategoryStatistical,
				Title:       fmt.Sprintf("Skewed Distribution in %s", c.Name),
				Description: fmt.Sprintf("%s shows %s-skewed distribution (skewness: %.2f)", c.Name, direction, skew),
				Confidence:  math.Min(math.Abs(skew)/3.0, 1.0),
				Severity:    severity,
				DataPoints: map[string]any{
					"column":   c.Name,
					"skewness": skew,
					"mean":     mean,
				},
				Recommendation: fmt.Sprintf("Consider log transformation or outlier investigation for %s", c.Name),
			})
		}

		// CV is only meaningful with a non-zero mean.
		if mean != 0 {
			cv := std / math.Abs(mean) * 100
			if cv > 50 {
				out = append(out, Insight{
					Category:    CategoryStatistical,
					Title:       fmt.Sprintf("High Variability in %s", c.Name),
					Description: fmt.Sprintf("%s has high variability (CV: %.1f%%)", c.Name, cv),
					Confidence:  0.9,
					Severity:    SeverityMedium,
					DataPoints: map[string]any{
						"column": c.Name,
						"cv":     cv,
						"std":    std,
					},
					Recommendation: fmt.Sprintf("High variability in %s may indicate multiple subgroups", c.Name),
				})
			}
		}
	}
	return out
}
