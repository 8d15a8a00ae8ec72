package insight

import (
	"fmt"

	"autoviz/internal/dataset"
	"autoviz/internal/stat"
)

// Anomalies flags numeric columns whose IQR-based outlier fraction exceeds
// 5%. Columns with fewer than 10 non-missing values are skipped.
func Anomalies(t *dataset.Table) []Insight {
	var out []Insight
	for _, c := range t.NumericColumns() {
		vals := c.Floats()
		if len(vals) < 10 {
			continue
		}
		sorted := dataset.SortedCopy(vals)
		q1 := stat.Quantile(sorted, 0.25)
		q3 := stat.Quantile(sorted, 0.75)
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr

		outliers := 0
		for _, v := range vals {
			if v < lower || v > upper {
				outliers++
			}
		}
		pct := float64(outliers) / float64(len(vals)) * 100
		if pct <= 5 {
			continue
		}
		severity := SeverityMedium
		if pct > 10 {
			severity = SeverityHigh
		}
		out = append(out, Insight{
			Category:    CategoryAnomaly,
			Title:       fmt.Sprintf("Outliers Detected in %s", c.Name),
			Description: fmt.Sprintf("%.1f%% of %s values are statistical outliers", pct, c.Name),
			Confidence:  0.9,
			Severity:    severity,
			DataPoints: map[string]any{
				"column":        c.Name,
				"outlier_count": outliers,
				"outlier_pct":   pct,
				"bounds":        []float64{lower, upper},
			},
			Recommendation: fmt.Sprintf("Investigate outliers in %s - may indicate errors or special cases", c.Name),
		})
	}
	return out
}
