package insight

import (
	"fmt"
	"strings"

	"autoviz/internal/dataset"
	"autoviz/internal/stat"
)

// Patterns looks for structural patterns: multimodal value distributions in
// the first numeric columns and the presence of time-based information.
func Patterns(t *dataset.Table) []Insight {
	var out []Insight

	numeric := t.NumericColumns()
	if len(numeric) >= 2 {
		limit := len(numeric)
		if limit > 3 {
			limit = 3
		}
		for _, c := range numeric[:limit] {
			vals := c.Floats()
			if len(vals) < 10 {
				continue
			}
			peaks := histogramPeaks(stat.Histogram(vals, 10))
			if peaks >= 2 {
				out = append(out, Insight{
					Category:    CategoryPattern,
					Title:       fmt.Sprintf("Multimodal Distribution in %s", c.Name),
					Description: fmt.Sprintf("%s shows %d distinct clusters or groups", c.Name, peaks),
					Confidence:  0.75,
					Severity:    SeverityMedium,
					DataPoints: map[string]any{
						"column": c.Name,
						"peaks":  peaks,
					},
					Recommendation: fmt.Sprintf("Consider grouping or segmentation analysis for %s", c.Name),
				})
			}
		}
	}

	for _, name := range t.Names() {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "date") || strings.Contains(lower, "time") {
			out = append(out, Insight{
				Category:       CategoryPattern,
				Title:          "Temporal Data Detected",
				Description:    "Data contains time-based information suitable for trend analysis",
				Confidence:     1.0,
				Severity:       SeverityLow,
				DataPoints:     map[string]any{"type": "temporal"},
				Recommendation: "Consider time-series analysis or animated visualizations",
			})
			break
		}
	}
	return out
}

// histogramPeaks counts interior bins that exceed both neighbors.
func histogramPeaks(hist []int) int {
	peaks := 0
	for i := 1; i < len(hist)-1; i++ {
		if hist[i] > hist[i-1] && hist[i] > hist[i+1] {
			peaks++
		}
	}
	return peaks
}
