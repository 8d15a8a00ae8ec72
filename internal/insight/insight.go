// Package insight implements the analytics engine: independent analysis
// passes over a table that each emit zero or more insights, plus the
// aggregator that turns them into a report. Every pass reads the table and
// returns its findings as a value; no pass mutates shared state, so module
// execution order alone determines insight order.
package insight

// Insight categories.
const (
	CategoryStatistical  = "statistical"
	CategoryPattern      = "pattern"
	CategoryAnomaly      = "anomaly"
	CategoryTrend        = "trend"
	CategoryRelationship = "relationship"
)

// Insight severities, in increasing rank weight.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Insight is a single finding about the dataset. Values are immutable once
// created.
type Insight struct {
	Category       string         `json:"category"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Confidence     float64        `json:"confidence"`
	Severity       string         `json:"severity"`
	DataPoints     map[string]any `json:"data_points"`
	Recommendation string         `json:"recommendation,omitempty"`
}

func severityWeight(s string) float64 {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}
