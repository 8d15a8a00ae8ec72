package insight

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"autoviz/internal/dataset"
	"autoviz/internal/profile"
	"autoviz/internal/utils"
)

// DataSummary is the compact dataset description attached to every report.
type DataSummary struct {
	TotalRecords       int     `json:"total_records"`
	TotalColumns       int     `json:"total_columns"`
	NumericColumns     int     `json:"numeric_columns"`
	CategoricalColumns int     `json:"categorical_columns"`
	MissingValues      int     `json:"missing_values"`
	MissingPercentage  float64 `json:"missing_percentage"`
	MemoryUsageMB      float64 `json:"memory_usage_mb"`
}

// Report is the immutable result of one analytics pass.
type Report struct {
	ID              string      `json:"id"`
	Timestamp       string      `json:"timestamp"`
	DataSummary     DataSummary `json:"data_summary"`
	Insights        []Insight   `json:"insights"`
	Patterns        []string    `json:"patterns"`
	Anomalies       []string    `json:"anomalies"`
	Trends          []string    `json:"trends"`
	Recommendations []string    `json:"recommendations"`
	Summary         string      `json:"summary"`
	KeyFindings     []string    `json:"key_findings"`
}

// Analyze runs every analysis module over the table in a fixed order and
// aggregates the findings. The network module only runs when the selected
// visualization type is the network type. Module passes are independent and
// read-only; their concatenation order is the report's insight order.
func Analyze(t *dataset.Table, vizType string) (*Report, error) {
	if t == nil || t.ColumnCount() == 0 {
		return nil, dataset.ErrNoColumns
	}

	var insights []Insight
	insights = append(insights, Statistical(t)...)
	insights = append(insights, Patterns(t)...)
	insights = append(insights, Anomalies(t)...)
	insights = append(insights, Trends(t)...)
	insights = append(insights, Relationships(t)...)
	if vizType == profile.VizNetwork {
		insights = append(insights, Network(t)...)
	}

	return &Report{
		ID:              uuid.NewString(),
		Timestamp:       time.Now().Format(time.RFC3339),
		DataSummary:     summarizeData(t),
		Insights:        insights,
		Patterns:        descriptionsByCategory(insights, CategoryPattern),
		Anomalies:       descriptionsByCategory(insights, CategoryAnomaly),
		Trends:          descriptionsByCategory(insights, CategoryTrend),
		Recommendations: recommendations(t, vizType, insights),
		Summary:         naturalLanguageSummary(t, vizType, insights),
		KeyFindings:     keyFindings(insights),
	}, nil
}

// WriteJSON exports the report to path as indented JSON.
func (r *Report) WriteJSON(path string) error {
	b, err := utils.PrettyJSON(r)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(path, b)
}

func summarizeData(t *dataset.Table) DataSummary {
	s := DataSummary{
		TotalRecords:  t.RowCount(),
		TotalColumns:  t.ColumnCount(),
		MissingValues: t.MissingCells(),
		MemoryUsageMB: float64(t.ByteSize()) / 1024 / 1024,
	}
	for _, c := range t.Columns() {
		switch c.Kind {
		case dataset.KindNumeric:
			s.NumericColumns++
		case dataset.KindText:
			s.CategoricalColumns++
		}
	}
	if cells := t.RowCount() * t.ColumnCount(); cells > 0 {
		s.MissingPercentage = float64(s.MissingValues) / float64(cells) * 100
	}
	return s
}

func descriptionsByCategory(insights []Insight, category string) []string {
	var out []string
	for _, ins := range insights {
		if ins.Category == category {
			out = append(out, ins.Description)
		}
	}
	return out
}

func recommendations(t *dataset.Table, vizType string, insights []Insight) []string {
	var out []string
	for _, ins := range insights {
		if ins.Recommendation != "" && ins.Confidence > 0.7 {
			out = append(out, ins.Recommendation)
		}
	}
	if t.RowCount() > 1000 {
		out = append(out, "Consider aggregation or sampling for better performance with large datasets")
	}
	if cells := t.RowCount() * t.ColumnCount(); cells > 0 {
		pct := float64(t.MissingCells()) / float64(cells) * 100
		if pct > 5 {
			out = append(out, fmt.Sprintf("Dataset has %.1f%% missing values - consider imputation or filtering", pct))
		}
	}
	if vizType == profile.VizScatter3D {
		if cats := t.TextColumns(); len(cats) > 0 {
			out = append(out, fmt.Sprintf("Use %s for color encoding to reveal patterns", cats[0].Name))
		}
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func naturalLanguageSummary(t *dataset.Table, vizType string, insights []Insight) string {
	display := strings.ReplaceAll(strings.TrimPrefix(vizType, "3d_"), "_", " ")
	parts := []string{fmt.Sprintf(
		"This %s visualization represents a dataset with %d records and %d variables.",
		display, t.RowCount(), t.ColumnCount(),
	)}

	highConfidence := 0
	counts := map[string]int{}
	for _, ins := range insights {
		if ins.Confidence > 0.8 {
			highConfidence++
		}
		counts[ins.Category]++
	}
	if highConfidence > 0 {
		parts = append(parts, fmt.Sprintf("Analysis identified %d high-confidence insights.", highConfidence))
	}
	if n := counts[CategoryPattern]; n > 0 {
		parts = append(parts, fmt.Sprintf("Detected %d distinct patterns in the data structure.", n))
	}
	if n := counts[CategoryAnomaly]; n > 0 {
		parts = append(parts, fmt.Sprintf("Found %d anomalies that may require attention.", n))
	}
	if n := counts[CategoryTrend]; n > 0 {
		parts = append(parts, fmt.Sprintf("Identified %d significant trends or correlations.", n))
	}
	return strings.Join(parts, " ")
}

func keyFindings(insights []Insight) []string {
	ranked := make([]Insight, len(insights))
	copy(ranked, insights)
	// Stable sort keeps module order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	out := make([]string, 0, len(ranked))
	for _, ins := range ranked {
		out = append(out, fmt.Sprintf("%s: %s", ins.Title, ins.Description))
	}
	return out
}

func score(ins Insight) float64 {
	return ins.Confidence * severityWeight(ins.Severity)
}
