package insight

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"autoviz/internal/dataset"
	"autoviz/internal/profile"
)

func mustTable(t *testing.T, header []string, rows [][]string) *dataset.Table {
	t.Helper()
	tab, err := dataset.FromRecords(header, rows)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return tab
}

func findByTitle(insights []Insight, fragment string) (Insight, bool) {
	for _, ins := range insights {
		if strings.Contains(ins.Title, fragment) {
			return ins, true
		}
	}
	return Insight{}, false
}

func TestStatisticalSkew(t *testing.T) {
	rows := make([][]string, 10)
	for i := range rows {
		rows[i] = []string{"1"}
	}
	rows[9] = []string{"100"} // long right tail
	tab := mustTable(t, []string{"revenue"}, rows)

	insights := Statistical(tab)
	ins, ok := findByTitle(insights, "Skewed Distribution in revenue")
	if !ok {
		t.Fatalf("no skew insight in %v", insights)
	}
	if ins.Severity != SeverityHigh {
		t.Errorf("severity = %q, want high", ins.Severity)
	}
	if !strings.Contains(ins.Description, "right-skewed") {
		t.Errorf("description = %q, want right-skewed", ins.Description)
	}
	if ins.Confidence <= 0 || ins.Confidence > 1 {
		t.Errorf("confidence = %v, want in (0, 1]", ins.Confidence)
	}
}

func TestStatisticalHighVariability(t *testing.T) {
	// CV well above 50%.
	tab := mustTable(t, []string{"v"}, [][]string{
		{"1"}, {"1"}, {"1"}, {"100"}, {"100"}, {"100"},
	})
	insights := Statistical(tab)
	ins, ok := findByTitle(insights, "High Variability in v")
	if !ok {
		t.Fatalf("no variability insight in %v", insights)
	}
	if ins.Confidence != 0.9 || ins.Severity != SeverityMedium {
		t.Errorf("got confidence=%v severity=%q", ins.Confidence, ins.Severity)
	}
}

func TestStatisticalQuietOnUniformData(t *testing.T) {
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{strconv.Itoa(100 + i)}
	}
	tab := mustTable(t, []string{"v"}, rows)
	if insights := Statistical(tab); len(insights) != 0 {
		t.Fatalf("expected no insights, got %v", insights)
	}
}

func TestAnomaliesIQR(t *testing.T) {
	rows := make([][]string, 20)
	for i := 0; i < 18; i++ {
		rows[i] = []string{strconv.Itoa(i + 1)}
	}
	rows[18] = []string{"1000"}
	rows[19] = []string{"1000"}
	tab := mustTable(t, []string{"value"}, rows)

	insights := Anomalies(tab)
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want 1: %v", len(insights), insights)
	}
	ins := insights[0]
	if ins.Category != CategoryAnomaly || ins.Confidence != 0.9 {
		t.Fatalf("got category=%q confidence=%v", ins.Category, ins.Confidence)
	}
	// 2 of 20 values = 10%, above the 5% floor but not past 10%.
	if ins.Severity != SeverityMedium {
		t.Errorf("severity = %q, want medium", ins.Severity)
	}
	if got := ins.DataPoints["outlier_count"]; got != 2 {
		t.Errorf("outlier_count = %v, want 2", got)
	}
}

func TestAnomaliesSkipShortColumns(t *testing.T) {
	tab := mustTable(t, []string{"v"}, [][]string{
		{"1"}, {"2"}, {"1000"},
	})
	if insights := Anomalies(tab); len(insights) != 0 {
		t.Fatalf("short column should be skipped, got %v", insights)
	}
}

func TestTrendsCorrelationAndDrift(t *testing.T) {
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{strconv.Itoa(i), strconv.Itoa(2 * i)}
	}
	tab := mustTable(t, []string{"x", "y"}, rows)

	insights := Trends(tab)
	corr, ok := findByTitle(insights, "Strong Positive Correlation")
	if !ok {
		t.Fatalf("no strong correlation insight in %v", insights)
	}
	if corr.Confidence < 0.9 || corr.Severity != SeverityHigh {
		t.Errorf("got confidence=%v severity=%q", corr.Confidence, corr.Severity)
	}
	if _, ok := findByTitle(insights, "Increasing Trend in x"); !ok {
		t.Errorf("no increasing trend insight for x in %v", insights)
	}
}

func TestTrendsQuietOnNoise(t *testing.T) {
	// Alternating values have near-zero slope and correlation.
	rows := make([][]string, 20)
	for i := range rows {
		a := "1"
		if i%2 == 0 {
			a = "2"
		}
		rows[i] = []string{a, strconv.Itoa(((i * 7) % 13))}
	}
	tab := mustTable(t, []string{"a", "b"}, rows)
	for _, ins := range Trends(tab) {
		if strings.Contains(ins.Title, "Correlation") {
			t.Fatalf("unexpected correlation insight: %+v", ins)
		}
	}
}

func TestRelationshipsGroupInfluence(t *testing.T) {
	tab := mustTable(t, []string{"team", "score"}, [][]string{
		{"a", "1"}, {"a", "2"}, {"a", "3"},
		{"b", "10"}, {"b", "11"}, {"b", "12"},
	})
	insights := Relationships(tab)
	ins, ok := findByTitle(insights, "team Influences score")
	if !ok {
		t.Fatalf("no relationship insight in %v", insights)
	}
	if ins.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", ins.Confidence)
	}
}

func TestRelationshipsNeedGroupSupport(t *testing.T) {
	// Groups below 3 members carry no signal.
	tab := mustTable(t, []string{"team", "score"}, [][]string{
		{"a", "1"}, {"a", "2"},
		{"b", "10"}, {"b", "11"},
	})
	if insights := Relationships(tab); len(insights) != 0 {
		t.Fatalf("expected no insights, got %v", insights)
	}
}

func edgeRows() [][]string {
	return [][]string{
		{"a", "b"}, {"a", "c"}, {"b", "c"}, {"b", "d"}, {"c", "e"},
		{"d", "e"}, {"d", "f"}, {"e", "g"}, {"f", "g"}, {"a", "g"},
	}
}

func TestNetworkDensity(t *testing.T) {
	tab := mustTable(t, []string{"source", "target"}, edgeRows())
	insights := Network(tab)
	ins, ok := findByTitle(insights, "Network")
	if !ok {
		t.Fatalf("no network insight in %v", insights)
	}
	if got := ins.DataPoints["nodes"]; got != 7 {
		t.Errorf("nodes = %v, want 7", got)
	}
	if got := ins.DataPoints["edges"]; got != 10 {
		t.Errorf("edges = %v, want 10", got)
	}
	// 10 edges over 7*6 ordered pairs.
	if ins.Title != "Moderate Network" {
		t.Errorf("title = %q, want Moderate Network", ins.Title)
	}
}

func TestNetworkHubs(t *testing.T) {
	var rows [][]string
	for i := 0; i < 8; i++ {
		rows = append(rows, []string{"hub", fmt.Sprintf("n%d", i)})
	}
	tab := mustTable(t, []string{"source", "target"}, rows)
	insights := Network(tab)
	ins, ok := findByTitle(insights, "Network Hubs Detected")
	if !ok {
		t.Fatalf("no hub insight in %v", insights)
	}
	if got := ins.DataPoints["top_hub"]; got != "hub" {
		t.Errorf("top_hub = %v, want hub", got)
	}
	if got := ins.DataPoints["top_connections"]; got != 8 {
		t.Errorf("top_connections = %v, want 8", got)
	}
}

func TestNetworkSkipsNonEdgeTables(t *testing.T) {
	tab := mustTable(t, []string{"x", "y"}, [][]string{{"1", "2"}})
	if insights := Network(tab); insights != nil {
		t.Fatalf("expected nil, got %v", insights)
	}
}

func TestAnalyzeReport(t *testing.T) {
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{strconv.Itoa(i), strconv.Itoa(2 * i), "grp"}
	}
	tab := mustTable(t, []string{"x", "y", "label"}, rows)

	rep, err := Analyze(tab, profile.VizScatter3D)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.ID == "" || rep.Timestamp == "" {
		t.Fatal("report missing id or timestamp")
	}
	if rep.DataSummary.TotalRecords != 20 || rep.DataSummary.TotalColumns != 3 {
		t.Fatalf("data summary = %+v", rep.DataSummary)
	}
	if rep.DataSummary.NumericColumns != 2 || rep.DataSummary.CategoricalColumns != 1 {
		t.Fatalf("column counts = %+v", rep.DataSummary)
	}
	if !strings.HasPrefix(rep.Summary, "This scatter visualization represents a dataset with 20 records") {
		t.Fatalf("summary = %q", rep.Summary)
	}
	if len(rep.KeyFindings) == 0 || len(rep.KeyFindings) > 5 {
		t.Fatalf("key findings = %v", rep.KeyFindings)
	}
	// Categorized digests mirror the category filter over insights.
	for _, ins := range rep.Insights {
		if ins.Category == CategoryTrend {
			found := false
			for _, d := range rep.Trends {
				if d == ins.Description {
					found = true
				}
			}
			if !found {
				t.Fatalf("trend description %q missing from digest", ins.Description)
			}
		}
	}
	// Scatter with a categorical column yields the color-encoding hint.
	hint := false
	for _, r := range rep.Recommendations {
		if strings.Contains(r, "color encoding") {
			hint = true
		}
	}
	if !hint {
		t.Fatalf("no color hint in %v", rep.Recommendations)
	}
}

func TestAnalyzeNetworkGating(t *testing.T) {
	tab := mustTable(t, []string{"source", "target"}, edgeRows())

	rep, err := Analyze(tab, profile.VizNetwork)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, ok := findByTitle(rep.Insights, "Moderate Network"); !ok {
		t.Fatal("network insight missing under network visualization")
	}

	rep, err = Analyze(tab, profile.VizGenericScatter)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, ok := findByTitle(rep.Insights, "Moderate Network"); ok {
		t.Fatal("network insight present despite non-network visualization")
	}
}

func TestKeyFindingsRanking(t *testing.T) {
	insights := []Insight{
		{Title: "weak", Description: "d", Confidence: 0.5, Severity: SeverityLow},
		{Title: "strong", Description: "d", Confidence: 0.9, Severity: SeverityHigh},
		{Title: "middle", Description: "d", Confidence: 0.9, Severity: SeverityMedium},
	}
	got := keyFindings(insights)
	want := []string{"strong: d", "middle: d", "weak: d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keyFindings = %v, want %v", got, want)
		}
	}
}
