package profile

import "sort"

// Visualization type identifiers emitted by the recommender. The rendering
// layer consumes these names verbatim.
const (
	VizNetwork        = "network"
	VizScatter3D      = "3d_scatter"
	VizSurface3D      = "3d_surface"
	VizLine3D         = "3d_line"
	VizBar3D          = "3d_bar"
	VizMesh3D         = "3d_mesh"
	VizGenericScatter = "generic_scatter"
)

// Suggestion is one ranked visualization candidate.
type Suggestion struct {
	Type       string
	Confidence float64
}

// ruleContext carries the dataset facts the rule table evaluates against.
type ruleContext struct {
	rows        int
	numeric     int
	categorical int
	patterns    Patterns
}

// vizRule is one independently evaluable recommendation rule. score returns
// the confidence and whether the rule fires at all.
type vizRule struct {
	vizType string
	score   func(ruleContext) (float64, bool)
}

// The rule table. Declaration order is the tie-break when confidences match.
var vizRules = []vizRule{
	{VizNetwork, func(c ruleContext) (float64, bool) {
		return 0.95, c.patterns.HasNetwork
	}},
	{VizScatter3D, func(c ruleContext) (float64, bool) {
		if c.numeric < 3 {
			return 0, false
		}
		conf := 0.6 + 0.1*float64(c.numeric)
		if conf > 0.9 {
			conf = 0.9
		}
		return conf, true
	}},
	{VizSurface3D, func(c ruleContext) (float64, bool) {
		return 0.75, c.numeric == 3 && c.rows >= 10
	}},
	{VizLine3D, func(c ruleContext) (float64, bool) {
		return 0.80, c.patterns.HasTemporal && c.numeric >= 2
	}},
	{VizBar3D, func(c ruleContext) (float64, bool) {
		return 0.70, c.categorical >= 1 && c.categorical <= 2 && c.numeric >= 1 && c.rows <= 100
	}},
	{VizMesh3D, func(c ruleContext) (float64, bool) {
		return 0.85, c.patterns.HasSpatial && c.numeric >= 3
	}},
}

// Recommend evaluates every rule and returns the fired candidates sorted by
// confidence descending, ties preserving rule-table order. It never returns
// an empty list: when nothing fires, the generic fallback is the single
// candidate.
func Recommend(rows int, types map[string]ColumnType, patterns Patterns) []Suggestion {
	ctx := ruleContext{rows: rows, patterns: patterns}
	for _, ct := range types {
		switch ct {
		case TypeNumeric:
			ctx.numeric++
		case TypeCategorical:
			ctx.categorical++
		}
	}

	var out []Suggestion
	for _, rule := range vizRules {
		if conf, ok := rule.score(ctx); ok {
			out = append(out, Suggestion{Type: rule.vizType, Confidence: conf})
		}
	}
	if len(out) == 0 {
		return []Suggestion{{Type: VizGenericScatter, Confidence: 0.5}}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}
