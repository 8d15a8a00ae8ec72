package insight

import (
	"fmt"
	"sort"

	"autoviz/internal/dataset"
	"autoviz/internal/profile"
)

// Network computes graph-level insights for edge-list data: density bucketing
// and hub detection. It resolves the source/target columns with the same
// keyword rules as structural detection and quietly does nothing when the
// table has no such pair or fewer than two nodes.
func Network(t *dataset.Table) []Insight {
	srcName, tgtName, ok := profile.SourceTargetColumns(t.Names())
	if !ok {
		return nil
	}
	src, err := t.Column(srcName)
	if err != nil {
		return nil
	}
	tgt, err := t.Column(tgtName)
	if err != nil {
		return nil
	}

	degrees := map[string]int{}
	for i := 0; i < t.RowCount(); i++ {
		if v := src.Cell(i); v != "" {
			degrees[v]++
		}
		if v := tgt.Cell(i); v != "" {
			degrees[v]++
		}
	}
	nodes := len(degrees)
	edges := t.RowCount()
	if nodes <= 1 {
		return nil
	}

	var out []Insight
	density := float64(edges) / float64(nodes*(nodes-1))
	level := "dense"
	if density < 0.1 {
		level = "sparse"
	} else if density < 0.5 {
		level = "moderate"
	}
	out = append(out, Insight{
		Category:    CategoryPattern,
		Title:       fmt.Sprintf("%s Network", titleCase(level)),
		Description: fmt.Sprintf("Network has %d nodes and %d edges (density: %.3f)", nodes, edges, density),
		Confidence:  1.0,
		Severity:    SeverityLow,
		DataPoints: map[string]any{
			"nodes":   nodes,
			"edges":   edges,
			"density": density,
		},
		Recommendation: fmt.Sprintf("Network is %s, consider hub analysis", level),
	})

	total := 0
	for _, d := range degrees {
		total += d
	}
	meanDegree := float64(total) / float64(nodes)
	var hubs []string
	for node, d := range degrees {
		if float64(d) > meanDegree*2 {
			hubs = append(hubs, node)
		}
	}
	if len(hubs) > 0 {
		// Highest degree wins; names break ties deterministically.
		sort.Slice(hubs, func(i, j int) bool {
			if degrees[hubs[i]] == degrees[hubs[j]] {
				return hubs[i] < hubs[j]
			}
			return degrees[hubs[i]] > degrees[hubs[j]]
		})
		top := hubs[0]
		out = append(out, Insight{
			Category: CategoryPattern,
			Title:    "Network Hubs Detected",
			Description: fmt.Sprintf("%d hub nodes identified, top hub: %s (%d connections)",
				len(hubs), top, degrees[top]),
			Confidence: 0.95,
			Severity:   SeverityHigh,
			DataPoints: map[string]any{
				"hub_count":       len(hubs),
				"top_hub":         top,
				"top_connections": degrees[top],
			},
			Recommendation: "Focus on hub nodes for network influence analysis",
		})
	}
	return out
}
