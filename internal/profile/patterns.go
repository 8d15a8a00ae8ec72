package profile

import (
	"strings"

	"autoviz/internal/dataset"
)

// Keyword sets behind the structural heuristics. Matching is case-insensitive
// substring matching: semantic roles such as "this column is a graph edge
// endpoint" are not recoverable from declared types alone, so names are the
// only signal available. A legitimate but ambiguous name (say, from_address
// in non-network data) can misfire; that is an accepted limitation of the
// heuristic rather than something stricter rules could fix reliably.
var (
	temporalKeywords = []string{"date", "time", "timestamp", "year", "month", "day"}
	sourceKeywords   = []string{"source", "from", "node1"}
	targetKeywords   = []string{"target", "to", "node2"}
	spatialKeywords  = []string{"x", "y", "z", "lat", "lon", "latitude", "longitude"}
)

// Patterns holds the dataset-level structural flags derived from column
// names and semantic types.
type Patterns struct {
	HasTemporal bool
	HasNetwork  bool
	HasSpatial  bool
}

// DetectPatterns computes the structural flags for a table given its column
// type map.
func DetectPatterns(t *dataset.Table, types map[string]ColumnType) Patterns {
	names := t.Names()
	return Patterns{
		HasTemporal: detectTemporal(names, types),
		HasNetwork:  detectNetwork(names),
		HasSpatial:  matchesAny(names, spatialKeywords),
	}
}

func detectTemporal(names []string, types map[string]ColumnType) bool {
	for _, ct := range types {
		if ct == TypeTemporal {
			return true
		}
	}
	return matchesAny(names, temporalKeywords)
}

func detectNetwork(names []string) bool {
	if matchesAny(names, sourceKeywords) && matchesAny(names, targetKeywords) {
		return true
	}
	return matchesAny(names, []string{"node"}) && matchesAny(names, []string{"edge"})
}

// SourceTargetColumns resolves the edge-list column pair by the same keyword
// rules as network detection. The last matching column wins for each role.
func SourceTargetColumns(names []string) (source, target string, ok bool) {
	for _, name := range names {
		lower := strings.ToLower(name)
		if containsAny(lower, sourceKeywords) {
			source = name
		} else if containsAny(lower, targetKeywords) {
			target = name
		}
	}
	return source, target, source != "" && target != ""
}

func matchesAny(names, keywords []string) bool {
	for _, name := range names {
		if containsAny(strings.ToLower(name), keywords) {
			return true
		}
	}
	return false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
