package transform

import "state-binder/internal/match"

// suggestThreshold is the minimum normalized similarity for Suggest to
// consider an unrecognized tag a near miss of a known one.
const suggestThreshold = 0.6

// Suggest proposes the recognized tag closest to s, for "unknown transform"
// diagnostics. Comparison is fuzzy: case, separators and small typos are
// forgiven. It reports ok=false when nothing is reasonably close.
func Suggest(s string) (Type, bool) {
	norm := match.NormalizeTag(s)
	if norm == "" {
		return "", false
	}

	var (
		best      Type
		bestScore float64
	)

	for _, t := range all {
		score := match.Similarity(norm, match.NormalizeTag(string(t)))
		if score > bestScore {
			best, bestScore = t, score
		}
	}

	if bestScore < suggestThreshold {
		return "", false
	}

	return best, true
}
