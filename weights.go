package fzy

import "math"

// Sentinel scores. Score returns ScoreMin for unrankable input (empty
// pattern, or pattern longer than text) and ScoreMax for an exact
// alignment (pattern and text the same length). Every real score falls
// strictly between the two, so callers can rank with plain float
// comparison.
var (
	ScoreMin = math.Inf(-1)
	ScoreMax = math.Inf(1)
)

// Weights configures the scoring magnitudes. The zero value scores
// everything as zero; start from DefaultWeights and adjust. A Weights
// is plain data passed by value, so distinct configurations can score
// concurrently without interference.
type Weights struct {
	// GapLeading is charged per text byte skipped before the first match.
	GapLeading float64

	// GapTrailing is charged per text byte skipped after the last match.
	GapTrailing float64

	// GapInner is charged per text byte skipped between two matches.
	// Harsher than the edge gaps so a split match ranks below a
	// trimmed one.
	GapInner float64

	// MatchConsecutive is earned by a match that directly extends the
	// previous match. It exceeds every positional bonus, so contiguous
	// runs beat boundary-aligned but gapped alternatives.
	MatchConsecutive float64

	// MatchSlash is earned by a match directly after a '/'.
	MatchSlash float64

	// MatchWord is earned by a match directly after '-', '_' or ' '.
	MatchWord float64

	// MatchCapital is earned by an uppercase match directly after a
	// lowercase letter.
	MatchCapital float64

	// MatchDot is earned by a match directly after a '.'.
	MatchDot float64
}

// DefaultWeights returns the canonical fzy magnitudes.
func DefaultWeights() Weights {
	return Weights{
		GapLeading:       -0.005,
		GapTrailing:      -0.005,
		GapInner:         -0.01,
		MatchConsecutive: 1.0,
		MatchSlash:       0.9,
		MatchWord:        0.8,
		MatchCapital:     0.7,
		MatchDot:         0.6,
	}
}
