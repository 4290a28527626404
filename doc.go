// Package fzy scores fuzzy subsequence matches for interactive
// selection tools.
//
// The package implements the fzy scoring algorithm: a cheap linear
// pre-filter plus a bonus-aware dynamic program that finds the
// best-scoring alignment of a short pattern within a longer candidate
// string. Callers filter candidates with HasMatch, score survivors
// with Score, and rank by the returned value; higher is better.
//
// # Features
//
//   - O(len(text)) subsequence pre-filter (HasMatch)
//   - O(len(pattern)*len(text)) best-alignment scoring (Score)
//   - Positional bonuses for path, separator, camelCase and dot boundaries
//   - A flat consecutive-run bonus that dominates any positional bonus
//   - Configurable magnitudes via the Weights value
//   - Sentinel scores (ScoreMin, ScoreMax) for unrankable and exact matches
//
// # Scoring Algorithm
//
// The score of an alignment is the sum of a bonus per matched
// character and a penalty per skipped character. A match directly
// after a path separator, word separator, dot, or lowercase-to-upper
// transition earns a positional bonus; a match directly extending the
// previous match earns the larger consecutive bonus instead. Skipped
// characters before the first match or after the last are charged the
// mild leading/trailing gap penalty, skips between matches the harsher
// inner gap penalty. The dynamic program considers every valid
// alignment and returns the best total.
//
// # Usage
//
// Basic usage:
//
//	best, bestScore := "", fzy.ScoreMin
//	for _, c := range candidates {
//	    if !fzy.HasMatch(query, c) {
//	        continue
//	    }
//	    if s := fzy.Score(query, c); s > bestScore {
//	        best, bestScore = c, s
//	    }
//	}
//
// Custom weights:
//
//	w := fzy.DefaultWeights()
//	w.MatchCapital = 0.9 // rank camelCase boundaries like path boundaries
//	s := w.Score(query, candidate)
//
// # Thread Safety
//
// Both operations are pure functions: each call allocates its own
// working buffers and touches no shared state, so they are safe to
// call concurrently without locks. Scoring a large candidate list in
// parallel needs no coordination beyond partitioning the list.
//
// # Character Handling
//
// Classification and comparison are byte-based. Character classes
// (uppercase, lowercase/digit, other) cover ASCII only; bytes of
// multi-byte UTF-8 sequences fall into the "other" class and earn no
// positional bonus. Note the deliberate asymmetry inherited from the
// algorithm: HasMatch compares bytes exactly while Score folds both
// sides to ASCII lowercase before comparing.
package fzy
