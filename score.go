package fzy

// Score scores pattern against text with DefaultWeights. Higher is
// better. It returns ScoreMin when pattern is empty or longer than
// text, and ScoreMax when the two are the same length (an exact
// alignment: every byte of text is consumed by the pattern).
//
// Matching inside the scorer is ASCII case-insensitive, while the
// positional bonuses come from the original-case text. Score does not
// verify that pattern actually occurs as a subsequence of text; gate
// calls with HasMatch.
func Score(pattern, text string) float64 {
	return DefaultWeights().Score(pattern, text)
}

// Score scores pattern against text using the receiver's magnitudes.
// See the package-level Score for the contract.
func (w Weights) Score(pattern, text string) float64 {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return ScoreMin
	}
	if len(pattern) == len(text) {
		return ScoreMax
	}

	bonus := w.bonusTable(text)
	pat := foldASCII(pattern)
	txt := foldASCII(text)

	// Rolling rows of the alignment table, two per pattern byte:
	// run[ti] is the best score of an alignment whose last match ends
	// exactly at ti; best[ti] is the best score of any alignment of
	// the pattern prefix using text up to ti, gap penalties applied.
	n := len(txt)
	prevRun := make([]float64, n)
	curRun := make([]float64, n)
	prevBest := make([]float64, n)
	curBest := make([]float64, n)

	for pi := 0; pi < len(pat); pi++ {
		gap := w.GapInner
		if pi == len(pat)-1 {
			gap = w.GapTrailing
		}

		running := ScoreMin
		pc := pat[pi]
		for ti := 0; ti < n; ti++ {
			if pc == txt[ti] {
				var s float64
				switch {
				case pi == 0:
					s = float64(ti)*w.GapLeading + bonus[ti]
				case ti > 0:
					// Either start a fresh match here from the best
					// shorter-prefix alignment, or extend a run that
					// ended at ti-1.
					s = max(prevBest[ti-1]+bonus[ti], prevRun[ti-1]+w.MatchConsecutive)
				default:
					s = ScoreMin
				}
				curRun[ti] = s
				running = max(s, running+gap)
			} else {
				curRun[ti] = ScoreMin
				running += gap
			}
			curBest[ti] = running
		}

		prevRun, curRun = curRun, prevRun
		prevBest, curBest = curBest, prevBest
	}

	return prevBest[n-1]
}

// foldASCII copies s with ASCII uppercase lowered. Non-ASCII bytes
// pass through untouched.
func foldASCII(s string) []byte {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return b
}
