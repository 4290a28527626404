package fzy

// bonusFor returns the positional bonus for matching cur when it
// directly follows prev. Only uppercase letters, lowercase letters and
// digits can earn a bonus; every other byte class scores zero
// regardless of context.
func (w Weights) bonusFor(prev, cur byte) float64 {
	switch {
	case cur >= 'A' && cur <= 'Z':
		if prev >= 'a' && prev <= 'z' {
			return w.MatchCapital
		}
		return w.separatorBonus(prev)
	case cur >= 'a' && cur <= 'z', cur >= '0' && cur <= '9':
		return w.separatorBonus(prev)
	default:
		return 0
	}
}

func (w Weights) separatorBonus(prev byte) float64 {
	switch prev {
	case '/':
		return w.MatchSlash
	case '-', '_', ' ':
		return w.MatchWord
	case '.':
		return w.MatchDot
	default:
		return 0
	}
}

// bonusTable computes one bonus per byte of text from the original-case
// bytes. A virtual '/' precedes position 0, so the first byte scores
// as if it sat at a path boundary.
func (w Weights) bonusTable(text string) []float64 {
	table := make([]float64, len(text))
	prev := byte('/')
	for i := 0; i < len(text); i++ {
		table[i] = w.bonusFor(prev, text[i])
		prev = text[i]
	}
	return table
}
