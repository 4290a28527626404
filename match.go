package fzy

// HasMatch reports whether pattern is a subsequence of text: its bytes
// all appear in text in the same relative order, not necessarily
// adjacent. An empty pattern matches any text.
//
// Bytes are compared exactly, with no case folding; use it as a cheap
// pre-filter before Score, which folds case.
func HasMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}

	pi := 0
	for ti := 0; ti < len(text); ti++ {
		if text[ti] == pattern[pi] {
			pi++
			if pi == len(pattern) {
				return true
			}
		}
	}
	return false
}
