package fzy

import "testing"

func TestHasMatch(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"a", "a", true},
		{"a", "ab", true},
		{"a", "ba", true},
		{"abc", "a|b|c", true},
		{"abcd", "abcde", true},
		{"abcd", "xabcde", true},
		{"abcd", "/aqq/bqq/cdef", true},
		{"", "", true},
		{"", "a", true},
		{"a", "", false},
		{"a", "b", false},
		{"abcd", "ab", false},
		{"abcd", "/aqq/bqq/cef", false},
		{"abcd", "/aqq/cqq/bdef", false},
		{"ass", "tags", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" in "+tt.text, func(t *testing.T) {
			if got := HasMatch(tt.pattern, tt.text); got != tt.want {
				t.Errorf("HasMatch(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

func TestHasMatchCaseSensitive(t *testing.T) {
	// HasMatch compares bytes exactly; only Score folds case.
	if HasMatch("a", "A") {
		t.Error("HasMatch should not fold case")
	}
	if !HasMatch("A", "bA") {
		t.Error("expected exact-case match")
	}
}
