package adjacency

import (
	"strings"
	"unicode/utf8"
)

// IsAdjacent reports whether word1 and word2 differ by exactly one
// single-character edit: substitution, insertion, or deletion.
//
// Equal words are never adjacent; words whose lengths differ by two or
// more are never adjacent. Comparison is case-insensitive.
//
// Pure and deterministic; safe for concurrent use.
func IsAdjacent(word1, word2 string) bool {
	if word1 == word2 {
		return false
	}

	// Length gap ≥ 2 means more than one edit is unavoidable; reject before
	// allocating anything.
	n1, n2 := utf8.RuneCountInString(word1), utf8.RuneCountInString(word2)
	if n1-n2 > 1 || n2-n1 > 1 {
		return false
	}

	// Work on lowercased rune slices. Inputs are normally uppercased by the
	// word source; the lowering here keeps the predicate total over any input.
	a := []rune(strings.ToLower(word1))
	b := []rune(strings.ToLower(word2))

	switch {
	case len(a) == len(b):
		return substitutionAdjacent(a, b)
	case len(a) == len(b)+1:
		return insertionAdjacent(a, b)
	default:
		return insertionAdjacent(b, a)
	}
}

// substitutionAdjacent reports whether two equal-length words have
// Hamming distance exactly 1.
func substitutionAdjacent(a, b []rune) bool {
	mismatches := 0
	for i := range a {
		if a[i] != b[i] {
			mismatches++
			if mismatches > 1 {
				return false
			}
		}
	}

	return mismatches == 1
}

// insertionAdjacent reports whether longer can be produced from shorter by
// inserting exactly one character. len(longer) must equal len(shorter)+1.
//
// Two phases:
//  1. Greedy multiset match: pair every character of longer with an unused
//     character of shorter; exactly one character of longer may stay
//     unmatched (zero is impossible with unequal lengths).
//  2. Positional verification: inserting the unmatched character into
//     shorter at some position must reproduce longer exactly. Phase 1 alone
//     would accept anagram-like near-misses.
func insertionAdjacent(longer, shorter []rune) bool {
	used := make([]bool, len(shorter))
	unmatched := 0
	var missing rune

	for _, r := range longer {
		matched := false
		for p, s := range shorter {
			if !used[p] && s == r {
				used[p] = true
				matched = true
				break
			}
		}
		if !matched {
			missing = r
			unmatched++
			if unmatched > 1 {
				return false
			}
		}
	}
	if unmatched != 1 {
		return false
	}

	// Try every insertion slot, including both ends.
	candidate := make([]rune, len(longer))
	for pos := 0; pos < len(longer); pos++ {
		copy(candidate, shorter[:pos])
		candidate[pos] = missing
		copy(candidate[pos+1:], shorter[pos:])
		if runesEqual(candidate, longer) {
			return true
		}
	}

	return false
}

// runesEqual reports element-wise equality of two equal-length rune slices.
func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
