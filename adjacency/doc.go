// Package adjacency decides whether two dictionary words are neighbors
// in a word graph: related by exactly one single-character edit.
//
// What
//
//   - IsAdjacent(word1, word2) reports whether word2 can be produced from
//     word1 by exactly one of:
//   - substitution of a single character (equal length, Hamming distance 1)
//   - insertion of a single character  (length differs by 1)
//   - deletion of a single character   (length differs by 1; symmetric case)
//   - Equal words are never adjacent, even though their edit distance is 0.
//   - Words whose lengths differ by 2 or more are never adjacent and are
//     rejected without any per-character work.
//
// Why
//
//   - Adjacency is the edge predicate of a word graph: vertices are dictionary
//     words, and an undirected unweighted edge connects every adjacent pair.
//     Word-ladder puzzles, spelling suggestions, and "one typo away" checks
//     all reduce to this predicate.
//
// Algorithm (length differs by exactly 1)
//
//	The longer word must contain every character of the shorter word plus one
//	extra. A greedy pass matches each character of the longer word against an
//	unused character of the shorter word (each consumable once); exactly one
//	character of the longer word may remain unmatched. That alone is a
//	multiset test and admits anagram-like false positives ("dear" vs "read"
//	plus a letter), so the candidate is verified by inserting the unmatched
//	character into the shorter word at every position and comparing against
//	the longer word exactly.
//
// Determinism
//
//	IsAdjacent is a pure function: no state, no side effects, and it is
//	symmetric (IsAdjacent(a,b) == IsAdjacent(b,a)) and irreflexive.
//	Comparison is case-insensitive on a lowercased copy; callers normally
//	pass already-normalized uppercase words, the lowering is defensive.
//
// Complexity (L = longer word length)
//
//   - Equal length:    O(L) time, O(L) space for the rune copies.
//   - Length diff 1:   O(L²) time worst case (greedy match + insertion scan).
//   - Length diff ≥ 2: O(1).
package adjacency
