// Package wordgraph builds a word-adjacency graph over a dictionary and
// answers repeated shortest-path and shortest-distance queries between
// word pairs from precomputed all-pairs tables.
//
// Two words are graph-neighbors when they differ by exactly one
// single-character edit: substitution, insertion, or deletion. A word
// ladder is then simply a shortest path in that graph:
//
//	CAT ── HAT ── HEAT ── WHEAT   (distance 3)
//
// The library is organized as one package per concern:
//
//	adjacency/  — the single-edit neighbor predicate (pure function)
//	core/       — the undirected, unweighted, thread-safe word graph
//	apsp/       — Floyd–Warshall precomputation and the immutable Snapshot
//	wordsource/ — dictionary reading and normalization (the only I/O)
//	wordgraph   — this package: the Processor tying the layers together
//
// Typical use:
//
//	words, err := wordsource.FromFile("dictionary.txt")
//	if err != nil {
//	    // the word source failed; nothing reached the graph
//	}
//	p, _ := wordgraph.NewProcessor()
//	_, _ = p.Populate(words)   // vertices + all single-edit edges
//	_ = p.Precompute()         // O(V³) once
//	path, _ := p.ShortestPath("CAT", "WHEAT")     // O(path) lookup
//	dist, _ := p.ShortestDistance("CAT", "WHEAT") // O(1) lookup
//
// Populate may be called again to grow the dictionary; queries then fail
// with ErrStaleSnapshot until Precompute runs again. Precomputation
// replaces the previous tables wholesale: concurrent readers see either
// the old complete snapshot or the new one, never a half-updated matrix.
//
// Pure Go, no dependencies outside the test tooling.
package wordgraph
