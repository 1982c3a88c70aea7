// Package core defines the WordGraph: an undirected, unweighted,
// in-memory graph whose vertices are normalized dictionary words.
//
// What
//
//   - Vertices are immutable word strings; duplicates collapse to one vertex.
//   - Edges are unordered word pairs; the adjacency relation is symmetric by
//     construction (adding edge (u,v) also makes v adjacent to u).
//   - No self-loops, no parallel edges, no weights, no directions: the word
//     graph is deliberately the simplest member of the graph family.
//   - Graphs only grow. There is no vertex or edge removal; downstream
//     shortest-path snapshots rely on the additive-only lifecycle.
//
// Determinism
//
//	Vertices() returns words sorted lexicographically ascending, and
//	Neighbors() returns the adjacent words likewise sorted. Higher layers
//	build their word→index mappings from this stable enumeration, so two
//	precomputations over the same graph state see identical index spaces.
//
// Staleness tracking
//
//	Version() is a monotonic counter bumped on every effective mutation
//	(a brand-new vertex or edge). Idempotent re-insertions do not bump it.
//	A shortest-path snapshot captures the version at build time and refuses
//	queries once the live graph has moved past it.
//
// Concurrency
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards
//	the vertex set, the adjacency relation, and the version counter.
//
// Errors
//
//	ErrEmptyWord      - a word argument is the empty string.
//	ErrVertexNotFound - an operation referenced a word that is not a vertex.
//	ErrSelfLoop       - AddEdge was called with two equal words.
package core
