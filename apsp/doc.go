// Package apsp precomputes all-pairs shortest paths over a word graph
// and answers repeated distance and path queries by table lookup.
//
// What
//
//   - Compute(g) snapshots the graph's sorted vertex enumeration, runs
//     Floyd–Warshall with next-hop reconstruction, and returns an immutable
//     Snapshot holding the distance and next-hop tables.
//   - Snapshot.Distance(w1, w2) returns the minimum edge count between two
//     words, or Unreachable when no path exists.
//   - Snapshot.Path(w1, w2) reconstructs one shortest path, endpoints
//     included, by following the next-hop table; unreachable pairs yield an
//     empty path.
//
// Why
//
//	A single Floyd–Warshall pass costs O(V³), but afterwards every query is
//	O(1) for distances and O(path length) for paths. When a dictionary is
//	loaded once and queried many times, the precomputation wins quickly over
//	per-query searches.
//
// Layout
//
//	Both tables are flat row-major []int32 slices of length V×V indexed
//	i*V+j; the word→index mapping is built fresh from core.Graph.Vertices()
//	at each Compute call and is valid only within that Snapshot. Distances
//	use math.MaxInt32 as the internal +infinity, next-hops use -1 as "none".
//
// Determinism
//
//	The relaxation loop order is fixed (k outermost, then i, then j) and
//	relaxations apply on strict improvement only, so the first intermediate
//	vertex achieving a minimum wins and equal-length alternatives never
//	overwrite it. Among several shortest paths of equal length any one may
//	be returned, but the same one is returned every time for the same graph
//	state.
//
// Concurrency
//
//	The k loop is strictly sequential: every intermediate vertex k must be
//	fully committed before the next one is used. The inner (i,j) sweep for
//	a fixed k is data-parallel across rows; WithWorkers(n) fans it out over
//	n goroutines. WithContext makes long computations cancelable between k
//	iterations. A finished Snapshot is immutable and safe to share.
//
// Errors
//
//	ErrGraphNil        - Compute received a nil graph.
//	ErrOptionViolation - an invalid Option was supplied.
//	ErrVertexNotFound  - a queried word is not part of the snapshot.
//	ErrCorruptSnapshot - path reconstruction failed to terminate within V
//	                     hops; defensive, never expected in correct operation.
package apsp
