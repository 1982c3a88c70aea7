package apsp

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/wordgraph/core"
)

// Compute runs Floyd–Warshall with next-hop reconstruction over the current
// state of g and returns an immutable Snapshot.
//
// The vertex enumeration is g.Vertices() (sorted ascending); the word→index
// mapping derived from it is valid only within the returned Snapshot. The
// graph version is captured up front so callers can detect staleness later.
//
// Compute reads g through its thread-safe accessors but does not lock out
// concurrent mutation for its whole duration; callers that mutate and
// compute concurrently must coordinate externally (wordgraph.Processor does).
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// or the context's error if cancelled.
//
// Complexity: Time O(V³), Space O(V²) for the two tables.
func Compute(g *core.Graph, opts ...Option) (*Snapshot, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	version := g.Version()
	words := g.Vertices()
	v := len(words)

	index := make(map[string]int, v)
	for i, w := range words {
		index[w] = i
	}

	dist := make([]int32, v*v)
	next := make([]int32, v*v)

	// Base case: 0 on the diagonal, 1 for adjacent pairs, infinity elsewhere.
	// The next hop towards an adjacent vertex is that vertex itself.
	for i := range dist {
		dist[i] = infinity
		next[i] = noHop
	}
	for i, w := range words {
		dist[i*v+i] = 0
		next[i*v+i] = int32(i)

		nbrs, err := g.Neighbors(w)
		if err != nil {
			return nil, fmt.Errorf("apsp: neighbors of %q: %w", w, err)
		}
		for _, nb := range nbrs {
			j := index[nb]
			dist[i*v+j] = 1
			next[i*v+j] = int32(j)
		}
	}

	// Relaxation. k must be the outermost loop: each intermediate vertex is
	// fully committed before the next one is used as a waypoint.
	for k := 0; k < v; k++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if o.Workers <= 1 || v < o.Workers {
			relaxRows(dist, next, v, k, 0, v)
			continue
		}

		// Rows are independent for a fixed k: row k and column k are never
		// written during iteration k (relaxing through k cannot shorten a
		// path to or from k itself), so cross-row reads only touch stable
		// entries.
		var wg sync.WaitGroup
		chunk := (v + o.Workers - 1) / o.Workers
		for lo := 0; lo < v; lo += chunk {
			hi := lo + chunk
			if hi > v {
				hi = v
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				relaxRows(dist, next, v, k, lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	}

	return &Snapshot{
		words:   words,
		index:   index,
		dist:    dist,
		next:    next,
		version: version,
	}, nil
}

// relaxRows relaxes rows [lo, hi) of the distance table through the
// intermediate vertex k. Strict improvement only: the first k achieving a
// minimum wins, and equal-length alternatives never overwrite it.
func relaxRows(dist, next []int32, v, k, lo, hi int) {
	baseK := k * v
	for i := lo; i < hi; i++ {
		ik := dist[i*v+k]
		if ik == infinity {
			continue // i cannot reach k: no path via k can improve row i
		}
		baseI := i * v
		for j := 0; j < v; j++ {
			kj := dist[baseK+j]
			if kj == infinity {
				continue // k cannot reach j: skip candidate computation
			}
			if cand := ik + kj; cand < dist[baseI+j] {
				dist[baseI+j] = cand
				next[baseI+j] = next[baseI+k] // first hop towards k leads to j
			}
		}
	}
}
