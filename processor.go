package wordgraph

import (
	"sync"

	"github.com/katalvlaran/wordgraph/adjacency"
	"github.com/katalvlaran/wordgraph/apsp"
	"github.com/katalvlaran/wordgraph/core"
)

// Processor owns a word graph and the most recent precomputed snapshot,
// and exposes the population and query API.
//
// Lifecycle: Populate (any number of times) → Precompute → queries.
// Population only ever adds vertices and edges; precomputation replaces the
// snapshot wholesale. Queries issued between a mutation and the next
// Precompute fail with ErrStaleSnapshot. All methods are safe for
// concurrent use.
type Processor struct {
	mu      sync.RWMutex
	graph   *core.Graph
	snap    *apsp.Snapshot // nil until the first Precompute
	workers int
}

// NewProcessor creates a Processor with an empty word graph.
//
// Errors: ErrOptionViolation for an invalid Option.
func NewProcessor(opts ...Option) (*Processor, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Processor{
		graph:   core.NewGraph(),
		workers: o.Workers,
	}, nil
}

// Populate adds every word as a vertex (duplicates collapse to one vertex)
// and recomputes the induced single-edit edges against the entire current
// vertex set, not just the newly added words. It returns the number of
// words processed in this call.
//
// The full retest is the correctness-safe choice: a new word can be
// adjacent to any previously seen word. Edge insertion is idempotent, so
// retesting old pairs costs time but never corrupts the graph. Only pairs
// with i < j are tested; the oracle is commutative and AddEdge stores both
// orientations, so testing the mirrored pair would be pure duplicate work.
//
// Populate does not invalidate the snapshot by itself: staleness is
// tracked by the graph version, so a call that adds nothing new (all
// duplicates, no fresh edges) leaves prior precomputation valid.
//
// Errors: core.ErrEmptyWord if any word is empty; the graph is not
// modified in that case.
//
// Complexity: O(N²) adjacency tests over the current vertex count N,
// fanned out across the configured workers.
func (p *Processor) Populate(words []string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Validate before mutating so a bad batch leaves the graph untouched.
	for _, w := range words {
		if w == "" {
			return 0, core.ErrEmptyWord
		}
	}

	for _, w := range words {
		if err := p.graph.AddVertex(w); err != nil {
			return 0, err
		}
	}

	vertices := p.graph.Vertices()
	if err := p.connect(vertices); err != nil {
		return 0, err
	}

	return len(words), nil
}

// connect runs the all-pairs adjacency test over vertices and inserts every
// induced edge. Rows are distributed across the configured workers; the
// graph's own locking makes concurrent AddEdge calls safe.
func (p *Processor) connect(vertices []string) error {
	n := len(vertices)
	if p.workers <= 1 || n < 2*p.workers {
		return connectRows(p.graph, vertices, 0, n)
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	chunk := (n + p.workers - 1) / p.workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			if err := connectRows(p.graph, vertices, lo, hi); err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		}(lo, hi)
	}
	wg.Wait()

	return firstErr
}

// connectRows tests rows [lo, hi) of the pair triangle (i < j only).
func connectRows(g *core.Graph, vertices []string, lo, hi int) error {
	for i := lo; i < hi; i++ {
		for j := i + 1; j < len(vertices); j++ {
			if !adjacency.IsAdjacent(vertices[i], vertices[j]) {
				continue
			}
			if err := g.AddEdge(vertices[i], vertices[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Precompute runs the all-pairs shortest-path computation over the current
// graph state and swaps the resulting snapshot in whole. It must be called
// at least once after population, and again after any later population,
// before queries are issued.
//
// Re-running Precompute with no intervening mutation is idempotent: the
// rebuilt tables are identical.
//
// Complexity: O(V³) time, O(V²) space.
func (p *Processor) Precompute() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap, err := apsp.Compute(p.graph, apsp.WithWorkers(p.workers))
	if err != nil {
		return err
	}
	p.snap = snap // all-or-nothing replace; readers never see partial tables

	return nil
}

// ShortestPath returns one shortest word ladder between word1 and word2,
// both endpoints included. Unreachable pairs yield an empty path.
//
// Errors: ErrNotPrecomputed if Precompute has never run; ErrStaleSnapshot
// if the graph changed since the last Precompute (it also matches
// ErrNotPrecomputed via errors.Is); apsp.ErrVertexNotFound if either word
// is not in the dictionary.
func (p *Processor) ShortestPath(word1, word2 string) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.snapshotReady(); err != nil {
		return nil, err
	}

	return p.snap.Path(word1, word2)
}

// ShortestDistance returns the number of edges on a shortest ladder between
// word1 and word2, or Unreachable when no ladder exists.
//
// Errors: same contract as ShortestPath.
func (p *Processor) ShortestDistance(word1, word2 string) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if err := p.snapshotReady(); err != nil {
		return 0, err
	}

	return p.snap.Distance(word1, word2)
}

// snapshotReady reports whether a current snapshot exists. Callers hold at
// least a read lock.
func (p *Processor) snapshotReady() error {
	if p.snap == nil {
		return ErrNotPrecomputed
	}
	if p.snap.Version() != p.graph.Version() {
		return ErrStaleSnapshot
	}

	return nil
}

// VertexCount returns the number of distinct words in the graph.
func (p *Processor) VertexCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.VertexCount()
}

// EdgeCount returns the number of single-edit edges in the graph.
func (p *Processor) EdgeCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph.EdgeCount()
}

// Graph returns the underlying word graph. Mutating it directly is
// supported: the version counter makes any prior snapshot stale, exactly
// as a Populate call would.
func (p *Processor) Graph() *core.Graph {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.graph
}
