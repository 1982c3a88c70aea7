// Package apsp option and error definitions plus the Snapshot query surface.
package apsp

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for vertex pairs with no connecting
// path. It is never a legal edge count (edge counts are non-negative).
const Unreachable = -1

// Internal table sentinels.
const (
	// infinity marks "no path known" inside the distance table. MaxInt32
	// guarantees that a finite sum of two entries never overflows int32.
	infinity int32 = math.MaxInt32

	// noHop marks "no next hop" inside the next-hop table.
	noHop int32 = -1
)

// Sentinel errors for precomputation and queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to Compute.
	ErrGraphNil = errors.New("apsp: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("apsp: invalid option supplied")

	// ErrVertexNotFound is returned when a queried word was not a vertex
	// at the time the snapshot was computed.
	ErrVertexNotFound = errors.New("apsp: vertex not found in snapshot")

	// ErrCorruptSnapshot is returned when path reconstruction does not
	// terminate within V hops. It indicates a corrupted next-hop table and
	// is a defensive guard, never an expected outcome.
	ErrCorruptSnapshot = errors.New("apsp: next-hop table corrupt")
)

// Option configures Compute via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Compute runs.
type Option func(*Options)

// Options holds the parameters of one Compute invocation.
type Options struct {
	// Ctx allows cancellation between k iterations of the outer loop.
	Ctx context.Context

	// Workers is the number of goroutines sweeping the inner (i,j) loops
	// for a fixed k. 1 means fully sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and a single
// sequential worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets a custom context for cancellation. Cancellation is
// observed between iterations of the outer k loop.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines used for the data-parallel
// inner sweep. n must be ≥ 1; the outer k loop is never parallelized.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// Snapshot is the immutable result of one precomputation: the captured
// vertex enumeration, its word→index mapping, the distance table, the
// next-hop table, and the graph version the tables were built from.
//
// A Snapshot never changes after Compute returns and is safe for
// concurrent readers. Index validity is scoped to this Snapshot only;
// a rebuilt snapshot derives a fresh mapping.
type Snapshot struct {
	words   []string       // index → word, sorted ascending
	index   map[string]int // word → index, inverse of words
	dist    []int32        // V×V flat row-major; infinity = no path
	next    []int32        // V×V flat row-major; noHop = none
	version uint64         // graph version at compute time
}

// Order returns V, the number of vertices captured by the snapshot.
func (s *Snapshot) Order() int { return len(s.words) }

// Version returns the graph mutation counter captured when the snapshot
// was computed. Callers compare it against the live graph's Version() to
// detect staleness.
func (s *Snapshot) Version() uint64 { return s.version }

// Words returns a copy of the captured vertex enumeration, sorted ascending.
func (s *Snapshot) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)

	return out
}

// Distance returns the minimum number of edges on any path between word1
// and word2, or Unreachable if no path exists.
//
// Errors: ErrVertexNotFound if either word is not part of the snapshot.
// Complexity: O(1).
func (s *Snapshot) Distance(word1, word2 string) (int, error) {
	i, j, err := s.indices(word1, word2)
	if err != nil {
		return 0, err
	}

	d := s.dist[i*len(s.words)+j]
	if d == infinity {
		return Unreachable, nil
	}

	return int(d), nil
}

// Path returns one shortest path from word1 to word2, both endpoints
// included. Unreachable pairs yield a nil path and no error; a path from a
// word to itself is the single-element path [word].
//
// Errors: ErrVertexNotFound if either word is not part of the snapshot;
// ErrCorruptSnapshot if reconstruction exceeds V hops.
// Complexity: O(L) where L is the path length.
func (s *Snapshot) Path(word1, word2 string) ([]string, error) {
	i, j, err := s.indices(word1, word2)
	if err != nil {
		return nil, err
	}

	v := len(s.words)
	if s.dist[i*v+j] == infinity {
		return nil, nil // disconnected pair: empty path, not an error
	}

	path := make([]string, 0, int(s.dist[i*v+j])+1)
	path = append(path, s.words[i])

	// Follow next-hops from i towards j. The hop bound defends against a
	// corrupted table instead of looping forever.
	cur := i
	for hops := 0; cur != j; hops++ {
		if hops >= v {
			return nil, fmt.Errorf("%w: no convergence from %q to %q", ErrCorruptSnapshot, word1, word2)
		}
		step := s.next[cur*v+j]
		if step == noHop {
			return nil, fmt.Errorf("%w: missing hop from %q to %q", ErrCorruptSnapshot, word1, word2)
		}
		cur = int(step)
		path = append(path, s.words[cur])
	}

	return path, nil
}

// indices resolves both query words to snapshot indices.
func (s *Snapshot) indices(word1, word2 string) (int, int, error) {
	i, ok := s.index[word1]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, word1)
	}
	j, ok := s.index[word2]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, word2)
	}

	return i, j, nil
}
