// Sentinel errors and functional options for the Processor.
package wordgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordgraph/apsp"
)

// Unreachable is the distance reported for word pairs with no connecting
// ladder. Re-exported from apsp for callers that only import this package.
const Unreachable = apsp.Unreachable

// Sentinel errors for Processor operations.
var (
	// ErrNotPrecomputed is returned by queries issued before any
	// precomputation has run.
	ErrNotPrecomputed = errors.New("wordgraph: shortest paths not precomputed")

	// ErrStaleSnapshot is returned by queries issued after the graph was
	// mutated but before the next Precompute. It wraps ErrNotPrecomputed,
	// so errors.Is(err, ErrNotPrecomputed) matches both conditions.
	ErrStaleSnapshot = fmt.Errorf("wordgraph: graph mutated since last precompute: %w", ErrNotPrecomputed)

	// ErrOptionViolation is returned by NewProcessor for an invalid Option.
	ErrOptionViolation = errors.New("wordgraph: invalid option supplied")
)

// Option configures a Processor at construction time.
type Option func(*Options)

// Options holds Processor construction parameters.
type Options struct {
	// Workers is the goroutine count for the two hot loops: the O(N²)
	// all-pairs adjacency scan in Populate and the inner sweep of the
	// Floyd–Warshall relaxation in Precompute. 1 means fully sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options for a sequential Processor.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the worker count for Populate's adjacency scan and
// Precompute's relaxation sweep. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
