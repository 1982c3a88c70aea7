// This file declares the Graph type, its sentinel errors, and the
// NewGraph constructor. Mutating and querying methods live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for word-graph operations.
var (
	// ErrEmptyWord indicates that a word argument was the empty string.
	ErrEmptyWord = errors.New("core: word is empty")

	// ErrVertexNotFound indicates an operation referenced a word that has
	// not been added as a vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates AddEdge was called with two equal words;
	// the word graph never contains self-loops.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is an undirected, unweighted word graph.
//
// The zero value is not usable; construct with NewGraph. All methods are
// safe for concurrent use. The graph is additive-only: vertices and edges
// can be inserted but never removed.
type Graph struct {
	mu sync.RWMutex

	// vertices is the word set; membership defines vertex identity.
	vertices map[string]struct{}

	// adjacency[u][v] exists iff the undirected edge (u,v) exists;
	// both orientations are always stored together.
	adjacency map[string]map[string]struct{}

	// edgeCount is the number of undirected edges (each counted once).
	edgeCount int

	// version counts effective mutations; see Version.
	version uint64
}

// NewGraph creates an empty word graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
