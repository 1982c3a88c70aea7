// Vertex and edge lifecycle plus query surface of the word graph.
//
// Determinism:
//   - Vertices() and Neighbors() return words sorted lexicographically
//     ascending; all enumeration surfaces are reproducible.
package core

import "sort"

// AddVertex inserts word as a vertex if missing.
//
// Idempotent: adding an existing word is a no-op and does not bump the
// graph version, so a previously built shortest-path snapshot stays valid.
//
// Errors: ErrEmptyWord if word == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(word string) error {
	if word == "" {
		return ErrEmptyWord
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[word]; exists {
		return nil // duplicate words collapse to one vertex
	}

	g.vertices[word] = struct{}{}
	g.adjacency[word] = make(map[string]struct{})
	g.version++

	return nil
}

// AddEdge inserts the undirected edge (word1, word2).
//
// Both endpoints must already be vertices; edges never create vertices.
// Both orientations of the adjacency relation are stored together, so the
// relation is symmetric by construction. Idempotent: re-adding an existing
// edge is a no-op and does not bump the graph version.
//
// Errors: ErrEmptyWord, ErrSelfLoop, ErrVertexNotFound.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(word1, word2 string) error {
	if word1 == "" || word2 == "" {
		return ErrEmptyWord
	}
	if word1 == word2 {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[word1]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[word2]; !ok {
		return ErrVertexNotFound
	}
	if _, dup := g.adjacency[word1][word2]; dup {
		return nil
	}

	g.adjacency[word1][word2] = struct{}{}
	g.adjacency[word2][word1] = struct{}{}
	g.edgeCount++
	g.version++

	return nil
}

// HasVertex reports whether word is a vertex (empty word ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(word string) bool {
	if word == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[word]

	return ok
}

// HasEdge reports whether the undirected edge (word1, word2) exists.
// Symmetric: HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1).
func (g *Graph) HasEdge(word1, word2 string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[word1][word2]

	return ok
}

// Vertices returns all words in lexicographic ascending order.
//
// This is the stable enumeration surface the shortest-path engine builds
// its word→index mapping from; two calls over the same graph state return
// identical slices.
//
// Complexity: O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	words := make([]string, 0, len(g.vertices))
	for w := range g.vertices {
		words = append(words, w)
	}
	sort.Strings(words)

	return words
}

// Neighbors returns the words adjacent to word, sorted ascending.
//
// Errors: ErrEmptyWord, ErrVertexNotFound.
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) Neighbors(word string) ([]string, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[word]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(bucket))
	for w := range bucket {
		out = append(out, w)
	}
	sort.Strings(out)

	return out, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges, each counted once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Version returns the mutation counter: it increases by one for every
// vertex or edge that was actually inserted (no-op re-insertions excluded).
// Snapshot builders capture it to detect staleness.
// Complexity: O(1).
func (g *Graph) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}
