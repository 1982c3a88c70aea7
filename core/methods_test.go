package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
)

// TestAddVertex covers insertion, idempotency, and the empty-word rejection.
func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyWord) {
		t.Errorf("empty word: want ErrEmptyWord, got %v", err)
	}
	if err := g.AddVertex("CAT"); err != nil {
		t.Fatalf("AddVertex(CAT): %v", err)
	}
	if !g.HasVertex("CAT") {
		t.Error("HasVertex(CAT) = false after AddVertex")
	}
	if g.VertexCount() != 1 {
		t.Errorf("VertexCount = %d; want 1", g.VertexCount())
	}

	// Duplicate insert: no-op, count and version unchanged.
	v := g.Version()
	if err := g.AddVertex("CAT"); err != nil {
		t.Fatalf("duplicate AddVertex: %v", err)
	}
	if g.VertexCount() != 1 {
		t.Errorf("VertexCount after duplicate = %d; want 1", g.VertexCount())
	}
	if g.Version() != v {
		t.Errorf("Version bumped by duplicate AddVertex: %d -> %d", v, g.Version())
	}
}

// TestAddEdge covers endpoint validation, symmetry, self-loop rejection,
// and idempotency.
func TestAddEdge(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("CAT"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddVertex("RAT"); err != nil {
		t.Fatal(err)
	}

	// Edges never create vertices.
	if err := g.AddEdge("CAT", "HAT"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing endpoint: want ErrVertexNotFound, got %v", err)
	}
	if err := g.AddEdge("CAT", "CAT"); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if err := g.AddEdge("", "RAT"); !errors.Is(err, core.ErrEmptyWord) {
		t.Errorf("empty word: want ErrEmptyWord, got %v", err)
	}

	if err := g.AddEdge("CAT", "RAT"); err != nil {
		t.Fatalf("AddEdge(CAT,RAT): %v", err)
	}
	if !g.HasEdge("CAT", "RAT") || !g.HasEdge("RAT", "CAT") {
		t.Error("edge not symmetric: HasEdge must hold in both orientations")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d; want 1", g.EdgeCount())
	}

	// Re-adding the same edge (either orientation) is a no-op.
	v := g.Version()
	if err := g.AddEdge("RAT", "CAT"); err != nil {
		t.Fatalf("duplicate AddEdge: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount after duplicate = %d; want 1", g.EdgeCount())
	}
	if g.Version() != v {
		t.Errorf("Version bumped by duplicate AddEdge: %d -> %d", v, g.Version())
	}
}

// TestVertices_SortedStable checks the deterministic enumeration order.
func TestVertices_SortedStable(t *testing.T) {
	g := core.NewGraph()
	for _, w := range []string{"WHEAT", "CAT", "NEAT", "HAT", "RAT"} {
		if err := g.AddVertex(w); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"CAT", "HAT", "NEAT", "RAT", "WHEAT"}
	if got := g.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
	// Two calls over the same state must agree element-wise.
	if !reflect.DeepEqual(g.Vertices(), g.Vertices()) {
		t.Error("Vertices enumeration is not stable across calls")
	}
}

// TestNeighbors checks sorted neighbor listing and the not-found error.
func TestNeighbors(t *testing.T) {
	g := core.NewGraph()
	for _, w := range []string{"CAT", "RAT", "HAT"} {
		if err := g.AddVertex(w); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge("CAT", "RAT"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("CAT", "HAT"); err != nil {
		t.Fatal(err)
	}

	got, err := g.Neighbors("CAT")
	if err != nil {
		t.Fatalf("Neighbors(CAT): %v", err)
	}
	if want := []string{"HAT", "RAT"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(CAT) = %v; want %v", got, want)
	}

	if _, err = g.Neighbors("DOG"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Neighbors(DOG): want ErrVertexNotFound, got %v", err)
	}
	if _, err = g.Neighbors(""); !errors.Is(err, core.ErrEmptyWord) {
		t.Errorf("Neighbors(\"\"): want ErrEmptyWord, got %v", err)
	}

	// An isolated vertex has an empty (non-nil error-free) neighbor list.
	if err = g.AddVertex("KIT"); err != nil {
		t.Fatal(err)
	}
	iso, err := g.Neighbors("KIT")
	if err != nil {
		t.Fatalf("Neighbors(KIT): %v", err)
	}
	if len(iso) != 0 {
		t.Errorf("Neighbors(KIT) = %v; want empty", iso)
	}
}

// TestVersion_EffectiveMutationsOnly pins the staleness-counter contract:
// every new vertex or edge bumps the version exactly once.
func TestVersion_EffectiveMutationsOnly(t *testing.T) {
	g := core.NewGraph()
	if g.Version() != 0 {
		t.Fatalf("fresh graph Version = %d; want 0", g.Version())
	}
	_ = g.AddVertex("CAT") // +1
	_ = g.AddVertex("RAT") // +1
	_ = g.AddVertex("CAT") // no-op
	if g.Version() != 2 {
		t.Errorf("Version after 2 vertices = %d; want 2", g.Version())
	}
	_ = g.AddEdge("CAT", "RAT") // +1
	_ = g.AddEdge("RAT", "CAT") // no-op
	if g.Version() != 3 {
		t.Errorf("Version after 1 edge = %d; want 3", g.Version())
	}
}
