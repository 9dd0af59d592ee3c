package graphbuild

import (
	"errors"
	"testing"

	"github.com/dd0wney/storygraph/pkg/dataset"
)

func testNodes() []dataset.Node {
	return []dataset.Node{
		{Label: "A", House: "gryffindor"},
		{Label: "B", House: "slytherin"},
		{Label: "C", House: "other"},
	}
}

func TestBuild_Valid(t *testing.T) {
	edges := []dataset.Edge{
		{Source: "A", Target: "B", Weight: 12},
		{Source: "B", Target: "C", Weight: 15},
	}

	graphs, err := Build(testNodes(), edges, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if graphs.IDs.Len() != 3 {
		t.Errorf("Expected 3 mapped labels, got %d", graphs.IDs.Len())
	}
	if graphs.Directed.Nodes().Len() != 3 {
		t.Errorf("Expected 3 nodes in directed view, got %d", graphs.Directed.Nodes().Len())
	}
	if graphs.Undirected.Nodes().Len() != 3 {
		t.Errorf("Expected 3 nodes in undirected view, got %d", graphs.Undirected.Nodes().Len())
	}
	if graphs.Directed.Edges().Len() != 2 {
		t.Errorf("Expected 2 edges in directed view, got %d", graphs.Directed.Edges().Len())
	}

	// Weight must be preserved on both views
	a, _ := graphs.IDs.ID("A")
	b, _ := graphs.IDs.ID("B")
	if w, ok := graphs.Directed.Weight(a, b); !ok || w != 12 {
		t.Errorf("Directed weight A->B = %v (ok=%v), want 12", w, ok)
	}
	if w, ok := graphs.Undirected.Weight(b, a); !ok || w != 12 {
		t.Errorf("Undirected weight B-A = %v (ok=%v), want 12", w, ok)
	}
}

func TestBuild_JoinCompleteness(t *testing.T) {
	edges := []dataset.Edge{
		{Source: "A", Target: "B", Weight: 12},
		{Source: "B", Target: "C", Weight: 15},
	}

	graphs, err := Build(testNodes(), edges, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	it := graphs.Directed.Edges()
	for it.Next() {
		e := it.Edge()
		if !graphs.IDs.Contains(e.From().ID()) || !graphs.IDs.Contains(e.To().ID()) {
			t.Errorf("Edge %d->%d has endpoint outside the id space", e.From().ID(), e.To().ID())
		}
	}
}

func TestBuild_UnresolvedSource(t *testing.T) {
	edges := []dataset.Edge{
		{Source: "Peeves", Target: "B", Weight: 12},
	}

	_, err := Build(testNodes(), edges, nil)
	if !errors.Is(err, dataset.ErrUnresolvedEndpoint) {
		t.Fatalf("Expected ErrUnresolvedEndpoint, got %v", err)
	}

	var dataErr *dataset.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("Expected *DataError, got %T", err)
	}
	if dataErr.Label != "Peeves" {
		t.Errorf("Error should name the missing label, got %q", dataErr.Label)
	}
}

func TestBuild_UnresolvedTarget(t *testing.T) {
	edges := []dataset.Edge{
		{Source: "A", Target: "Nearly Headless Nick", Weight: 12},
	}

	_, err := Build(testNodes(), edges, nil)
	if !errors.Is(err, dataset.ErrUnresolvedEndpoint) {
		t.Fatalf("Expected ErrUnresolvedEndpoint, got %v", err)
	}
}

func TestBuild_SelfLoop(t *testing.T) {
	edges := []dataset.Edge{
		{Source: "A", Target: "A", Weight: 12},
	}

	_, err := Build(testNodes(), edges, nil)
	if !errors.Is(err, dataset.ErrMalformedInput) {
		t.Fatalf("Expected ErrMalformedInput for self-interaction, got %v", err)
	}
}

func TestIDMap(t *testing.T) {
	m := NewIDMap([]string{"A", "B", "C"})

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}

	id, ok := m.ID("B")
	if !ok || id != 1 {
		t.Errorf("ID(B) = %d (ok=%v), want 1", id, ok)
	}

	label, ok := m.Label(2)
	if !ok || label != "C" {
		t.Errorf("Label(2) = %q (ok=%v), want C", label, ok)
	}

	if _, ok := m.ID("missing"); ok {
		t.Error("ID(missing) should not resolve")
	}
	if _, ok := m.Label(99); ok {
		t.Error("Label(99) should not resolve")
	}
	if m.Contains(-1) || m.Contains(3) {
		t.Error("Contains should reject ids outside [0, len)")
	}

	labels := m.Labels()
	if len(labels) != 3 || labels[0] != "A" || labels[2] != "C" {
		t.Errorf("Labels() = %v", labels)
	}
}
