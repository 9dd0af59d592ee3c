package analysis

import (
	"math"
	"testing"

	"github.com/dd0wney/storygraph/pkg/dataset"
	"github.com/dd0wney/storygraph/pkg/graphbuild"
)

// setupLineGraph builds the reference three-node scenario:
// A -(12)- B -(15)- C
func setupLineGraph(t *testing.T) *graphbuild.Graphs {
	t.Helper()

	nodes := []dataset.Node{
		{Label: "A", House: "gryffindor"},
		{Label: "B", House: "slytherin"},
		{Label: "C", House: "other"},
	}
	edges := []dataset.Edge{
		{Source: "A", Target: "B", Weight: 12},
		{Source: "B", Target: "C", Weight: 15},
	}

	graphs, err := graphbuild.Build(nodes, edges, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return graphs
}

func TestDegree_LineGraph(t *testing.T) {
	graphs := setupLineGraph(t)

	degree := Degree(graphs.Directed)

	expected := map[int64]int{0: 1, 1: 2, 2: 1}
	for id, want := range expected {
		if degree[id] != want {
			t.Errorf("degree[%d] = %d, want %d", id, degree[id], want)
		}
	}
}

func TestWeightedDegree_LineGraph(t *testing.T) {
	graphs := setupLineGraph(t)

	strength := WeightedDegree(graphs.Directed)

	expected := map[int64]float64{0: 12, 1: 27, 2: 15}
	for id, want := range expected {
		if strength[id] != want {
			t.Errorf("strength[%d] = %v, want %v", id, strength[id], want)
		}
	}
}

func TestEccentricities_LineGraph(t *testing.T) {
	graphs := setupLineGraph(t)

	ecc, err := Eccentricities(graphs.Undirected)
	if err != nil {
		t.Fatalf("Eccentricities failed: %v", err)
	}

	expected := map[int64]int{0: 2, 1: 1, 2: 2}
	for id, want := range expected {
		if ecc[id] != want {
			t.Errorf("eccentricity[%d] = %d, want %d", id, ecc[id], want)
		}
	}

	if d := Diameter(ecc); d != 2 {
		t.Errorf("Diameter = %d, want 2", d)
	}
	if r := Radius(ecc); r != 1 {
		t.Errorf("Radius = %d, want 1", r)
	}
	if m := MeanEccentricity(ecc); math.Abs(m-5.0/3.0) > 1e-12 {
		t.Errorf("MeanEccentricity = %v, want 5/3", m)
	}
}

func TestNewEccentricityReport(t *testing.T) {
	graphs := setupLineGraph(t)

	report, err := NewEccentricityReport(graphs.Undirected)
	if err != nil {
		t.Fatalf("NewEccentricityReport failed: %v", err)
	}

	if report.Diameter != 2 || report.Radius != 1 {
		t.Errorf("Report diameter/radius = %d/%d, want 2/1", report.Diameter, report.Radius)
	}
	if report.Diameter < report.Radius {
		t.Error("diameter must be >= radius")
	}
	if report.Mean < float64(report.Radius) || report.Mean > float64(report.Diameter) {
		t.Errorf("Mean %v outside [radius, diameter]", report.Mean)
	}
	if len(report.PerNode) != 3 {
		t.Errorf("PerNode has %d entries, want 3", len(report.PerNode))
	}
}

func TestMeanEccentricity_Empty(t *testing.T) {
	if m := MeanEccentricity(map[int64]int{}); m != 0 {
		t.Errorf("MeanEccentricity(empty) = %v, want 0", m)
	}
}
