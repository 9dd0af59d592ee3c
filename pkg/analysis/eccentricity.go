package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/dd0wney/storygraph/pkg/dataset"
)

// EccentricityReport bundles the per-node eccentricities with the
// graph-level distance metrics derived from them.
type EccentricityReport struct {
	PerNode  map[int64]int
	Diameter int
	Radius   int
	Mean     float64
}

// Eccentricities computes, for every node in the undirected view, the
// maximum BFS hop distance to any other node. Eccentricity is undefined
// on a disconnected graph, so that case fails with ErrDisconnected
// rather than producing zero or infinite placeholders.
func Eccentricities(g *simple.WeightedUndirectedGraph) (map[int64]int, error) {
	total := g.Nodes().Len()
	ecc := make(map[int64]int, total)
	if total == 0 {
		return ecc, nil
	}

	var bfs traverse.BreadthFirst
	nodes := g.Nodes()
	for nodes.Next() {
		source := nodes.Node()
		reached := 0
		farthest := 0

		bfs.Reset()
		bfs.Walk(g, source, func(n graph.Node, depth int) bool {
			reached++
			if depth > farthest {
				farthest = depth
			}
			return false
		})

		if reached != total {
			return nil, &dataset.DataError{
				Op:     "Eccentricities",
				Entity: "graph",
				Cause: fmt.Errorf("%w: only %d of %d nodes reachable from node %d",
					dataset.ErrDisconnected, reached, total, source.ID()),
			}
		}

		ecc[source.ID()] = farthest
	}

	return ecc, nil
}

// Diameter returns the maximum eccentricity over all nodes.
func Diameter(ecc map[int64]int) int {
	max := 0
	for _, e := range ecc {
		if e > max {
			max = e
		}
	}
	return max
}

// Radius returns the minimum eccentricity over all nodes.
func Radius(ecc map[int64]int) int {
	first := true
	min := 0
	for _, e := range ecc {
		if first || e < min {
			min = e
			first = false
		}
	}
	return min
}

// MeanEccentricity returns the arithmetic mean of all eccentricities.
func MeanEccentricity(ecc map[int64]int) float64 {
	if len(ecc) == 0 {
		return 0
	}
	sum := 0
	for _, e := range ecc {
		sum += e
	}
	return float64(sum) / float64(len(ecc))
}

// NewEccentricityReport computes the full distance metric bundle for
// the undirected view.
func NewEccentricityReport(g *simple.WeightedUndirectedGraph) (*EccentricityReport, error) {
	ecc, err := Eccentricities(g)
	if err != nil {
		return nil, err
	}
	return &EccentricityReport{
		PerNode:  ecc,
		Diameter: Diameter(ecc),
		Radius:   Radius(ecc),
		Mean:     MeanEccentricity(ecc),
	}, nil
}
