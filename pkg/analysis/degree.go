package analysis

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Degree computes degree centrality for all nodes in the directed view.
// Simple count of incident edges, both directions combined.
func Degree(g *simple.WeightedDirectedGraph) map[int64]int {
	degree := make(map[int64]int, g.Nodes().Len())

	nodes := g.Nodes()
	for nodes.Next() {
		degree[nodes.Node().ID()] = 0
	}

	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		degree[e.From().ID()]++
		degree[e.To().ID()]++
	}

	return degree
}

// WeightedDegree computes strength for all nodes in the directed view:
// the sum of incident edge weights, both directions combined.
func WeightedDegree(g *simple.WeightedDirectedGraph) map[int64]float64 {
	strength := make(map[int64]float64, g.Nodes().Len())

	nodes := g.Nodes()
	for nodes.Next() {
		strength[nodes.Node().ID()] = 0
	}

	edges := g.WeightedEdges()
	for edges.Next() {
		e := edges.WeightedEdge()
		strength[e.From().ID()] += e.Weight()
		strength[e.To().ID()] += e.Weight()
	}

	return strength
}
