package graphbuild

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/dd0wney/storygraph/pkg/dataset"
	"github.com/dd0wney/storygraph/pkg/logging"
)

// Graphs holds the two views over the same node and edge set.
// The directed view serves degree-style metrics; the undirected view
// serves community detection and distance metrics, which assume
// symmetric reachability.
type Graphs struct {
	Directed   *simple.WeightedDirectedGraph
	Undirected *simple.WeightedUndirectedGraph
	IDs        *IDMap
}

// Build resolves edge endpoints against the node labels and constructs
// both weighted graph views. Every endpoint must resolve; an edge
// referencing an unknown character is a data error, never a silent drop.
func Build(nodes []dataset.Node, edges []dataset.Edge, logger logging.Logger) (*Graphs, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.With(logging.Component("graphbuild"))

	labels := make([]string, len(nodes))
	for i, node := range nodes {
		labels[i] = node.Label
	}
	ids := NewIDMap(labels)

	directed := simple.NewWeightedDirectedGraph(0, 0)
	undirected := simple.NewWeightedUndirectedGraph(0, 0)

	for i := range nodes {
		directed.AddNode(simple.Node(int64(i)))
		undirected.AddNode(simple.Node(int64(i)))
	}

	for _, edge := range edges {
		from, ok := ids.ID(edge.Source)
		if !ok {
			return nil, dataset.UnresolvedEndpointError(edge.Source)
		}
		to, ok := ids.ID(edge.Target)
		if !ok {
			return nil, dataset.UnresolvedEndpointError(edge.Target)
		}
		if from == to {
			return nil, &dataset.DataError{
				Op:     "Build",
				Entity: "edge",
				Label:  edge.Source,
				Cause:  fmt.Errorf("%w: self-interaction", dataset.ErrMalformedInput),
			}
		}

		w := float64(edge.Weight)
		directed.SetWeightedEdge(directed.NewWeightedEdge(simple.Node(from), simple.Node(to), w))
		undirected.SetWeightedEdge(undirected.NewWeightedEdge(simple.Node(from), simple.Node(to), w))
	}

	logger.Info("graph built",
		logging.Int("nodes", ids.Len()),
		logging.Int("edges", len(edges)),
	)

	return &Graphs{Directed: directed, Undirected: undirected, IDs: ids}, nil
}
