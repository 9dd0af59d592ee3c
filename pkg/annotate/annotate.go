package annotate

import (
	"github.com/dd0wney/storygraph/pkg/analysis"
	"github.com/dd0wney/storygraph/pkg/dataset"
	"github.com/dd0wney/storygraph/pkg/graphbuild"
)

// Annotated is one row of the augmented node table: the original node
// columns plus every derived metric and presentation column.
type Annotated struct {
	ID                 int64
	Label              string
	House              string
	Degree             int
	WeightedDegree     float64
	Community          int
	Eccentricity       int
	DegreeRank         int
	WeightedDegreeRank int
	PaletteIndex       int
	RankColor          string
	HouseColor         string
}

// Metrics bundles the computed metric maps keyed by internal node id.
type Metrics struct {
	Degree         map[int64]int
	WeightedDegree map[int64]float64
	Community      map[int64]int
	Eccentricity   map[int64]int
}

// Merge writes the computed metrics back onto the node table. Every
// metric key is checked against the id space; a key outside it is an
// internal-consistency failure, not something to skip.
func Merge(nodes []dataset.Node, ids *graphbuild.IDMap, metrics Metrics, palette Palette) ([]Annotated, error) {
	if err := checkIDs(ids, "degree", metrics.Degree); err != nil {
		return nil, err
	}
	if err := checkFloatIDs(ids, "weighted_degree", metrics.WeightedDegree); err != nil {
		return nil, err
	}
	if err := checkIDs(ids, "community", metrics.Community); err != nil {
		return nil, err
	}
	if err := checkIDs(ids, "eccentricity", metrics.Eccentricity); err != nil {
		return nil, err
	}

	degreeRanks := analysis.DenseRanks(analysis.FromInts(metrics.Degree))
	strengthRanks := analysis.DenseRanks(metrics.WeightedDegree)

	rows := make([]Annotated, 0, len(nodes))
	for _, node := range nodes {
		id, ok := ids.ID(node.Label)
		if !ok {
			return nil, dataset.UnresolvedEndpointError(node.Label)
		}

		strengthRank := strengthRanks[id]
		rows = append(rows, Annotated{
			ID:                 id,
			Label:              node.Label,
			House:              node.House,
			Degree:             metrics.Degree[id],
			WeightedDegree:     metrics.WeightedDegree[id],
			Community:          metrics.Community[id],
			Eccentricity:       metrics.Eccentricity[id],
			DegreeRank:         degreeRanks[id],
			WeightedDegreeRank: strengthRank,
			PaletteIndex:       palette.IndexFor(strengthRank),
			RankColor:          palette.ColorFor(strengthRank),
			HouseColor:         palette.HouseColor(node.House),
		})
	}

	return rows, nil
}

func checkIDs(ids *graphbuild.IDMap, metric string, m map[int64]int) error {
	for id := range m {
		if !ids.Contains(id) {
			return dataset.UnknownNodeIDError(metric, id)
		}
	}
	return nil
}

func checkFloatIDs(ids *graphbuild.IDMap, metric string, m map[int64]float64) error {
	for id := range m {
		if !ids.Contains(id) {
			return dataset.UnknownNodeIDError(metric, id)
		}
	}
	return nil
}
