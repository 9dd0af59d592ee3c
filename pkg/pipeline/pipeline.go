package pipeline

import (
	"github.com/google/uuid"

	"github.com/dd0wney/storygraph/pkg/analysis"
	"github.com/dd0wney/storygraph/pkg/annotate"
	"github.com/dd0wney/storygraph/pkg/config"
	"github.com/dd0wney/storygraph/pkg/dataset"
	"github.com/dd0wney/storygraph/pkg/graphbuild"
	"github.com/dd0wney/storygraph/pkg/logging"
)

// RankedCharacter is a top-N entry resolved back to a character label.
type RankedCharacter struct {
	Label string
	Score float64
}

// Result is the full output of one analysis run.
type Result struct {
	RunID        string
	NodeCount    int
	EdgeCount    int
	Nodes        []annotate.Annotated
	Eccentricity *analysis.EccentricityReport
	Communities  *analysis.CommunityResult
	TopDegree    []RankedCharacter
	TopStrength  []RankedCharacter
}

// Run executes the four pipeline stages as explicit function
// composition: load, build, measure, merge. Any stage error aborts the
// run; there are no partial results.
func Run(cfg *config.Config, nodesPath, edgesPath string, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	runID := uuid.NewString()
	logger = logger.With(logging.RunID(runID))

	timer := logging.StartTimer(logger, "analysis complete", logging.Component("pipeline"))

	loader := dataset.NewLoader(logger)
	nodes, edges, err := loader.Load(nodesPath, edgesPath)
	if err != nil {
		return nil, err
	}

	graphs, err := graphbuild.Build(nodes, edges, logger)
	if err != nil {
		return nil, err
	}

	degree := analysis.Degree(graphs.Directed)
	strength := analysis.WeightedDegree(graphs.Directed)

	communities := analysis.Communities(graphs.Undirected, cfg.Resolution, cfg.Seed)
	logger.Info("communities detected",
		logging.Component("analysis"),
		logging.Count(len(communities.Communities)),
		logging.Float64("modularity", communities.Modularity),
	)

	eccentricity, err := analysis.NewEccentricityReport(graphs.Undirected)
	if err != nil {
		return nil, err
	}

	palette := annotate.Palette{Colors: cfg.RankPalette, Houses: cfg.HouseColors}
	rows, err := annotate.Merge(nodes, graphs.IDs, annotate.Metrics{
		Degree:         degree,
		WeightedDegree: strength,
		Community:      communities.Membership,
		Eccentricity:   eccentricity.PerNode,
	}, palette)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:        runID,
		NodeCount:    len(nodes),
		EdgeCount:    len(edges),
		Nodes:        rows,
		Eccentricity: eccentricity,
		Communities:  communities,
		TopDegree:    resolveTop(analysis.TopNodes(analysis.FromInts(degree), cfg.TopN), graphs.IDs),
		TopStrength:  resolveTop(analysis.TopNodes(strength, cfg.TopN), graphs.IDs),
	}

	timer.End()
	return result, nil
}

func resolveTop(ranked []analysis.RankedNode, ids *graphbuild.IDMap) []RankedCharacter {
	out := make([]RankedCharacter, 0, len(ranked))
	for _, rn := range ranked {
		label, ok := ids.Label(rn.ID)
		if !ok {
			continue
		}
		out = append(out, RankedCharacter{Label: label, Score: rn.Score})
	}
	return out
}
