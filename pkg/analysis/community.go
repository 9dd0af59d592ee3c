package analysis

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
)

// CommunityResult contains a Louvain partition of the undirected view.
type CommunityResult struct {
	// Membership maps each node id to its community id. Community ids
	// carry no meaning beyond partition membership; they are normalized
	// so that communities are numbered by their smallest member id,
	// which keeps output stable for a seeded run.
	Membership map[int64]int
	// Communities lists member ids per community, sorted ascending.
	Communities [][]int64
	// Modularity is the Q score of the partition.
	Modularity float64
}

// Communities runs Louvain modularity maximization on the undirected
// weighted view. The random source is seeded so repeated runs over the
// same input produce the same partition.
func Communities(g *simple.WeightedUndirectedGraph, resolution float64, seed uint64) *CommunityResult {
	if g.Nodes().Len() == 0 {
		return &CommunityResult{Membership: map[int64]int{}}
	}

	reduced := community.Modularize(g, resolution, rand.NewPCG(seed, seed))
	groups := reduced.Communities()

	ids := make([][]int64, 0, len(groups))
	for _, group := range groups {
		members := make([]int64, 0, len(group))
		for _, n := range group {
			members = append(members, n.ID())
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		ids = append(ids, members)
	}
	// Number communities by smallest member id
	sort.Slice(ids, func(i, j int) bool { return ids[i][0] < ids[j][0] })

	membership := make(map[int64]int, g.Nodes().Len())
	for communityID, members := range ids {
		for _, id := range members {
			membership[id] = communityID
		}
	}

	return &CommunityResult{
		Membership:  membership,
		Communities: ids,
		Modularity:  community.Q(g, groups, resolution),
	}
}
