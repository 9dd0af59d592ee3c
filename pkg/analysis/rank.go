package analysis

import (
	"container/heap"
	"sort"
)

// RankedNode holds a node id with its metric score.
type RankedNode struct {
	ID    int64   `json:"id"`
	Score float64 `json:"score"`
}

// rankedNodeHeap implements a min-heap for RankedNode by score.
// Ties order by id descending so that the largest tied id sits at the
// top and is evicted first, which keeps selection independent of map
// iteration order.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].ID > h[j].ID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopNodes returns the top n nodes by score using a min-heap.
// Ties are broken by node id ascending for determinism.
func TopNodes(scores map[int64]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for id, score := range scores {
		rn := RankedNode{ID: id, Score: score}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if score > h[0].Score || (score == h[0].Score && id < h[0].ID) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// DenseRanks assigns a dense rank to every node: rank 1 for the highest
// score, ties share a rank, and the next distinct score gets the next
// consecutive rank. The same scheme is applied to every metric so that
// rank-derived presentation stays comparable across metrics.
func DenseRanks(scores map[int64]float64) map[int64]int {
	distinct := make([]float64, 0, len(scores))
	seen := make(map[float64]bool, len(scores))
	for _, score := range scores {
		if !seen[score] {
			seen[score] = true
			distinct = append(distinct, score)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, score := range distinct {
		rankOf[score] = i + 1
	}

	ranks := make(map[int64]int, len(scores))
	for id, score := range scores {
		ranks[id] = rankOf[score]
	}
	return ranks
}

// FromInts converts an integer metric map to the float score form used
// by the ranking helpers.
func FromInts(m map[int64]int) map[int64]float64 {
	out := make(map[int64]float64, len(m))
	for id, v := range m {
		out[id] = float64(v)
	}
	return out
}
