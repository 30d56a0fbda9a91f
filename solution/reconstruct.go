package solution

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/steinerpack/ilp"
	"github.com/katalvlaran/steinerpack/instance"
	"github.com/katalvlaran/steinerpack/logger"
)

// Reconstruct expands a parsed solution into a full assignment over the
// model's variable families.
//
// For every used arc (u,v,k) that exists in the instance it emits
// y[arcIdx,k] = 1, then walks net k's used-arc subgraph from v and emits
// x[arcIdx,t] = 1 for every terminal t of net k reachable from v
// (including v itself when v is a terminal). Finally it emits the exact
// z[r,t] same-net broadcast for every root/terminal pair. Unmentioned
// variables are simply absent — downstream they default to 0.
//
// The emission order is fixed by the file's arc order and the sorted
// terminal indices, so reconstructing the same record twice yields
// identical assignments.
// Complexity: O(|used arcs|·(V + |used arcs|)) time, O(V) per-walk memory.
func Reconstruct(rec *Record, in *instance.Instance) (ilp.Assignment, *Stats, error) {
	// 1. Validate inputs.
	if rec == nil {
		return nil, nil, ErrNilRecord
	}
	if in == nil {
		return nil, nil, ErrNilInstance
	}

	stats := &Stats{UsedArcs: len(rec.UsedArcs)}
	log := logger.Logger().With().Str("component", "solution").Logger()

	// 2. Per-net adjacency arena over the solution's own arcs, allocated
	//    lazily per net. Rows outside the node range cannot be indexed and
	//    are dropped up front.
	adj := make(map[int][][]int, in.NumNets)
	for _, ua := range rec.UsedArcs {
		if ua.Tail < 0 || ua.Tail >= in.NumNodes || ua.Head < 0 || ua.Head >= in.NumNodes {
			continue
		}
		heads, ok := adj[ua.Net]
		if !ok {
			heads = make([][]int, in.NumNodes)
			adj[ua.Net] = heads
		}
		heads[ua.Tail] = append(heads[ua.Tail], ua.Head)
	}

	// 3. Terminal index per node, for the current instance.
	termIdx := make(map[int]int, len(in.Terminals))
	for i, t := range in.Terminals {
		termIdx[t] = i
	}

	// 4. Emit y and reachability-derived x per used arc, in file order.
	asg := make(ilp.Assignment, 0, len(rec.UsedArcs)*2)
	visited := bitset.New(uint(in.NumNodes))
	stack := make([]int, 0, in.NumNodes)
	for _, ua := range rec.UsedArcs {
		arcIdx, ok := in.ArcIndex(ua.Tail, ua.Head)
		if !ok || ua.Net < 0 || ua.Net >= in.NumNets {
			// Stale topology: drop the reference, keep going.
			stats.StaleArcs++
			log.Warn().Int("tail", ua.Tail).Int("head", ua.Head).Int("net", ua.Net).
				Msg("solution references arc absent from instance; skipped")
			continue
		}

		asg = append(asg, ilp.Entry{Name: "y", Subscripts: []int{arcIdx, ua.Net}, Value: 1})

		for _, t := range reachableTerminals(adj[ua.Net], ua, in, termIdx, visited, stack) {
			asg = append(asg, ilp.Entry{Name: "x", Subscripts: []int{arcIdx, t}, Value: 1})
		}
	}

	// 5. Exact z[r,t] broadcast: 1 iff root r and terminal t share a net.
	for r := 0; r < in.NumNets; r++ {
		for t, tNode := range in.Terminals {
			v := 0.0
			if in.NetOf[tNode] == r {
				v = 1.0
			}
			asg = append(asg, ilp.Entry{Name: "z", Subscripts: []int{r, t}, Value: v})
		}
	}

	return asg, stats, nil
}

// reachableTerminals collects the sorted terminal indices of net ua.Net
// reachable from ua.Head inside heads, via an explicit-stack DFS with a
// reusable bitset visited mask.
func reachableTerminals(heads [][]int, ua UsedArc, in *instance.Instance,
	termIdx map[int]int, visited *bitset.BitSet, stack []int) []int {
	visited.ClearAll()
	stack = append(stack[:0], ua.Head)

	var found []int
	var node int
	for len(stack) > 0 {
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Test(uint(node)) {
			continue
		}
		visited.Set(uint(node))

		if ti, isTerm := termIdx[node]; isTerm && in.NetOf[node] == ua.Net {
			found = append(found, ti)
		}

		if heads == nil {
			continue
		}
		for _, next := range heads[node] {
			if !visited.Test(uint(next)) {
				stack = append(stack, next)
			}
		}
	}
	sort.Ints(found)

	return found
}
