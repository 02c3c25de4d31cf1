// Package dijkstra implements the priority-queue shortest-path algorithm for
// router graphs whose link costs are non-negative.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source router to
//     every other router in O((N + E) log N) time.
//   - It relies on a min-heap (container/heap) to always expand the closest
//     unexpanded router.
//   - Lazy decrease-key: an improved distance pushes a fresh heap entry; stale
//     entries are detected on pop (their distance exceeds the recorded one) and skipped.
//
// Preconditions:
//
//   - Every cost reachable from the source must be ≥ 0. No check is made by
//     default; WithNegativeCheck() turns violations into ErrNegativeWeight.
//     Use package bellmanford for graphs with negative costs.
//
// Result:
//
//   - A *paths.Result with an entry for every node in the graph. Unreached
//     nodes report paths.Unreachable and have no predecessor.
//   - paths.Reconstruct(result, target) yields the source→target route.
//
// Options:
//
//   - WithMaxDistance(x): nodes farther than x are left unreachable (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with cost ≥ t are skipped (t > 0).
//   - WithNegativeCheck(): reject negative costs up front.
//
// Thread safety:
//
//   - The graph's read lock is held for the duration of the call, so any
//     number of runs may share a graph; writers wait until they finish.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := res.Distance(4)
//	fmt.Println(d, paths.Reconstruct(res, 4))
package dijkstra
