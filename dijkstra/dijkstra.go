package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/paths"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns a *paths.Result covering every node of g: nodes with no path from
// source keep paths.Unreachable and no predecessor.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must contain source (core.ErrNodeNotFound).
//  4. With WithNegativeCheck, no edge may have a negative cost (ErrNegativeWeight).
//
// Without the negative check, negative costs reachable from source violate
// the algorithm's precondition and the distances are unspecified. Each node
// is settled at most once, so the run still terminates, even on negative cycles.
// Edges whose destination is not a node are ignored.
//
// The graph is read under its read lock for the whole run and never mutated.
//
// Complexity:
//
//   - Time:  O((N + E) log N)
//   - Space: O(N + E)
func Dijkstra(g *core.Graph, source core.NodeID, opts ...Option) (*paths.Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	var res *paths.Result
	err := g.Read(func(v core.View) error {
		// 3) Validate source exists in the graph
		if !v.HasNode(source) {
			return fmt.Errorf("dijkstra: source %d: %w", source, core.ErrNodeNotFound)
		}

		// 4) Optional pre-scan for negative costs.
		if cfg.NegativeCheck {
			for e := range v.AllEdges() {
				if e.Cost < 0 {
					return fmt.Errorf("%w: edge %d→%d cost=%d", ErrNegativeWeight, e.From, e.To, e.Cost)
				}
			}
		}

		// 5) Run.
		r := &runner{
			view:    v,
			options: cfg,
			res:     paths.NewResult(source, v.Nodes()),
			pq:      make(nodePQ, 0, v.NodeCount()),
			settled: make(map[core.NodeID]struct{}, v.NodeCount()),
		}
		r.init()
		r.process()
		res = r.res

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view    core.View     // Borrowed graph; read-only within Dijkstra.
	options Options       // Thresholds.
	res     *paths.Result // Distances and predecessors being built.
	pq      nodePQ        // Min-heap of *nodeItem for lazy priority queue.

	settled map[core.NodeID]struct{} // nodes whose edges were already relaxed
}

// init pushes the source with distance 0 onto the heap.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the node with the minimum
// tentative distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// A fresher, shorter entry for this node was pushed after this one.
		if cur, _ := r.res.Distance(item.id); item.dist > cur {
			continue
		}
		if _, done := r.settled[item.id]; done {
			continue
		}

		if item.dist > r.options.MaxDistance {
			break
		}

		r.settled[item.id] = struct{}{}
		r.relax(item.id, item.dist)
	}
}

// relax examines each edge leaving u (at distance d) and pushes every
// neighbor whose distance strictly improves.
func (r *runner) relax(u core.NodeID, d int64) {
	for e := range r.view.OutEdges(u) {
		if e.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		if _, done := r.settled[e.To]; done {
			continue
		}
		newDist, ok := paths.AddCost(d, e.Cost)
		if !ok || newDist > r.options.MaxDistance {
			continue
		}
		// Relax ignores unknown destinations and non-improving distances.
		if !r.res.Relax(u, e.To, newDist) {
			continue
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID // node key
	dist int64       // distance from source when pushed
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Ties are broken by node key so pop order is deterministic.
// Outdated entries remain in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
