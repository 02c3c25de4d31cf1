// Package lvroute computes shortest routes across a network of routers.
//
// A network is a weighted directed graph: routers are nodes keyed by integer
// ids, links are directed edges with an int64 cost. Two interchangeable
// single-source algorithms run over it:
//
//   - Dijkstra (priority queue), for non-negative costs.
//   - Bellman-Ford (repeated relaxation), which accepts negative costs and
//     reports negative cycles instead of distances.
//
// Both return a paths.Result holding the distance and predecessor of every
// router, from which the route to any destination is rebuilt.
//
// Layout:
//
//	core/        — thread-safe router graph: nodes, links, read-locked views
//	paths/       — distances, predecessors, path reconstruction
//	dijkstra/    — priority-queue algorithm
//	bellmanford/ — relaxation algorithm with negative-cycle detection
//	routing/     — algorithm selection, uniform Algorithm contract, routing tables
//	topology/    — YAML network documents
//	builder/     — deterministic synthetic topologies (line, ring, grid, random…)
//	cmd/lvroute  — interactive shell
//
// Quick example (the built-in four-router network):
//
//	    1 ──4──▶ 2 ──1──▶ 4
//	    │        ▲        ▲
//	    1        2        │
//	    ▼        │        │
//	    3 ───────┘───5────┘
//
//	g, _ := topology.Default().Build()
//	res, _ := routing.ComputeShortestPaths(g, 1, routing.PriorityQueue)
//	routing.ReconstructPath(res, 4) // [1 3 2 4], cost 4
package lvroute
