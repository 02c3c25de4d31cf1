package paths

import (
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// Reconstruct walks predecessor links from target back to the source and
// returns the keys in source→target order.
//
// Returns nil when target is unreachable, or when the predecessor chain loops
// (which can only happen if a precondition of the algorithm was violated).
// The source itself yields a one-element path.
//
// Complexity: O(L) where L is the path length.
func Reconstruct(t Tree, target core.NodeID) []core.NodeID {
	if !t.Reachable(target) {
		return nil
	}

	// build reversed path
	seen := make(map[core.NodeID]struct{})
	path := []core.NodeID{}
	for cur := target; ; {
		if _, dup := seen[cur]; dup {
			return nil
		}
		seen[cur] = struct{}{}
		path = append(path, cur)
		prev, ok := t.Predecessor(cur)
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → target
	slices.Reverse(path)

	return path
}

// FindCycle returns the predecessor cycle that start leads into, in forward
// (edge) order and closed on its first node, e.g. [a b c a].
//
// steps bounds the walk used to enter the cycle; callers pass the node count
// so that a node whose chain ends at a cycle is guaranteed to land on it.
// Returns nil when the chain from start terminates without looping.
func FindCycle(t Tree, start core.NodeID, steps int) []core.NodeID {
	// 1) Walk back steps times so cur is on the cycle itself.
	cur := start
	for i := 0; i < steps; i++ {
		p, ok := t.Predecessor(cur)
		if !ok {
			return nil
		}
		cur = p
	}

	// 2) Collect the cycle by walking back until cur repeats.
	cycle := []core.NodeID{cur}
	for at, ok := t.Predecessor(cur); ; at, ok = t.Predecessor(at) {
		if !ok {
			return nil
		}
		cycle = append(cycle, at)
		if at == cur {
			break
		}
		if len(cycle) > steps+1 {
			return nil
		}
	}
	slices.Reverse(cycle)

	return cycle
}
