package routing

import (
	"fmt"
	"strings"
)

// Selector names one of the interchangeable shortest-path algorithms.
type Selector int

const (
	// PriorityQueue selects Dijkstra's algorithm (non-negative costs only).
	PriorityQueue Selector = 1

	// Relaxation selects Bellman-Ford (negative costs, negative-cycle detection).
	Relaxation Selector = 2
)

// String returns the algorithm name for s.
func (s Selector) String() string {
	switch s {
	case PriorityQueue:
		return "dijkstra"
	case Relaxation:
		return "bellman-ford"
	default:
		return fmt.Sprintf("selector(%d)", int(s))
	}
}

// Valid reports whether s is a recognized selector.
func (s Selector) Valid() bool {
	return s == PriorityQueue || s == Relaxation
}

// ParseSelector maps user input to a Selector. It accepts the menu numbers
// "1" and "2" as well as algorithm names, case-insensitively.
// Anything else fails with ErrInvalidSelector.
func ParseSelector(in string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "1", "dijkstra", "priority-queue", "pq":
		return PriorityQueue, nil
	case "2", "bellman-ford", "bellmanford", "relaxation", "bf":
		return Relaxation, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSelector, in)
}
