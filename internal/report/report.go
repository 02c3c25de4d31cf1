// Package report renders routing tables as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvroute/routing"
)

// Unreachable is printed in place of a cost when no path exists.
const Unreachable = "unreachable"

var titles = map[string]string{
	routing.PriorityQueue.String(): "Dijkstra's Algorithm",
	routing.Relaxation.String():    "Bellman-Ford Algorithm",
}

// Write prints t as a header line followed by one line per destination:
//
//	Dijkstra's Algorithm (Source: 1)
//	To 1 - Cost: 0 | Path: 1
//	To 4 - Cost: 4 | Path: 1 3 2 4
//	To 5 - Cost: unreachable | Path: -
func Write(w io.Writer, t *routing.Table) error {
	title, ok := titles[t.Algorithm]
	if !ok {
		title = t.Algorithm
	}
	if _, err := fmt.Fprintf(w, "%s (Source: %d)\n", title, t.Source); err != nil {
		return err
	}
	for _, r := range t.Routes {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return err
		}
	}

	return nil
}

// Line formats one row without a trailing newline.
func Line(r routing.Route) string {
	if !r.Reachable {
		return fmt.Sprintf("To %d - Cost: %s | Path: -", r.Destination, Unreachable)
	}
	hops := make([]string, len(r.Path))
	for i, id := range r.Path {
		hops[i] = id.String()
	}

	return fmt.Sprintf("To %d - Cost: %d | Path: %s", r.Destination, r.Cost, strings.Join(hops, " "))
}

// Error prints err the way the shell reports a failed run.
func Error(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error: %v\n", err)
	return werr
}
