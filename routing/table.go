package routing

import (
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/paths"
)

// Route is one row of a routing table.
type Route struct {
	Destination core.NodeID
	Name        string        // router label, empty if none
	Reachable   bool          // false when no path exists
	Cost        int64         // paths.Unreachable when !Reachable
	NextHop     core.NodeID   // first hop after the source; valid only if HasNextHop
	HasNextHop  bool          // false for the source itself and unreachable rows
	Path        []core.NodeID // source→destination, nil when unreachable
}

// Table is the routing table of one source, ordered by destination.
type Table struct {
	Source    core.NodeID
	Algorithm string
	Routes    []Route
}

// BuildTable turns a computation result into a routing table. Rows cover
// every node of g that r knows about, in ascending key order.
func BuildTable(g *core.Graph, algorithm string, r *paths.Result) *Table {
	t := &Table{Source: r.Source, Algorithm: algorithm}
	for _, id := range g.Nodes() {
		d, ok := r.Distance(id)
		if !ok {
			continue
		}
		row := Route{Destination: id, Cost: d}
		if n, err := g.Node(id); err == nil {
			row.Name = n.Name
		}
		if d != paths.Unreachable {
			row.Path = paths.Reconstruct(r, id)
			row.Reachable = row.Path != nil
		}
		if len(row.Path) > 1 {
			row.NextHop = row.Path[1]
			row.HasNextHop = true
		}
		t.Routes = append(t.Routes, row)
	}

	return t
}

// Lookup returns the row for dest.
func (t *Table) Lookup(dest core.NodeID) (Route, bool) {
	for _, r := range t.Routes {
		if r.Destination == dest {
			return r, true
		}
	}

	return Route{}, false
}
