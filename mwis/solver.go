package mwis

import (
	"context"
	"time"

	"github.com/geomesh/snaproute/problemgraph"
)

// Solver maps a conflict graph to a chosen candidate per stop. Exposed as a
// narrow interface (Design Note "Solver coupling") so a real MILP backend
// can be swapped in later without touching problemgraph or router.
type Solver interface {
	// Solve returns stop_id -> chosen graph_node_id, or ErrInfeasible /
	// ErrTimeout. timeout <= 0 means no deadline beyond ctx's own.
	Solve(ctx context.Context, g *problemgraph.Graph, timeout time.Duration) (map[string]string, error)
}
