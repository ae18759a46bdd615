package problemgraph

import (
	"fmt"

	"github.com/geomesh/snaproute/network"
	"github.com/geomesh/snaproute/spatialtree"
	"github.com/geomesh/snaproute/transitsched"
)

// Build assembles the conflict graph and schedule graph for elem against
// the modal subgraph g, using tree for candidate-pool lookup (C4).
//
// Steps follow spec order: build the schedule graph, form each stop's
// candidate pool, add intra-pool cliques, accumulate inter-pool shortest
// path statistics (or conflict edges on no-path), check for a fully
// unroutable consecutive pair, then purge zero-total_paths vertices.
func Build(g *network.Graph, tree *spatialtree.Tree, elem transitsched.Element, snappingDistanceMeters float64) (*Graph, *transitsched.ScheduleGraph, error) {
	sched, err := elem.BuildScheduleGraph()
	if err != nil {
		return nil, nil, err
	}

	stopByID := make(map[string]*transitsched.Stop, len(elem.Stops()))
	for _, s := range elem.Stops() {
		stopByID[s.ID] = s
	}

	pools := make(map[string][]string, len(sched.Vertices()))
	for _, stopID := range sched.Vertices() {
		stop, ok := stopByID[stopID]
		if !ok {
			continue
		}
		pool := tree.FindClosestNodes(stop.Cell, snappingDistanceMeters)
		if len(pool) == 0 {
			return nil, nil, fmt.Errorf("%w: stop %q", ErrEmptyCandidatePool, stopID)
		}
		pools[stopID] = pool
	}

	p := NewGraph()
	p.StopCount = len(sched.Vertices())
	p.ElementID = elem.ID()
	// Only stops on at least one schedule edge need a chosen candidate: a
	// stop on no edge (a single-stop route) accumulates no paths, so the
	// purge below removes all of its candidates.
	onEdge := make(map[string]bool)
	for _, edge := range sched.Edges() {
		onEdge[edge.From] = true
		onEdge[edge.To] = true
	}
	for _, stopID := range sched.Vertices() {
		if onEdge[stopID] {
			p.StopIDs = append(p.StopIDs, stopID)
		}
	}

	for stopID, pool := range pools {
		keys := make([]string, len(pool))
		for i, nodeID := range pool {
			keys[i] = VertexKey(nodeID, stopID)
			p.AddVertex(keys[i], stopID)
		}
		for i := 0; i < len(keys); i++ {
			for j := i + 1; j < len(keys); j++ {
				p.AddEdge(keys[i], keys[j])
			}
		}
	}

	for _, edge := range sched.Edges() {
		poolU, poolV := pools[edge.From], pools[edge.To]
		conflicts := 0
		for _, a := range poolU {
			keyA := VertexKey(a, edge.From)
			for _, b := range poolV {
				keyB := VertexKey(b, edge.To)
				length, err := network.ShortestPathLength(g, a, b)
				if err != nil {
					p.AddEdge(keyA, keyB)
					conflicts++
					continue
				}
				p.vertices[keyA].TotalPathLength += length
				p.vertices[keyA].TotalPaths++
				p.vertices[keyB].TotalPathLength += length
				p.vertices[keyB].TotalPaths++
			}
		}
		if conflicts == len(poolU)*len(poolV) {
			return nil, nil, fmt.Errorf("%w: stops %q and %q", ErrFullyConnectedPair, edge.From, edge.To)
		}
	}

	for _, key := range p.Vertices() {
		if p.vertices[key].TotalPaths == 0 {
			p.RemoveVertex(key)
		}
	}

	return p, sched, nil
}
