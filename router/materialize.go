package router

import (
	"context"
	"fmt"

	"github.com/geomesh/snaproute/network"
	"github.com/geomesh/snaproute/problemgraph"
	"github.com/geomesh/snaproute/spatialtree"
	"github.com/geomesh/snaproute/transitsched"
)

// routeElement drives C2->C4->C5->C6 for a single schedule element over
// the already-extracted modal subgraph g, then writes results back onto
// the Route/Stop entities the element wraps.
func routeElement(g *network.Graph, elem transitsched.Element, opts Options) error {
	opts.logger.Info("Building Problem Graph for %s id: %s", elem.Kind(), elem.ID())

	tree := buildTree(g)
	p, sched, err := problemgraph.Build(g, tree, elem, opts.snappingDistance)
	if err != nil {
		return err
	}

	opts.logger.Info("Computing shortest paths")
	opts.logger.Info("Passing problem to solver")
	chosen, err := opts.solver.Solve(context.Background(), p, opts.timeout)
	if err != nil {
		return err
	}

	stopByID := make(map[string]*transitsched.Stop, len(elem.Stops()))
	for _, s := range elem.Stops() {
		stopByID[s.ID] = s
	}

	edgeLinks := make(map[transitsched.Edge][]string, len(sched.Edges()))
	for _, edge := range sched.Edges() {
		nodeU, nodeV := chosen[edge.From], chosen[edge.To]
		links, err := materializeEdge(g, nodeU, nodeV, routeModeOf(elem, edge))
		if err != nil {
			return fmt.Errorf("%w: %s -> %s", ErrNoPathAfterSolve, edge.From, edge.To)
		}
		links = reconcileEndpoint(stopByID[edge.From], links, true, opts.conflictPolicy)
		links = reconcileEndpoint(stopByID[edge.To], links, false, opts.conflictPolicy)
		edgeLinks[edge] = links
	}

	for _, stopID := range sched.Vertices() {
		v := sched.Vertex(stopID)
		v.ClosestNode = chosen[stopID]
		if s := stopByID[stopID]; s != nil {
			v.LinkRefID = s.LinkRefID
		}
	}

	for _, r := range elem.Routes() {
		if len(r.Stops) < 2 {
			continue
		}
		var route []string
		for i := 1; i < len(r.Stops); i++ {
			key := transitsched.Edge{From: r.Stops[i-1].ID, To: r.Stops[i].ID}
			route = append(route, edgeLinks[key]...)
		}
		r.NetworkRoute = route
	}

	return nil
}

// routeModeOf finds the mode tag governing edge (u, v): the mode of any
// Route in elem that visits that consecutive stop pair.
func routeModeOf(elem transitsched.Element, edge transitsched.Edge) string {
	for _, r := range elem.Routes() {
		for i := 1; i < len(r.Stops); i++ {
			if r.Stops[i-1].ID == edge.From && r.Stops[i].ID == edge.To {
				return r.Mode
			}
		}
	}
	return ""
}

// materializeEdge computes the ordered path a->b (C6 step 1) and selects
// one link per consecutive node pair for the given mode (step 2-3).
func materializeEdge(g *network.Graph, a, b, mode string) ([]string, error) {
	path, err := network.ShortestPath(g, a, b)
	if err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return nil, nil
	}
	links := make([]string, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		bundle := g.Bundle(path[i-1], path[i])
		link, err := network.SelectLinkForMode(bundle, mode)
		if err != nil {
			return nil, err
		}
		links = append(links, link.ID)
	}
	return links, nil
}

// reconcileEndpoint applies C6 steps 4-5 for one endpoint of an edge: head
// reconciliation when isHead, tail reconciliation otherwise. The stop's
// linkRefId is always set to its natural edge-local link per the
// ConflictPolicy (default last-writer-wins), while the returned link
// sequence is extended with whatever the stop's prior value was, to keep
// this edge traversable from that prior anchor (I3).
func reconcileEndpoint(stop *transitsched.Stop, links []string, isHead bool, policy ConflictPolicy) []string {
	if stop == nil || len(links) == 0 {
		return links
	}
	var natural string
	if isHead {
		natural = links[0]
	} else {
		natural = links[len(links)-1]
	}

	existing := stop.LinkRefID
	final := natural
	switch {
	case existing == "":
		final = policy(stop.ID, "", natural)
	case existing != natural:
		if isHead {
			links = append([]string{existing}, links...)
		} else {
			links = append(links, existing)
		}
		final = policy(stop.ID, existing, natural)
	default:
		final = existing
	}
	stop.LinkRefID = final
	return links
}

func buildTree(g *network.Graph) *spatialtree.Tree {
	tree := spatialtree.New()
	ids := g.Nodes()
	refs := make([]spatialtree.NodeRef, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		refs = append(refs, spatialtree.NodeRef{ID: n.ID, Cell: n.Cell})
	}
	_ = tree.InsertNodes(refs)
	return tree
}
