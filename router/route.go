package router

import (
	"github.com/geomesh/snaproute/network"
	"github.com/geomesh/snaproute/transitsched"
)

// FindRouteForRoute routes a single Route against an already-extracted
// modal subgraph g. Equivalent to FindRoutesForService for a one-Route
// Service; the caller is responsible for having extracted g for the
// Route's mode (spec.md §4.7, "skip the mode-family step").
func FindRouteForRoute(g *network.Graph, route *transitsched.Route, opts ...Option) error {
	return routeElement(g, transitsched.FromRoute(route), buildOptions(opts))
}

// FindRoutesForService routes every Route in service against g in one
// pass, sharing a single candidate pool per stop across routes that share
// a stop id (spec.md §4.4 step 2).
func FindRoutesForService(g *network.Graph, service *transitsched.Service, opts ...Option) error {
	return routeElement(g, transitsched.FromService(service), buildOptions(opts))
}
