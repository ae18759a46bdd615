// Package router materializes schedule elements onto a network graph (C6)
// and orchestrates routing across a whole Schedule by mode family (C7): it
// wires together spatialtree, problemgraph, and mwis into the three public
// entry points FindRouteForRoute, FindRoutesForService, and RouteSchedule.
package router
