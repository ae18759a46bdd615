package router

import "errors"

// ErrNoPathAfterSolve indicates a Dijkstra path between two solver-chosen
// candidates failed despite problemgraph.Build having found one earlier --
// the network graph was mutated mid-routing. Fatal to that schedule element.
var ErrNoPathAfterSolve = errors.New("router: no path between chosen candidates after solve")
