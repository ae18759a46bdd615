// Package mwis solves the maximum-weight independent set problem C5 poses
// over a problemgraph.Graph: choose exactly one candidate per stop pool,
// no two chosen candidates may share a conflict edge, maximizing the sum
// of chosen weights. No ILP library is available, so BranchAndBound is an
// exact depth-first search with an admissible upper-bound prune, branching
// directly on "which candidate for this stop" rather than per-vertex
// binaries -- this both matches the pool/clique structure and removes the
// "exactly one per stop" constraint from needing explicit enforcement.
package mwis
