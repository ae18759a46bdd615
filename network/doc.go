// Package network implements the directed, multigraph road/rail network
// the rest of this module routes schedules onto: NetworkNode and NetworkLink
// entities, adjacency queries, a modal subgraph extractor (filtering the
// graph down to links whose mode set intersects a requested family), and a
// Dijkstra shortest-path routine weighted by link length.
//
// The Graph type follows the same shape as the teacher's core.Graph
// (separate RWMutex guards for nodes vs. links+adjacency, nested
// adjacency-list maps for O(1) edge operations, deterministic sorted
// iteration) but is specialized to this domain: links carry Length, a
// ModeSet, and an optional Freespeed instead of a generic int64 weight, and
// the graph is always a directed multigraph (parallel links between the
// same endpoints are the normal case here, not an opt-in).
package network
