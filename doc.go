// Package snaproute snaps public-transport schedule stops onto a
// multimodal road/rail network and materializes, per route, the ordered
// network links that realize it.
//
// The pipeline is organized under one flat package per concern, mirroring
// the teacher repo's layout:
//
//	geocell/      — lat/lng <-> hierarchical cell IDs, great-circle distance
//	spatialtree/  — hierarchical spatial index of network nodes
//	network/      — NetworkGraph data model + Dijkstra + modal subgraphs
//	transitsched/ — Stop/Route/Service/Schedule data model + ScheduleGraph
//	problemgraph/ — conflict-graph construction per schedule element
//	mwis/         — exact maximum-weight independent set solver
//	router/       — route materialization + schedule orchestration
//
// See DESIGN.md for the grounding of each package's approach and SPEC_FULL.md
// for the full requirements this module implements.
package snaproute
