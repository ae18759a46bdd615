// Package problemgraph builds the conflict graph (C4) a schedule element's
// candidate-node assignment problem reduces to: one vertex per (network
// node, stop) candidate pair, a clique of mutual-exclusion edges within
// each stop's pool, and a conflict edge between any two candidates whose
// inter-pool shortest path fails to exist.
package problemgraph
