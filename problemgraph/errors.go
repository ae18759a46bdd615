package problemgraph

import "errors"

var (
	// ErrEmptyCandidatePool indicates a stop has no network node within the
	// snapping radius.
	ErrEmptyCandidatePool = errors.New("problemgraph: stop has an empty candidate pool")

	// ErrFullyConnectedPair indicates two consecutive stops have pools that
	// are entirely mutually unroutable (step 6's complete-bipartite check).
	ErrFullyConnectedPair = errors.New("problemgraph: consecutive stops have a fully-connected (unroutable) pool pair")
)
