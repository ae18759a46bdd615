package transitsched

import "github.com/geomesh/snaproute/network"

// Route is an ordered stop sequence for a single mode, plus the network
// link sequence written back after a successful routing pass.
type Route struct {
	ID           string
	Mode         string
	Stops        []*Stop
	NetworkRoute []string
}

// NewRoute constructs a Route. Returns ErrEmptyRouteID or ErrEmptyMode.
func NewRoute(id, mode string, stops []*Stop) (*Route, error) {
	if id == "" {
		return nil, ErrEmptyRouteID
	}
	if mode == "" {
		return nil, ErrEmptyMode
	}
	return &Route{ID: id, Mode: mode, Stops: stops}, nil
}

// IsRouted reports whether this Route carries a non-empty network route.
// A Route with fewer than two stops is vacuously routed (Q3).
func (r *Route) IsRouted() bool {
	if len(r.Stops) < 2 {
		return true
	}
	return len(r.NetworkRoute) > 0
}

// Modes returns the single-element ModeSet for this Route's mode tag.
func (r *Route) Modes() network.ModeSet {
	return network.NewModeSet(r.Mode)
}
