package transitsched

import "github.com/geomesh/snaproute/network"

// Service groups the Routes that together make up one schedule entry.
type Service struct {
	ID     string
	Routes []*Route
}

// Modes returns the union of every Route's mode within this Service.
func (s *Service) Modes() network.ModeSet {
	modes := make(network.ModeSet)
	for _, r := range s.Routes {
		modes[r.Mode] = struct{}{}
	}
	return modes
}
