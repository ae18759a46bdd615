package transitsched

import "github.com/geomesh/snaproute/network"

// Schedule is the top-level transit timetable: a mapping from service ID to
// Service, ingested once and mutated only via Route.NetworkRoute / Stop.LinkRefID
// writes during routing.
type Schedule struct {
	Services map[string]*Service
}

// NewSchedule constructs an empty Schedule.
func NewSchedule() *Schedule {
	return &Schedule{Services: make(map[string]*Service)}
}

// AddService registers a Service under its own ID.
func (s *Schedule) AddService(svc *Service) {
	s.Services[svc.ID] = svc
}

// UniqueModes returns the union of every Service's modes across the Schedule.
func (s *Schedule) UniqueModes() network.ModeSet {
	modes := make(network.ModeSet)
	for _, svc := range s.Services {
		for m := range svc.Modes() {
			modes[m] = struct{}{}
		}
	}
	return modes
}

// IsValid reports whether every Route with at least two stops carries a
// non-empty NetworkRoute, i.e. the whole Schedule has been successfully
// routed (spec.md §6, caller-visible completion check).
func (s *Schedule) IsValid() bool {
	for _, svc := range s.Services {
		for _, r := range svc.Routes {
			if !r.IsRouted() {
				return false
			}
		}
	}
	return true
}
