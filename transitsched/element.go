package transitsched

import "sort"

// elementKind tags which alternative an Element currently holds.
type elementKind int

const (
	kindNone elementKind = iota
	kindRoute
	kindService
	kindSchedule
)

// Element is a schedule-provider sum type over Route, Service, and
// Schedule: C4 accepts any of the three through this single type instead
// of branching on a runtime interface, per Design Note "avoid polymorphism
// on runtime type" (spec.md §6 builder note).
type Element struct {
	kind     elementKind
	route    *Route
	service  *Service
	schedule *Schedule
}

// FromRoute wraps a single Route as an Element.
func FromRoute(r *Route) Element { return Element{kind: kindRoute, route: r} }

// FromService wraps a Service as an Element.
func FromService(s *Service) Element { return Element{kind: kindService, service: s} }

// FromSchedule wraps a whole Schedule as an Element.
func FromSchedule(s *Schedule) Element { return Element{kind: kindSchedule, schedule: s} }

// ID returns the wrapped value's own identifier: a Route's or Service's ID,
// or "" for a whole Schedule (which has no single ID of its own).
func (e Element) ID() string {
	switch e.kind {
	case kindRoute:
		return e.route.ID
	case kindService:
		return e.service.ID
	default:
		return ""
	}
}

// Kind returns a short label for the wrapped value's kind, used for logging
// ("route", "service", "schedule", or "" if unset).
func (e Element) Kind() string {
	switch e.kind {
	case kindRoute:
		return "route"
	case kindService:
		return "service"
	case kindSchedule:
		return "schedule"
	default:
		return ""
	}
}

// Routes flattens the Element down to the Routes it contains.
func (e Element) Routes() []*Route {
	switch e.kind {
	case kindRoute:
		return []*Route{e.route}
	case kindService:
		return e.service.Routes
	case kindSchedule:
		ids := make([]string, 0, len(e.schedule.Services))
		for id := range e.schedule.Services {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		var out []*Route
		for _, id := range ids {
			out = append(out, e.schedule.Services[id].Routes...)
		}
		return out
	default:
		return nil
	}
}

// Stops returns the distinct Stops touched by this Element's Routes,
// deduplicated by Stop.ID; the pool C4 draws candidates from.
func (e Element) Stops() []*Stop {
	seen := make(map[string]struct{})
	var out []*Stop
	for _, r := range e.Routes() {
		for _, s := range r.Stops {
			if _, ok := seen[s.ID]; ok {
				continue
			}
			seen[s.ID] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// BuildScheduleGraph constructs the ScheduleGraph for this Element: one
// vertex per distinct Stop, one directed edge per consecutive stop pair
// within each Route. A Route with fewer than two stops contributes its
// vertex (if any) but no edges (Q3, degenerate single-stop routes).
func (e Element) BuildScheduleGraph() (*ScheduleGraph, error) {
	if e.kind == kindNone {
		return nil, ErrUnknownElementKind
	}
	g := NewScheduleGraph()
	for _, r := range e.Routes() {
		if len(r.Stops) == 0 {
			continue
		}
		g.AddVertex(r.Stops[0].ID)
		for i := 1; i < len(r.Stops); i++ {
			g.AddEdge(r.Stops[i-1].ID, r.Stops[i].ID)
		}
	}
	return g, nil
}
