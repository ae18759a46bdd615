package transitsched

import (
	"github.com/geomesh/snaproute/geocell"
	"gonum.org/v1/gonum/spatial/r2"
)

// Stop is a schedule-side waypoint: a bus stop, a rail platform, anything a
// Route visits. LinkRefID is written during routing each time an edge that
// starts or ends at this stop is materialized (empty string means unset).
type Stop struct {
	ID        string
	Cell      geocell.ID
	Pos       r2.Vec
	LinkRefID string
}

// NewStop constructs a Stop, returning ErrEmptyStopID if id is empty.
func NewStop(id string, cell geocell.ID, pos r2.Vec) (*Stop, error) {
	if id == "" {
		return nil, ErrEmptyStopID
	}
	return &Stop{ID: id, Cell: cell, Pos: pos}, nil
}
