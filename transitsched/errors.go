package transitsched

import "errors"

var (
	// ErrEmptyStopID indicates a Stop with an empty ID was supplied.
	ErrEmptyStopID = errors.New("transitsched: stop ID is empty")

	// ErrEmptyRouteID indicates a Route with an empty ID was supplied.
	ErrEmptyRouteID = errors.New("transitsched: route ID is empty")

	// ErrEmptyMode indicates a Route with an empty mode tag.
	ErrEmptyMode = errors.New("transitsched: route mode is empty")

	// ErrUnknownElementKind indicates an Element was used before being
	// constructed through one of the FromRoute/FromService/FromSchedule
	// constructors.
	ErrUnknownElementKind = errors.New("transitsched: element has no underlying value")
)
