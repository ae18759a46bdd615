package mwis

import "errors"

var (
	// ErrInfeasible indicates no assignment satisfies the one-candidate-per-stop
	// / independent-set constraints (e.g. a stop's entire pool was purged).
	ErrInfeasible = errors.New("mwis: no feasible assignment exists")

	// ErrTimeout indicates the solver exceeded its caller-supplied time budget.
	ErrTimeout = errors.New("mwis: solve exceeded the time budget")
)
