package spatialtree

import "errors"

var (
	// ErrEmptyNodeID indicates a NodeRef with an empty ID was supplied.
	ErrEmptyNodeID = errors.New("spatialtree: node ID is empty")
)
