package network

import "errors"

// Sentinel errors for network graph construction and queries.
var (
	// ErrEmptyNodeID indicates a Node with an empty ID was supplied.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrDuplicateNode indicates a Node with an already-registered ID.
	ErrDuplicateNode = errors.New("network: node already exists")

	// ErrNodeNotFound indicates a reference to an unregistered node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrEmptyLinkID indicates a Link with an empty ID was supplied.
	ErrEmptyLinkID = errors.New("network: link ID is empty")

	// ErrDuplicateLink indicates a Link with an already-registered ID.
	ErrDuplicateLink = errors.New("network: link already exists")

	// ErrLinkNotFound indicates a reference to an unregistered link.
	ErrLinkNotFound = errors.New("network: link not found")

	// ErrNegativeLength indicates a Link.Length < 0.
	ErrNegativeLength = errors.New("network: link length must be non-negative")

	// ErrBadFreespeed indicates a Link.Freespeed <= 0 when present.
	ErrBadFreespeed = errors.New("network: link freespeed must be positive when set")

	// ErrEmptyModeSet indicates a Link with no mode tags.
	ErrEmptyModeSet = errors.New("network: link mode set is empty")

	// ErrNoPath indicates no path exists between the requested endpoints.
	ErrNoPath = errors.New("network: no path between nodes")

	// ErrNoLinkForMode indicates a parallel bundle has no link whose modes
	// intersect the requested mode.
	ErrNoLinkForMode = errors.New("network: no link in bundle matches requested mode")
)
