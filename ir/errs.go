package ir

import "errors"

var (
	// ErrAttrNotFound reports a Get on an absent attribute key.
	ErrAttrNotFound = errors.New("attribute not found")

	// ErrNodeNotFound reports a lookup or removal of a node that is
	// not present where it was expected.
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidState reports a mutation that would break the
	// children/data exclusivity invariant.
	ErrInvalidState = errors.New("invalid state")
)
