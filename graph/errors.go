package graph

import "errors"

// Errors returned by graph and port operations.
var (
	// ErrTypeMismatch is returned when connecting ports with incompatible
	// element types, or when a port of the wrong direction is supplied.
	ErrTypeMismatch = errors.New("graph: port type mismatch")

	// ErrNotConnected is returned by disconnect when the given output is not
	// the input's current upstream.
	ErrNotConnected = errors.New("graph: ports are not connected")

	// ErrDuplicateName is returned when adding a node under a name that is
	// already taken.
	ErrDuplicateName = errors.New("graph: duplicate node name")

	// ErrNotFound is returned when looking up or removing an unknown node.
	ErrNotFound = errors.New("graph: node not found")

	// ErrNoGraph is returned when pulling an output whose node has not been
	// added to a graph.
	ErrNoGraph = errors.New("graph: port has no graph")

	// ErrCycle is returned when evaluation re-enters an output port that is
	// already computing in the current frame.
	ErrCycle = errors.New("graph: cycle detected in evaluation")

	// Deserialisation errors.
	ErrUnknownType      = errors.New("graph: unknown node type")
	ErrMissingField     = errors.New("graph: missing field")
	ErrInvalidParameter = errors.New("graph: invalid parameter")
	ErrDanglingRef      = errors.New("graph: dangling connection reference")
)
