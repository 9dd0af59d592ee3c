package dataset

import (
	"errors"
	"fmt"
)

// Common sentinel errors for the whole analysis pipeline.
var (
	ErrMalformedInput     = errors.New("malformed input")
	ErrDuplicateNode      = errors.New("duplicate node label")
	ErrUnresolvedEndpoint = errors.New("edge endpoint does not resolve to a known node")
	ErrUnknownNodeID      = errors.New("metric references unknown node id")
	ErrDisconnected       = errors.New("graph is disconnected")
)

// DataError provides structured error information for loading and
// analysis operations.
type DataError struct {
	Op     string // Operation that failed (e.g., "LoadNodes", "ResolveEdge")
	Entity string // Entity type (e.g., "node", "edge", "column")
	Label  string // Offending label or column name (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *DataError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Label, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DataError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *DataError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// MissingColumnError creates a malformed-input error for an absent
// required column.
func MissingColumnError(op, column string) error {
	return &DataError{Op: op, Entity: "column", Label: column, Cause: ErrMalformedInput}
}

// DuplicateNodeError creates an error for a repeated node label.
func DuplicateNodeError(label string) error {
	return &DataError{Op: "LoadNodes", Entity: "node", Label: label, Cause: ErrDuplicateNode}
}

// UnresolvedEndpointError creates an error for an edge endpoint that
// does not match any loaded node.
func UnresolvedEndpointError(label string) error {
	return &DataError{Op: "ResolveEdge", Entity: "edge", Label: label, Cause: ErrUnresolvedEndpoint}
}

// UnknownNodeIDError creates an internal-consistency error for a metric
// map keyed by an id absent from the node table.
func UnknownNodeIDError(metric string, id int64) error {
	return &DataError{
		Op:     "Merge",
		Entity: "metric",
		Label:  fmt.Sprintf("%s[%d]", metric, id),
		Cause:  ErrUnknownNodeID,
	}
}
