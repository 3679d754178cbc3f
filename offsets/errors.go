package offsets

import "errors"

// Sentinel errors for offset selection and validation.
var (
	// ErrTooFewEntities indicates fewer than two entities; no ring can be formed.
	ErrTooFewEntities = errors.New("offsets: at least two entities are required")

	// ErrNoValidAssignment indicates that no offset set satisfies the
	// reachability and independence filters for the requested (n, t).
	// Callers must refuse the shuffle rather than persist a partial graph.
	ErrNoValidAssignment = errors.New("offsets: no valid assignment")

	// ErrInvalidOffsets indicates a malformed Set (missing 1, out of range,
	// duplicated or unsorted offsets).
	ErrInvalidOffsets = errors.New("offsets: invalid offset set")
)

// Method tags used as error context.
const (
	methodSelect   = "Select"
	methodValidate = "Validate"
)
