package Go_ADT

import "github.com/cockroachdb/errors"

// Error kinds reported by every container in this module. Operations wrap one
// of these with the details of the failing call, test the kind with errors.Is.
var (
	// ErrInvalidArgument is returned for zero capacities, missing hash functions,
	// empty keys, nil values and use of a released container.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAllocationFailure is returned when a backing array could not be obtained.
	ErrAllocationFailure = errors.New("allocation failure")
	// ErrOverflow is returned when inserting into a full fixed-capacity container.
	ErrOverflow = errors.New("overflow")
	// ErrUnderflow is returned when removing from or peeking into an empty container.
	ErrUnderflow = errors.New("underflow")
	// ErrKeyExists is returned when inserting a key that is already present.
	ErrKeyExists = errors.New("key exists")
)
