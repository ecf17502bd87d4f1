package internal

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	Go_ADT "github.com/g-m-twostay/go-adt"
	"go.uber.org/zap"
)

const (
	MaxArrayLen uint = math.MaxInt
)

//These are helpers shared by the array backed containers.

// Policy decides when a backing array of a stack or queue changes size.
// Growth doubles a full array, shrinking halves an array whose usage is below 25%, never below Floor.
// A Fixed policy never resizes.
type Policy struct {
	Floor uint
	Fixed bool
}

// NeedGrow reports whether an insert into an array of length capacity holding count elements must grow it first.
func (p Policy) NeedGrow(count, capacity uint) bool {
	return !p.Fixed && count == capacity
}

// Grown is the capacity after growing. ok is false when doubling would pass MaxArrayLen.
func (p Policy) Grown(capacity uint) (newCap uint, ok bool) {
	if capacity > MaxArrayLen>>1 {
		return capacity, false
	}
	return capacity << 1, true
}

// Shrunk is the capacity a removal should leave given the count before the removal.
// ok is false when no shrink is warranted.
func (p Policy) Shrunk(count, capacity uint) (newCap uint, ok bool) {
	if p.Fixed {
		return capacity, false
	}
	//count/capacity < 1/4 <=> count < ceil(capacity/4)
	if half := capacity >> 1; count < (capacity+3)>>2 && half >= p.Floor && half > 0 {
		return half, true
	}
	return capacity, false
}

// Allocator obtains a backing array of length n.
type Allocator[T any] func(n uint) ([]T, error)

// Make allocates a []T of length n. Instead of crashing the program it returns Go_ADT.ErrAllocationFailure
// when n is out of range for T or the runtime refuses the allocation.
func Make[T any](n uint) (s []T, err error) {
	if n == 0 {
		return nil, errors.Wrap(Go_ADT.ErrAllocationFailure, "zero length array")
	}
	if sz := uint(unsafe.Sizeof(*new(T))); sz != 0 && n > MaxArrayLen/sz {
		return nil, errors.Wrapf(Go_ADT.ErrAllocationFailure, "%d elements of %d bytes", n, sz)
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = errors.WithSecondaryError(
				errors.Wrapf(Go_ADT.ErrAllocationFailure, "%d elements", n),
				errors.Newf("%v", r))
		}
	}()
	return make([]T, n), nil
}

// LogResize records a capacity change of a container.
func LogResize(container string, from, to uint) {
	if ce := Go_ADT.Logger().Check(zap.DebugLevel, "resized"); ce != nil {
		ce.Write(zap.String("container", container), zap.Uint("from", from), zap.Uint("to", to))
	}
}

// LogShrinkFailure records a shrink that was skipped because the smaller array couldn't be allocated.
func LogShrinkFailure(container string, from, to uint, err error) {
	Go_ADT.Logger().Warn("shrink skipped",
		zap.String("container", container), zap.Uint("from", from), zap.Uint("to", to), zap.Error(err))
}

// Released is the error returned by every operation on a container after Release.
func Released(container string) error {
	return errors.Wrapf(Go_ADT.ErrInvalidArgument, "%s: used after Release", container)
}
