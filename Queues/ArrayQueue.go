package Queues

import (
	"github.com/cockroachdb/errors"
	Go_ADT "github.com/g-m-twostay/go-adt"
	"github.com/g-m-twostay/go-adt/internal"
)

// ArrayQueue is a Queue over a circular array. tail is the index of the last value, not one past it,
// so head==tail whenever the queue holds at most one value.
//
// A dynamic queue doubles when full and halves when a dequeue finds it below 25% usage, never below its
// initial capacity. A circular queue keeps its capacity and reports Go_ADT.ErrOverflow when full.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
	policy         internal.Policy
	mk             internal.Allocator[T]
}

// New dynamic queue with room for capacity values, capacity is also the minimum it will shrink to.
func New[T any](capacity uint) (*ArrayQueue[T], error) {
	return makeQueue[T](capacity, false)
}

// NewCircular queue that holds at most capacity values.
func NewCircular[T any](capacity uint) (*ArrayQueue[T], error) {
	return makeQueue[T](capacity, true)
}

func makeQueue[T any](capacity uint, fixed bool) (*ArrayQueue[T], error) {
	if capacity == 0 {
		return nil, errors.Wrap(Go_ADT.ErrInvalidArgument, "queue: zero capacity")
	}
	content, err := internal.Make[T](capacity)
	if err != nil {
		return nil, errors.Wrap(err, "queue: new")
	}
	return &ArrayQueue[T]{content: content, policy: internal.Policy{Floor: capacity, Fixed: fixed}, mk: internal.Make[T]}, nil
}

func (u *ArrayQueue[T]) next(i uint) uint {
	if i++; i == uint(len(u.content)) {
		return 0
	}
	return i
}

// relocate moves the values into a new array of length n, in order from head to tail starting at index 0.
// Must only be called on a non-empty queue. On error the queue is untouched.
func (u *ArrayQueue[T]) relocate(n uint) error {
	nc, err := u.mk(n)
	if err != nil {
		return err
	}
	if u.head <= u.tail {
		copy(nc, u.content[u.head:u.head+u.sz])
	} else { //wrapped, [head,len) then [0,tail]
		copy(nc[copy(nc, u.content[u.head:]):], u.content[:u.tail+1])
	}
	internal.LogResize("queue", uint(len(u.content)), n)
	u.content = nc
	u.head, u.tail = 0, u.sz-1
	return nil
}

func (u *ArrayQueue[T]) Enqueue(v T) (T, error) {
	if u.content == nil {
		return *new(T), internal.Released("queue")
	}
	if capacity := uint(len(u.content)); u.policy.NeedGrow(u.sz, capacity) {
		n, ok := u.policy.Grown(capacity)
		if !ok {
			return *new(T), errors.Wrapf(Go_ADT.ErrAllocationFailure, "queue: cannot grow past %d", capacity)
		}
		if err := u.relocate(n); err != nil {
			return *new(T), errors.Wrap(err, "queue: enqueue")
		}
	} else if u.sz == capacity {
		return *new(T), errors.Wrapf(Go_ADT.ErrOverflow, "queue: enqueue onto full circular queue of capacity %d", capacity)
	}
	if u.sz >= 1 {
		u.tail = u.next(u.tail)
	}
	u.content[u.tail] = v
	u.sz++
	return v, nil
}

// Dequeue the front value. The shrink decision uses the usage before the removal and the relocation happens
// before head moves, a failed shrink still dequeues the value.
func (u *ArrayQueue[T]) Dequeue() (T, error) {
	if u.content == nil {
		return *new(T), internal.Released("queue")
	}
	if u.sz == 0 {
		return *new(T), errors.Wrap(Go_ADT.ErrUnderflow, "queue: dequeue from empty queue")
	}
	if n, ok := u.policy.Shrunk(u.sz, uint(len(u.content))); ok {
		if err := u.relocate(n); err != nil {
			internal.LogShrinkFailure("queue", uint(len(u.content)), n, err)
		}
	}
	v := u.content[u.head]
	u.content[u.head] = *new(T)
	if u.sz--; u.sz != 0 {
		u.head = u.next(u.head)
	}
	return v, nil
}

func (u *ArrayQueue[T]) PeekFirst() (T, error) {
	if u.content == nil {
		return *new(T), internal.Released("queue")
	}
	if u.sz == 0 {
		return *new(T), errors.Wrap(Go_ADT.ErrUnderflow, "queue: peek into empty queue")
	}
	return u.content[u.head], nil
}

func (u *ArrayQueue[T]) PeekRear() (T, error) {
	if u.content == nil {
		return *new(T), internal.Released("queue")
	}
	if u.sz == 0 {
		return *new(T), errors.Wrap(Go_ADT.ErrUnderflow, "queue: peek into empty queue")
	}
	return u.content[u.tail], nil
}

// Clear the queue. A queue that has grown gets a fresh array of its initial capacity, if that allocation
// fails the queue is left untouched.
func (u *ArrayQueue[T]) Clear() error {
	if u.content == nil {
		return internal.Released("queue")
	}
	if capacity := uint(len(u.content)); capacity > u.policy.Floor {
		nc, err := u.mk(u.policy.Floor)
		if err != nil {
			return errors.Wrap(err, "queue: clear")
		}
		internal.LogResize("queue", capacity, u.policy.Floor)
		u.content = nc
	} else {
		clear(u.content)
	}
	u.tail, u.head, u.sz = 0, 0, 0
	return nil
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// Cap is the length of the backing array.
func (u *ArrayQueue[T]) Cap() uint {
	return uint(len(u.content))
}

// Fixed reports whether the queue was made with NewCircular.
func (u *ArrayQueue[T]) Fixed() bool {
	return u.policy.Fixed
}

// Release drops the backing array. The values are not touched, and the queue must not be used afterwards.
func (u *ArrayQueue[T]) Release() {
	u.content = nil
	u.tail, u.head, u.sz = 0, 0, 0
}
