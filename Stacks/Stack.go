package Stacks

import (
	"github.com/cockroachdb/errors"
	Go_ADT "github.com/g-m-twostay/go-adt"
	"github.com/g-m-twostay/go-adt/internal"
)

// Stack is a LIFO container of caller owned values.
// The stack only references the values, it never releases them. Removing a value from the stack
// leaves its lifetime to the caller.
type Stack[T any] interface {
	//Push v on top. Returns v on success.
	Push(v T) (T, error)
	//Pop the top value.
	Pop() (T, error)
	//Peek the top value without removing it.
	Peek() (T, error)
	//Clear removes all values.
	Clear() error
	//Size is the number of values held.
	Size() uint
}

// ArrayStack is a Stack over a single array. A growable ArrayStack doubles when pushed full and halves when
// popped below 25% usage, but never below its initial capacity. A fixed ArrayStack fails with Go_ADT.ErrOverflow instead.
type ArrayStack[T any] struct {
	content []T
	top     uint
	policy  internal.Policy
	mk      internal.Allocator[T]
}

// New growable stack with room for capacity values, capacity is also the minimum it will shrink to.
func New[T any](capacity uint) (*ArrayStack[T], error) {
	return makeStack[T](capacity, false)
}

// NewFixed stack that holds at most capacity values.
func NewFixed[T any](capacity uint) (*ArrayStack[T], error) {
	return makeStack[T](capacity, true)
}

func makeStack[T any](capacity uint, fixed bool) (*ArrayStack[T], error) {
	if capacity == 0 {
		return nil, errors.Wrap(Go_ADT.ErrInvalidArgument, "stack: zero capacity")
	}
	content, err := internal.Make[T](capacity)
	if err != nil {
		return nil, errors.Wrap(err, "stack: new")
	}
	return &ArrayStack[T]{content: content, policy: internal.Policy{Floor: capacity, Fixed: fixed}, mk: internal.Make[T]}, nil
}

func (u *ArrayStack[T]) resize(n uint) error {
	nc, err := u.mk(n)
	if err != nil {
		return err
	}
	copy(nc, u.content[:u.top])
	internal.LogResize("stack", uint(len(u.content)), n)
	u.content = nc
	return nil
}

func (u *ArrayStack[T]) Push(v T) (T, error) {
	if u.content == nil {
		return *new(T), internal.Released("stack")
	}
	if capacity := uint(len(u.content)); u.policy.NeedGrow(u.top, capacity) {
		n, ok := u.policy.Grown(capacity)
		if !ok {
			return *new(T), errors.Wrapf(Go_ADT.ErrAllocationFailure, "stack: cannot grow past %d", capacity)
		}
		if err := u.resize(n); err != nil {
			return *new(T), errors.Wrap(err, "stack: push")
		}
	} else if u.top == capacity {
		return *new(T), errors.Wrapf(Go_ADT.ErrOverflow, "stack: push onto full fixed stack of capacity %d", capacity)
	}
	u.content[u.top] = v
	u.top++
	return v, nil
}

// Pop the top value. The shrink decision uses the usage before the removal, and a failed shrink
// still pops the value.
func (u *ArrayStack[T]) Pop() (T, error) {
	if u.content == nil {
		return *new(T), internal.Released("stack")
	}
	if u.top == 0 {
		return *new(T), errors.Wrap(Go_ADT.ErrUnderflow, "stack: pop from empty stack")
	}
	if n, ok := u.policy.Shrunk(u.top, uint(len(u.content))); ok {
		if err := u.resize(n); err != nil {
			internal.LogShrinkFailure("stack", uint(len(u.content)), n, err)
		}
	}
	u.top--
	v := u.content[u.top]
	u.content[u.top] = *new(T)
	return v, nil
}

func (u *ArrayStack[T]) Peek() (T, error) {
	if u.content == nil {
		return *new(T), internal.Released("stack")
	}
	if u.top == 0 {
		return *new(T), errors.Wrap(Go_ADT.ErrUnderflow, "stack: peek into empty stack")
	}
	return u.content[u.top-1], nil
}

// Clear the stack. A stack that has grown gets a fresh array of its initial capacity, if that allocation
// fails the stack is left untouched.
func (u *ArrayStack[T]) Clear() error {
	if u.content == nil {
		return internal.Released("stack")
	}
	if capacity := uint(len(u.content)); capacity > u.policy.Floor {
		nc, err := u.mk(u.policy.Floor)
		if err != nil {
			return errors.Wrap(err, "stack: clear")
		}
		internal.LogResize("stack", capacity, u.policy.Floor)
		u.content = nc
	} else {
		clear(u.content[:u.top])
	}
	u.top = 0
	return nil
}

func (u *ArrayStack[T]) Size() uint {
	return u.top
}

// Cap is the length of the backing array.
func (u *ArrayStack[T]) Cap() uint {
	return uint(len(u.content))
}

// Fixed reports whether the stack was made with NewFixed.
func (u *ArrayStack[T]) Fixed() bool {
	return u.policy.Fixed
}

// Release drops the backing array. The values are not touched, and the stack must not be used afterwards.
func (u *ArrayStack[T]) Release() {
	u.content, u.top = nil, 0
}
