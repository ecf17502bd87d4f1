package Queues

// Queue is a FIFO container of caller owned values. The queue only references the values, removing a value
// leaves its lifetime to the caller.
type Queue[T any] interface {
	//Enqueue v at the rear. Returns v on success.
	Enqueue(v T) (T, error)
	//Dequeue the front value.
	Dequeue() (T, error)
	//PeekFirst returns the front value without removing it.
	PeekFirst() (T, error)
	//PeekRear returns the rear value without removing it.
	PeekRear() (T, error)
	//Clear removes all values.
	Clear() error
	//Size is the number of values held.
	Size() uint
}
