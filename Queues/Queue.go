package Queues

// Queue is a first-in first-out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Fails with EmptyQueueError when Empty.
	Pop() (T, error)
	//Peek at the oldest item without removing it, the zero value when Empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to fit the current items.
	Shrink()
	//Clear all items, keeping the backing array.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
