package queue

import "github.com/minhtran241/go-typekit/pkg/types/optional"

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue appends an item as the new tail element.
	Enqueue(item T)

	// Dequeue removes and returns the oldest item.
	// Returns None if the queue is empty.
	Dequeue() optional.Optional[T]

	// Size returns the number of items currently held.
	Size() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool
}
