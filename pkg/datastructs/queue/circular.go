package queue

import (
	"github.com/minhtran241/go-typekit/pkg/types/numeric"
	"github.com/minhtran241/go-typekit/pkg/types/optional"
	"github.com/minhtran241/go-typekit/pkg/utils"
)

var _ Queue[int] = (*Circular[int])(nil)

// defaultCapacity is the initial slot count for a new Circular queue.
const defaultCapacity = 8

// Circular is an auto-growing circular buffer FIFO queue.
// The backing buffer doubles when full and never shrinks, so Enqueue is
// O(1) amortized and Dequeue is O(1). Capacity is kept a power of two so
// index wrap-around is a single mask.
// It is NOT thread-safe.
type Circular[T any] struct {
	buf  []T
	head int // index of the oldest item; meaningless when size == 0
	size int // count of live items
}

// NewCircular creates an empty queue with the default capacity.
func NewCircular[T any]() *Circular[T] {
	return &Circular[T]{buf: make([]T, defaultCapacity)}
}

// NewCircularOf creates a queue holding values in enqueue order.
// Equivalent to enqueuing each value onto an empty queue; the buffer is
// presized so the construction phase never grows.
func NewCircularOf[T any](values ...T) *Circular[T] {
	capacity := defaultCapacity
	if len(values) > capacity {
		capacity = utils.CeilToPowerOfTwo(len(values))
	}

	q := &Circular[T]{buf: make([]T, capacity)}
	for _, v := range values {
		q.Enqueue(v)
	}
	return q
}

// Enqueue appends value as the new tail element, growing the buffer first
// if it is full. It never fails.
func (q *Circular[T]) Enqueue(value T) {
	if q.size == len(q.buf) {
		q.grow()
	}

	q.buf[q.wrapIndex(q.head+q.size)] = value
	q.size++
}

// Dequeue removes and returns the oldest item.
// Returns None when the queue is empty, leaving it unchanged.
func (q *Circular[T]) Dequeue() optional.Optional[T] {
	if q.size == 0 {
		return optional.None[T]()
	}

	var zero T
	value := q.buf[q.head]
	q.buf[q.head] = zero // release the slot's reference

	q.head = q.wrapIndex(q.head + 1)
	q.size--
	return optional.Some(value)
}

// Peek returns the oldest item without removing it.
func (q *Circular[T]) Peek() optional.Optional[T] {
	if q.size == 0 {
		return optional.None[T]()
	}
	return optional.Some(q.buf[q.head])
}

// Size returns the number of live items.
func (q *Circular[T]) Size() int {
	return q.size
}

// IsEmpty reports whether the queue holds no items.
func (q *Circular[T]) IsEmpty() bool {
	return q.size == 0
}

// Capacity returns the current slot count of the backing buffer.
func (q *Circular[T]) Capacity() numeric.Size {
	return numeric.MustSize(len(q.buf))
}

// Clear removes all items. The backing buffer is retained.
func (q *Circular[T]) Clear() {
	var zero T
	for i := 0; i < q.size; i++ {
		q.buf[q.wrapIndex(q.head+i)] = zero
	}
	q.head = 0
	q.size = 0
}

// ToSlice returns a copy of the live items in FIFO order.
func (q *Circular[T]) ToSlice() []T {
	out := make([]T, q.size)
	for i := range out {
		out[i] = q.buf[q.wrapIndex(q.head+i)]
	}
	return out
}

// wrapIndex returns the index wrapped within buffer capacity.
func (q *Circular[T]) wrapIndex(idx int) int {
	return idx & (len(q.buf) - 1)
}

// grow doubles the buffer and compacts the live run to the front.
// Only called when the buffer is full, so the live run is the whole
// buffer starting at head.
func (q *Circular[T]) grow() {
	newBuf := make([]T, len(q.buf)*2)
	n := copy(newBuf, q.buf[q.head:])
	copy(newBuf[n:], q.buf[:q.head])

	q.buf = newBuf
	q.head = 0
}
