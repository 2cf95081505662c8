package queue

import "iter"

// minCapacity is the smallest buffer a non-empty queue grows from.
const minCapacity = 4

// Queue is a FIFO ring buffer. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf  []T
	head int // index of the front element
	size int // number of stored elements
}

// New returns an empty queue with room for capacity elements before it
// has to grow. A non-positive capacity is treated as zero.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{buf: make([]T, capacity)}
}

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// Enqueue adds v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes and returns the front element.
// The boolean is false when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // release the reference for the GC
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return v, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}

	return q.buf[q.head], true
}

// Drain yields the queued elements front to back, removing each one as it
// is yielded. Elements enqueued while draining are yielded too. Stopping
// early leaves the rest queued.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// grow doubles the buffer and unrolls the ring so the front is at index 0.
func (q *Queue[T]) grow() {
	n := len(q.buf) * 2
	if n < minCapacity {
		n = minCapacity
	}
	buf := make([]T, n)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
