// Package queue provides a generic first-in, first-out queue backed by a
// growable ring buffer.
//
// What:
//
//   - Enqueue appends at the back, Dequeue removes from the front.
//   - Peek inspects the front without removing it.
//   - Drain yields and removes every element in FIFO order as an iter.Seq.
//
// Why:
//
//   - Breadth-first traversal needs a plain FIFO of node handles and
//     nothing more: no priorities, no blocking, no bounds.
//
// Complexity:
//
//   - Enqueue: amortized O(1) (the buffer doubles when full)
//   - Dequeue, Peek, Len: O(1)
//   - Memory: O(capacity)
//
// A Queue is not safe for concurrent use.
package queue
