package queue_test

import (
	"testing"

	"github.com/katalvlaran/lvtree/queue"
)

// BenchmarkQueue_EnqueueDequeue measures a steady stream through a small ring.
func BenchmarkQueue_EnqueueDequeue(b *testing.B) {
	q := queue.New[int](64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if q.Len() > 32 {
			_, _ = q.Dequeue()
		}
	}
}
