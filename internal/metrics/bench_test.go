package metrics

import "testing"

// BenchmarkCollector_Guess measures the overhead of recording a miss
// (atomic operations only).
func BenchmarkCollector_Guess(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Guess(false)
	}
}

// BenchmarkCollector_Snapshot measures the cost of taking a snapshot.
func BenchmarkCollector_Snapshot(b *testing.B) {
	c := New()
	c.LineRead()
	c.InvalidInput("x")
	c.Guess(true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Snapshot()
	}
}

// BenchmarkCollector_Nil measures the no-op path.
func BenchmarkCollector_Nil(b *testing.B) {
	var c *Collector
	for i := 0; i < b.N; i++ {
		c.Guess(false)
	}
}
