package source

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

func TestQueueFIFO(t *testing.T) {
	t.Parallel()

	q := NewQueue(imu.RawSample{1, 2, 3}, imu.RawSample{4, 5, 6})
	q.Push(imu.RawSample{7})
	assert.Equal(t, 3, q.Len())

	for _, want := range []imu.RawSample{{1, 2, 3}, {4, 5, 6}, {7}} {
		got, ok := q.TryPop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.TryPop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())

	// An exhausted queue accepts new samples.
	q.Push(imu.RawSample{8})
	got, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, imu.RawSample{8}, got)
}

func TestQueueCompaction(t *testing.T) {
	t.Parallel()

	q := NewQueue()
	for i := 0; i < 1000; i++ {
		q.Push(imu.RawSample{uint32(i)})
	}
	for i := 0; i < 1000; i++ {
		got, ok := q.TryPop()
		require.True(t, ok)
		require.Equal(t, uint32(i), got[0])
		if i == 499 {
			q.Push(imu.RawSample{1000})
		}
	}
	got, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, uint32(1000), got[0])
}

func TestQueueConcurrentProducers(t *testing.T) {
	t.Parallel()

	const producers, perProducer = 8, 250
	q := NewQueue()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(imu.RawSample{uint32(p), uint32(i)})
			}
		}(p)
	}

	// Drain while producers run; per-producer order must hold.
	next := make([]uint32, producers)
	popped := 0
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	for popped < producers*perProducer {
		s, ok := q.TryPop()
		if !ok {
			select {
			case <-done:
				if q.Len() == 0 {
					t.Fatalf("queue drained after %d samples", popped)
				}
			default:
			}
			continue
		}
		require.Equal(t, next[s[0]], s[1])
		next[s[0]]++
		popped++
	}
	_, ok := q.TryPop()
	assert.False(t, ok)
}
