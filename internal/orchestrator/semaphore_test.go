package orchestrator

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphoreCapsConcurrency(t *testing.T) {
	const limit = 3
	sem := NewSemaphore(limit)

	var inFlight, peak int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, sem.Acquire(context.Background()))
			defer sem.Release()

			current := atomic.AddInt64(&inFlight, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if current <= p || atomic.CompareAndSwapInt64(&peak, p, current) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(limit))
	assert.Equal(t, 0, sem.InUse())
}

func TestSemaphoreTryAcquire(t *testing.T) {
	sem := NewSemaphore(1)

	assert.True(t, sem.TryAcquire())
	assert.False(t, sem.TryAcquire())
	sem.Release()
	assert.True(t, sem.TryAcquire())
	sem.Release()
}

func TestSemaphoreAcquireHonorsCancellation(t *testing.T) {
	sem := NewSemaphore(1)
	require.NoError(t, sem.Acquire(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := sem.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	sem.Release()
}

func TestSemaphoreMinimumOfOne(t *testing.T) {
	sem := NewSemaphore(0)
	assert.True(t, sem.TryAcquire())
	assert.False(t, sem.TryAcquire())
	sem.Release()
}
