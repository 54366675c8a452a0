package orchestrator

import "context"

// Semaphore is a channel-backed counting semaphore. It implements
// pipeline.Semaphore for the adapter-guarding resources (textract,
// bedrock, file_generation) and also bounds whole-flow dispatch
// (document_flows, file_flows) via TryAcquire.
type Semaphore struct {
	slots chan struct{}
}

// NewSemaphore creates a semaphore with n slots.
func NewSemaphore(n int) *Semaphore {
	if n < 1 {
		n = 1
	}
	return &Semaphore{slots: make(chan struct{}, n)}
}

// Acquire blocks until a slot is free or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case s.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes a slot without blocking, reporting whether it got one.
// The dispatcher uses this so a full pool defers work to the next tick
// instead of queueing goroutines.
func (s *Semaphore) TryAcquire() bool {
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release frees a slot. Must pair 1:1 with a successful Acquire/TryAcquire.
func (s *Semaphore) Release() {
	select {
	case <-s.slots:
	default:
		panic("orchestrator: semaphore released more times than acquired")
	}
}

// InUse reports how many slots are currently held.
func (s *Semaphore) InUse() int {
	return len(s.slots)
}
