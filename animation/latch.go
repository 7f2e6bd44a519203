package animation

import (
	"sync"
	"time"
)

// Latch is a single-set boolean flag with timed wait. Setting is monotonic
// and idempotent: the first Set releases all waiters, later calls are no-ops.
// There is exactly one writer (the stdout listener) and one reader (the
// orchestration flow), so the closed-channel happens-before edge is the only
// synchronization needed.
type Latch struct {
	once sync.Once
	ch   chan struct{}
}

func NewLatch() *Latch {
	return &Latch{ch: make(chan struct{})}
}

// Set latches the flag. Safe to call any number of times.
func (l *Latch) Set() {
	l.once.Do(func() { close(l.ch) })
}

// Wait blocks until the latch is set or the timeout elapses, and reports
// whether it was set.
func (l *Latch) Wait(timeout time.Duration) bool {
	select {
	case <-l.ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Done reports whether the latch is set, without blocking.
func (l *Latch) Done() bool {
	select {
	case <-l.ch:
		return true
	default:
		return false
	}
}
