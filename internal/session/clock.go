// ABOUTME: Elapsed-time clock for a live session.
// ABOUTME: One-second ticker; Stop is idempotent and safe on every exit path.
package session

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock counts elapsed whole seconds while a session is live. The owner of
// the active session owns the clock and must stop it on both the finish and
// cancel paths; Stop is guarded so calling it on both is harmless.
type Clock struct {
	ticker  *time.Ticker
	done    chan struct{}
	stop    sync.Once
	seconds atomic.Int64
}

// NewClock starts a clock ticking once per second.
func NewClock() *Clock {
	c := &Clock{
		ticker: time.NewTicker(time.Second),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-c.ticker.C:
				c.seconds.Add(1)
			case <-c.done:
				return
			}
		}
	}()
	return c
}

// Elapsed returns the whole seconds counted so far.
func (c *Clock) Elapsed() int {
	return int(c.seconds.Load())
}

// Stop halts the ticker and releases its goroutine. Safe to call more than
// once; only the first call has any effect.
func (c *Clock) Stop() {
	c.stop.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}
