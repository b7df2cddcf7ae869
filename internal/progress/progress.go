// Package progress smooths a bursty completion signal into a counter
// suitable for driving a progress indicator.
package progress

import (
	"sync"
	"time"
)

// DefaultTick is the interval at which the displayed counter advances.
const DefaultTick = 100 * time.Millisecond

// Counter maintains two values: actual, incremented synchronously as work
// completes, and displayed, which advances by at most one unit per tick
// until it catches up. Finalize snaps displayed to actual and stops the
// ticking, guaranteeing the indicator reaches the final value.
type Counter struct {
	mu        sync.Mutex
	actual    int
	displayed int
	onChange  func(int)

	done     chan struct{}
	stopOnce sync.Once
}

// NewCounter starts a counter ticking at the given interval. onChange is
// invoked with each new displayed value; values are monotonically
// non-decreasing. A zero interval uses DefaultTick; a nil onChange is fine.
func NewCounter(interval time.Duration, onChange func(int)) *Counter {
	if interval <= 0 {
		interval = DefaultTick
	}
	c := &Counter{
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go c.run(interval)
	return c
}

func (c *Counter) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.step()
		}
	}
}

// step advances displayed by one and emits while holding the lock, so
// emitted values stay in order even when a tick races Finalize. onChange
// must not call back into the Counter.
func (c *Counter) step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.displayed >= c.actual {
		return
	}
	c.displayed++
	if c.onChange != nil {
		c.onChange(c.displayed)
	}
}

// Add records n completed units of work.
func (c *Counter) Add(n int) {
	c.mu.Lock()
	c.actual += n
	c.mu.Unlock()
}

// Actual returns the true completed count.
func (c *Counter) Actual() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.actual
}

// Displayed returns the smoothed count.
func (c *Counter) Displayed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayed
}

// Finalize snaps displayed to actual, stops the ticker, and emits the
// final value once. Safe to call more than once; only the first call
// has any effect.
func (c *Counter) Finalize() {
	c.stopOnce.Do(func() {
		close(c.done)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.displayed = c.actual
		if c.onChange != nil {
			c.onChange(c.displayed)
		}
	})
}
