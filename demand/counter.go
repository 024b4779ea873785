package demand

import (
	"sync/atomic"

	"github.com/arielf-camacho/demand-stream/primitives"
)

// Counter tracks the outstanding demand of one activation: a non-negative
// count of values the consumer has authorized but not yet received. All
// operations are lock-free so that signaling demand never blocks behind a
// running delivery loop.
//
// Addition saturates at primitives.Unbounded instead of wrapping. Once
// saturated the counter is sticky: it is never decremented again and stands
// for effectively infinite demand.
type Counter struct {
	value atomic.Int64
}

// Get returns the current outstanding demand.
func (c *Counter) Get() int64 {
	return c.value.Load()
}

// Unbounded reports whether the counter has reached the unbounded sentinel.
func (c *Counter) Unbounded() bool {
	return c.value.Load() == primitives.Unbounded
}

// Add atomically adds n (which must be non-negative, callers validate) to the
// counter, clamping at primitives.Unbounded. It returns the value the counter
// held before the add, so a caller can tell whether it moved demand off zero.
func (c *Counter) Add(n int64) int64 {
	for {
		current := c.value.Load()
		if current == primitives.Unbounded {
			return current
		}

		next := current + n
		if next < 0 {
			// Signed overflow; clamp to the sentinel.
			next = primitives.Unbounded
		}

		if c.value.CompareAndSwap(current, next) {
			return current
		}
	}
}

// Consume atomically subtracts n previously delivered values from the
// counter and returns what is left. A saturated counter is left untouched:
// unbounded demand is never paid down.
func (c *Counter) Consume(n int64) int64 {
	for {
		current := c.value.Load()
		if current == primitives.Unbounded {
			return current
		}

		next := current - n
		if next < 0 {
			next = 0
		}

		if c.value.CompareAndSwap(current, next) {
			return next
		}
	}
}
