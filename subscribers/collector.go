package subscribers

import (
	"sync"

	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Subscriber[any](&Collector[any]{})

// Collector is a subscriber that gathers every value it's given into a slice
// and remembers how the activation ended. It requests nothing by itself;
// demand is driven by whoever holds the activation's Subscription. Wait
// blocks until the terminal signal arrives, which makes the Collector the
// natural consumer for tests and for fully drained, bounded sources.
type Collector[T any] struct {
	mu        sync.Mutex
	items     []T
	err       error
	completed bool

	done chan struct{}
}

// NewCollector returns a new Collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{
		done: make(chan struct{}),
	}
}

// OnValue appends the value to the collected items.
func (c *Collector[T]) OnValue(value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, value)
	return nil
}

// OnError records the failure and unblocks Wait.
func (c *Collector[T]) OnError(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	close(c.done)
}

// OnComplete records the completion and unblocks Wait.
func (c *Collector[T]) OnComplete() {
	c.mu.Lock()
	c.completed = true
	c.mu.Unlock()
	close(c.done)
}

// Wait blocks until the activation reaches its terminal signal. It never
// unblocks for a cancelled activation, which terminates silently.
func (c *Collector[T]) Wait() {
	<-c.done
}

// Items returns a snapshot of the values collected so far. The snapshot is
// the caller's own: later deliveries don't show up in it.
func (c *Collector[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Err returns the error the activation failed with, if it failed.
func (c *Collector[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Completed reports whether the activation completed normally.
func (c *Collector[T]) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}
