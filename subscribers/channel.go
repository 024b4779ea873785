package subscribers

import (
	"context"
	"sync"

	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Subscriber[any](&ChannelSubscriber[any]{})

// DefaultBufferSize is the demand batch a ChannelSubscriber issues upstream
// when none is configured.
const DefaultBufferSize = 16

// ChannelSubscriber bridges an activation onto a channel: every value is sent
// to the output channel and the channel is closed on the terminal signal. It
// drives its own demand in batches of BufferSize, re-requesting from inside
// the delivery callback once a batch has been consumed, so an unbounded
// source never outruns the channel's reader by more than one batch.
//
// Graphically, with BufferSize 2:
//
//	request(2) -- 1 -- 2 -- request(2) -- 3 -- 4 -- ... -- | -->
type ChannelSubscriber[T any] struct {
	out   chan<- T
	ctx   context.Context
	batch int64

	subscription primitives.Subscription
	taken        int64

	mu     sync.Mutex
	err    error
	closed bool
}

// ChannelSubscriberBuilder is a fluent builder for ChannelSubscriber.
type ChannelSubscriberBuilder[T any] struct {
	out   chan<- T
	ctx   context.Context
	batch int64
}

// Channel creates a new ChannelSubscriberBuilder writing to the given
// channel. The subscriber owns the channel's closing; don't close it
// manually.
func Channel[T any](out chan<- T) *ChannelSubscriberBuilder[T] {
	return &ChannelSubscriberBuilder[T]{
		out:   out,
		ctx:   context.Background(),
		batch: DefaultBufferSize,
	}
}

// Context sets the context for the ChannelSubscriber. When it's done the
// subscriber cancels its activation and closes the output channel.
func (b *ChannelSubscriberBuilder[T]) Context(
	ctx context.Context,
) *ChannelSubscriberBuilder[T] {
	b.ctx = ctx
	return b
}

// BufferSize sets the demand batch requested upstream.
func (b *ChannelSubscriberBuilder[T]) BufferSize(
	size uint,
) *ChannelSubscriberBuilder[T] {
	if size > 0 {
		b.batch = int64(size)
	}
	return b
}

// Build creates the ChannelSubscriber.
func (b *ChannelSubscriberBuilder[T]) Build() *ChannelSubscriber[T] {
	return &ChannelSubscriber[T]{
		out:   b.out,
		ctx:   b.ctx,
		batch: b.batch,
	}
}

// Consume activates the publisher with this subscriber and issues the first
// demand batch from a goroutine of its own, so the caller can turn around and
// read the output channel right away.
func (c *ChannelSubscriber[T]) Consume(publisher primitives.Publisher[T]) {
	c.subscription = publisher.Activate(c)
	go func() {
		_ = c.subscription.Request(c.batch)
	}()
}

// OnValue forwards the value to the output channel, blocking until the reader
// takes it or the context is done. Once a full batch has been forwarded it
// requests the next one; the request is folded into the running delivery
// loop.
func (c *ChannelSubscriber[T]) OnValue(value T) error {
	// Cancellation wins over a reader that is also ready.
	if c.ctx.Err() != nil {
		c.subscription.Cancel()
		c.closeOut()
		return nil
	}

	select {
	case <-c.ctx.Done():
		c.subscription.Cancel()
		c.closeOut()
		return nil
	case c.out <- value:
	}

	// taken is only touched here; OnValue calls are serialized per
	// activation.
	c.taken++
	if c.taken == c.batch {
		c.taken = 0
		return c.subscription.Request(c.batch)
	}

	return nil
}

// OnError records the error and closes the output channel.
func (c *ChannelSubscriber[T]) OnError(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
	c.closeOut()
}

// OnComplete closes the output channel.
func (c *ChannelSubscriber[T]) OnComplete() {
	c.closeOut()
}

// Err returns the error the activation failed with, if it failed. Read it
// after the output channel is closed.
func (c *ChannelSubscriber[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *ChannelSubscriber[T]) closeOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.out)
	}
}
