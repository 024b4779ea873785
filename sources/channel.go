package sources

import (
	"context"

	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Source[any](&ChannelSource[any]{})
var _ = primitives.Cursor[any](&channelCursor[any]{})

// ChannelSource is a source that reads its values from a channel. The channel
// is a consumable: cursors drain it, so the source is meant for a single
// activation — concurrent activations would each see a disjoint subset of the
// values. The cursor reports exhaustion when the channel is closed, or when
// the source's context is done.
//
// HasNext blocks until a value arrives, the channel closes, or the context is
// done; that's inherent to asking "is there more?" of a live channel.
//
// Graphically, the ChannelSource looks like this:
//
//	ChannelSource (ch)
//
// -- v1 -- v2 -- v3 -- (close) -- | -->
type ChannelSource[T any] struct {
	channel <-chan T
	ctx     context.Context
}

// ChannelSourceBuilder is a fluent builder for ChannelSource.
type ChannelSourceBuilder[T any] struct {
	channel <-chan T
	ctx     context.Context
}

// Channel creates a new ChannelSourceBuilder for building a ChannelSource.
func Channel[T any](channel <-chan T) *ChannelSourceBuilder[T] {
	return &ChannelSourceBuilder[T]{
		channel: channel,
		ctx:     context.Background(),
	}
}

// Context sets the context for the ChannelSource. A done context exhausts the
// source's cursors.
func (b *ChannelSourceBuilder[T]) Context(
	ctx context.Context,
) *ChannelSourceBuilder[T] {
	b.ctx = ctx
	return b
}

// Build creates the ChannelSource.
func (b *ChannelSourceBuilder[T]) Build() *ChannelSource[T] {
	return &ChannelSource[T]{
		channel: b.channel,
		ctx:     b.ctx,
	}
}

// Cursor returns a cursor draining the channel.
func (s *ChannelSource[T]) Cursor() primitives.Cursor[T] {
	return &channelCursor[T]{channel: s.channel, ctx: s.ctx}
}

// channelCursor keeps one value of lookahead so HasNext can answer without
// dropping anything.
type channelCursor[T any] struct {
	channel <-chan T
	ctx     context.Context

	value  T
	peeked bool
	done   bool
}

func (c *channelCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if c.peeked {
		return true
	}
	// Cancellation wins over a value that is also ready.
	if c.ctx.Err() != nil {
		c.done = true
		return false
	}

	select {
	case <-c.ctx.Done():
		c.done = true
		return false
	case value, ok := <-c.channel:
		if !ok {
			c.done = true
			return false
		}
		c.value = value
		c.peeked = true
		return true
	}
}

func (c *channelCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, primitives.ErrCursorExhausted
	}

	c.peeked = false
	return c.value, nil
}
