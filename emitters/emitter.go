package emitters

import (
	"context"
	"errors"

	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Publisher[any](&CursorEmitter[any]{})

// ErrNilSource is returned by Build when no source was given. A missing
// source is a configuration error: it fails the constructor synchronously and
// never reaches an activation.
var ErrNilSource = errors.New("source must not be nil")

// CursorEmitter converts a pull-based Source into a push-based Publisher that
// delivers values only as fast as its subscribers have requested them. Each
// activation obtains its own cursor from the source, so activations never
// share iteration state and the same emitter can be activated any number of
// times.
//
// Graphically, for a subscriber that requests 2, then 3:
//
//	SliceSource (1, 2, 3, 4, 5)
//
//	request(2) -- 1 -- 2 -- request(3) -- 3 -- 4 -- 5 -- | -->
//
// Delivery runs on whichever goroutine moved demand off zero; concurrent
// requests are folded into the running delivery loop instead of starting a
// second one.
type CursorEmitter[T any] struct {
	source primitives.Source[T]
	ctx    context.Context
}

// CursorEmitterBuilder is a fluent builder for CursorEmitter.
type CursorEmitterBuilder[T any] struct {
	source primitives.Source[T]
	ctx    context.Context
}

// Cursor creates a new CursorEmitterBuilder for building a CursorEmitter over
// the given source.
func Cursor[T any](source primitives.Source[T]) *CursorEmitterBuilder[T] {
	return &CursorEmitterBuilder[T]{
		source: source,
		ctx:    context.Background(),
	}
}

// Context sets the context for the CursorEmitter. A cancelled context behaves
// like Cancel on every activation: delivery stops before the next pull, with
// no terminal signal. The context is only observed by a running delivery
// loop — an activation idling with zero demand doesn't watch it, so Cancel
// such activations explicitly to release their cursor resources promptly.
func (b *CursorEmitterBuilder[T]) Context(
	ctx context.Context,
) *CursorEmitterBuilder[T] {
	b.ctx = ctx
	return b
}

// Build creates the CursorEmitter. It returns ErrNilSource when the builder
// was given a nil source.
func (b *CursorEmitterBuilder[T]) Build() (*CursorEmitter[T], error) {
	if b.source == nil {
		return nil, ErrNilSource
	}

	return &CursorEmitter[T]{
		source: b.source,
		ctx:    b.ctx,
	}, nil
}

// Activate connects the subscriber to a fresh cursor and returns the handle
// used to request demand and cancel. Nothing is delivered until the first
// request.
func (e *CursorEmitter[T]) Activate(
	subscriber primitives.Subscriber[T],
) primitives.Subscription {
	return &activation[T]{
		ctx:        e.ctx,
		cursor:     e.source.Cursor(),
		subscriber: subscriber,
	}
}
