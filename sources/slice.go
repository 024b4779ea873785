package sources

import (
	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Source[any](&SliceSource[any]{})
var _ = primitives.SizedCursor[any](&sliceCursor[any]{})

// SliceSource is a source backed by a slice. Every cursor it hands out starts
// at the first element and iterates independently, so any number of
// activations can run against the same source without sharing position. Its
// cursors are sized: the remaining count is always known.
//
// Graphically, the SliceSource looks like this:
//
//	SliceSource (1, 2, 3, 4, 5)
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type SliceSource[T any] struct {
	slice []T
}

// SliceSourceBuilder is a fluent builder for SliceSource.
type SliceSourceBuilder[T any] struct {
	slice []T
}

// Slice creates a new SliceSourceBuilder for building a SliceSource.
func Slice[T any](slice []T) *SliceSourceBuilder[T] {
	return &SliceSourceBuilder[T]{slice: slice}
}

// Build creates the SliceSource.
func (b *SliceSourceBuilder[T]) Build() *SliceSource[T] {
	return &SliceSource[T]{slice: b.slice}
}

// Cursor returns a fresh cursor positioned at the first element.
func (s *SliceSource[T]) Cursor() primitives.Cursor[T] {
	return &sliceCursor[T]{slice: s.slice}
}

type sliceCursor[T any] struct {
	slice []T
	pos   int
}

func (c *sliceCursor[T]) HasNext() bool {
	return c.pos < len(c.slice)
}

func (c *sliceCursor[T]) Next() (T, error) {
	if c.pos >= len(c.slice) {
		var zero T
		return zero, primitives.ErrCursorExhausted
	}

	value := c.slice[c.pos]
	c.pos++
	return value, nil
}

func (c *sliceCursor[T]) Remaining() int {
	return len(c.slice) - c.pos
}
