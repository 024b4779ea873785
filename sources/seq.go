package sources

import (
	"io"
	"iter"
	"sync"

	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Source[any](&SeqSource[any]{})
var _ = primitives.Cursor[any](&seqCursor[any]{})
var _ = io.Closer(&seqCursor[any]{})

// SeqSource is a source backed by a Go push iterator (iter.Seq). Every cursor
// restarts the sequence through its own iter.Pull pair, so activations stay
// independent as long as the sequence itself is restartable. The cursor owns
// the pull goroutine and releases it when it's exhausted, or when it's closed
// by whoever owns the cursor.
//
// Graphically, for a sequence yielding 1, 2, 3:
//
//	SeqSource (1, 2, 3)
//
// -- 1 -- 2 -- 3 -- | -->
type SeqSource[T any] struct {
	seq iter.Seq[T]
}

// SeqSourceBuilder is a fluent builder for SeqSource.
type SeqSourceBuilder[T any] struct {
	seq iter.Seq[T]
}

// Seq creates a new SeqSourceBuilder for building a SeqSource.
func Seq[T any](seq iter.Seq[T]) *SeqSourceBuilder[T] {
	return &SeqSourceBuilder[T]{seq: seq}
}

// Build creates the SeqSource.
func (b *SeqSourceBuilder[T]) Build() *SeqSource[T] {
	return &SeqSource[T]{seq: b.seq}
}

// Cursor starts the sequence over and returns a cursor pulling from it.
func (s *SeqSource[T]) Cursor() primitives.Cursor[T] {
	next, stop := iter.Pull(s.seq)
	return &seqCursor[T]{next: next, stop: stop}
}

// seqCursor pulls with one value of lookahead: HasNext pre-fetches so it can
// answer without advancing what the caller observes.
type seqCursor[T any] struct {
	next func() (T, bool)
	stop func()

	once   sync.Once
	value  T
	peeked bool
	done   bool
}

func (c *seqCursor[T]) HasNext() bool {
	if c.done {
		return false
	}
	if c.peeked {
		return true
	}

	value, ok := c.next()
	if !ok {
		c.done = true
		c.release()
		return false
	}

	c.value = value
	c.peeked = true
	return true
}

func (c *seqCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, primitives.ErrCursorExhausted
	}

	c.peeked = false
	return c.value, nil
}

// Close releases the pull goroutine. The cursor is exhausted from then on.
func (c *seqCursor[T]) Close() error {
	c.done = true
	c.peeked = false
	c.release()
	return nil
}

func (c *seqCursor[T]) release() {
	c.once.Do(c.stop)
}
