package sources

import (
	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Source[int](&RangeSource{})
var _ = primitives.SizedCursor[int](&rangeCursor{})

// RangeSource is a source that counts from a starting value for a fixed
// number of steps, without materializing the values. Like SliceSource its
// cursors are sized and independent.
//
// Graphically, Range(3, 4) looks like this:
//
// -- 3 -- 4 -- 5 -- 6 -- | -->
type RangeSource struct {
	start int
	count int
}

// RangeSourceBuilder is a fluent builder for RangeSource.
type RangeSourceBuilder struct {
	start int
	count int
}

// Range creates a new RangeSourceBuilder emitting count integers starting at
// start. A non-positive count builds an empty source.
func Range(start, count int) *RangeSourceBuilder {
	return &RangeSourceBuilder{start: start, count: count}
}

// Build creates the RangeSource.
func (b *RangeSourceBuilder) Build() *RangeSource {
	count := b.count
	if count < 0 {
		count = 0
	}
	return &RangeSource{start: b.start, count: count}
}

// Cursor returns a fresh cursor positioned at the start of the range.
func (s *RangeSource) Cursor() primitives.Cursor[int] {
	return &rangeCursor{next: s.start, end: s.start + s.count}
}

type rangeCursor struct {
	next int
	end  int
}

func (c *rangeCursor) HasNext() bool {
	return c.next < c.end
}

func (c *rangeCursor) Next() (int, error) {
	if c.next >= c.end {
		return 0, primitives.ErrCursorExhausted
	}

	value := c.next
	c.next++
	return value, nil
}

func (c *rangeCursor) Remaining() int {
	return c.end - c.next
}
