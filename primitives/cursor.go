package primitives

import "errors"

// ErrCursorExhausted is returned by Cursor.Next when it's called after the
// cursor has run out of values. Doing so is a programming error on the
// caller's side; a well-behaved caller checks HasNext first.
var ErrCursorExhausted = errors.New("cursor exhausted")

// Cursor is a single-use, stateful iteration handle over a source of values.
// A cursor is owned by exactly one consumer at a time and offers no
// concurrency guarantees; it must only ever be touched from one goroutine.
//
// Once HasNext returns false it returns false forever.
type Cursor[T any] interface {
	// HasNext reports whether a subsequent call to Next will yield a value.
	// It does not advance the cursor and may be called repeatedly.
	HasNext() bool

	// Next advances the cursor by one position and returns the value at it.
	// Calling Next once HasNext reports false returns ErrCursorExhausted.
	Next() (T, error)
}

// SizedCursor is a Cursor that knows how many values are left. Emitters may
// use the remaining count to drain with a fixed budget instead of probing
// HasNext before every pull.
type SizedCursor[T any] interface {
	Cursor[T]

	// Remaining returns the number of values Next can still yield.
	Remaining() int
}
