package primitives

// Source is anything that can be iterated by handing out cursors. A source is
// expected to be immutable: every call to Cursor returns a fresh, independent
// cursor positioned at the beginning, so the same source can back any number
// of concurrent activations without them sharing iteration state.
type Source[T any] interface {
	// Cursor returns a new cursor over the source's values.
	Cursor() Cursor[T]
}
