package primitives

// Subscriber receives the signals of one activation: zero or more values,
// then exactly one terminal signal (OnComplete or OnError), never both and
// never more than once. Signals of one activation never interleave; they are
// delivered sequentially from the activation's delivery loop.
type Subscriber[T any] interface {
	// OnValue delivers the next value. Returning a non-nil error tells the
	// publisher the consumer failed to take the value; the publisher then
	// emits that error through OnError and stops permanently.
	OnValue(value T) error

	// OnError signals that the activation failed. No signal follows it.
	OnError(err error)

	// OnComplete signals that the source was drained in full. No signal
	// follows it.
	OnComplete()
}
