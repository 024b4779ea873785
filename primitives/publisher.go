package primitives

// Publisher is anything that can push values to a Subscriber under the
// subscriber's demand. Each Activate call produces an independent activation:
// its own cursor, its own demand accounting, its own terminal signal.
type Publisher[T any] interface {
	// Activate connects the subscriber and returns the handle it (or anyone
	// else) uses to signal demand and to cancel. Nothing is delivered until
	// demand is requested.
	Activate(subscriber Subscriber[T]) Subscription
}
