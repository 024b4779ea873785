package operators

import (
	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Publisher[int](&FilterPublisher[int]{})

// FilterPublisher forwards only the upstream values matching the predicate.
// Downstream demand is forwarded upstream as-is and every dropped value is
// compensated with one extra upstream request, so downstream still receives
// as many values as it asked for (or the source runs out).
//
// Graphically, the FilterPublisher looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- FilterPublisher f(x) = x%2 == 0 --
//
// ------- 2 ------- 4 ------- | -->
type FilterPublisher[T any] struct {
	upstream  primitives.Publisher[T]
	predicate func(T) bool
}

// Filter creates a FilterPublisher keeping the values of upstream for which
// predicate returns true.
func Filter[T any](
	upstream primitives.Publisher[T],
	predicate func(T) bool,
) *FilterPublisher[T] {
	return &FilterPublisher[T]{upstream: upstream, predicate: predicate}
}

// Activate subscribes downstream to the filtered values.
func (f *FilterPublisher[T]) Activate(
	subscriber primitives.Subscriber[T],
) primitives.Subscription {
	filtering := &filterSubscriber[T]{
		predicate:  f.predicate,
		downstream: subscriber,
	}
	filtering.upstream = f.upstream.Activate(filtering)
	return filtering.upstream
}

type filterSubscriber[T any] struct {
	predicate  func(T) bool
	downstream primitives.Subscriber[T]
	upstream   primitives.Subscription
}

func (s *filterSubscriber[T]) OnValue(value T) error {
	if s.predicate(value) {
		return s.downstream.OnValue(value)
	}
	// The dropped value consumed one unit of demand downstream never sees;
	// ask for a replacement. The request folds into the running loop.
	return s.upstream.Request(1)
}

func (s *filterSubscriber[T]) OnError(err error) {
	s.downstream.OnError(err)
}

func (s *filterSubscriber[T]) OnComplete() {
	s.downstream.OnComplete()
}
