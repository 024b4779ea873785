package operators

import (
	"github.com/arielf-camacho/demand-stream/primitives"
)

var _ = primitives.Publisher[int](&MapPublisher[byte, int]{})

// MapPublisher transforms the values of an upstream publisher with the given
// function. Demand flows through untouched: one downstream request is one
// upstream request, so the upstream's flow control is preserved. A transform
// failure fails the activation with exactly one error signal.
//
// Graphically, the MapPublisher looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5  -- | -->
//
// -- MapPublisher f(x) = x*2 --
//
// -- 2 -- 4 -- 6 -- 8 -- 10 -- | -->
type MapPublisher[IN any, OUT any] struct {
	upstream primitives.Publisher[IN]
	fn       func(IN) (OUT, error)
}

// Map creates a MapPublisher applying fn to every value of upstream.
func Map[IN, OUT any](
	upstream primitives.Publisher[IN],
	fn func(IN) (OUT, error),
) *MapPublisher[IN, OUT] {
	return &MapPublisher[IN, OUT]{upstream: upstream, fn: fn}
}

// Activate subscribes downstream to the transformed values. The returned
// subscription is the upstream's own: requests and cancellation go straight
// through.
func (m *MapPublisher[IN, OUT]) Activate(
	subscriber primitives.Subscriber[OUT],
) primitives.Subscription {
	return m.upstream.Activate(&mapSubscriber[IN, OUT]{
		fn:         m.fn,
		downstream: subscriber,
	})
}

type mapSubscriber[IN any, OUT any] struct {
	fn         func(IN) (OUT, error)
	downstream primitives.Subscriber[OUT]
}

func (s *mapSubscriber[IN, OUT]) OnValue(value IN) error {
	mapped, err := s.fn(value)
	if err != nil {
		// Refuse the value; the upstream turns this into the activation's
		// single error signal, which comes back through OnError below.
		return err
	}
	return s.downstream.OnValue(mapped)
}

func (s *mapSubscriber[IN, OUT]) OnError(err error) {
	s.downstream.OnError(err)
}

func (s *mapSubscriber[IN, OUT]) OnComplete() {
	s.downstream.OnComplete()
}
