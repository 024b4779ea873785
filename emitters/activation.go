package emitters

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/arielf-camacho/demand-stream/demand"
	"github.com/arielf-camacho/demand-stream/primitives"
)

const (
	stateActive int32 = iota
	stateCompleted
	stateFailed
	stateCancelled
)

var _ = primitives.Subscription(&activation[any]{})

// activation is one run of a CursorEmitter: one cursor, one subscriber, one
// terminal signal. Only the demand counter, the drain flag and the state word
// are shared across goroutines; the cursor is only ever touched by the
// goroutine holding the drain flag.
type activation[T any] struct {
	ctx        context.Context
	cursor     primitives.Cursor[T]
	subscriber primitives.Subscriber[T]

	demand   demand.Counter
	draining atomic.Bool
	probed   atomic.Bool
	state    atomic.Int32
	closer   sync.Once
}

// Request adds n to the outstanding demand and, when demand moved off zero
// and no delivery loop is running, drains on the calling goroutine. A request
// arriving while another goroutine drains is folded into that loop.
func (a *activation[T]) Request(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w, got %d", primitives.ErrNegativeDemand, n)
	}
	if a.state.Load() != stateActive {
		return nil
	}

	if n > 0 {
		a.demand.Add(n)
	}

	// The first request, even a zero one, probes the cursor so that an empty
	// source completes eagerly no matter how much was asked for.
	first := a.probed.CompareAndSwap(false, true)
	if n > 0 || first {
		a.drain()
	}

	return nil
}

// Cancel stops the activation without a terminal signal. A running delivery
// loop observes the cancellation before its next pull; when no loop is
// running the cursor is released right here.
func (a *activation[T]) Cancel() {
	if !a.state.CompareAndSwap(stateActive, stateCancelled) {
		return
	}

	if a.draining.CompareAndSwap(false, true) {
		// No loop was running and, the state being terminal, none will ever
		// acquire the flag again.
		a.releaseCursor()
	}
}

// drain owns the delivery loop for as long as it holds the drain flag. At
// most one goroutine is ever inside; losers of the flag return immediately
// and their demand is picked up by the winner.
func (a *activation[T]) drain() {
	if !a.draining.CompareAndSwap(false, true) {
		return
	}

	for {
		a.drainLoop()

		if a.state.Load() != stateActive {
			// Terminal. The flag is kept so nothing drains again. A
			// cancellation that landed between the loop winding down and this
			// check would find the flag still held and count on us to release
			// the cursor; the Once makes this a no-op on the complete, fail
			// and cancel paths that already released inside the loop.
			a.releaseCursor()
			return
		}

		// Demand ran out. Release the flag, then re-check: a request or a
		// cancellation that landed while the flag was held must not be lost.
		a.draining.Store(false)

		if a.demand.Get() == 0 && a.state.Load() == stateActive {
			return
		}
		if !a.draining.CompareAndSwap(false, true) {
			// Whoever re-acquired the flag continues the loop.
			return
		}
	}
}

// drainLoop converts available demand into deliveries until demand reaches
// zero, the cursor is exhausted, the activation is cancelled, or an error
// makes it fail. It runs with the drain flag held.
func (a *activation[T]) drainLoop() {
	for {
		if a.cancelled() {
			a.releaseCursor()
			return
		}
		if !a.cursor.HasNext() {
			a.complete()
			return
		}

		requested := a.demand.Get()
		if requested == 0 {
			return
		}
		if requested == primitives.Unbounded {
			a.drainUnbounded()
			return
		}

		var emitted int64
		for emitted < requested && a.cursor.HasNext() {
			if a.cancelled() {
				a.releaseCursor()
				return
			}
			if !a.emitNext() {
				return
			}
			emitted++
		}

		// Reentrant requests made from inside OnValue land in the counter;
		// consuming what was emitted and looping again folds them into this
		// very loop instead of recursing.
		a.demand.Consume(emitted)
	}
}

// drainUnbounded is the fast path for saturated demand: no counter
// bookkeeping, the cursor is drained to exhaustion. A sized cursor gives the
// loop a fixed budget so HasNext isn't probed before every pull.
func (a *activation[T]) drainUnbounded() {
	if sized, ok := a.cursor.(primitives.SizedCursor[T]); ok {
		for budget := sized.Remaining(); budget > 0; budget-- {
			if a.cancelled() {
				a.releaseCursor()
				return
			}
			if !a.emitNext() {
				return
			}
		}
		a.complete()
		return
	}

	for a.cursor.HasNext() {
		if a.cancelled() {
			a.releaseCursor()
			return
		}
		if !a.emitNext() {
			return
		}
	}
	a.complete()
}

// emitNext pulls one value and pushes it to the subscriber. It reports false
// when the activation failed, either because the cursor did or because the
// subscriber refused the value.
func (a *activation[T]) emitNext() bool {
	value, err := a.cursor.Next()
	if err != nil {
		a.fail(err)
		return false
	}

	if err := a.subscriber.OnValue(value); err != nil {
		a.fail(err)
		return false
	}

	return true
}

func (a *activation[T]) cancelled() bool {
	if a.ctx.Err() != nil {
		a.state.CompareAndSwap(stateActive, stateCancelled)
	}
	return a.state.Load() == stateCancelled
}

// complete and fail race with Cancel on the state word; the first transition
// wins and is the only one that signals, so the subscriber sees exactly one
// terminal signal per activation, or none after a cancellation.
func (a *activation[T]) complete() {
	if a.state.CompareAndSwap(stateActive, stateCompleted) {
		a.releaseCursor()
		a.subscriber.OnComplete()
	}
}

func (a *activation[T]) fail(err error) {
	if a.state.CompareAndSwap(stateActive, stateFailed) {
		a.releaseCursor()
		a.subscriber.OnError(err)
	}
}

func (a *activation[T]) releaseCursor() {
	a.closer.Do(func() {
		if closer, ok := a.cursor.(io.Closer); ok {
			_ = closer.Close()
		}
	})
}
