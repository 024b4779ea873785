package primitives

import (
	"errors"
	"math"
)

// Unbounded is the demand value that stands for "every value the source has".
// Once an activation's demand reaches Unbounded, whether requested directly
// or by saturation of smaller requests, it stays there: the publisher stops
// counting and drains the source to exhaustion.
const Unbounded = int64(math.MaxInt64)

// ErrNegativeDemand is returned by Subscription.Request for negative amounts.
var ErrNegativeDemand = errors.New("demand must be non-negative")

// Subscription is the control handle of one activation. Its methods may be
// called from any goroutine, any number of times, including from inside the
// subscriber's own OnValue callback.
type Subscription interface {
	// Request adds n to the activation's outstanding demand, authorizing the
	// publisher to deliver up to n further values. n must be non-negative;
	// negative amounts return ErrNegativeDemand and change nothing. Request
	// never fails because of the activation's fate: once it is completed,
	// failed or cancelled, requests are ignored.
	//
	// Requesting 0 delivers nothing, but the very first request of an
	// activation, even a zero one, probes the source: an empty source
	// completes immediately no matter how much was asked for.
	Request(n int64) error

	// Cancel stops the activation. No further signal is delivered once the
	// cancellation is observed, and the cursor's resources are released
	// exactly once. Cancel is idempotent.
	Cancel()
}
