package helpers

import (
	"context"
)

// Collect reads the given channel until it's closed and returns everything it
// carried, in order. A done context stops the collection early with whatever
// was gathered so far, even while blocked waiting for the next value.
func Collect[T any](ctx context.Context, source <-chan T) []T {
	var collected []T
	for {
		if ctx.Err() != nil {
			return collected
		}

		select {
		case <-ctx.Done():
			return collected
		case v, ok := <-source:
			if !ok {
				return collected
			}
			collected = append(collected, v)
		}
	}
}

// CollectN reads at most n values from the given channel, returning early if
// it closes or the context is done first. The channel is left open for the
// caller to keep consuming.
func CollectN[T any](ctx context.Context, source <-chan T, n int) []T {
	var collected []T
	for len(collected) < n {
		if ctx.Err() != nil {
			break
		}

		select {
		case <-ctx.Done():
			return collected
		case v, ok := <-source:
			if !ok {
				return collected
			}
			collected = append(collected, v)
		}
	}

	return collected
}

// Drain consumes the given channel until it is closed, discarding the values.
func Drain[T any](source <-chan T) {
	for range source {
	}
}
