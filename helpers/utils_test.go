package helpers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/demand-stream/helpers"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cases := map[string]struct {
		expected []int
		subject  func() (<-chan int, context.Context)
	}{
		"collects-all-values": {
			expected: []int{1, 2, 3},
			subject: func() (<-chan int, context.Context) {
				ch := make(chan int, 3)
				ch <- 1
				ch <- 2
				ch <- 3
				close(ch)
				return ch, ctx
			},
		},
		"empty-channel": {
			expected: nil,
			subject: func() (<-chan int, context.Context) {
				ch := make(chan int)
				close(ch)
				return ch, ctx
			},
		},
		"cancelled-context-stops-collecting": {
			expected: nil,
			subject: func() (<-chan int, context.Context) {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()
				ch := make(chan int, 1)
				ch <- 1
				close(ch)
				return ch, cancelled
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			ch, ctx := c.subject()

			// When
			collected := helpers.Collect(ctx, ch)

			// Then
			assert.Equal(t, c.expected, collected)
		})
	}
}

func TestCollectN(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cases := map[string]struct {
		n        int
		expected []int
		leftover int
		subject  func() <-chan int
	}{
		"takes-only-n-and-leaves-the-rest": {
			n:        2,
			expected: []int{1, 2},
			leftover: 3,
			subject: func() <-chan int {
				ch := make(chan int, 5)
				for i := 1; i <= 5; i++ {
					ch <- i
				}
				close(ch)
				return ch
			},
		},
		"stops-early-when-the-channel-closes": {
			n:        10,
			expected: []int{1, 2},
			leftover: 0,
			subject: func() <-chan int {
				ch := make(chan int, 2)
				ch <- 1
				ch <- 2
				close(ch)
				return ch
			},
		},
		"zero-n-takes-nothing": {
			n:        0,
			expected: nil,
			leftover: 1,
			subject: func() <-chan int {
				ch := make(chan int, 1)
				ch <- 1
				close(ch)
				return ch
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			ch := c.subject()

			// When
			collected := helpers.CollectN(ctx, ch, c.n)

			// Then
			assert.Equal(t, c.expected, collected)
			assert.Len(t, helpers.Collect(ctx, ch), c.leftover)
		})
	}
}

func TestDrain(t *testing.T) {
	t.Parallel()

	// Given
	ch := make(chan int, 2)
	ch <- 1
	ch <- 2
	close(ch)

	// When
	helpers.Drain(ch)

	// Then
	_, open := <-ch
	assert.False(t, open)
}
