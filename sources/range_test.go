package sources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/demand-stream/primitives"
	"github.com/arielf-camacho/demand-stream/sources"
)

func TestRangeSource_Cursor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		start    int
		count    int
		expected []int
	}{
		"counts-from-start": {
			start:    3,
			count:    4,
			expected: []int{3, 4, 5, 6},
		},
		"negative-start": {
			start:    -2,
			count:    3,
			expected: []int{-2, -1, 0},
		},
		"zero-count-is-empty": {
			start:    10,
			count:    0,
			expected: nil,
		},
		"negative-count-is-empty": {
			start:    10,
			count:    -5,
			expected: nil,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			source := sources.Range(c.start, c.count).Build()

			// When
			cursor := source.Cursor()
			var collected []int
			for cursor.HasNext() {
				value, err := cursor.Next()
				require.NoError(t, err)
				collected = append(collected, value)
			}

			// Then
			assert.Equal(t, c.expected, collected)
		})
	}
}

func TestRangeSource_Cursor_Remaining(t *testing.T) {
	t.Parallel()

	// Given
	cursor, ok := sources.Range(0, 5).Build().Cursor().(primitives.SizedCursor[int])
	require.True(t, ok)

	// When
	_, err := cursor.Next()
	require.NoError(t, err)

	// Then
	assert.Equal(t, 4, cursor.Remaining())
}

func TestRangeSource_Cursor_ExhaustedNextFails(t *testing.T) {
	t.Parallel()

	// Given
	cursor := sources.Range(7, 1).Build().Cursor()
	value, err := cursor.Next()
	require.NoError(t, err)
	require.Equal(t, 7, value)

	// When
	_, err = cursor.Next()

	// Then
	assert.ErrorIs(t, err, primitives.ErrCursorExhausted)
}
