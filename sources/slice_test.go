package sources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/demand-stream/primitives"
	"github.com/arielf-camacho/demand-stream/sources"
)

func TestSliceSource_Cursor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		slice    []int
		expected []int
	}{
		"emits-all-values-in-order": {
			slice:    []int{1, 2, 3, 4, 5},
			expected: []int{1, 2, 3, 4, 5},
		},
		"single-value": {
			slice:    []int{42},
			expected: []int{42},
		},
		"empty-slice": {
			slice:    []int{},
			expected: nil,
		},
		"nil-slice": {
			slice:    nil,
			expected: nil,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			source := sources.Slice(c.slice).Build()

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
			assert.False(t, cursor.HasNext())
		})
	}
}

func TestSliceSource_Cursor_ExhaustedNextFails(t *testing.T) {
	t.Parallel()

	// Given
	cursor := sources.Slice([]int{1}).Build().Cursor()
	_, err := cursor.Next()
	require.NoError(t, err)

	// When
	_, err = cursor.Next()

	// Then
	assert.ErrorIs(t, err, primitives.ErrCursorExhausted)
	assert.False(t, cursor.HasNext())
}

func TestSliceSource_Cursor_Remaining(t *testing.T) {
	t.Parallel()

	// Given
	source := sources.Slice([]string{"a", "b", "c"}).Build()
	cursor, ok := source.Cursor().(primitives.SizedCursor[string])
	require.True(t, ok)

	// When / Then
	assert.Equal(t, 3, cursor.Remaining())

	_, err := cursor.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, cursor.Remaining())

	for cursor.HasNext() {
		_, err = cursor.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, 0, cursor.Remaining())
}

func TestSliceSource_Cursor_IndependentCursors(t *testing.T) {
	t.Parallel()

	// Given
	source := sources.Slice([]int{1, 2, 3}).Build()
	first := source.Cursor()
	second := source.Cursor()

	// When
	one, err := first.Next()
	require.NoError(t, err)
	two, err := first.Next()
	require.NoError(t, err)
	other, err := second.Next()
	require.NoError(t, err)

	// Then
	assert.Equal(t, 1, one)
	assert.Equal(t, 2, two)
	assert.Equal(t, 1, other)
}
