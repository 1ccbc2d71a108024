package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "First match should be returned")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3), "Missing item should return -1")
	require.Equal(t, -1, FindIndex[int](nil, 3), "Empty slice should return -1")
}

func TestAbs(t *testing.T) {
	require.Equal(t, 3, Abs(-3), "Negative ints should flip")
	require.Equal(t, 2.5, Abs(2.5), "Positive floats should be kept")
}

func TestMinOf(t *testing.T) {
	square := func(x int) int { return x * x }

	require.Equal(t, 1, MinOf([]int{-3, 1, 2}, 99, square), "Smallest square should be found")
	require.Equal(t, 99, MinOf([]int(nil), 99, square), "Fallback should be used for no items")
}
