package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// MinOf returns the smallest value of f over items, or fallback when items is empty.
func MinOf[T any, N constraints.Integer | constraints.Float](items []T, fallback N, f func(T) N) N {
	if len(items) == 0 {
		return fallback
	}
	lowest := f(items[0])
	for _, item := range items[1:] {
		if v := f(item); v < lowest {
			lowest = v
		}
	}
	return lowest
}
