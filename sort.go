// FILE: lixenwraith/natsort/sort.go
package natsort

import (
	"fmt"
	"slices"
)

// Sorted returns a naturally sorted copy of items. The sort is stable;
// reverse keeps equal elements in their original order.
func Sorted(items []string, opts Options, reverse bool) ([]string, error) {
	return SortBy(items, Text, opts, reverse)
}

// VersionSorted sorts version-like strings ("1.10.2") with VersionOptions.
func VersionSorted(items []string, reverse bool) []string {
	out, _ := Sorted(items, VersionOptions(), reverse)
	return out
}

// SortBy returns a copy of items sorted by the natural key of value(item).
func SortBy[T any](items []T, value func(T) Value, opts Options, reverse bool) ([]T, error) {
	index, err := IndexSortBy(items, value, opts, reverse)
	if err != nil {
		return nil, err
	}
	return OrderByIndex(items, index)
}

// IndexSorted returns the indices that would sort items, without moving them.
// The result can order several parallel slices with OrderByIndex.
func IndexSorted(items []string, opts Options, reverse bool) ([]int, error) {
	return IndexSortBy(items, Text, opts, reverse)
}

// IndexVersionSorted is IndexSorted with VersionOptions.
func IndexVersionSorted(items []string, reverse bool) []int {
	index, _ := IndexSorted(items, VersionOptions(), reverse)
	return index
}

// IndexSortBy computes every key once, then stable-sorts the indices.
func IndexSortBy[T any](items []T, value func(T) Value, opts Options, reverse bool) ([]int, error) {
	g, err := NewGenerator(opts)
	if err != nil {
		return nil, err
	}

	keys := make([]Key, len(items))
	index := make([]int, len(items))
	for i, item := range items {
		keys[i] = g.Key(value(item))
		index[i] = i
	}

	slices.SortStableFunc(index, func(a, b int) int {
		c := Compare(keys[a], keys[b])
		if reverse {
			return -c
		}
		return c
	})

	return index, nil
}

// OrderByIndex returns items rearranged by index, as produced by IndexSorted.
func OrderByIndex[T any](items []T, index []int) ([]T, error) {
	if len(index) != len(items) {
		return nil, fmt.Errorf("%w: %d indices for %d items", ErrIndexLength, len(index), len(items))
	}

	out := make([]T, len(index))
	for i, idx := range index {
		if idx < 0 || idx >= len(items) {
			return nil, fmt.Errorf("%w: %d (length %d)", ErrIndexRange, idx, len(items))
		}
		out[i] = items[idx]
	}
	return out, nil
}
