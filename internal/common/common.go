// Package common holds small helpers shared across packages.
package common

import (
	"cmp"
	"slices"
)

// UnknownStr is the fallback name for unrecognized enum values.
const UnknownStr = "unknown"

// SortedKeys returns the keys of m in ascending order.
// Used wherever map iteration order must be deterministic.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
