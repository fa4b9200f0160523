package common

import (
	"cmp"
	"slices"
)

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// SortedBy returns a sorted copy of s ordered by the key each element maps to.
func SortedBy[S ~[]E, E any, K cmp.Ordered](s S, key func(E) K) S {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	})

	return out
}

// MapKeys returns the keys of m in unspecified order.
func MapKeys[M ~map[K]V, K comparable, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}
