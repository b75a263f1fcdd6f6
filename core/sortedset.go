// File: sortedset.go
// Role: Small helpers over ascending, duplicate-free []int sets.
// Determinism:
//   - All helpers preserve ascending order; callers never sort after mutation.

package core

import "sort"

// containsSorted reports whether v is present in the ascending set s.
func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}

// insertSorted adds v to s if absent and reports whether s changed.
func insertSorted(s []int, v int) ([]int, bool) {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s, false
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s, true
}

// removeSorted deletes v from s if present and reports whether s changed.
func removeSorted(s []int, v int) ([]int, bool) {
	i := sort.SearchInts(s, v)
	if i >= len(s) || s[i] != v {
		return s, false
	}

	return append(s[:i], s[i+1:]...), true
}

// unionSorted returns a fresh ascending set holding every element of a and b.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// subtractSorted returns a fresh ascending set of a's elements absent from b.
func subtractSorted(a, b []int) []int {
	out := make([]int, 0, len(a))
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			continue
		}
		out = append(out, v)
	}

	return out
}

// cloneInts returns an independent copy of s (nil stays nil).
func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}
