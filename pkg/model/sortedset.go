package model

import "sort"

// insertSorted inserts v into the sorted slice s and returns the result.
// Duplicates are preserved (s is a sorted multiset, not a set) — the
// replica-colocation trick in cost functions depends on runs of equal
// values surviving insertion.
func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeOneSorted removes a single occurrence of v from the sorted slice s.
// It panics if v is not present — callers only ever remove a value they
// just confirmed is there via the model's own bookkeeping.
func removeOneSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i >= len(s) || s[i] != v {
		panic("balancer: removeOneSorted: value not present")
	}
	return append(s[:i], s[i+1:]...)
}

// containsSorted reports whether v is present in the sorted slice s.
func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}
