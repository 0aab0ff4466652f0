// SPDX-License-Identifier: EPL-2.0

package spi

// Aggregate returns the union of query over all candidates. Each value
// appears once, in the order it was first reported.
func Aggregate[T any, K comparable](cands []Candidate[T], query func(T) []K) []K {
	seen := make(map[K]struct{})
	out := make([]K, 0)
	for _, c := range cands {
		for _, k := range query(c.Provider) {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}

// Any reports whether pred holds for some candidate. Candidates after the
// first match are not consulted.
func Any[T any](cands []Candidate[T], pred func(T) bool) bool {
	for _, c := range cands {
		if pred(c.Provider) {
			return true
		}
	}
	return false
}

// First returns the first value lookup finds, in candidate order.
func First[T, V any](cands []Candidate[T], lookup func(T) (V, bool)) (V, bool) {
	for _, c := range cands {
		if v, ok := lookup(c.Provider); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}
