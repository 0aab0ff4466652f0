// SPDX-License-Identifier: EPL-2.0

package spi

import "slices"

// Predicate decides whether a candidate stays in a filtered list.
type Predicate func(domain Domain, provider any) bool

// Filter returns the candidates keep accepts, preserving order.
func Filter[T any](cands []Candidate[T], keep Predicate) []Candidate[T] {
	out := make([]Candidate[T], 0, len(cands))
	for _, c := range cands {
		if keep(c.Domain, c.Provider) {
			out = append(out, c)
		}
	}
	return out
}

// InDomain keeps providers registered in one of domains.
func InDomain(domains ...Domain) Predicate {
	return func(d Domain, _ any) bool {
		return slices.Contains(domains, d)
	}
}

// NotInDomain drops providers registered in any of domains.
func NotInDomain(domains ...Domain) Predicate {
	return func(d Domain, _ any) bool {
		return !slices.Contains(domains, d)
	}
}

// OfType keeps providers whose dynamic type is exactly P.
func OfType[P any]() Predicate {
	return func(_ Domain, p any) bool {
		_, ok := p.(P)
		return ok
	}
}

// Or keeps a candidate accepted by any of preds.
func Or(preds ...Predicate) Predicate {
	return func(d Domain, p any) bool {
		for _, pred := range preds {
			if pred(d, p) {
				return true
			}
		}
		return false
	}
}
