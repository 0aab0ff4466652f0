// SPDX-License-Identifier: EPL-2.0

package spi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cands[T any](providers ...T) []Candidate[T] {
	out := make([]Candidate[T], len(providers))
	for i, p := range providers {
		out[i] = Candidate[T]{Provider: p, Domain: DomainCodec}
	}
	return out
}

func TestAggregate_Union(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sets [][]string
		want []string
	}{
		{"disjoint", [][]string{{"a"}, {"b", "c"}}, []string{"a", "b", "c"}},
		{"overlapping", [][]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}, []string{"a", "b", "c"}},
		{"duplicates inside one provider", [][]string{{"a", "a", "b"}}, []string{"a", "b"}},
		{"empty providers", [][]string{{}, nil, {"x"}}, []string{"x"}},
		{"no providers", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Aggregate(cands(tt.sets...), func(s []string) []string { return s })
			assert.Equal(t, tt.want, got)

			// order of providers does not change the set
			reversed := make([][]string, len(tt.sets))
			for i, s := range tt.sets {
				reversed[len(tt.sets)-1-i] = s
			}
			assert.ElementsMatch(t, tt.want, Aggregate(cands(reversed...), func(s []string) []string { return s }))
		})
	}
}

func TestAny_StopsAtFirstMatch(t *testing.T) {
	t.Parallel()

	var asked []int
	pred := func(v int) bool {
		asked = append(asked, v)
		return v%2 == 0
	}

	assert.True(t, Any(cands(1, 2, 4), pred))
	assert.Equal(t, []int{1, 2}, asked)

	asked = nil
	assert.False(t, Any(cands(1, 3), pred))
	assert.Equal(t, []int{1, 3}, asked)

	assert.False(t, Any(cands[int](), pred))
}

func TestFirst_ProviderOrder(t *testing.T) {
	t.Parallel()

	lookup := func(m map[string]string) (string, bool) {
		v, ok := m["key"]
		return v, ok
	}

	got, ok := First(cands(map[string]string{}, map[string]string{"key": "second"}, map[string]string{"key": "third"}), lookup)
	assert.True(t, ok)
	assert.Equal(t, "second", got)

	got, ok = First(cands(map[string]string{}), lookup)
	assert.False(t, ok)
	assert.Empty(t, got)
}
