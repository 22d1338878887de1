package SuffixArrays

import (
	"slices"
	"sort"
	"strings"
)

// Index holds the suffix array, its inverse and the LCP array of a text.
// It's immutable and safe for concurrent reads.
type Index struct {
	text string
	SA   []int
	Rank []int
	LCP  []int
}

// New builds the Index of s.
// Time: O(n log^2 n)
func New(s string) *Index {
	sa, rank := SuffixArray(s)
	lcp, _ := LCPArray(s, sa, rank) // consistent by construction.
	return &Index{s, sa, rank, lcp}
}

// Text the Index was built from.
func (x *Index) Text() string {
	return x.text
}

// Lookup returns the start offsets of every occurrence of pattern in
// ascending order. An empty pattern occurs at every offset.
// Time: O(m log n + occ log occ) for a pattern of length m.
func (x *Index) Lookup(pattern string) []int {
	n := len(x.SA)
	lo := sort.Search(n, func(i int) bool {
		return x.text[x.SA[i]:] >= pattern
	})
	hi := lo + sort.Search(n-lo, func(i int) bool {
		return !strings.HasPrefix(x.text[x.SA[lo+i]:], pattern)
	})
	out := slices.Clone(x.SA[lo:hi])
	slices.Sort(out)
	return out
}

// LongestRepeated returns the longest substring occurring at least twice,
// the leftmost in suffix order on ties, or "" if there is none.
// Time: O(n)
func (x *Index) LongestRepeated() string {
	best := 0
	for i, l := range x.LCP {
		if l > x.LCP[best] {
			best = i
		}
	}
	if len(x.LCP) == 0 || x.LCP[best] == 0 {
		return ""
	}
	return x.text[x.SA[best] : x.SA[best]+x.LCP[best]]
}
