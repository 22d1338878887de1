// Package SuffixArrays builds suffix arrays, their inverse and LCP arrays
// for byte strings.
package SuffixArrays

import (
	"cmp"
	"fmt"
	"slices"
)

// LengthMismatchError is returned when the arrays handed to LCPArray don't
// have the length of the text.
type LengthMismatchError struct {
	Text, SA, Rank int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("suffix arrays: text has length %d but sa has %d and rank has %d", e.Text, e.SA, e.Rank)
}

// InconsistentRankError is returned when rank isn't the inverse of sa at Pos.
type InconsistentRankError struct {
	Pos int
}

func (e *InconsistentRankError) Error() string {
	return fmt.Sprintf("suffix arrays: rank isn't the inverse of sa at %d", e.Pos)
}

// SuffixArray sorts the suffixes of s. sa[i] is the start of the i-th
// smallest suffix in byte-wise lexicographic order; rank is the inverse
// permutation, rank[j] being the position of the suffix starting at j.
// It uses prefix doubling: after the round for k, suffixes are ranked by
// their first 2k bytes.
// Time: O(n log^2 n); Space: O(n)
func SuffixArray(s string) (sa, rank []int) {
	n := len(s)
	sa, rank = make([]int, n), make([]int, n)
	if n == 0 {
		return
	}
	for i := range n {
		sa[i], rank[i] = i, int(s[i])
	}
	next := make([]int, n)
	for k := 1; ; k <<= 1 {
		// a suffix shorter than k sorts before every longer one sharing its prefix.
		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return -1
		}
		compare := func(a, b int) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}
			return cmp.Compare(second(a), second(b))
		}
		slices.SortFunc(sa, compare)
		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if compare(sa[i-1], sa[i]) < 0 {
				next[sa[i]]++
			}
		}
		copy(rank, next)
		if rank[sa[n-1]] == n-1 {
			return
		}
	}
}

// LCPArray returns lcp where lcp[i] is the length of the longest common
// prefix of the suffixes starting at sa[i] and sa[i+1]. The last entry has
// no successor and is 0. sa and rank must be what SuffixArray returned for s.
// It uses Kasai's algorithm.
// Time: O(n); Space: O(n)
func LCPArray(s string, sa, rank []int) ([]int, error) {
	n := len(s)
	if len(sa) != n || len(rank) != n {
		return nil, &LengthMismatchError{n, len(sa), len(rank)}
	}
	for i, r := range rank {
		if r < 0 || r >= n || sa[r] != i {
			return nil, &InconsistentRankError{i}
		}
	}
	lcp := make([]int, n)
	h := 0
	for i := range n {
		r := rank[i]
		if r+1 == n {
			h = 0
			continue
		}
		// the successor of i+1 shares at least h-1 bytes with it.
		for j := sa[r+1]; i+h < n && j+h < n && s[i+h] == s[j+h]; {
			h++
		}
		lcp[r] = h
		if h > 0 {
			h--
		}
	}
	return lcp, nil
}
