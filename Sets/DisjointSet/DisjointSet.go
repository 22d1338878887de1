// Package DisjointSet implements the union-find structure over the
// elements 0..N-1, with the shape of the forest chosen by a Strategy.
package DisjointSet

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// DisjointSet is a forest stored in a flat array: parent[i] is the parent of
// element i, and parent[i]==i marks i as the representative of its set.
// Elements are only added at the end, by MakeSet, and never removed.
// It isn't safe for concurrent use; even Find writes under PathCompression.
type DisjointSet[E constraints.Integer] struct {
	parent []E
	rank   []uint8 // upper bound on the height of each root's tree; nil unless the Strategy is ranked.
	count  int     // number of disjoint sets.
	opts   Options
}

// New returns a DisjointSet of the n singletons 0..n-1. n must be
// representable by E.
func New[E constraints.Integer](n int, opts ...Option) *DisjointSet[E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := max(n, o.Capacity)
	u := &DisjointSet[E]{parent: make([]E, n, c), count: n, opts: o}
	for i := range u.parent {
		u.parent[i] = E(i)
	}
	if o.Strategy.ranked() {
		u.rank = make([]uint8, n, c)
	}
	return u
}

// Strategy the set was created with.
func (u *DisjointSet[E]) Strategy() Strategy {
	return u.opts.Strategy
}

// Size is the number of elements.
func (u *DisjointSet[E]) Size() int {
	return len(u.parent)
}

// Count is the number of disjoint sets.
func (u *DisjointSet[E]) Count() int {
	return u.count
}

func (u *DisjointSet[E]) check(x E) error {
	if x < 0 || uint64(x) >= uint64(len(u.parent)) {
		return &InvalidElementError[E]{x, len(u.parent)}
	}
	return nil
}

// root of x without touching the forest.
func (u *DisjointSet[E]) root(x E) E {
	for u.parent[x] != x {
		x = u.parent[x]
	}
	return x
}

// find the root of x, compressing the path if the Strategy says so.
func (u *DisjointSet[E]) find(x E) E {
	r := u.root(x)
	if u.opts.Strategy.compressing() {
		for x != r {
			x, u.parent[x] = u.parent[x], r
		}
	}
	return r
}

// MakeSet appends x as a new singleton. x must be equal to Size().
// Time: amortized O(1)
func (u *DisjointSet[E]) MakeSet(x E) error {
	if x < 0 || uint64(x) != uint64(len(u.parent)) {
		return &DuplicateMakeSetError[E]{x, len(u.parent)}
	}
	u.parent = append(u.parent, x)
	if u.rank != nil {
		u.rank = append(u.rank, 0)
	}
	u.count++
	return nil
}

// Find returns the representative of the set holding x.
// Time: O(N) for Naive and PathCompression in the worst case, amortized
// O(log N) for PathCompression; O(log N) for ByRank.
func (u *DisjointSet[E]) Find(x E) (E, error) {
	if err := u.check(x); err != nil {
		return x, err
	}
	return u.find(x), nil
}

// Union merges the sets holding x and y.
// Naive and PathCompression always put the root of x under the root of y.
// The ranked strategies put the root of lower rank under the other one; on
// a tie the root of y goes under the root of x, whose rank grows by one.
// Time: same as Find.
func (u *DisjointSet[E]) Union(x, y E) error {
	if err := u.check(x); err != nil {
		return err
	}
	if err := u.check(y); err != nil {
		return err
	}
	xr, yr := u.find(x), u.find(y)
	if xr == yr {
		return nil
	}
	if u.opts.Strategy.ranked() {
		switch {
		case u.rank[xr] < u.rank[yr]:
			u.parent[xr] = yr
		case u.rank[xr] > u.rank[yr]:
			u.parent[yr] = xr
		default:
			u.parent[yr] = xr
			u.rank[xr]++
		}
	} else {
		u.parent[xr] = yr
	}
	u.count--
	return nil
}

// Connected reports whether x and y are in the same set.
func (u *DisjointSet[E]) Connected(x, y E) (bool, error) {
	if err := u.check(x); err != nil {
		return false, err
	}
	if err := u.check(y); err != nil {
		return false, err
	}
	return u.find(x) == u.find(y), nil
}

// Parent returns the current parent pointer of x, mostly to inspect the
// shape of the forest.
// Time: O(1)
func (u *DisjointSet[E]) Parent(x E) (E, error) {
	if err := u.check(x); err != nil {
		return x, err
	}
	return u.parent[x], nil
}

// Depth is the number of parent pointers followed from x to its root. It
// doesn't compress paths.
// Time: O(depth)
func (u *DisjointSet[E]) Depth(x E) (int, error) {
	if err := u.check(x); err != nil {
		return 0, err
	}
	d := 0
	for u.parent[x] != x {
		x = u.parent[x]
		d++
	}
	return d, nil
}

// Groups returns the members of every set in ascending order. The sets are
// ordered by their smallest member. The forest isn't modified.
// Time: O(N*depth)
func (u *DisjointSet[E]) Groups() [][]E {
	at := make(map[E]int, u.count)
	out := make([][]E, 0, u.count)
	for i := range u.parent {
		r := u.root(E(i))
		g, ok := at[r]
		if !ok {
			g = len(out)
			at[r] = g
			out = append(out, nil)
		}
		out[g] = append(out[g], E(i))
	}
	return out
}

// String formats the sets, e.g. "DisjointSet[naive]([0 1] [2])".
func (u *DisjointSet[E]) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "DisjointSet[%s](", u.opts.Strategy)
	for i, g := range u.Groups() {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, g)
	}
	sb.WriteByte(')')
	return sb.String()
}
