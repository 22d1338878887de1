package DisjointSet

import "fmt"

// Strategy selects how Find and Union shape the forest.
type Strategy uint8

const (
	// Naive follows parent pointers without changing them, and Union puts
	// the root of x under the root of y. A forest can degrade to a list,
	// so Find is O(N) in the worst case.
	Naive Strategy = iota
	// ByRank attaches the root of lower rank under the root of higher rank,
	// bounding the height of every tree by log2(N).
	ByRank
	// PathCompression makes every element visited by Find point directly
	// at the root. Union behaves as in Naive.
	PathCompression
	// RankAndCompression combines ByRank and PathCompression; Find and
	// Union are then effectively O(1) amortized.
	RankAndCompression
)

func (s Strategy) ranked() bool {
	return s == ByRank || s == RankAndCompression
}

func (s Strategy) compressing() bool {
	return s == PathCompression || s == RankAndCompression
}

func (s Strategy) String() string {
	switch s {
	case Naive:
		return "naive"
	case ByRank:
		return "by-rank"
	case PathCompression:
		return "path-compression"
	case RankAndCompression:
		return "rank-and-compression"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Options configures a DisjointSet. Use DefaultOptions() for the defaults.
type Options struct {
	// Strategy used by Find and Union. Defaults to Naive.
	Strategy Strategy
	// Capacity reserved for elements added later by MakeSet. Values below
	// the initial size are ignored.
	Capacity int
}

// Option configures Options.
type Option func(*Options)

// WithStrategy returns an Option that sets the Strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithCapacity returns an Option that reserves room for c elements.
func WithCapacity(c int) Option {
	return func(o *Options) {
		o.Capacity = c
	}
}

// DefaultOptions returns Options with the Naive strategy and no extra
// capacity.
func DefaultOptions() Options {
	return Options{
		Strategy: Naive,
		Capacity: 0,
	}
}
