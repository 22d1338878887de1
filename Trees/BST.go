package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-textbook/Queues"
	"golang.org/x/exp/constraints"
)

// BST is a binary search tree mapping unique keys to ids. It is not
// balanced: the height D of the tree is O(log n) when keys are put in random
// order and O(n) in the worst case, e.g. when keys are put sorted.
// K is the type of the keys, I is the type of the ids associated with them,
// S is the type of the variables used for storing the sizes of different
// subtrees. Generally, you should let S be a wide upperbound for the size
// of the tree; sizes are reported as uint, so S mustn't be wider than uint.
// Every node keeps the size of its subtree, so the additional memory cost
// is size(S)*n. This is what makes Size O(1) and Rank and Select O(D).
type BST[K constraints.Ordered, I any, S constraints.Unsigned] struct {
	root *node[K, I, S] //nil when the tree is empty.
}

// New returns a BST holding the single entry (k, id) as its root.
func New[K constraints.Ordered, I any, S constraints.Unsigned](k K, id I) *BST[K, I, S] {
	return &BST[K, I, S]{&node[K, I, S]{k: k, id: id, sz: 1}}
}

// Make returns an empty BST.
func Make[K constraints.Ordered, I any, S constraints.Unsigned]() *BST[K, I, S] {
	return &BST[K, I, S]{}
}

// From builds a BST from entries recursively. This is faster than
// repeatedly calling Put and yields a tree of minimum height.
// The keys must be in strictly ascending order, otherwise an
// InvalidSliceError naming the first offending pair is returned.
// The ids are copied; entries can be reused by the caller.
// Time: O(n).
func From[K constraints.Ordered, I any, S constraints.Unsigned](entries []Entry[K, I]) (*BST[K, I, S], error) {
	for i := 1; i < len(entries); i++ {
		if !(entries[i-1].Key < entries[i].Key) {
			return nil, &InvalidSliceError[K]{entries[i-1].Key, entries[i].Key}
		}
	}
	var build func([]Entry[K, I]) *node[K, I, S]
	build = func(s []Entry[K, I]) *node[K, I, S] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &node[K, I, S]{s[mid].Key, s[mid].ID, build(s[:mid]), build(s[mid+1:]), S(len(s))}
	}
	return &BST[K, I, S]{build(entries)}, nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BST[K, I, S]) Size() uint {
	return uint(size(u.root))
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Find(k K) (Entry[K, I], bool) {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k > cur.k {
			cur = cur.r
		} else {
			return cur.entry(), true
		}
	}
	return Entry[K, I]{}, false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Has(k K) bool {
	_, has := u.Find(k)
	return has
}

// put (k, id) into the subtree rooting at cur recursively. Returns the root
// of the rebuilt subtree, which the caller links back in place of cur, and
// whether a new node was created.
func (u *BST[K, I, S]) put(cur *node[K, I, S], k K, id I) (*node[K, I, S], bool) {
	if cur == nil {
		return &node[K, I, S]{k: k, id: id, sz: 1}, true
	}
	inserted := false
	if k < cur.k {
		cur.l, inserted = u.put(cur.l, k, id)
	} else if k > cur.k {
		cur.r, inserted = u.put(cur.r, k, id)
	} else {
		cur.id = id
	}
	cur.resize()
	return cur, inserted
}

// Put [Tree.Put]. Recursive.
// Time: O(D)
func (u *BST[K, I, S]) Put(k K, id I) bool {
	var inserted bool
	u.root, inserted = u.put(u.root, k, id)
	return inserted
}

// remove k from the subtree rooting at cur recursively. Returns the root of
// the rebuilt subtree and whether k was found. A node with two children
// takes over the entry of its successor, which is then removed from the
// right subtree instead; the left subtree stays where it is.
func (u *BST[K, I, S]) remove(cur *node[K, I, S], k K) (*node[K, I, S], bool) {
	if cur == nil {
		return nil, false
	}
	deleted := false
	if k < cur.k {
		cur.l, deleted = u.remove(cur.l, k)
	} else if k > cur.k {
		cur.r, deleted = u.remove(cur.r, k)
	} else if cur.l == nil {
		return cur.r, true
	} else if cur.r == nil {
		return cur.l, true
	} else {
		// the successor is a minimum, it has no left child.
		succ := cur.r.leftmost()
		cur.k, cur.id = succ.k, succ.id
		cur.r, _ = u.remove(cur.r, succ.k)
		deleted = true
	}
	cur.resize()
	return cur, deleted
}

// Delete [Tree.Delete]. Recursive.
// Deleting a key that isn't in the tree leaves it unchanged.
// Time: O(D)
func (u *BST[K, I, S]) Delete(k K) bool {
	var deleted bool
	u.root, deleted = u.remove(u.root, k)
	return deleted
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Min() (Entry[K, I], error) {
	if u.root == nil {
		return Entry[K, I]{}, &EmptyContainerError{"Min"}
	}
	return u.root.leftmost().entry(), nil
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Max() (Entry[K, I], error) {
	if u.root == nil {
		return Entry[K, I]{}, &EmptyContainerError{"Max"}
	}
	return u.root.rightmost().entry(), nil
}

// Rank [Tree.Rank]
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Rank(k K) uint {
	var ra S
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k > cur.k {
			ra += size(cur.l) + 1
			cur = cur.r
		} else {
			return uint(ra + size(cur.l))
		}
	}
	return uint(ra)
}

// Select [Tree.Select]
// Returns (x,true) if i<Size(), otherwise (zero,false).
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Select(i uint) (Entry[K, I], bool) {
	if i >= u.Size() {
		return Entry[K, I]{}, false
	}
	for cur, t := u.root, S(i); cur != nil; {
		if ls := size(cur.l); t < ls {
			cur = cur.l
		} else if t > ls {
			t -= ls + 1
			cur = cur.r
		} else {
			return cur.entry(), true
		}
	}
	return Entry[K, I]{}, false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Predecessor(k K) (Entry[K, I], bool) {
	var p *node[K, I, S]
	for cur := u.root; cur != nil; {
		if k <= cur.k {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return Entry[K, I]{}, false
	}
	return p.entry(), true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[K, I, S]) Successor(k K) (Entry[K, I], bool) {
	var p *node[K, I, S]
	for cur := u.root; cur != nil; {
		if k < cur.k {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return Entry[K, I]{}, false
	}
	return p.entry(), true
}

func (u *BST[K, I, S]) height(c *node[K, I, S]) int {
	if c == nil {
		return -1
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

// Height is the number of edges on the longest path from the root to a
// leaf, -1 for an empty tree. Recursive.
// Time: O(n)
func (u *BST[K, I, S]) Height() int {
	return u.height(u.root)
}

// corrupt checks the subtree rooting at c, all of whose keys must lie in
// the open interval (lo, hi); a nil bound is unbounded.
func (u *BST[K, I, S]) corrupt(c *node[K, I, S], lo, hi *K) bool {
	if c == nil {
		return false
	}
	if (lo != nil && !(*lo < c.k)) || (hi != nil && !(c.k < *hi)) {
		return true
	}
	if c.sz != size(c.l)+size(c.r)+1 {
		return true
	}
	return u.corrupt(c.l, lo, &c.k) || u.corrupt(c.r, &c.k, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BST[K, I, S]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil)
}

// inorder yields the nodes in ascending key order using an explicit stack.
func (u *BST[K, I, S]) inorder(yield func(*node[K, I, S]) bool) {
	var st []*node[K, I, S]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !yield(cur) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// InOrder [Tree.InOrder]
// Time: O(n) for a full iteration; Space: O(D)
func (u *BST[K, I, S]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		u.inorder(func(n *node[K, I, S]) bool {
			return yield(n.k)
		})
	}
}

// All entries in ascending key order, as (key, id) pairs.
// Time: O(n) for a full iteration; Space: O(D)
func (u *BST[K, I, S]) All() iter.Seq2[K, I] {
	return func(yield func(K, I) bool) {
		u.inorder(func(n *node[K, I, S]) bool {
			return yield(n.k, n.id)
		})
	}
}

// PreOrder [Tree.PreOrder]
// Time: O(n) for a full iteration; Space: O(D)
func (u *BST[K, I, S]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		if u.root == nil {
			return
		}
		st := []*node[K, I, S]{u.root}
		for len(st) > 0 {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.k) {
				return
			}
			if cur.r != nil {
				st = append(st, cur.r)
			}
			if cur.l != nil {
				st = append(st, cur.l)
			}
		}
	}
}

func (u *BST[K, I, S]) postorder(c *node[K, I, S], yield func(K) bool) bool {
	if c == nil {
		return true
	}
	return u.postorder(c.l, yield) && u.postorder(c.r, yield) && yield(c.k)
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n) for a full iteration; Space: O(D)
func (u *BST[K, I, S]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		u.postorder(u.root, yield)
	}
}

// levels yields every node together with its depth, breadth first.
func (u *BST[K, I, S]) levels(yield func(*node[K, I, S], int) bool) {
	type item struct {
		n *node[K, I, S]
		d int
	}
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[item](uint(size(u.root)/2 + 1))
	q.Push(item{u.root, 0})
	for !q.Empty() {
		cur, _ := q.Pop()
		if !yield(cur.n, cur.d) {
			return
		}
		if cur.n.l != nil {
			q.Push(item{cur.n.l, cur.d + 1})
		}
		if cur.n.r != nil {
			q.Push(item{cur.n.r, cur.d + 1})
		}
	}
}

// LevelOrder returns the keys breadth first: the root, then every key at
// depth 1 from left to right, and so on.
// Time: O(n) for a full iteration; Space: O(n)
func (u *BST[K, I, S]) LevelOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		u.levels(func(n *node[K, I, S], _ int) bool {
			return yield(n.k)
		})
	}
}
