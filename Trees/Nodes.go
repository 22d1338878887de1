package Trees

import "golang.org/x/exp/constraints"

// A node in the BST.
// l and r are owned exclusively by the node; a nil child counts as a
// subtree of size 0.
type node[K any, I any, S constraints.Unsigned] struct {
	k    K
	id   I
	l, r *node[K, I, S]
	sz   S
}

// size of the subtree rooting at n.
// Time: O(1); Space: O(1)
func size[K any, I any, S constraints.Unsigned](n *node[K, I, S]) S {
	if n == nil {
		return 0
	}
	return n.sz
}

// resize n from the cached sizes of its children. Must be called on the way
// back from every structural change below n.
// Time: O(1); Space: O(1)
func (n *node[K, I, S]) resize() {
	n.sz = size(n.l) + size(n.r) + 1
}

func (n *node[K, I, S]) entry() Entry[K, I] {
	return Entry[K, I]{n.k, n.id}
}

// leftmost node of the subtree rooting at n, n mustn't be nil.
func (n *node[K, I, S]) leftmost() *node[K, I, S] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n, n mustn't be nil.
func (n *node[K, I, S]) rightmost() *node[K, I, S] {
	for n.r != nil {
		n = n.r
	}
	return n
}
