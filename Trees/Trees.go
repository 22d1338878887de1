package Trees

import (
	"fmt"
	"iter"
)

// Entry is a key together with the id associated with it. Only Key takes
// part in ordering.
type Entry[K any, I any] struct {
	Key K
	ID  I
}

// Tree represents an ordered key-id container implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, calling Find with a key
// that isn't in the tree returns (x Entry, false); x should not be used.
// Methods implemented recursively should be noted, otherwise they are
// implemented iteratively.
type Tree[K any, I any] interface {
	//Put associates id with k. Returns true if k wasn't in the Tree before.
	//If k is already present only its id is replaced.
	Put(k K, id I) bool
	//Delete k from the Tree. Returns true if k was present.
	Delete(k K) bool
	//Find the entry with key k.
	Find(k K) (Entry[K, I], bool)
	//Has key k. Same as the second return value of Find.
	Has(k K) bool
	//Min entry of the tree. Fails with EmptyContainerError on an empty tree.
	Min() (Entry[K, I], error)
	//Max entry of the tree. Fails with EmptyContainerError on an empty tree.
	Max() (Entry[K, I], error)
	//Rank of k is the number of keys strictly less than k. k doesn't need
	//to be in the tree, in which case it's the rank k would have once put.
	Rank(k K) uint
	//Select the entry whose Rank is i. 0<=i<Size().
	Select(i uint) (Entry[K, I], bool)
	//Predecessor returns the entry with the greatest key less than k.
	Predecessor(k K) (Entry[K, I], bool)
	//Successor returns the entry with the smallest key greater than k.
	Successor(k K) (Entry[K, I], bool)
	//Size of the tree.
	Size() uint
	//InOrder returns the keys in ascending order. Each use of the returned
	//sequence starts again from the root. The tree must not be modified
	//while a sequence is being consumed.
	InOrder() iter.Seq[K]
	//PreOrder returns the keys visiting every node before its children.
	PreOrder() iter.Seq[K]
	//PostOrder returns the keys visiting every node after its children.
	PostOrder() iter.Seq[K]
	//Corrupt returns whether the tree has corrupt structures, when the key
	//or the cached size at some node violates the properties of the tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

// EmptyContainerError is returned by operations that need at least one
// entry when the tree has none.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return fmt.Sprintf("Tree is Empty: cannot %s.", e.Op)
}

// InvalidSliceError reports two neighbouring keys of a slice handed to From
// that are not in strictly ascending order.
type InvalidSliceError[K any] struct {
	Prev, Next K
}

func (e *InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("Slice isn't strictly ascending: %v is followed by %v.", e.Prev, e.Next)
}
