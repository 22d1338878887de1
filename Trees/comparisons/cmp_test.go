package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-textbook/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 12

// keys is a fixed permutation so that the BST isn't degenerate.
var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

// compares the unbalanced BST with the balanced ordered trees of
// https://github.com/google/btree, https://github.com/petar/GoLLRB and
// https://github.com/emirpasic/gods, and with the hash maps of
// https://github.com/alphadose/haxmap and https://github.com/cornelk/hashmap
// for point lookups, which an ordered container can't beat.
func setupBST(b testing.TB) *Trees.BST[int, int, uint32] {
	b.Helper()
	t := Trees.Make[int, int, uint32]()
	for _, k := range keys {
		t.Put(k, k)
	}
	return t
}

func setupBTree(b testing.TB) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for _, k := range keys {
		t.ReplaceOrInsert(k)
	}
	return t
}

func setupLLRB(b testing.TB) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for _, k := range keys {
		t.ReplaceOrInsert(llrb.Int(k))
	}
	return t
}

func setupRBTree(b testing.TB) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		t.Put(k, k)
	}
	return t
}

func setupHaxMap(b testing.TB) *haxmap.Map[uintptr, int] {
	b.Helper()
	m := haxmap.New[uintptr, int]()
	for _, k := range keys {
		m.Set(uintptr(k), k)
	}
	return m
}

func setupHashMap(b testing.TB) *hashmap.Map[uintptr, int] {
	b.Helper()
	m := hashmap.New[uintptr, int]()
	for _, k := range keys {
		m.Set(uintptr(k), k)
	}
	return m
}

func BenchmarkPutBST(b *testing.B) {
	for range b.N {
		setupBST(b)
	}
}

func BenchmarkPutBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkPutLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkPutRBTree(b *testing.B) {
	for range b.N {
		setupRBTree(b)
	}
}

func BenchmarkFindBST(b *testing.B) {
	t := setupBST(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if e, ok := t.Find(k); !ok || e.ID != k {
				b.Fail()
			}
		}
	}
}

func BenchmarkFindBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if _, ok := t.Get(k); !ok {
				b.Fail()
			}
		}
	}
}

func BenchmarkFindLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if !t.Has(llrb.Int(k)) {
				b.Fail()
			}
		}
	}
}

func BenchmarkFindRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v, ok := t.Get(k); !ok || v.(int) != k {
				b.Fail()
			}
		}
	}
}

func BenchmarkFindHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v, ok := m.Get(uintptr(k)); !ok || v != k {
				b.Fail()
			}
		}
	}
}

func BenchmarkFindHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys {
			if v, ok := m.Get(uintptr(k)); !ok || v != k {
				b.Fail()
			}
		}
	}
}

// the BST answers from cached subtree sizes, the btree has to count.
func BenchmarkRankBST(b *testing.B) {
	t := setupBST(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys[:64] {
			if t.Rank(k) != uint(k) {
				b.Fail()
			}
		}
	}
}

func BenchmarkRankBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for _, k := range keys[:64] {
			n := 0
			t.AscendLessThan(k, func(int) bool {
				n++
				return true
			})
			if n != k {
				b.Fail()
			}
		}
	}
}

// TestAgreement makes sure every container above holds the same content
// before their timings are compared.
func TestAgreement(t *testing.T) {
	bst, bt, lr, rb := setupBST(t), setupBTree(t), setupLLRB(t), setupRBTree(t)
	hx, hm := setupHaxMap(t), setupHashMap(t)
	if int(bst.Size()) != bt.Len() || bt.Len() != lr.Len() || lr.Len() != rb.Size() || uint64(rb.Size()) != uint64(hx.Len()) || hx.Len() != uintptr(hm.Len()) {
		t.Fatalf("sizes differ: %d %d %d %d %d %d", bst.Size(), bt.Len(), lr.Len(), rb.Size(), hx.Len(), hm.Len())
	}
	rks, i := rb.Keys(), 0
	for k := range bst.InOrder() {
		if rk := rks[i].(int); rk != k {
			t.Fatalf("key %d is %d in the red-black tree, want %d", i, rk, k)
		}
		i++
	}
}
