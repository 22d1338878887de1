package Trees

import (
	"fmt"
	"io"
)

// Dump writes the tree level by level to w, one line per depth:
//
//	0: 5(a)
//	1: 4(b) 6(c)
//	2: 2(d) 7(e)
//
// Each entry is printed as key(id). Nothing is written for an empty tree.
func (u *BST[K, I, S]) Dump(w io.Writer) (err error) {
	depth := -1
	u.levels(func(n *node[K, I, S], d int) bool {
		if d != depth {
			if depth >= 0 {
				if _, err = io.WriteString(w, "\n"); err != nil {
					return false
				}
			}
			if _, err = fmt.Fprintf(w, "%d:", d); err != nil {
				return false
			}
			depth = d
		}
		_, err = fmt.Fprintf(w, " %v(%v)", n.k, n.id)
		return err == nil
	})
	if err == nil && depth >= 0 {
		_, err = io.WriteString(w, "\n")
	}
	return
}

// String returns the in-order entries, e.g. "[2:d 4:b 5:a]".
func (u *BST[K, I, S]) String() string {
	b := make([]byte, 0, 2+u.Size()*4)
	b = append(b, '[')
	first := true
	u.inorder(func(n *node[K, I, S]) bool {
		if !first {
			b = append(b, ' ')
		}
		first = false
		b = fmt.Appendf(b, "%v:%v", n.k, n.id)
		return true
	})
	return string(append(b, ']'))
}
