package Trees

import (
	"iter"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Iterator is a forward cursor over the entries of a BSTree in ascending key order.
// The zero value is not meaningful; get one from Begin, End, Find, Insert or Root.
//
// An iterator records the version of the tree it was taken from. Any structural change
// of the tree (an insertion that creates a node, Erase, Balance, Clear, Move) makes it
// stale, and using a stale iterator panics with ErrInvalidated instead of walking freed
// slots. Writing a value through Value or Index is not a structural change.
type Iterator[K, V any, S constraints.Unsigned] struct {
	t   *BSTree[K, V, S]
	i   S // 0 is End.
	ver uint64
}

func (u Iterator[K, V, S]) check() {
	if u.t == nil || u.ver != u.t.ver {
		panic(errors.Wrapf(ErrInvalidated, "iterator at slot %d", u.i))
	}
	if u.i == 0 {
		panic(errors.WithStack(ErrOutOfRange))
	}
}

// IsEnd reports whether u is past the last entry.
func (u Iterator[K, V, S]) IsEnd() bool {
	return u.i == 0
}

// Valid reports whether u can still be used, i.e. the tree hasn't been structurally
// modified since u was obtained.
func (u Iterator[K, V, S]) Valid() bool {
	return u.t != nil && u.ver == u.t.ver
}

// Equal reports whether u and o point to the same node of the same tree. Two End
// iterators of the same tree are equal.
func (u Iterator[K, V, S]) Equal(o Iterator[K, V, S]) bool {
	return u.t == o.t && u.i == o.i
}

// Key of the current entry.
func (u Iterator[K, V, S]) Key() K {
	u.check()
	return u.t.es[u.i].Key
}

// Value returns a pointer to the value of the current entry. The pointer follows the
// same validity rules as the iterator itself.
func (u Iterator[K, V, S]) Value() *V {
	u.check()
	return &u.t.es[u.i].Value
}

// Entry returns a copy of the current entry.
func (u Iterator[K, V, S]) Entry() Entry[K, V] {
	u.check()
	return u.t.es[u.i]
}

// Next moves u to the in-order successor and returns it, End after the last entry.
// Time: amortized O(1); Space: O(1)
func (u *Iterator[K, V, S]) Next() Iterator[K, V, S] {
	u.check()
	u.i = u.t.successor(u.i)
	return *u
}

// Left child of the current node, End if there's none. Along with Right and Parent it
// exposes the shape of the tree for diagnostics; it doesn't move along in-order.
func (u Iterator[K, V, S]) Left() Iterator[K, V, S] {
	u.check()
	u.i = u.t.ifs[u.i].l
	return u
}

// Right child of the current node, End if there's none.
func (u Iterator[K, V, S]) Right() Iterator[K, V, S] {
	u.check()
	u.i = u.t.ifs[u.i].r
	return u
}

// Parent of the current node, End for the root.
func (u Iterator[K, V, S]) Parent() Iterator[K, V, S] {
	u.check()
	u.i = u.t.ifs[u.i].p
	return u
}

func (u *BSTree[K, V, S]) at(i S) Iterator[K, V, S] {
	return Iterator[K, V, S]{u, i, u.ver}
}

// Begin returns an iterator to the smallest entry, End if the tree is empty.
func (u *BSTree[K, V, S]) Begin() Iterator[K, V, S] {
	return u.at(u.leftmost(u.root))
}

// End returns the iterator past the last entry.
func (u *BSTree[K, V, S]) End() Iterator[K, V, S] {
	return u.at(0)
}

// Root returns an iterator to the root node, End if the tree is empty.
func (u *BSTree[K, V, S]) Root() Iterator[K, V, S] {
	return u.at(u.root)
}

// All returns an iterator over the entries from smallest to largest key.
// The tree must not be structurally modified during the iteration, doing so panics with
// ErrInvalidated; values may be changed through Index.
func (u *BSTree[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := u.Begin(); !it.IsEnd(); it.Next() {
			if !yield(it.Key(), *it.Value()) {
				return
			}
		}
	}
}
