package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the tree. Index 0 is the nil slot: it is never handed out,
// its links stay 0, and a link equal to 0 means the child or parent is absent.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

// Entry is the key value pair stored in a node.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// base is the arena holding the shape and payload of the tree. es[i] is the
// payload of ifs[i], so es[0] is unused.
type base[K, V any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list of released slots; info[S]::l represents next.
	n          int
	ver        uint64 // bumped on every structural change.
	ifs        []info[S]
	es         []Entry[K, V]
}

func makeBase[K, V any, S constraints.Unsigned](hint S) base[K, V, S] {
	return base[K, V, S]{ifs: make([]info[S], 1, int(hint)+1), es: make([]Entry[K, V], 1, int(hint)+1)}
}

// addFree index once.
func (u *base[K, V, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, V, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// newNode takes a slot for the entry, reusing released slots before growing the arrays.
// The slot is unattached.
func (u *base[K, V, S]) newNode(k K, v V) S {
	i := u.popFree()
	if i == 0 {
		i = S(len(u.ifs))
		if int(i) != len(u.ifs) {
			panic(errInvalidTopology("arena index type overflowed at %d slots", len(u.ifs)))
		}
		u.ifs = append(u.ifs, info[S]{})
		u.es = append(u.es, Entry[K, V]{k, v})
	} else {
		u.ifs[i] = info[S]{}
		u.es[i] = Entry[K, V]{k, v}
	}
	u.n++
	u.ver++
	return i
}

// release a single unattached slot. The payload is zeroed so that it can be collected.
func (u *base[K, V, S]) release(i S) {
	u.es[i] = Entry[K, V]{}
	u.addFree(i)
	u.n--
	u.ver++
}

// releaseTree releases the subtree rooted at the unattached slot i. It uses an explicit
// stack since degenerate trees are as deep as they are large.
func (u *base[K, V, S]) releaseTree(i S) {
	if i == 0 {
		return
	}
	for st := []S{i}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if c := u.ifs[top]; c.l != 0 {
			st = append(st, c.l)
		}
		if c := u.ifs[top]; c.r != 0 {
			st = append(st, c.r)
		}
		u.release(top)
	}
}

// reset drops every slot. O(size) since the payloads are zeroed, doesn't allocate new arrays.
func (u *base[K, V, S]) reset() {
	clear(u.es)
	u.ifs, u.es = u.ifs[:1], u.es[:1]
	u.ifs[0] = info[S]{}
	u.root, u.free, u.n = 0, 0, 0
	u.ver++
}

// leftmost slot of the subtree rooted at i, 0 if i is 0.
func (u *base[K, V, S]) leftmost(i S) S {
	if i == 0 {
		return 0
	}
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// rightmost slot of the subtree rooted at i, 0 if i is 0.
func (u *base[K, V, S]) rightmost(i S) S {
	if i == 0 {
		return 0
	}
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// successor of i in in-order, 0 if i is the last one.
// Time: amortized O(1)
func (u *base[K, V, S]) successor(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// height of the subtree rooted at i; 0 for the nil slot.
func (u *base[K, V, S]) height(i S) int {
	if i == 0 {
		return 0
	}
	return 1 + max(u.height(u.ifs[i].l), u.height(u.ifs[i].r))
}

// balanced reports whether every node under i has subtrees whose heights differ by at most 1.
// It returns the height of i along with it so that each node is visited once.
func (u *base[K, V, S]) balanced(i S) (int, bool) {
	if i == 0 {
		return 0, true
	}
	lh, lb := u.balanced(u.ifs[i].l)
	if !lb {
		return 0, false
	}
	rh, rb := u.balanced(u.ifs[i].r)
	if !rb || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}
