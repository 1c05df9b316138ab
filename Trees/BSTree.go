package Trees

import (
	"cmp"
	"math/bits"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree mapping keys to values with no repeated keys. It
// doesn't balance itself: its height D depends on the insertion order and can be as
// large as the size. Balance rebuilds it with minimal height on demand.
// K is the key type, V the value type, S the type of the indexes of the underlying
// arena; S must be wide enough to index every node the tree will ever hold at once.
// Nodes are kept in an arena and addressed by index, so parent links are plain indexes
// and released nodes are reused by later insertions.
// The zero value isn't usable; create trees with New, NewFunc, NewWith or From.
type BSTree[K, V any, S constraints.Unsigned] struct {
	base[K, V, S]
	less func(K, K) bool
}

// New returns an empty tree ordering keys with cmp.Less. hint is the number of nodes to
// allocate room for.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *BSTree[K, V, S] {
	return NewFunc[K, V](hint, cmp.Less[K])
}

// NewFunc returns an empty tree ordering keys with less, which must be a strict weak
// ordering. Two keys a and b are considered equal when !less(a, b) && !less(b, a).
func NewFunc[K, V any, S constraints.Unsigned](hint S, less func(K, K) bool) *BSTree[K, V, S] {
	return &BSTree[K, V, S]{makeBase[K, V](hint), less}
}

// NewWith returns a tree ordering keys with less and holding the single entry (k, v).
func NewWith[K, V any, S constraints.Unsigned](less func(K, K) bool, k K, v V) *BSTree[K, V, S] {
	u := NewFunc[K, V, S](1, less)
	u.insert(k, v)
	return u
}

// From builds a height-balanced tree holding the given entries, which must be sorted in
// strictly ascending order under less; otherwise it panics with ErrUnsorted. This is
// faster than repeatedly calling Insert. The slice isn't retained.
// Time: O(n).
func From[K, V any, S constraints.Unsigned](less func(K, K) bool, sorted []Entry[K, V]) *BSTree[K, V, S] {
	for i := 1; i < len(sorted); i++ {
		if !less(sorted[i-1].Key, sorted[i].Key) {
			panic(errors.Wrapf(ErrUnsorted, "at index %d", i))
		}
	}
	u := NewFunc[K, V](S(len(sorted)), less)
	u.build(sorted)
	return u
}

// Len returns the number of entries.
// Time: O(1); Space: O(1)
func (u *BSTree[K, V, S]) Len() int {
	return u.n
}

// locate the node with key k. If there's none, cur is 0 and (p, left) is the free slot
// where k belongs; p is 0 only if the tree is empty.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V, S]) locate(k K) (cur, p S, left bool) {
	for cur = u.root; cur != 0; {
		if ck := u.es[cur].Key; u.less(k, ck) {
			p, left, cur = cur, true, u.ifs[cur].l
		} else if u.less(ck, k) {
			p, left, cur = cur, false, u.ifs[cur].r
		} else {
			return
		}
	}
	return
}

// insert (k, v) unless k is already there. Returns the node holding k and whether it
// was created.
func (u *BSTree[K, V, S]) insert(k K, v V) (S, bool) {
	cur, p, left := u.locate(k)
	if cur != 0 {
		return cur, false
	}
	cur = u.newNode(k, v)
	u.place(p, left, cur)
	return cur, true
}

// Insert [Map.Insert]
// An existing entry is returned untouched along with false; use Index to overwrite.
// Time: O(D)
func (u *BSTree[K, V, S]) Insert(k K, v V) (Iterator[K, V, S], bool) {
	i, ok := u.insert(k, v)
	return u.at(i), ok
}

// Emplace [Map.Emplace]
func (u *BSTree[K, V, S]) Emplace(k K, v V) (Iterator[K, V, S], bool) {
	return u.EmplaceEntry(Entry[K, V]{k, v})
}

// EmplaceEntry inserts a prebuilt entry, like Insert.
func (u *BSTree[K, V, S]) EmplaceEntry(e Entry[K, V]) (Iterator[K, V, S], bool) {
	return u.Insert(e.Key, e.Value)
}

// Find [Map.Find]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V, S]) Find(k K) Iterator[K, V, S] {
	i, _, _ := u.locate(k)
	return u.at(i)
}

// Has reports whether k is in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V, S]) Has(k K) bool {
	i, _, _ := u.locate(k)
	return i != 0
}

// Index [Map.Index]
// The pointer stays valid until the next structural change of the tree.
// Time: O(D)
func (u *BSTree[K, V, S]) Index(k K) *V {
	i, _ := u.insert(k, *new(V))
	return &u.es[i].Value
}

// Erase [Map.Erase]
// A node with two children takes the entry of its in-order successor, which is then
// removed from its own position instead; the successor has no left child, so only
// leaves and single-child nodes are ever unlinked.
// Time: O(D)
func (u *BSTree[K, V, S]) Erase(k K) bool {
	t, _, _ := u.locate(k)
	if t == 0 {
		return false
	}
	if n := u.ifs[t]; n.l != 0 && n.r != 0 {
		s := u.leftmost(n.r)
		u.es[t] = u.es[s]
		t = s
	}
	u.replace(t)
	return true
}

// Clear [Map.Clear]
func (u *BSTree[K, V, S]) Clear() {
	u.reset()
}

// Min returns the entry with the smallest key.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V, S]) Min() (Entry[K, V], bool) {
	i := u.leftmost(u.root)
	return u.es[i], i != 0
}

// Max returns the entry with the largest key.
// Time: O(D); Space: O(1)
func (u *BSTree[K, V, S]) Max() (Entry[K, V], bool) {
	i := u.rightmost(u.root)
	return u.es[i], i != 0
}

// Balance [Map.Balance]
// The entries are collected in order, the tree is cleared, and rebuilt by repeatedly
// taking the midpoint of the remaining range as the next node. Afterwards the height is
// ceil(log2(Len()+1)).
// Time: O(n); Space: O(n)
func (u *BSTree[K, V, S]) Balance() {
	es := make([]Entry[K, V], 0, u.n)
	for i := u.leftmost(u.root); i != 0; i = u.successor(i) {
		es = append(es, u.es[i])
	}
	u.reset()
	u.build(es)
}

// build attaches the sorted entries under an empty tree, mid=(start+end)/2 becoming
// the root of [start, end], [start, mid-1] its left and [mid+1, end] its right subtree.
func (u *BSTree[K, V, S]) build(es []Entry[K, V]) {
	type span struct {
		start, end int
		p          S
		left       bool
	}
	st := make([]span, 1, bits.Len(uint(len(es)))+2)
	st[0] = span{0, len(es) - 1, 0, false}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.start > top.end {
			continue
		}
		mid := (top.start + top.end) >> 1
		i := u.newNode(es[mid].Key, es[mid].Value)
		u.place(top.p, top.left, i)
		st = append(st, span{mid + 1, top.end, i, false}, span{top.start, mid - 1, i, true})
	}
}

// Height of the tree, 0 when empty.
// Recursive. Time: O(n)
func (u *BSTree[K, V, S]) Height() int {
	return u.height(u.root)
}

// IsBalanced reports whether the heights of the two subtrees of every node differ by at
// most 1.
// Recursive. Time: O(n)
func (u *BSTree[K, V, S]) IsBalanced() bool {
	_, b := u.balanced(u.root)
	return b
}

func (u *BSTree[K, V, S]) node(it Iterator[K, V, S]) S {
	if it.i == 0 {
		return 0
	}
	it.check()
	if it.t != u {
		panic(errors.AssertionFailedf("iterator at slot %d belongs to another tree", it.i))
	}
	return it.i
}

// NodeHeight is the height of the subtree rooted at it, 0 for End.
// Recursive. Time: O(size of the subtree)
func (u *BSTree[K, V, S]) NodeHeight(it Iterator[K, V, S]) int {
	return u.height(u.node(it))
}

// NodeBalanced is IsBalanced for the subtree rooted at it, true for End.
// Recursive. Time: O(size of the subtree)
func (u *BSTree[K, V, S]) NodeBalanced(it Iterator[K, V, S]) bool {
	_, b := u.balanced(u.node(it))
	return b
}

// Clone returns an independent copy of the tree. Entries are inserted into the copy in
// pre-order, so the copy has the same shape while its links are derived anew.
// Time: O(n*D)
func (u *BSTree[K, V, S]) Clone() *BSTree[K, V, S] {
	c := NewFunc[K, V](S(u.n), u.less)
	if u.root == 0 {
		return c
	}
	for st := []S{u.root}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		c.insert(u.es[top].Key, u.es[top].Value)
		if r := u.ifs[top].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ifs[top].l; l != 0 {
			st = append(st, l)
		}
	}
	return c
}

// Move transfers the entries of u to a new tree and leaves u empty and ready for reuse.
// Iterators taken from u before the move are invalidated.
// Time: O(1)
func (u *BSTree[K, V, S]) Move() *BSTree[K, V, S] {
	m := &BSTree[K, V, S]{u.base, u.less}
	u.base = makeBase[K, V, S](0)
	u.ver = m.ver + 1
	return m
}

// Verify checks the structure of the tree: every child links back to its parent, no
// node is reachable twice, keys are strictly ascending in-order and the number of nodes
// matches Len. The returned error is marked with ErrInvalidTopology.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V, S]) Verify() error {
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return errors.Wrapf(ErrInvalidTopology, "root %d has parent %d", u.root, u.ifs[u.root].p)
	}
	var (
		prev S
		seen int
		st   []S
	)
	for cur := u.root; cur != 0 || len(st) > 0; cur = u.ifs[cur].r {
		for ; cur != 0; cur = u.ifs[cur].l {
			if seen++; seen > u.n {
				return errors.Wrapf(ErrInvalidTopology, "more than %d reachable nodes", u.n)
			}
			for _, c := range [2]S{u.ifs[cur].l, u.ifs[cur].r} {
				if c != 0 && u.ifs[c].p != cur {
					return errors.Wrapf(ErrInvalidTopology, "node %d doesn't link back to parent %d", c, cur)
				}
			}
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != 0 && !u.less(u.es[prev].Key, u.es[cur].Key) {
			return errors.Wrapf(ErrInvalidTopology, "keys out of order at node %d", cur)
		}
		prev = cur
	}
	if seen != u.n {
		return errors.Wrapf(ErrInvalidTopology, "%d reachable nodes, want %d", seen, u.n)
	}
	return nil
}

// String renders the entries as "(k, v)" pairs in ascending order separated by spaces.
func (u *BSTree[K, V, S]) String() string {
	var b strings.Builder
	Fprint(&b, u.Begin(), u.End())
	return b.String()
}
