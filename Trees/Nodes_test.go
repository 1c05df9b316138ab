package Trees

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestNodes_Attach(t *testing.T) {
	u := makeBase[int, int, uint8](4)
	a, b, c := u.newNode(1, 1), u.newNode(2, 2), u.newNode(3, 3)
	u.place(0, false, b)
	u.setLeft(b, a)
	u.setRight(b, c)
	require.Equal(t, b, u.root)
	require.Equal(t, b, u.ifs[a].p)
	require.Equal(t, b, u.ifs[c].p)
	require.Equal(t, a, u.ifs[b].l)
	require.Equal(t, c, u.ifs[b].r)

	d := u.newNode(4, 4)
	panicsWith(t, ErrInvalidTopology, func() { u.setLeft(b, d) })  // occupied
	panicsWith(t, ErrInvalidTopology, func() { u.setRight(b, d) }) // occupied
	panicsWith(t, ErrInvalidTopology, func() { u.setLeft(a, b) })  // a's parent
	panicsWith(t, ErrInvalidTopology, func() { u.setLeft(d, d) })  // itself
	panicsWith(t, ErrInvalidTopology, func() { u.setLeft(a, c) })  // attached under b
	panicsWith(t, ErrInvalidTopology, func() { u.setLeft(d, b) })  // root
	panicsWith(t, ErrInvalidTopology, func() { u.setLeft(d, 0) })
	panicsWith(t, ErrInvalidTopology, func() { u.place(0, false, d) })

	u.setRight(c, d)
	require.Equal(t, c, u.ifs[d].p)
}

func TestNodes_Detach(t *testing.T) {
	u := makeBase[int, int, uint8](4)
	a, b, c := u.newNode(1, 1), u.newNode(2, 2), u.newNode(3, 3)
	u.place(0, false, b)
	u.setLeft(b, a)
	u.setRight(b, c)

	require.Equal(t, c, u.detachRight(b))
	require.Zero(t, u.ifs[c].p)
	require.Zero(t, u.ifs[b].r)
	require.Zero(t, u.detachRight(b))
	require.Equal(t, 3, u.n, "detach mustn't release")
	require.Equal(t, 3, u.es[c].Key)

	// a detached node can be attached elsewhere.
	u.setRight(a, c)
	require.Equal(t, a, u.ifs[c].p)
	require.Equal(t, a, u.detachLeft(b))
	require.Zero(t, u.detachLeft(b))
	require.Equal(t, c, u.ifs[a].r, "detach keeps the subtree")
}

func TestNodes_Destroy(t *testing.T) {
	u := makeBase[int, string, uint8](4)
	a, b, c, d := u.newNode(1, "a"), u.newNode(2, "b"), u.newNode(3, "c"), u.newNode(4, "d")
	u.place(0, false, b)
	u.setLeft(b, a)
	u.setRight(b, c)
	u.setRight(c, d)

	u.destroyRight(b)
	require.Equal(t, 2, u.n)
	require.Zero(t, u.ifs[b].r)
	require.Equal(t, "", u.es[c].Value)
	require.Equal(t, "", u.es[d].Value)
	u.destroyRight(b)
	require.Equal(t, 2, u.n)

	freed := map[uint8]struct{}{u.popFree(): {}, u.popFree(): {}}
	require.Equal(t, map[uint8]struct{}{c: {}, d: {}}, freed)
	require.Zero(t, u.popFree())

	u.destroyLeft(b)
	require.Equal(t, 1, u.n)
	require.Equal(t, a, u.popFree())
}

func TestNodes_Replace(t *testing.T) {
	u := makeBase[int, int, uint8](4)
	a, b, c := u.newNode(1, 1), u.newNode(2, 2), u.newNode(3, 3)
	u.place(0, false, a)
	u.setRight(a, b)
	u.setRight(b, c)

	u.replace(b)
	require.Equal(t, c, u.ifs[a].r)
	require.Equal(t, a, u.ifs[c].p)
	u.replace(a)
	require.Equal(t, c, u.root)
	require.Zero(t, u.ifs[c].p)
	u.replace(c)
	require.Zero(t, u.root)
	require.Zero(t, u.n)

	x, y, z := u.newNode(1, 1), u.newNode(2, 2), u.newNode(3, 3)
	u.place(0, false, y)
	u.setLeft(y, x)
	u.setRight(y, z)
	err := func() (err error) {
		defer func() { err = recover().(error) }()
		u.replace(y)
		return nil
	}()
	require.True(t, errors.Is(err, ErrInvalidTopology))
	require.True(t, errors.HasAssertionFailure(err))
}

func TestNodes_Successor(t *testing.T) {
	tree := From[int, int, uint8](func(a, b int) bool { return a < b }, []Entry[int, int]{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}})
	var got []int
	for i := tree.leftmost(tree.root); i != 0; i = tree.successor(i) {
		got = append(got, tree.es[i].Key)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
	require.Zero(t, tree.leftmost(0))
	require.Zero(t, tree.rightmost(0))
	require.Equal(t, 7, tree.es[tree.rightmost(tree.root)].Key)
}
