package Trees

// Structural edits of the arena. Links are only ever rewired through these so that
// parent links stay consistent with the child links pointing at them.

// attachable panics unless c can become a child of n.
func (u *base[K, V, S]) attachable(n, c S, slot S, side string) {
	switch {
	case n == 0 || c == 0:
		panic(errInvalidTopology("attach %d as %s child of %d: nil slot", c, side, n))
	case slot != 0:
		panic(errInvalidTopology("attach %d as %s child of %d: slot already holds %d", c, side, n, slot))
	case c == n || c == u.ifs[n].p:
		panic(errInvalidTopology("attach %d as %s child of %d: would create a cycle", c, side, n))
	case u.ifs[c].p != 0 || c == u.root:
		panic(errInvalidTopology("attach %d as %s child of %d: already attached", c, side, n))
	}
}

// setLeft attaches the unattached slot c as the left child of n.
func (u *base[K, V, S]) setLeft(n, c S) {
	u.attachable(n, c, u.ifs[n].l, "left")
	u.ifs[n].l, u.ifs[c].p = c, n
}

// setRight attaches the unattached slot c as the right child of n.
func (u *base[K, V, S]) setRight(n, c S) {
	u.attachable(n, c, u.ifs[n].r, "right")
	u.ifs[n].r, u.ifs[c].p = c, n
}

// detachLeft unlinks the left child of n without releasing it. Returns 0 if there's none.
func (u *base[K, V, S]) detachLeft(n S) S {
	c := u.ifs[n].l
	if c != 0 {
		u.ifs[n].l, u.ifs[c].p = 0, 0
	}
	return c
}

// detachRight unlinks the right child of n without releasing it. Returns 0 if there's none.
func (u *base[K, V, S]) detachRight(n S) S {
	c := u.ifs[n].r
	if c != 0 {
		u.ifs[n].r, u.ifs[c].p = 0, 0
	}
	return c
}

func (u *base[K, V, S]) destroyLeft(n S) {
	u.releaseTree(u.detachLeft(n))
}

func (u *base[K, V, S]) destroyRight(n S) {
	u.releaseTree(u.detachRight(n))
}

// detach n from its parent, or from the root when it is the root.
// The old position is reported so that replace can fill it.
func (u *base[K, V, S]) detach(n S) (p S, left bool) {
	if p = u.ifs[n].p; p == 0 {
		if u.root != n {
			panic(errInvalidTopology("detach %d: neither root nor attached", n))
		}
		u.root = 0
	} else if u.ifs[p].l == n {
		u.detachLeft(p)
		left = true
	} else if u.ifs[p].r == n {
		u.detachRight(p)
	} else {
		panic(errInvalidTopology("detach %d: parent %d doesn't link back", n, p))
	}
	return
}

// place the unattached slot c at a position previously returned by detach. c may be 0.
func (u *base[K, V, S]) place(p S, left bool, c S) {
	if c == 0 {
		return
	}
	if p == 0 {
		if u.root != 0 || u.ifs[c].p != 0 {
			panic(errInvalidTopology("make %d root: root already holds %d", c, u.root))
		}
		u.root = c
	} else if left {
		u.setLeft(p, c)
	} else {
		u.setRight(p, c)
	}
}

// replace n by its sole child in n's position and release n.
// n must have at most one child.
func (u *base[K, V, S]) replace(n S) {
	c := u.detachLeft(n)
	if c == 0 {
		c = u.detachRight(n)
	} else if u.ifs[n].r != 0 {
		panic(errInvalidTopology("splice %d: has two children", n))
	}
	p, left := u.detach(n)
	u.release(n)
	u.place(p, left, c)
}
