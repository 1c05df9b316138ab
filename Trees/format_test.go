package Trees

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestFprint(t *testing.T) {
	tree := New[int, int, uint8](0)
	assert.Equal(t, "", tree.String())

	for _, k := range []int{8, 3, 10, 1, 6, 4, 7, 14, 13} {
		tree.Insert(k, k)
	}
	tree.Insert(10, 3)
	assert.Equal(t, "(1, 1) (3, 3) (4, 4) (6, 6) (7, 7) (8, 8) (10, 10) (13, 13) (14, 14)", tree.String())

	var b strings.Builder
	n, err := Fprint(&b, tree.Find(3), tree.Find(8))
	assert.NoError(t, err)
	assert.Equal(t, "(3, 3) (4, 4) (6, 6) (7, 7)", b.String())
	assert.Equal(t, b.Len(), n)

	b.Reset()
	_, err = Fprint(&b, tree.Find(13), tree.End())
	assert.NoError(t, err)
	assert.Equal(t, "(13, 13) (14, 14)", b.String())

	_, err = Fprint(&failWriter{after: 2}, tree.Begin(), tree.End())
	assert.EqualError(t, err, "disk full")
}

func TestFprint_Strings(t *testing.T) {
	tree := New[string, []int, uint8](0)
	tree.Insert("b", []int{1, 2})
	tree.Insert("a", nil)
	assert.Equal(t, "(a, []) (b, [1 2])", tree.String())
}
