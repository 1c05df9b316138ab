package Trees

import (
	"github.com/cockroachdb/errors"
)

// Panic values of the package. All of them are errors, so a recovered value can be
// inspected with errors.Is. An absent key is never an error: Find returns End and
// Erase does nothing.
var (
	// ErrInvalidTopology marks an attempt to link nodes in a way that breaks the tree,
	// such as attaching to an occupied slot or creating a cycle. Through the exported methods
	// it is only raised when the index type S can't address another node.
	ErrInvalidTopology = errors.New("invalid tree topology")
	// ErrOutOfRange is raised when reading or advancing the End iterator.
	ErrOutOfRange = errors.New("iterator out of range")
	// ErrInvalidated is raised when an iterator is used after the tree it points into
	// was structurally modified.
	ErrInvalidated = errors.New("iterator invalidated by tree mutation")
	// ErrUnsorted is raised by From when the input isn't strictly ascending.
	ErrUnsorted = errors.New("entries are not strictly ascending")
)

// errInvalidTopology builds an assertion failure marked as ErrInvalidTopology.
func errInvalidTopology(format string, args ...interface{}) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrInvalidTopology)
}
