package Trees

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Fprint writes the entries in [from, to) to w as "(k, v)" pairs separated by single
// spaces. Pass Begin and End to print a whole tree. It returns the number of bytes
// written and the first write error.
func Fprint[K, V any, S constraints.Unsigned](w io.Writer, from, to Iterator[K, V, S]) (n int, err error) {
	for it := from; !it.Equal(to) && !it.IsEnd(); it.Next() {
		sep := " "
		if it.Equal(from) {
			sep = ""
		}
		e := it.Entry()
		m, err := fmt.Fprintf(w, "%s(%v, %v)", sep, e.Key, e.Value)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
