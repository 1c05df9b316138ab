package Trees

import "golang.org/x/exp/constraints"

// Map represents an ordered map implemented using nodes.
// Keys are unique; their order is given by a less function, and two keys are
// the same key when neither is less than the other.
// Absent keys are never errors: lookups report them with the End iterator
// or a false flag, and removing one does nothing.
// Iterators and value pointers returned by the receivers are valid until the
// next structural change of the map, i.e. until a node is added or removed
// or the map is rebalanced or cleared. Using one afterwards panics with
// ErrInvalidated. Methods implemented recursively should be noted, otherwise
// functions are implemented iteratively.
type Map[K, V any, S constraints.Unsigned] interface {
	//Insert (k, v). Returns an iterator to the entry with key k and true if
	//it was created. If k was already present the entry is left as it is
	//and false is returned.
	Insert(k K, v V) (Iterator[K, V, S], bool)
	//Emplace builds the entry from k and v and inserts it like Insert.
	Emplace(k K, v V) (Iterator[K, V, S], bool)
	//Find the entry with key k. Returns End if there's none.
	Find(k K) Iterator[K, V, S]
	//Erase the entry with key k. Returns false, and does nothing else, if
	//there's none.
	Erase(k K) bool
	//Index returns a pointer to the value of k, inserting the zero value
	//first if k is absent.
	Index(k K) *V
	//Clear removes all entries.
	Clear()
	//Begin is the iterator to the smallest key, End if the map is empty.
	Begin() Iterator[K, V, S]
	//End is the iterator past the largest key.
	End() Iterator[K, V, S]
	//Balance rearranges the nodes so that the height of the map is minimal.
	//Entries and their order don't change.
	Balance()
	//Height of the underlying tree; 0 when empty.
	Height() int
	//IsBalanced reports whether the subtree heights of every node differ by
	//at most 1.
	IsBalanced() bool
	//Len is the number of entries.
	Len() int
}

var _ Map[int, int, uint] = (*BSTree[int, int, uint])(nil)
