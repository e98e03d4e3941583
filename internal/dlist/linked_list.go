// Package dlist provides a generic doubly linked list with O(1) push and
// pop at both ends and positional access by zero-based index.
//
// Values are stored and returned by copy; nothing handed back to a caller
// points into the chain. A list is not safe for concurrent use, callers
// that share one must serialize access themselves.
package dlist

// LinkedList describes an ordered, mutable sequence of values.
type LinkedList[T any] interface {
	// PushHead inserts the value as the new first element.
	PushHead(T)
	// PopHead removes and returns the first element. The boolean is
	// false if the list was empty.
	PopHead() (T, bool)
	// PushTail inserts the value as the new last element.
	PushTail(T)
	// PopTail removes and returns the last element. The boolean is
	// false if the list was empty.
	PopTail() (T, bool)
	// PushAt inserts the value so that it ends up at the given index,
	// shifting the element at that index and those after it to the right.
	// An index equal to Size appends. Any other index outside [0, Size]
	// is an error and leaves the list untouched.
	PushAt(int, T) error
	// PopAt removes and returns the element at the given index, which
	// must be within [0, Size).
	PopAt(int) (T, error)
	// ElementAt returns the element at the given index, which must be
	// within [0, Size).
	ElementAt(int) (T, error)
	// Size returns the number of elements in the list.
	Size() int
	// Clear removes every element.
	Clear()
}
