package dlist

// node is the single entity of the doubly linked list.
//
// next is the forward link that keeps the chain alive, prev is only a
// back-reference used for reverse walks and tail-side mutation.
type node[T any] struct {
	data T
	next *node[T]
	prev *node[T]
}

func newNode[T any](data T) *node[T] {
	return &node[T]{
		data: data,
	}
}

// unlink drops both references so a removed node keeps nothing reachable.
func (n *node[T]) unlink() {
	n.next = nil
	n.prev = nil
}
