package dlist

import (
	"fmt"
	"strings"
)

// Assert that *DoublyLinkedList implements LinkedList.
var _ LinkedList[int] = (*DoublyLinkedList[int])(nil)

// DoublyLinkedList implements LinkedList.
//
// All nodes have a prev and a next link except the head, which has no
// prev, and the tail, which has no next. The zero value is an empty list
// ready to use.
//
// A DoublyLinkedList must not be copied after first use; use Clone.
type DoublyLinkedList[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewDoublyLinkedList returns a new instance of an empty DoublyLinkedList.
func NewDoublyLinkedList[T any]() *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{}
}

// NewDoublyLinkedListOf returns a DoublyLinkedList holding the given
// values in the same order.
func NewDoublyLinkedListOf[T any](values ...T) *DoublyLinkedList[T] {
	dll := NewDoublyLinkedList[T]()
	for _, v := range values {
		dll.PushTail(v)
	}
	return dll
}

// PushHead inserts a node with the given value before the head.
func (dll *DoublyLinkedList[T]) PushHead(data T) {
	newNode := newNode(data)
	if dll.head == nil {
		dll.head = newNode
		dll.tail = newNode
		dll.size++
		return
	}
	newNode.next = dll.head
	dll.head.prev = newNode
	dll.head = newNode
	dll.size++
}

// PopHead removes the head node and returns its value.
func (dll *DoublyLinkedList[T]) PopHead() (T, bool) {
	var data T
	if dll.head == nil {
		return data, false
	}
	oldHead := dll.head
	data = oldHead.data
	if dll.head == dll.tail {
		dll.head = nil
		dll.tail = nil
	} else {
		dll.head = oldHead.next
		dll.head.prev = nil
	}
	oldHead.unlink()
	dll.size--
	return data, true
}

// PushTail inserts a node with the given value after the tail.
func (dll *DoublyLinkedList[T]) PushTail(data T) {
	newNode := newNode(data)
	if dll.tail == nil {
		dll.tail = newNode
		dll.head = newNode
		dll.size++
		return
	}
	newNode.prev = dll.tail
	dll.tail.next = newNode
	dll.tail = newNode
	dll.size++
}

// PopTail removes the tail node and returns its value.
func (dll *DoublyLinkedList[T]) PopTail() (T, bool) {
	var data T
	if dll.tail == nil {
		return data, false
	}
	oldTail := dll.tail
	data = oldTail.data
	if dll.head == dll.tail {
		dll.head = nil
		dll.tail = nil
	} else {
		dll.tail = oldTail.prev
		dll.tail.next = nil
	}
	oldTail.unlink()
	dll.size--
	return data, true
}

// PushAt inserts a node with the given value at position index.
// Boundary positions are delegated to PushHead and PushTail, interior
// positions are spliced in after the node currently at index-1.
func (dll *DoublyLinkedList[T]) PushAt(index int, data T) error {
	if index < 0 || index > dll.size {
		return dll.outOfRange(index)
	}
	if index == 0 {
		dll.PushHead(data)
		return nil
	}
	if index == dll.size {
		dll.PushTail(data)
		return nil
	}
	left := dll.nodeAt(index - 1)
	right := left.next

	newNode := newNode(data)
	newNode.prev = left
	newNode.next = right
	left.next = newNode
	right.prev = newNode
	dll.size++
	return nil
}

// PopAt removes the node at position index and returns its value.
func (dll *DoublyLinkedList[T]) PopAt(index int) (T, error) {
	var data T
	if index < 0 || index >= dll.size {
		return data, dll.outOfRange(index)
	}
	if index == 0 {
		data, _ = dll.PopHead()
		return data, nil
	}
	if index == dll.size-1 {
		data, _ = dll.PopTail()
		return data, nil
	}
	current := dll.nodeAt(index)
	data = current.data

	current.prev.next = current.next
	current.next.prev = current.prev
	current.unlink()
	dll.size--
	return data, nil
}

// ElementAt returns a copy of the value at position index.
func (dll *DoublyLinkedList[T]) ElementAt(index int) (T, error) {
	if index < 0 || index >= dll.size {
		var data T
		return data, dll.outOfRange(index)
	}
	return dll.nodeAt(index).data, nil
}

// Size returns the number of elements in the list.
func (dll *DoublyLinkedList[T]) Size() int {
	return dll.size
}

// Clear destroys all nodes and resets the list to its empty state.
func (dll *DoublyLinkedList[T]) Clear() {
	current := dll.head
	for current != nil {
		next := current.next
		current.unlink()
		current = next
	}
	dll.head = nil
	dll.tail = nil
	dll.size = 0
}

// Clone returns a deep copy of the list built from a fresh chain.
// Element values are copied by assignment.
func (dll *DoublyLinkedList[T]) Clone() *DoublyLinkedList[T] {
	clone := NewDoublyLinkedList[T]()
	for current := dll.head; current != nil; current = current.next {
		clone.PushTail(current.data)
	}
	return clone
}

// Values returns the elements from head to tail in a new slice.
func (dll *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, dll.size)
	for current := dll.head; current != nil; current = current.next {
		values = append(values, current.data)
	}
	return values
}

// String returns the elements from head to tail, formatted like a slice.
func (dll *DoublyLinkedList[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for current := dll.head; current != nil; current = current.next {
		if current != dll.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, current.data)
	}
	b.WriteByte(']')
	return b.String()
}

// nodeAt returns the node at position index, which the caller has
// already checked to be within [0, size).
//
// The endpoints are served directly. Otherwise the walk starts from
// whichever end is closer, so it never takes more than size/2 steps.
func (dll *DoublyLinkedList[T]) nodeAt(index int) *node[T] {
	if index == 0 {
		return dll.head
	}
	if index == dll.size-1 {
		return dll.tail
	}
	if index <= dll.size/2 {
		current := dll.head
		for i := 0; i < index; i++ {
			current = current.next
		}
		return current
	}
	current := dll.tail
	for i := 0; i < dll.size-1-index; i++ {
		current = current.prev
	}
	return current
}

func (dll *DoublyLinkedList[T]) outOfRange(index int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, dll.size)
}
