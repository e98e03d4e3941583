package dlist_test

import (
	"fmt"

	"github.com/SystemBuilders/ChainList/internal/dlist"
)

func ExampleDoublyLinkedList() {
	list := dlist.NewDoublyLinkedListOf(1, 2, 3, 4, 5, 6)

	removed, _ := list.PopAt(2)
	_ = list.PushAt(2, 56)

	fmt.Println(removed)
	fmt.Println(list)
	// Output:
	// 3
	// [1 2 56 4 5 6]
}

func ExampleDoublyLinkedList_PopHead() {
	list := dlist.NewDoublyLinkedList[string]()

	_, ok := list.PopHead()
	fmt.Println(ok)
	// Output: false
}
