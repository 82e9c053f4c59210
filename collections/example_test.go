package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-transformers/collections"
)

func ExampleTreeSet() {
	s := collections.NewTreeSet(5, 1, 3)
	fmt.Println(s)

	c, _ := s.Ceiling(2)
	fmt.Println(c)

	head, _ := s.NavigableHeadSet(3, true)
	fmt.Println(head)
	// Output:
	// [1, 3, 5]
	// 3
	// [1, 3]
}

func ExampleTreeMap_DescendingMap() {
	m := collections.NewTreeMap[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("c", 3)

	for k, v := range m.DescendingMap().All() {
		fmt.Println(k, v)
	}
	// Output:
	// c 3
	// b 2
	// a 1
}

func ExampleLinkedList() {
	d := collections.NewLinkedList[string]()
	d.Push("first")
	d.OfferLast("last")

	for !d.IsEmpty() {
		e, _ := d.Pop()
		fmt.Println(e)
	}
	// Output:
	// first
	// last
}
