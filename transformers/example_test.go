package transformers_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-transformers/collections"
	"github.com/hasbyte1/go-transformers/transformers"
)

func ExampleOfNavigableSet() {
	codeSet := collections.NewTreeSet(1, 2, 3)
	labels := transformers.OfNavigableSet[string, int](codeSet, transformers.NewFunctional(
		func(label string) int { return int(label[0]-'a') + 1 },
		func(code int) string { return string(rune('a' + code - 1)) },
	))

	first, _ := labels.First()
	fmt.Println(first, labels.Contains("b"))

	labels.Remove("b")
	fmt.Println(codeSet)
	// Output:
	// a true
	// [1, 3]
}

func ExampleOfMap() {
	ports := collections.NewTreeMap[string, int]()
	ports.Put("http", 80)
	ports.Put("https", 443)

	text := transformers.OfMap[string, string, string, int](ports,
		transformers.Identity[string](),
		transformers.NewFunctional(
			func(s string) int {
				n, _ := strconv.Atoi(s)
				return n
			},
			strconv.Itoa,
		),
	)
	text.Put("ssh", "22")

	fmt.Println(text)
	fmt.Println(ports.Get("ssh"))
	// Output:
	// {http=80, https=443, ssh=22}
	// 22 true
}

func ExampleTransformer_Invert() {
	runes := transformers.NewFunctional(
		func(r rune) string { return string(r) },
		func(s string) rune { return []rune(s)[0] },
	)
	fmt.Println(runes.ToWrapped('x'), string(runes.Invert().ToWrapped("y")))
	// Output: x y
}
