//go:build wrapgen

package main

import "fmt"

//wrapgen:impl AsMut
//wrapgen:impl DerefMut
type Counter int

//wrapgen:impl BorrowMut
type Names []string

func main() {
	var c Counter
	*c.AsMut() += 1
	*c.DerefMut() += 2
	*c.AsInnerMut() += 3
	fmt.Println(c.Deref())

	n := newNames(nil)
	*n.BorrowMut() = append(*n.BorrowMut(), "a", "b")
	fmt.Println(n.Borrow(), len(n.Borrow()))

	// Output:
	// 6
	// [a b] 2
}
