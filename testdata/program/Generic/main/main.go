//go:build wrapgen

package main

import "fmt"

//wrapgen:impl AsRef
//wrapgen:impl From
//wrapgen:impl Debug
type Set[K comparable] map[K]struct{}

//wrapgen:impl Deref
type Pair[A, B any] struct {
	first  A
	second B `wrapgen:"default=*new(B)"`
}

func main() {
	s := SetFrom(map[string]struct{}{"a": {}})
	fmt.Println(len(s.AsRef()), s)

	p := newPair[int, string](1)
	fmt.Printf("%d %q\n", p.Deref(), p.second)

	// Output:
	// 1 map[a:{}]
	// 1 ""
}
