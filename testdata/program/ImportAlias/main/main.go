//go:build wrapgen

package main

import f "fmt"

// fmt is not the fmt package here.
var fmt = "shadowed"

//wrapgen:impl Debug
type Code int

func main() {
	f.Println(newCode(42), fmt)

	// Output:
	// 42 shadowed
}
