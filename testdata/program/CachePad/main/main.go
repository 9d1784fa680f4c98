//go:build wrapgen

package main

import (
	"fmt"
	"unsafe"

	"github.com/sublee/wrapgen"
)

//wrapgen:impl AsRef
//wrapgen:repr align(cache)
type Hot int64

//wrapgen:impl AsRef
type Cold int64

func main() {
	var hot Hot
	fmt.Println(unsafe.Offsetof(hot.inner) >= wrapgen.CacheLineSize)
	fmt.Println(unsafe.Sizeof(hot)-unsafe.Offsetof(hot.inner)-unsafe.Sizeof(int64(0)) >= wrapgen.CacheLineSize)
	fmt.Println(unsafe.Sizeof(Cold{}) == unsafe.Sizeof(int64(0)))
	fmt.Println(newHot(7).AsRef())

	// Output:
	// true
	// true
	// true
	// 7
}
