//go:build wrapgen

package main

import (
	f "fmt"
	w "time"
)

//wrapgen:impl AsRef[w.Duration]
//wrapgen:impl Debug
type Timeout int64

func main() {
	t := newTimeout(int64(1500 * w.Millisecond))
	f.Println(t.AsRefDuration())
	f.Printf("%v %x\n", t, t)

	// Output:
	// 1.5s
	// 1500000000 59682f00
}
