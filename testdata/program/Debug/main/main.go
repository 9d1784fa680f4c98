//go:build wrapgen

package main

import "fmt"

//wrapgen:impl Debug
type Celsius float64

//wrapgen:impl Debug
type Point struct {
	xy [2]int
}

//wrapgen:impl DebugName
type Password string

func main() {
	c := newCelsius(36.5)
	fmt.Println(c)
	fmt.Printf("%v %.2f %#v\n", c, c, c)
	fmt.Println(fmt.Sprintf("%#v", c) == fmt.Sprintf("%#v", 36.5))

	p := newPoint([2]int{1, 2})
	fmt.Printf("%v %+v\n", p, p)

	pw := newPassword("hunter2")
	fmt.Println(pw)
	fmt.Printf("%v %s %#v %d\n", pw, pw, pw, pw)

	// Output:
	// 36.5
	// 36.5 36.50 36.5
	// true
	// [1 2] [1 2]
	// Password
	// Password Password Password Password
}
