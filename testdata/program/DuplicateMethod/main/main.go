//go:build wrapgen

package main

//wrapgen:impl Borrow
//wrapgen:impl BorrowMut
type Token string

func main() {}
