//go:build wrapgen

package main

//wrapgen:impl AsRefs
type Token string

//wrapgen:repr align(cache)
//wrapgen:impl Deref
type Counter int

func main() {}
