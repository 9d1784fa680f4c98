//go:build wrapgen

package main

//wrapgen:impl From
type Span struct {
	start int
	end   int
}

func main() {}
