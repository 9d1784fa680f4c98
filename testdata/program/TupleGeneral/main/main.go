//go:build wrapgen

package main

import (
	"fmt"

	"github.com/sublee/wrapgen"
)

// Token is an opaque token.
//
//wrapgen:preset general
//wrapgen:impl AsRef[[]byte]
type Token string

func main() {
	tok := TokenFrom("Hello")
	fmt.Println(tok.AsRef())
	fmt.Println(tok.Borrow())
	fmt.Println(string(tok.AsRefBytes()))
	fmt.Println(Token{}.From("World").AsInner())
	fmt.Println(wrapgen.Inner[string](wrapgen.Into[Token]("Into")))

	// Output:
	// Hello
	// Hello
	// Hello
	// World
	// Into
}
