//go:build wrapgen

package testdata

// F is not a type.
//
//wrapgen:impl AsRef // want `wrapgen directive cannot be used on function F`
func F() {
	//wrapgen:impl AsRef // want `wrapgen directive cannot be used in function F`
	type local int
	_ = local(0)
}

//wrapgen:impl AsRef // want `wrapgen directive must be attached to a type declaration, not var`
var V = 42

//wrapgen:impl AsRef // want `wrapgen directive must be attached to each type spec in a parenthesized declaration`
type (
	// P is parenthesized.
	//
	//wrapgen:impl AsRef // ok
	P int
)

type R struct {
	//wrapgen:impl AsRef // want `wrapgen directive cannot be used on field inner`
	inner int
	extra int //wrapgen:impl Deref // want `wrapgen directive cannot be used on field extra`
}

//wrapgen:impl AsRef // want `wrapgen directives cannot be used on alias A`
type A = int
