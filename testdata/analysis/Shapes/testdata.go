//go:build wrapgen

package testdata

import "time"

type Empty struct{} // want `Empty has no inner field`

type Embedded struct {
	time.Duration // want `embedded field time.Duration is not supported, name the field`
}

type Pair struct {
	x, y int // want `inner field x must be declared alone`
}

type Blank struct {
	_ int // want `inner field cannot be blank`
}

type InnerDefault struct {
	n int `wrapgen:"default=1"` // want `inner field n cannot have a default value`
}

type BlankDefault struct {
	n int
	_ int `wrapgen:"default=1"` // want `blank field cannot have a default value`
}

type UnknownTag struct {
	n int
	m int `wrapgen:"omitempty"` // want `unknown wrapgen tag "omitempty", only default=EXPR is supported`
}

type EmptyDefault struct {
	n int
	m int `wrapgen:"default="` // want `default value is empty`
}

type BadDefault struct {
	n int
	m int `wrapgen:"default=1 +"` // want `default value "1 \+" is not an expression`
}

type MalformedTag struct {
	n int
	m int `wrapgen:default` // want `malformed struct tag`
}

type Defaults struct {
	n    int
	a, b int           `json:"ab" wrapgen:"default=2"` // ok
	c    time.Duration `wrapgen:"default=time.Second"` // ok
	_    [8]byte                                        // ok
}
