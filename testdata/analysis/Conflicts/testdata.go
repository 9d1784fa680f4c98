//go:build wrapgen

package testdata

//wrapgen:impl Borrow
//wrapgen:impl BorrowMut // want `duplicate method A.Borrow generated for Borrow and BorrowMut at .*testdata.go:5:1`
type A int

//wrapgen:impl Debug
//wrapgen:impl DebugName // want `duplicate method B.Format generated for Debug and DebugName`
type B int

//wrapgen:impl AsRef[[]byte]
//wrapgen:impl AsRef[Bytes] // want `duplicate method C.AsRefBytes generated for AsRef\[\[\]byte\] and AsRef\[Bytes\]`
type C []byte

type Bytes []byte

//wrapgen:impl AsRef // want `cannot generate method D.AsInner for AsRef: conflicts with declared method at .*methods.go:4:10`
type D string

//wrapgen:impl Deref // want `cannot generate method E.Deref for Deref: conflicts with field Deref`
type E struct {
	Deref int
}

//wrapgen:impl From // want `cannot implement From for F: it has multiple fields but no default value for b`
type F struct {
	a int
	b int
}

type G int // want `cannot generate constructor newG for G: newG is already declared`

//wrapgen:impl From // want `cannot generate function HFrom for From: HFrom is already declared`
type H int

//wrapgen:impl AsRef // ok
//wrapgen:preset general // want `duplicate method I.AsRef generated for AsRef and AsRef`
type I string
