//go:build wrapgen

package testdata

//wrapgen:impl AsReff // want `unknown capability "AsReff" \(did you mean AsRef\?\)`
type A string

//wrapgen:impl Clone // want `unknown capability "Clone" \(available: AsRef, AsMut, ConstAsMut, Borrow, BorrowMut, Deref, DerefMut, From, Debug, DebugName\)`
type B string

//wrapgen:impl // want `//wrapgen:impl needs a capability`
type C string

//wrapgen:impl From[int] // want `From does not take a target type`
//wrapgen:impl Debug[string] // want `Debug does not take a target type`
type D int

//wrapgen:impl AsRef[[]byte // want `target type of AsRef is not closed by \]`
//wrapgen:impl AsRef[] // want `target type of AsRef is empty`
//wrapgen:impl AsRef[1 + 2] // want `target type "1 \+ 2" of AsRef is not a type`
type E string

//wrapgen:repr align(cache)
//wrapgen:impl AsRef // want `//wrapgen:impl must precede //wrapgen:repr at .*testdata.go:23:1`
type F string

//wrapgen:repr align(cache)
//wrapgen:repr align(cache) // want `duplicate //wrapgen:repr, previous one at .*testdata.go:27:1`
type G string

//wrapgen:repr packed // want `unsupported representation "packed", only align\(cache\) is supported`
type G2 string

//wrapgen:preset everything // want `unknown preset "everything"`
//wrapgen:derive Clone // want `unknown directive "//wrapgen:derive"`
type H string
