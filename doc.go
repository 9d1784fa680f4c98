// Package wrapgen generates newtype wrappers from declarations with
// directives.
//
// A wrapper hides an inner value behind a distinct named type so that values
// of the same representation cannot be mixed up by accident. Writing one by
// hand means a struct, a constructor, and a handful of accessors for every
// wrapper. Wrapgen writes them for you from a short declaration.
//
// To start with Wrapgen, add a build constraint to files declaring wrappers:
//
//	//go:build wrapgen
//
// Every type declared in such a file is a wrapper. Capabilities are requested
// with directives in its doc comment:
//
//	// source:
//	//wrapgen:impl AsRef
//	//wrapgen:impl From
//	type Token string
//
//	// generated: (simplified)
//	type Token struct {
//		inner string
//	}
//
//	func newToken(inner string) Token { return Token{inner: inner} }
//	func (w Token) AsRef() string     { return w.inner }
//	func (w Token) AsInner() string   { return w.inner }
//	func (Token) From(inner string) Token { return newToken(inner) }
//	func TokenFrom(inner string) Token    { return newToken(inner) }
//
// After declaring wrappers, run the wrapgen command. It will generate
// wrapgen_gen.go for your package:
//
//	go run github.com/sublee/wrapgen/cmd/wrapgen
//
// # Shapes
//
// A wrapper of a non-struct type is a tuple wrapper. Its inner value is stored
// in the unexported field "inner". A wrapper of a struct type is a record
// wrapper. Its first field is the inner value and the other fields are extra
// state. Extra fields may have default values in the "wrapgen" struct tag:
//
//	//wrapgen:impl Deref
//	type Counter struct {
//		Value int64
//		step  int64 `wrapgen:"default=1"`
//	}
//
// The constructor, named newCounter or NewCounter by the case of the inner
// field, fills extra fields with their default values. A record wrapper with
// an extra field without a default value has no constructor.
//
// # Capabilities
//
// The capability tags of "//wrapgen:impl" are:
//
//	AsRef       AsRef() T, AsInner() T
//	AsMut       AsMut() *T, AsInnerMut() *T
//	ConstAsMut  same as AsMut
//	Borrow      Borrow() T
//	BorrowMut   Borrow() T, BorrowMut() *T
//	Deref       Deref() T
//	DerefMut    Deref() T, DerefMut() *T
//	From        From(T) W, and the package function WFrom(T) W
//	Debug       Format(fmt.State, rune) formatting the inner value
//	DebugName   Format(fmt.State, rune) printing the type name only
//
// A target type converts the inner value to another type whose underlying
// type is identical. The method is named after the target type except Deref
// and DerefMut:
//
//	//wrapgen:impl AsRef[[]byte]  // AsRefBytes() []byte
//	//wrapgen:impl AsMut[Celsius] // AsMutCelsius() *Celsius
//
// "//wrapgen:preset general" requests AsRef, Borrow and From at once.
//
// # Representation
//
// "//wrapgen:repr align(cache)" puts a [CachePad] before and after the fields
// of the wrapper so that they share no cache line with whatever precedes or
// follows the wrapper. It must follow all "//wrapgen:impl" directives.
//
// # Diagnostics
//
// Declarations which do not match the grammar, duplicate methods, and name
// conflicts are reported at generation time with their positions:
//
//	token.go:5:1: duplicate method Token.Borrow generated for Borrow and BorrowMut at token.go:4:1
package wrapgen

//go:generate go run ./internal/cmd/gencacheline -o .
