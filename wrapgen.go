package wrapgen

// The interfaces below match the method sets generated for capabilities. They
// let generic code accept any wrapper of an inner type.

// AsRef is implemented by wrappers with the AsRef capability.
type AsRef[T any] interface {
	AsRef() T
	AsInner() T
}

// AsMut is implemented by pointers to wrappers with the AsMut or ConstAsMut
// capability.
type AsMut[T any] interface {
	AsMut() *T
	AsInnerMut() *T
}

// Borrow is implemented by wrappers with the Borrow capability.
type Borrow[T any] interface {
	Borrow() T
}

// BorrowMut is implemented by pointers to wrappers with the BorrowMut
// capability.
type BorrowMut[T any] interface {
	Borrow[T]
	BorrowMut() *T
}

// Deref is implemented by wrappers with the Deref capability.
type Deref[T any] interface {
	Deref() T
}

// DerefMut is implemented by pointers to wrappers with the DerefMut
// capability.
type DerefMut[T any] interface {
	Deref[T]
	DerefMut() *T
}

// From is implemented by wrappers of T with the From capability. W is the
// wrapper type itself.
type From[T, W any] interface {
	From(inner T) W
}

// Into wraps the inner value into W. W must implement From:
//
//	tok := wrapgen.Into[Token]("hello")
func Into[W From[T, W], T any](inner T) W {
	var zero W
	return zero.From(inner)
}

// Inner returns the inner value of the wrapper.
func Inner[T any](w AsRef[T]) T {
	return w.AsInner()
}
