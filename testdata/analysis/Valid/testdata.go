//go:build wrapgen

package testdata

import (
	"bytes"
	"time"
)

// Token is an opaque token.
//
//wrapgen:preset general // ok
//wrapgen:impl AsRef[[]byte] // ok
//wrapgen:impl Debug // ok
type Token string

//wrapgen:impl AsMut // ok
//wrapgen:impl AsMut[*bytes.Buffer] // ok
//wrapgen:impl DerefMut // ok
type Buffer *bytes.Buffer

// Timeout is gofmt'ed with directives at the end.
//
//wrapgen:impl BorrowMut // ok
//wrapgen:impl DebugName // ok
//wrapgen:repr align(cache) // ok
type Timeout struct {
	d     time.Duration
	retry int `wrapgen:"default=3"`
}

//wrapgen:impl AsRef // ok
//wrapgen:impl From // ok
type Set[K comparable] map[K]struct{}

type Alias = Token
