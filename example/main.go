//go:build wrapgen

// Command wrapgenexample shows wrappers generated by Wrapgen. Run the
// generator in this directory before running it:
//
//	go run github.com/sublee/wrapgen/cmd/wrapgen
package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sublee/wrapgen"
)

// UserID identifies a user. It cannot be mixed up with other int64 values.
//
//wrapgen:preset general
//wrapgen:impl Debug
type UserID int64

// Email is an email address.
//
//wrapgen:impl AsRef
//wrapgen:impl AsRef[[]byte]
//wrapgen:impl From
type Email string

// Password never leaks through formatting.
//
//wrapgen:impl Borrow
//wrapgen:impl DebugName
type Password string

// Profile is a record wrapper. Extra fields have default values, and struct
// tags of the fields are kept.
//
//wrapgen:impl Deref
//wrapgen:impl From
type Profile struct {
	Name    string `yaml:"name"`
	Retries int    `yaml:"retries" wrapgen:"default=3"`
	Admin   bool   `yaml:"admin,omitempty" wrapgen:"default=false"`
}

// Counter is updated by many goroutines. The padding keeps it off the cache
// line of its neighbors.
//
//wrapgen:impl AsMut
//wrapgen:impl DerefMut
//wrapgen:repr align(cache)
type Counter uint64

func main() {
	// Output: 42
	id := UserIDFrom(42)
	fmt.Println(id)

	// Output: alice@example.com 17
	email := wrapgen.Into[Email]("alice@example.com")
	fmt.Println(email.AsRef(), len(email.AsRefBytes()))

	// Output: Password
	pw := newPassword("hunter2")
	fmt.Println(pw)

	// Output: name: Alice
	// retries: 3
	profile := NewProfile("Alice")
	out, err := yaml.Marshal(profile)
	if err != nil {
		panic(err)
	}
	fmt.Print(string(out))

	// Output: 3
	var c Counter
	for range 3 {
		*c.DerefMut()++
	}
	fmt.Println(c.Deref())
}
