//go:build wrapgen

package main

import (
	"fmt"
	"reflect"
	"time"
)

// Retry is a retry policy.
//
//wrapgen:impl From
//wrapgen:impl Deref
type Retry struct {
	Count int           `json:"count"`
	delay time.Duration `wrapgen:"default=time.Second"`
	_     [0]func()
	label string `wrapgen:"default=\"retry\""`
}

func main() {
	r := RetryFrom(3)
	fmt.Println(r.Deref(), r.delay, r.label)
	fmt.Println(NewRetry(5).Count)

	f, _ := reflect.TypeOf(r).FieldByName("Count")
	fmt.Println(f.Tag)

	// Output:
	// 3 1s retry
	// 5
	// json:"count"
}
