//go:build wrapgen

package main

import "strings"

var names = map[int64]string{7: "ALICE"}

func lookup(id ID) string {
	return strings.ToLower(names[id.AsRef()])
}
