package testdata

//wrapgen:impl AsRef // want `wrapgen directive requires "//go:build wrapgen" constraint in the file`
type Plain int
