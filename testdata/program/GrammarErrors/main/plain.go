package main

//wrapgen:impl AsRef
type Plain int
