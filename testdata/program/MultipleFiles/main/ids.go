//go:build wrapgen

package main

type (
	// UserID identifies a user.
	//
	//wrapgen:impl AsRef
	//wrapgen:impl From
	UserID int64

	// ID is kept as an alias.
	ID = UserID
)
