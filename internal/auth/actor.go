// Package auth models the caller identity handed to mutating operations.
// The service does not validate credentials itself; an upstream identity
// collaborator decides who is an administrator and this package only
// carries that capability as an explicit value, never as ambient state.
package auth

import "crypto/subtle"

// Actor is the capability token passed into every mutating call.
type Actor struct {
	Admin bool
}

// Anonymous is the zero capability used for unauthenticated callers.
var Anonymous = Actor{}

// FromBearerToken maps a presented bearer token to an Actor. An empty
// configured token disables admin access entirely.
func FromBearerToken(presented, configured string) Actor {
	if configured == "" || presented == "" {
		return Anonymous
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1 {
		return Actor{Admin: true}
	}
	return Anonymous
}
