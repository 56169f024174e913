// Package ident generates the string identifiers used for rooms,
// proposals and votes.
package ident

import "github.com/google/uuid"

// New returns a fresh identifier. A random UUID is collision-resistant
// enough that callers never check the result against existing keys.
func New() string {
	return uuid.NewString()
}
