// Package id generates entity identifiers. Identifiers are random UUIDs, so
// uniqueness does not depend on creation-time clocks and rapid successive
// creations cannot collide.
package id

import "github.com/google/uuid"

// New returns a fresh unique identifier.
func New() string {
	return uuid.NewString()
}
