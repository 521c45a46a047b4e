// Package auth implements the PIN gate in front of the app. It is a static
// secret comparison with a persisted session marker; hashing, rate limiting
// and lockout are deliberately absent.
package auth

import (
	"crypto/subtle"

	"lifetrack/internal/errors"
	"lifetrack/internal/storage"
)

// PinKey is the store key the session marker persists under.
const PinKey = "userPin"

// Gate checks a candidate PIN against the configured secret.
type Gate struct {
	store storage.Store
	pin   string
}

// NewGate creates a gate over the given store with the configured PIN.
func NewGate(store storage.Store, pin string) *Gate {
	return &Gate{store: store, pin: pin}
}

// Verify compares the candidate against the configured PIN and persists the
// session marker on success. On failure it returns one generic auth error,
// whatever the cause.
func (g *Gate) Verify(candidate string) error {
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.pin)) != 1 {
		return errors.NewAuthError()
	}
	if err := g.store.Set(PinKey, []byte(candidate)); err != nil {
		return errors.NewAuthError()
	}
	return nil
}

// Authenticated reports whether a session marker is present.
func (g *Gate) Authenticated() bool {
	_, ok, err := g.store.Get(PinKey)
	return err == nil && ok
}

// Logout removes the session marker.
func (g *Gate) Logout() error {
	return g.store.Remove(PinKey)
}
