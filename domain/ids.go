package domain

import "github.com/google/uuid"

// NewID returns a fresh store identifier.
func NewID() string {
	return uuid.NewString()
}

// IsStoreID reports whether id has the canonical shape of a store-issued
// identifier. Client placeholders (timestamps, small integers) never match,
// so callers can tell "not yet persisted" apart from "persisted, maybe stale".
// Existence is not checked.
func IsStoreID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
