package store

import "errors"

// Sentinel errors returned by registry methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to create a new user
	// fails because an account with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNoUserWasFound is returned when a lookup expected to match an
	// account produces no result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCorruptDocument is returned when the persisted users document does
	// not parse against the expected schema or violates the id invariants.
	// A load that fails this way must abort startup: proceeding with a
	// partial or empty store would silently drop users.
	ErrCorruptDocument = errors.New("users document is corrupt")
)
