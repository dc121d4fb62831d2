package store

import (
	"context"

	"github.com/MKhiriev/account-registry/models"
)

// AccountStore is the registry surface consumed by the service layer.
// [Registry] is the only production implementation; tests substitute mocks.
type AccountStore interface {
	// CreateUser runs the atomic signup transaction.
	CreateUser(ctx context.Context, username, password string) (models.User, error)

	// LookupByUsername resolves an exact, case-sensitive username to an id.
	LookupByUsername(username string) (id uint32, ok bool)

	// UsernameExists reports an exact, case-sensitive username match.
	UsernameExists(username string) bool

	// User returns the account with the given id.
	User(id uint32) (models.User, bool)

	// Password reads the credential side-table; ok=false signals a
	// consistency violation for ids obtained from LookupByUsername.
	Password(id uint32) (password string, ok bool)

	// Users returns a snapshot of all accounts in insertion order.
	Users() []models.User

	// Count returns the number of registered accounts.
	Count() int

	// Save flushes the full mapping to the persistence collaborator.
	Save() error

	// Reload replaces all in-memory state from the persisted document.
	Reload() error

	// SeedUsers inserts n generated debug accounts without persisting.
	SeedUsers(n int, nextName func() string)
}

var _ AccountStore = (*Registry)(nil)
