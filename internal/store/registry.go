// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns the in-memory account registry and its persistence.
//
// The registry is the single authoritative id→user mapping of the process.
// One mutex guards the whole mapping: id generation, the uniqueness check
// and the insertion of a signup are a single critical section, otherwise two
// concurrent signups could commit the same username or collide on an id.
package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/models"
)

// idDrawAttempts bounds random id generation. Below ~1000/2^32 id-space
// utilization a draw practically never collides; the sequential fallback
// trades uniformity for guaranteed termination.
const idDrawAttempts = 1000

// Persistence is the collaborator the registry loads from and saves to.
// It stores the full username→(id, password) relation as one document.
type Persistence interface {
	Load() (map[string]Record, error)
	Save(map[string]Record) error
}

// Registry is the process-wide account store: the id→user mapping, the
// password side-table keyed by id, and the insertion order used for
// deterministic iteration. All access goes through one mutex.
type Registry struct {
	mu        sync.Mutex
	users     map[uint32]models.User
	passwords map[uint32]string
	order     []uint32

	persist Persistence
	logger  *logger.Logger

	// draw produces id candidates; replaced in tests to force collisions.
	draw func() uint32
}

// NewRegistry builds a registry and populates it from the persistence
// collaborator. An unreadable or corrupt document is returned as an error;
// the caller must treat it as fatal and not start with empty state.
func NewRegistry(persist Persistence, logger *logger.Logger) (*Registry, error) {
	logger.Debug().Msg("creating account registry")

	r := &Registry{
		users:     make(map[uint32]models.User),
		passwords: make(map[uint32]string),
		persist:   persist,
		logger:    logger,
		draw:      rand.Uint32,
	}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// Reload replaces the entire in-memory state with the persisted document.
// In-memory mutations made since the last Save are discarded.
func (r *Registry) Reload() error {
	doc, err := r.persist.Load()
	if err != nil {
		return fmt.Errorf("loading account registry: %w", err)
	}

	users := make(map[uint32]models.User, len(doc))
	passwords := make(map[uint32]string, len(doc))
	for username, rec := range doc {
		if prev, dup := users[rec.UserID]; dup {
			return fmt.Errorf("%w: id %d claimed by both %q and %q",
				ErrCorruptDocument, rec.UserID, prev.Username, username)
		}
		users[rec.UserID] = models.User{UserID: rec.UserID, Username: username}
		passwords[rec.UserID] = rec.Password
	}

	// the document is keyed by username, so rebuild a stable iteration
	// order by ascending id
	order := make([]uint32, 0, len(users))
	for id := range users {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	r.mu.Lock()
	r.users = users
	r.passwords = passwords
	r.order = order
	r.mu.Unlock()

	r.logger.Info().Int("users", len(users)).Msg("account registry loaded")
	return nil
}

// Save flushes the full mapping to the persistence collaborator,
// overwriting any prior document.
func (r *Registry) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveLocked()
}

// saveLocked serializes and persists the current state. Callers hold r.mu;
// the persistence write is a local file operation so holding the lock
// across it is acceptable.
func (r *Registry) saveLocked() error {
	doc := make(map[string]Record, len(r.users))
	for id, u := range r.users {
		doc[u.Username] = Record{UserID: id, Password: r.passwords[id]}
	}

	if err := r.persist.Save(doc); err != nil {
		return fmt.Errorf("saving account registry: %w", err)
	}
	return nil
}

// CreateUser runs the signup transaction: uniqueness check, id generation,
// insertion of the user and its credential, and persistence, all under one
// lock acquisition.
//
// Returns [ErrUsernameTaken] without mutating anything when the username is
// already in use, or a wrapped persistence error if the post-insert save
// fails (the insertion itself stays in memory in that case).
func (r *Registry) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usernameExistsLocked(username) {
		return models.User{}, ErrUsernameTaken
	}

	id := r.generateIDLocked()
	user := models.User{UserID: id, Username: username}
	r.insertLocked(user, password)

	if err := r.saveLocked(); err != nil {
		log.Err(err).Uint32("id", id).Msg("persisting signup failed")
		return models.User{}, err
	}

	log.Debug().Uint32("id", id).Str("username", username).Msg("user created")
	return user, nil
}

// SeedUsers inserts n debug accounts with generated usernames and the fixed
// password "password". Unlike CreateUser it neither checks username
// uniqueness nor persists; it exists for the manual seeding endpoint.
func (r *Registry) SeedUsers(n int, nextName func() string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for range n {
		id := r.generateIDLocked()
		r.insertLocked(models.User{UserID: id, Username: nextName()}, "password")
	}
}

func (r *Registry) insertLocked(user models.User, password string) {
	r.users[user.UserID] = user
	r.passwords[user.UserID] = password
	r.order = append(r.order, user.UserID)
}

// generateIDLocked draws a candidate uniformly from [0, 2^32) and retries
// on collision up to idDrawAttempts times, then falls back to
// (max existing id)+1, or 0 for an empty registry. Callers hold r.mu.
func (r *Registry) generateIDLocked() uint32 {
	for range idDrawAttempts {
		candidate := r.draw()
		if _, taken := r.users[candidate]; taken {
			continue
		}
		return candidate
	}

	var fallback uint32
	for id := range r.users {
		if id >= fallback {
			fallback = id + 1
		}
	}
	return fallback
}

// UsernameExists reports whether an account with exactly this username
// (case-sensitive) exists.
func (r *Registry) UsernameExists(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.usernameExistsLocked(username)
}

func (r *Registry) usernameExistsLocked(username string) bool {
	for _, u := range r.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// LookupByUsername returns the id of the account with exactly this
// username, or ok=false if absent.
func (r *Registry) LookupByUsername(username string) (id uint32, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u.UserID, true
		}
	}
	return 0, false
}

// User returns the account with the given id.
func (r *Registry) User(id uint32) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	return u, ok
}

// Password returns the stored credential for id from the side-table.
// ok=false means the side-table has no entry for an id; callers must treat
// that as a store consistency violation, distinct from an unknown user.
func (r *Registry) Password(id uint32) (password string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	password, ok = r.passwords[id]
	return password, ok
}

// Users returns a snapshot of all accounts in insertion order.
func (r *Registry) Users() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users
}

// Count returns the number of registered accounts.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
