// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/account-registry/internal/code"
	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/store"
	"github.com/MKhiriev/account-registry/models"
)

// searchLimit caps the number of substring matches returned by a search.
// An exact short-code match is allowed to exceed the cap.
const searchLimit = 50

// queryService is the concrete implementation of [QueryService].
type queryService struct {
	accounts store.AccountStore
	logger   *logger.Logger
}

// NewQueryService constructs a [QueryService] over the given registry.
func NewQueryService(accounts store.AccountStore, logger *logger.Logger) QueryService {
	return &queryService{
		accounts: accounts,
		logger:   logger,
	}
}

// Search runs the dual-mode user search.
//
// First every account whose username contains query case-insensitively is
// collected, in registry iteration order, up to searchLimit entries. Then,
// if query itself decodes to the short code of an existing user, that user
// is promoted to the front of the results: moved there when already
// matched, inserted there (cap-exempt) otherwise.
//
// Tie-breaks among substring matches are iteration order; there is no
// alphabetical or relevance ranking.
func (q *queryService) Search(ctx context.Context, query string) []models.QueryMatch {
	log := logger.FromContext(ctx)

	needle := strings.ToLower(query)
	matches := make([]models.QueryMatch, 0, searchLimit)
	for _, u := range q.accounts.Users() {
		if len(matches) == searchLimit {
			break
		}
		if strings.Contains(strings.ToLower(u.Username), needle) {
			matches = append(matches, models.QueryMatch{
				UserID:   u.UserID,
				Code:     code.Encode(u.UserID),
				Username: u.Username,
			})
		}
	}

	if id, ok := code.Decode(query); ok {
		if u, exists := q.accounts.User(id); exists {
			matches = promote(matches, models.QueryMatch{
				UserID:   u.UserID,
				Code:     code.Encode(u.UserID),
				Username: u.Username,
			})
		}
	}

	log.Debug().Str("query", query).Int("matches", len(matches)).Msg("user search done")
	return matches
}

// promote moves the entry for match.UserID to the front of matches, adding
// it when absent.
func promote(matches []models.QueryMatch, match models.QueryMatch) []models.QueryMatch {
	for i, m := range matches {
		if m.UserID == match.UserID {
			copy(matches[1:i+1], matches[:i])
			matches[0] = m
			return matches
		}
	}

	return append([]models.QueryMatch{match}, matches...)
}

// LookupUsername resolves an exact username to its id, or
// [store.ErrNoUserWasFound].
func (q *queryService) LookupUsername(ctx context.Context, username string) (uint32, error) {
	id, ok := q.accounts.LookupByUsername(username)
	if !ok {
		return 0, store.ErrNoUserWasFound
	}
	return id, nil
}

// CodeFor renders the short code of a user id.
func (q *queryService) CodeFor(userID uint32) string {
	return code.Encode(userID)
}
