// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/account-registry/internal/config"
	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/store"
	"github.com/MKhiriev/account-registry/internal/utils"
	"github.com/MKhiriev/account-registry/models"
)

// authService is the concrete implementation of [AuthService].
//
// Passwords are stored and compared in clear text. That matches the system
// this service replaces; it is a known weakness documented in DESIGN.md,
// not an oversight.
type authService struct {
	// accounts is the shared registry all workflows read and mutate.
	accounts store.AccountStore

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] over the given registry with
// token parameters from cfg. The returned service holds no mutable state of
// its own and is safe for concurrent use.
func NewAuthService(accounts store.AccountStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:      accounts,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates an existing user.
//
// Outcomes, in check order:
//   - UsernameNotFound when no account has the username;
//   - PasswordNotSet when the username resolved but the credential
//     side-table has no entry, a store consistency violation surfaced
//     distinctly so it is not mistaken for a normal user error;
//   - PasswordWrong on an exact-compare mismatch;
//   - Success(id) otherwise.
//
// The error return is ErrInvalidDataProvided for empty credential fields.
func (a *authService) Login(ctx context.Context, creds models.LoginInformation) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	id, ok := a.accounts.LookupByUsername(creds.Username)
	if !ok {
		return models.LoginResult{Outcome: models.OutcomeUsernameNotFound}, nil
	}

	stored, ok := a.accounts.Password(id)
	if !ok {
		log.Error().Uint32("id", id).Msg("credential side-table has no entry for a known user")
		return models.LoginResult{Outcome: models.OutcomePasswordNotSet}, nil
	}

	if stored != creds.Password {
		return models.LoginResult{Outcome: models.OutcomePasswordWrong}, nil
	}

	log.Debug().Uint32("id", id).Msg("user logged in")
	return models.Success(id), nil
}

// Signup creates a new account.
//
// A taken username yields UsernameTaken with no mutation; otherwise the
// registry runs the atomic signup transaction (uniqueness check, id
// generation, insertion, persistence under one lock) and Success(id) is
// returned.
func (a *authService) Signup(ctx context.Context, creds models.LoginInformation) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.LoginResult{}, ErrInvalidDataProvided
	}

	user, err := a.accounts.CreateUser(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.LoginResult{Outcome: models.OutcomeUsernameTaken}, nil
		}
		log.Err(err).Str("username", creds.Username).Msg("signup transaction failed")
		return models.LoginResult{}, fmt.Errorf("signup transaction failed: %w", err)
	}

	log.Debug().Uint32("id", user.UserID).Str("username", user.Username).Msg("user signed up")
	return models.Success(user.UserID), nil
}

// CreateToken issues a signed JWT for the given user id, signed with the
// configured key and carrying the configured issuer.
func (a *authService) CreateToken(ctx context.Context, userID uint32) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
