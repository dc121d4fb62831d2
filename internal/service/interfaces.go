package service

import (
	"context"

	"github.com/MKhiriev/account-registry/models"
)

// AuthService runs the login and signup workflows against the shared
// account registry and owns the JWT token lifecycle.
//
// Login and Signup return a [models.LoginResult] value for every
// business-rule outcome; the error return is reserved for input errors
// (ErrInvalidDataProvided) and persistence failures.
type AuthService interface {
	Login(ctx context.Context, creds models.LoginInformation) (models.LoginResult, error)
	Signup(ctx context.Context, creds models.LoginInformation) (models.LoginResult, error)
	CreateToken(ctx context.Context, userID uint32) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// QueryService answers username/short-code searches over the registry.
// Callers must have passed AuthService.Login (or token verification) before
// invoking Search; the authorization gate lives in the request layer, but
// the only-authenticated-callers contract belongs here.
type QueryService interface {
	Search(ctx context.Context, query string) []models.QueryMatch
	LookupUsername(ctx context.Context, username string) (uint32, error)
	CodeFor(userID uint32) string
}
