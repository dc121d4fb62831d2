package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/account-registry/internal/service"
	"github.com/MKhiriev/account-registry/internal/store"
	"github.com/MKhiriev/account-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginAs returns a mock auth service that accepts exactly the given
// credential pair as user id.
func loginAs(username, password string, id uint32) *mockAuthService {
	return &mockAuthService{
		loginFn: func(_ context.Context, creds models.LoginInformation) (models.LoginResult, error) {
			if creds.Username != username {
				return models.LoginResult{Outcome: models.OutcomeUsernameNotFound}, nil
			}
			if creds.Password != password {
				return models.LoginResult{Outcome: models.OutcomePasswordWrong}, nil
			}
			return models.Success(id), nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid.jwt" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: id}, nil
		},
	}
}

// ─────────────────────────────────────────────
// lookup_username
// ─────────────────────────────────────────────

// TestLookupUsername_Found verifies the bare id number response.
func TestLookupUsername_Found(t *testing.T) {
	query := &mockQueryService{
		lookupFn: func(_ context.Context, username string) (uint32, error) {
			require.Equal(t, "alice", username)
			return 7, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, query)
	req := httptest.NewRequest(http.MethodPost, "/lookup_username", strings.NewReader(`{"username": "alice"}`))
	rec := httptest.NewRecorder()

	h.lookupUsername(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `7`, rec.Body.String())
}

// TestLookupUsername_NotFound verifies the 404 path.
func TestLookupUsername_NotFound(t *testing.T) {
	query := &mockQueryService{
		lookupFn: func(context.Context, string) (uint32, error) {
			return 0, store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, &mockAuthService{}, query)
	req := httptest.NewRequest(http.MethodPost, "/lookup_username", strings.NewReader(`{"username": "mallory"}`))
	rec := httptest.NewRecorder()

	h.lookupUsername(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "username not found")
}

// TestLookupUsername_MissingUsername verifies the 400 path.
func TestLookupUsername_MissingUsername(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockQueryService{})
	req := httptest.NewRequest(http.MethodPost, "/lookup_username", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.lookupUsername(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// query_users
// ─────────────────────────────────────────────

// TestQueryUsers_WithCredentials verifies an authenticated search returns
// the match list.
func TestQueryUsers_WithCredentials(t *testing.T) {
	query := &mockQueryService{
		searchFn: func(_ context.Context, q string) []models.QueryMatch {
			require.Equal(t, "ali", q)
			return []models.QueryMatch{
				{UserID: 1, Code: "00000001", Username: "alice"},
				{UserID: 2, Code: "00000002", Username: "alibaba"},
			}
		},
	}

	h := newTestHandler(t, loginAs("alice", "secret", 7), query)
	body := `{"username": "alice", "password": "secret", "query": "ali"}`
	req := httptest.NewRequest(http.MethodPost, "/query_users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.queryUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id": 1, "code": "00000001", "username": "alice"},
		{"id": 2, "code": "00000002", "username": "alibaba"}
	]`, rec.Body.String())
}

// TestQueryUsers_WrongPassword verifies the failed LoginResult is echoed
// with 401 and no search runs.
func TestQueryUsers_WrongPassword(t *testing.T) {
	query := &mockQueryService{
		searchFn: func(context.Context, string) []models.QueryMatch {
			t.Fatal("search must not run for unauthenticated callers")
			return nil
		},
	}

	h := newTestHandler(t, loginAs("alice", "secret", 7), query)
	body := `{"username": "alice", "password": "wrong", "query": "ali"}`
	req := httptest.NewRequest(http.MethodPost, "/query_users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.queryUsers(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `"PasswordWrong"`, rec.Body.String())
}

// TestQueryUsers_BearerToken verifies a valid token replaces in-body
// credentials.
func TestQueryUsers_BearerToken(t *testing.T) {
	query := &mockQueryService{
		searchFn: func(context.Context, string) []models.QueryMatch {
			return []models.QueryMatch{}
		},
	}

	h := newTestHandler(t, loginAs("alice", "secret", 7), query)
	req := httptest.NewRequest(http.MethodPost, "/query_users", strings.NewReader(`{"query": "ali"}`))
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	h.queryUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// TestQueryUsers_InvalidToken verifies an invalid token is a 401.
func TestQueryUsers_InvalidToken(t *testing.T) {
	h := newTestHandler(t, loginAs("alice", "secret", 7), &mockQueryService{})
	req := httptest.NewRequest(http.MethodPost, "/query_users", strings.NewReader(`{"query": "ali"}`))
	req.Header.Set("Authorization", "Bearer forged.jwt")
	rec := httptest.NewRecorder()

	h.queryUsers(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestQueryUsers_MissingCredentials verifies that neither token nor full
// credentials is a 400.
func TestQueryUsers_MissingCredentials(t *testing.T) {
	h := newTestHandler(t, loginAs("alice", "secret", 7), &mockQueryService{})
	req := httptest.NewRequest(http.MethodPost, "/query_users", strings.NewReader(`{"username": "alice", "query": "ali"}`))
	rec := httptest.NewRecorder()

	h.queryUsers(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// get_code
// ─────────────────────────────────────────────

// TestGetCode_Success verifies the login-then-encode flow.
func TestGetCode_Success(t *testing.T) {
	h := newTestHandler(t, loginAs("alice", "secret", 123), &mockQueryService{})
	body := `{"username": "alice", "password": "secret"}`
	req := httptest.NewRequest(http.MethodPost, "/get_code", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.getCode(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"0000007b"`, rec.Body.String())
}

// TestGetCode_AuthFailure verifies the failed LoginResult echo.
func TestGetCode_AuthFailure(t *testing.T) {
	h := newTestHandler(t, loginAs("alice", "secret", 123), &mockQueryService{})
	body := `{"username": "mallory", "password": "x"}`
	req := httptest.NewRequest(http.MethodPost, "/get_code", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.getCode(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `"UsernameNoExist"`, rec.Body.String())
}

// TestGetCode_ServiceError verifies unexpected errors become 500s.
func TestGetCode_ServiceError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginInformation) (models.LoginResult, error) {
			return models.LoginResult{}, errors.New("store exploded")
		},
	}

	h := newTestHandler(t, auth, &mockQueryService{})
	req := httptest.NewRequest(http.MethodPost, "/get_code", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()

	h.getCode(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
