package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/service"
	"github.com/MKhiriev/account-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccounts implements store.AccountStore for handler tests.
// Overridable fn fields mirror the mock style of the service tests.
type stubAccounts struct {
	saveFn   func() error
	reloadFn func() error
	seedFn   func(n int, nextName func() string)
	usersFn  func() []models.User
}

func (s *stubAccounts) Save() error {
	if s.saveFn == nil {
		return nil
	}
	return s.saveFn()
}

func (s *stubAccounts) Reload() error {
	if s.reloadFn == nil {
		return nil
	}
	return s.reloadFn()
}

func (s *stubAccounts) SeedUsers(n int, nextName func() string) {
	if s.seedFn != nil {
		s.seedFn(n, nextName)
	}
}

func (s *stubAccounts) Users() []models.User {
	if s.usersFn == nil {
		return nil
	}
	return s.usersFn()
}

func (s *stubAccounts) Count() int { return len(s.Users()) }

func (s *stubAccounts) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	return models.User{}, nil
}
func (s *stubAccounts) LookupByUsername(username string) (uint32, bool) { return 0, false }
func (s *stubAccounts) UsernameExists(username string) bool             { return false }
func (s *stubAccounts) User(id uint32) (models.User, bool)              { return models.User{}, false }
func (s *stubAccounts) Password(id uint32) (string, bool)               { return "", false }

// newOpsHandler wires a Handler around the given account store stub.
func newOpsHandler(t *testing.T, accounts *stubAccounts) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  &mockAuthService{},
		QueryService: &mockQueryService{},
	}
	return NewHandler(svcs, accounts, logger.Nop())
}

// TestIndex verifies the liveness banner.
func TestIndex(t *testing.T) {
	h := newOpsHandler(t, &stubAccounts{})
	rec := httptest.NewRecorder()

	h.index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "can you understand me?", rec.Body.String())
}

// TestSave verifies the success body and the 500 on persistence failure.
func TestSave(t *testing.T) {
	h := newOpsHandler(t, &stubAccounts{})
	rec := httptest.NewRecorder()
	h.save(rec, httptest.NewRequest(http.MethodGet, "/save", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", rec.Body.String())

	failing := &stubAccounts{saveFn: func() error { return errors.New("disk full") }}
	h = newOpsHandler(t, failing)
	rec = httptest.NewRecorder()
	h.save(rec, httptest.NewRequest(http.MethodGet, "/save", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestLoad verifies the reload route.
func TestLoad(t *testing.T) {
	reloaded := false
	h := newOpsHandler(t, &stubAccounts{reloadFn: func() error { reloaded = true; return nil }})
	rec := httptest.NewRecorder()

	h.load(rec, httptest.NewRequest(http.MethodGet, "/load", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", rec.Body.String())
	assert.True(t, reloaded)
}

// TestGenerateUsers verifies the seeding route through the router (the
// count rides in the URL) and its bounds checking.
func TestGenerateUsers(t *testing.T) {
	var seeded int
	h := newOpsHandler(t, &stubAccounts{seedFn: func(n int, nextName func() string) {
		seeded = n
		require.NotEmpty(t, nextName())
	}})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/generate_users/25", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", rec.Body.String())
	assert.Equal(t, 25, seeded)

	for _, path := range []string{"/generate_users/-1", "/generate_users/999999", "/generate_users/abc"} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}

// TestDebug verifies the pretty-printed id→user dump.
func TestDebug(t *testing.T) {
	h := newOpsHandler(t, &stubAccounts{usersFn: func() []models.User {
		return []models.User{
			{UserID: 1, Username: "alice"},
			{UserID: 2, Username: "bob"},
		}
	}})
	rec := httptest.NewRecorder()

	h.debug(rec, httptest.NewRequest(http.MethodGet, "/debug", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"1": {"id": 1, "username": "alice"},
		"2": {"id": 2, "username": "bob"}
	}`, rec.Body.String())
}

// TestRoutes_Login verifies the full middleware chain serves the login
// route and stamps a trace id on the response.
func TestRoutes_Login(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, models.LoginInformation) (models.LoginResult, error) {
			return models.Success(7), nil
		},
	}
	svcs := &service.Services{AuthService: auth, QueryService: &mockQueryService{}}
	h := NewHandler(svcs, &stubAccounts{}, logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username": "alice", "password": "secret"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	assert.JSONEq(t, `{"Success": 7}`, rec.Body.String())
}
