package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/account-registry/internal/config"
	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/store"
	"github.com/MKhiriev/account-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAccounts implements store.AccountStore for unit tests.
// Each method field can be overridden per test case; unset methods return
// zero values.
type mockAccounts struct {
	createUserFn func(ctx context.Context, username, password string) (models.User, error)
	lookupFn     func(username string) (uint32, bool)
	passwordFn   func(id uint32) (string, bool)
	userFn       func(id uint32) (models.User, bool)
	usersFn      func() []models.User
}

func (m *mockAccounts) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	if m.createUserFn == nil {
		return models.User{}, nil
	}
	return m.createUserFn(ctx, username, password)
}

func (m *mockAccounts) LookupByUsername(username string) (uint32, bool) {
	if m.lookupFn == nil {
		return 0, false
	}
	return m.lookupFn(username)
}

func (m *mockAccounts) Password(id uint32) (string, bool) {
	if m.passwordFn == nil {
		return "", false
	}
	return m.passwordFn(id)
}

func (m *mockAccounts) User(id uint32) (models.User, bool) {
	if m.userFn == nil {
		return models.User{}, false
	}
	return m.userFn(id)
}

func (m *mockAccounts) Users() []models.User {
	if m.usersFn == nil {
		return nil
	}
	return m.usersFn()
}

func (m *mockAccounts) UsernameExists(username string) bool {
	_, ok := m.LookupByUsername(username)
	return ok
}

func (m *mockAccounts) Count() int                              { return len(m.Users()) }
func (m *mockAccounts) Save() error                             { return nil }
func (m *mockAccounts) Reload() error                           { return nil }
func (m *mockAccounts) SeedUsers(n int, nextName func() string) {}

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "registry-test",
	TokenDuration: time.Hour,
}

func newAuth(accounts store.AccountStore) AuthService {
	return NewAuthService(accounts, testAppConfig, logger.Nop())
}

// singleUserStore returns a mock holding exactly alice/secret under id 7.
func singleUserStore() *mockAccounts {
	return &mockAccounts{
		lookupFn: func(username string) (uint32, bool) {
			if username == "alice" {
				return 7, true
			}
			return 0, false
		},
		passwordFn: func(id uint32) (string, bool) {
			if id == 7 {
				return "secret", true
			}
			return "", false
		},
	}
}

// TestLogin_Success verifies the happy path yields Success with the
// account's id.
func TestLogin_Success(t *testing.T) {
	auth := newAuth(singleUserStore())

	res, err := auth.Login(context.Background(), models.LoginInformation{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.Success(7), res)
}

// TestLogin_UsernameNotFound verifies the unknown-username outcome.
func TestLogin_UsernameNotFound(t *testing.T) {
	auth := newAuth(singleUserStore())

	res, err := auth.Login(context.Background(), models.LoginInformation{Username: "mallory", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUsernameNotFound, res.Outcome)
}

// TestLogin_PasswordWrong verifies that a wrong (and case-different)
// password is rejected with the PasswordWrong outcome.
func TestLogin_PasswordWrong(t *testing.T) {
	auth := newAuth(singleUserStore())

	for _, pw := range []string{"wrong", "SECRET"} {
		res, err := auth.Login(context.Background(), models.LoginInformation{Username: "alice", Password: pw})
		require.NoError(t, err)
		assert.Equal(t, models.OutcomePasswordWrong, res.Outcome)
	}
}

// TestLogin_PasswordNotSet verifies that a username resolving to an id with
// no credential side-table entry surfaces the consistency violation as
// PasswordNotSet, not as UsernameNotFound.
func TestLogin_PasswordNotSet(t *testing.T) {
	accounts := singleUserStore()
	accounts.passwordFn = func(uint32) (string, bool) { return "", false }
	auth := newAuth(accounts)

	res, err := auth.Login(context.Background(), models.LoginInformation{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomePasswordNotSet, res.Outcome)
}

// TestLogin_InvalidInput verifies that missing fields are an input error,
// never a business outcome.
func TestLogin_InvalidInput(t *testing.T) {
	auth := newAuth(&mockAccounts{})

	_, err := auth.Login(context.Background(), models.LoginInformation{Username: "", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = auth.Login(context.Background(), models.LoginInformation{Username: "alice", Password: ""})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// TestSignup_Success verifies that a fresh username produces Success with
// the id assigned by the registry.
func TestSignup_Success(t *testing.T) {
	accounts := &mockAccounts{
		createUserFn: func(_ context.Context, username, password string) (models.User, error) {
			return models.User{UserID: 42, Username: username}, nil
		},
	}
	auth := newAuth(accounts)

	res, err := auth.Signup(context.Background(), models.LoginInformation{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.Success(42), res)
}

// TestSignup_UsernameTaken verifies the taken-username outcome.
func TestSignup_UsernameTaken(t *testing.T) {
	accounts := &mockAccounts{
		createUserFn: func(context.Context, string, string) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}
	auth := newAuth(accounts)

	res, err := auth.Signup(context.Background(), models.LoginInformation{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUsernameTaken, res.Outcome)
}

// TestSignup_PersistenceFailure verifies that a failing signup transaction
// propagates as an error, not as a login outcome.
func TestSignup_PersistenceFailure(t *testing.T) {
	accounts := &mockAccounts{
		createUserFn: func(context.Context, string, string) (models.User, error) {
			return models.User{}, errors.New("disk full")
		},
	}
	auth := newAuth(accounts)

	_, err := auth.Signup(context.Background(), models.LoginInformation{Username: "bob", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

// TestCreateToken_ParseToken verifies token issuance and validation round
// trip through the service configuration.
func TestCreateToken_ParseToken(t *testing.T) {
	auth := newAuth(&mockAccounts{})

	token, err := auth.CreateToken(context.Background(), 7)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), parsed.UserID)

	_, err = auth.ParseToken(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
