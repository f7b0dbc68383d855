package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruiter-console/internal/types"
)

func testIdentity() *types.UserIdentity {
	return &types.UserIdentity{Email: "jane@example.com", Role: types.RoleCandidate}
}

func TestLoginPersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := New(path)
	require.NoError(t, err)

	require.NoError(t, store.Login(testIdentity(), "issued-token"))

	assert.Equal(t, "issued-token", store.Token())
	assert.Equal(t, "jane@example.com", store.Identity().Email)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", string(data))
}

func TestLogoutClearsEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Login(testIdentity(), "issued-token"))

	store.Logout()

	// user and token are both zero, never partially authenticated.
	assert.Nil(t, store.Identity())
	assert.Empty(t, store.Token())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewRehydratesOnlyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Login(testIdentity(), "issued-token"))

	// A fresh process sees the token but no identity.
	second, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", second.Token())
	assert.Nil(t, second.Identity())
}

func TestNewWithMissingFile(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Identity())
}

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return token
}

func TestRehydrateIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := New(path)
	require.NoError(t, err)

	token := signedTestToken(t, jwt.MapClaims{
		"sub":       "rec@example.com",
		"role":      "RECRUITER",
		"companyId": float64(12),
	})
	require.NoError(t, store.Login(testIdentity(), token))

	// Simulate a restart: token survives, identity does not.
	restarted, err := New(path)
	require.NoError(t, err)
	require.Nil(t, restarted.Identity())

	user, err := restarted.RehydrateIdentity()
	require.NoError(t, err)
	assert.Equal(t, "rec@example.com", user.Email)
	assert.Equal(t, types.RoleRecruiter, user.Role)
	assert.Equal(t, int64(12), user.CompanyID)
	assert.Equal(t, user, restarted.Identity())
}

func TestRehydrateIdentityWithoutToken(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	_, err = store.RehydrateIdentity()
	var noToken *ErrNoToken
	assert.ErrorAs(t, err, &noToken)
}

func TestRehydrateIdentityRejectsUnusableClaims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store, err := New(path)
	require.NoError(t, err)

	token := signedTestToken(t, jwt.MapClaims{"sub": "rec@example.com"})
	require.NoError(t, store.Login(testIdentity(), token))

	restarted, err := New(path)
	require.NoError(t, err)
	_, err = restarted.RehydrateIdentity()
	assert.Error(t, err)
	assert.Nil(t, restarted.Identity())
}
