package auth

import (
	"testing"
	"time"

	"trainBooker/internal/config"
	"trainBooker/internal/lib/logger/handlers/slogdiscard"
	"trainBooker/internal/models"
	"trainBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStorage struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStorage) SaveUser(username, passHash string) (int, error) {
	if _, ok := f.users[username]; ok {
		return 0, storage.ErrUserExists
	}

	id := f.nextID
	f.nextID++
	f.users[username] = &models.User{ID: id, Username: username, PassHash: passHash}

	return id, nil
}

func (f *fakeUserStorage) UserByUsername(username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}

	return user, nil
}

func newTestAuth(t *testing.T, tokenTTL time.Duration) (*Auth, *fakeUserStorage) {
	t.Helper()

	users := newFakeUserStorage()
	cfg := config.Auth{
		JWTSecret: "test-secret",
		AdminKey:  "test-admin-key",
		TokenTTL:  tokenTTL,
	}

	return New(slogdiscard.NewDiscardLogger(), users, cfg), users
}

func TestRegisterLoginVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuth(t, time.Hour)

	userID, err := a.RegisterNewUser("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, 1, userID)

	token, err := a.Login("alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := a.VerifySession(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	t.Parallel()

	a, users := newTestAuth(t, time.Hour)

	_, err := a.RegisterNewUser("alice", "pw1")
	require.NoError(t, err)

	user, err := users.UserByUsername("alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", user.PassHash)
	assert.NotContains(t, user.PassHash, "pw1")
}

func TestRegisterDuplicateUser(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuth(t, time.Hour)

	_, err := a.RegisterNewUser("alice", "pw1")
	require.NoError(t, err)

	_, err = a.RegisterNewUser("alice", "pw2")
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuth(t, time.Hour)

	_, err := a.RegisterNewUser("alice", "pw1")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "Unknown user", username: "bob", password: "pw1"},
		{name: "Wrong password", username: "alice", password: "wrong"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := a.Login(tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestVerifySessionRejectsBadTokens(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuth(t, time.Hour)

	_, err := a.RegisterNewUser("alice", "pw1")
	require.NoError(t, err)

	token, err := a.Login("alice", "pw1")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "Empty token", token: ""},
		{name: "Garbage token", token: "not-a-token"},
		{name: "Tampered token", token: token + "x"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := a.VerifySession(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifySessionRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuth(t, -time.Minute)

	_, err := a.RegisterNewUser("alice", "pw1")
	require.NoError(t, err)

	token, err := a.Login("alice", "pw1")
	require.NoError(t, err)

	_, err = a.VerifySession(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuth(t, time.Hour)
	other, _ := newTestAuth(t, time.Hour)
	other.secret = []byte("other-secret")

	_, err := other.RegisterNewUser("alice", "pw1")
	require.NoError(t, err)

	token, err := other.Login("alice", "pw1")
	require.NoError(t, err)

	_, err = a.VerifySession(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAdminKey(t *testing.T) {
	t.Parallel()

	a, _ := newTestAuth(t, time.Hour)

	assert.NoError(t, a.VerifyAdminKey("test-admin-key"))
	assert.ErrorIs(t, a.VerifyAdminKey("wrong-key"), ErrBadAdminKey)
	assert.ErrorIs(t, a.VerifyAdminKey(""), ErrBadAdminKey)
}
