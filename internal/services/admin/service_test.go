package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"restaurant-backend/internal/logger"
	"restaurant-backend/internal/models"
)

type fakeStore struct {
	admins map[string]models.Admin
}

func (f *fakeStore) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeStore{admins: map[string]models.Admin{
		"alice": {ID: 1, Username: "alice", PasswordHash: string(hash), Role: "ADMIN", Active: true},
		"bob":   {ID: 2, Username: "bob", PasswordHash: string(hash), Role: "ADMIN", Active: false},
	}}

	return NewService(store, logger.New("admin-service-test"))
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Username)
	assert.True(t, svc.Verify(resp.Token))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "mallory", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "bob", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)

	svc.Logout(resp.Token)
	assert.False(t, svc.Verify(resp.Token))
}

func TestVerifyUnknownToken(t *testing.T) {
	svc := newTestService(t)
	assert.False(t, svc.Verify("not-a-token"))
}
