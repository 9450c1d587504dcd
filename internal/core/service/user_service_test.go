package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/storefront-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email string) *domain.User {
	t.Helper()
	u, err := repo.Insert(context.Background(), &domain.User{Name: name, Email: email, PasswordHash: "x", Role: domain.RoleClient})
	require.NoError(t, err)
	return u
}

func strPtr(s string) *string { return &s }

func TestUserService_ListNeverNil(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_UpdateName(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	u := seedUser(t, repo, "Awa", "awa@example.com")

	updated, err := svc.UpdateUser(context.Background(), u.ID, domain.UserChanges{Name: strPtr("Awa Diop")})
	require.NoError(t, err)
	assert.Equal(t, "Awa Diop", updated.Name)
	assert.Equal(t, "awa@example.com", updated.Email)
	assert.Equal(t, u.PasswordHash, updated.PasswordHash)
}

func TestUserService_UpdateEmailTakenByAnother(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	u := seedUser(t, repo, "Awa", "awa@example.com")
	seedUser(t, repo, "Moussa", "moussa@example.com")

	_, err := svc.UpdateUser(context.Background(), u.ID, domain.UserChanges{Email: strPtr("moussa@example.com")})
	assert.ErrorIs(t, err, domain.ErrAccountExists)
}

func TestUserService_UpdateEmailToOwnAddress(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	u := seedUser(t, repo, "Awa", "awa@example.com")

	updated, err := svc.UpdateUser(context.Background(), u.ID, domain.UserChanges{Email: strPtr("awa@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "awa@example.com", updated.Email)
}

func TestUserService_UpdateMissing(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	_, err := svc.UpdateUser(context.Background(), "ghost", domain.UserChanges{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	u := seedUser(t, repo, "Awa", "awa@example.com")

	require.NoError(t, svc.DeleteUser(context.Background(), u.ID))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), u.ID), domain.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), u.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
