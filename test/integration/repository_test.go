package integration

import (
	"testing"
	"time"

	"shopkart_backend/internal/models"
	"shopkart_backend/internal/repositories"
	"shopkart_backend/test/helpers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoUser(email, phone string) *models.User {
	return &models.User{
		Name:         "Repo User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Phone:        phone,
		City:         "Almaty",
		RoleID:       4,
	}
}

// Конфликт по телефону при гонке должен вернуть именно ErrDuplicatePhone,
// а не ошибку про email
func TestUserRepositoryCreate_DuplicatePhone(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	require.NoError(t, repo.Create(db, newRepoUser("first@test.dev", "70000000001")))

	err := repo.Create(db, newRepoUser("second@test.dev", "70000000001"))
	assert.ErrorIs(t, err, repositories.ErrDuplicatePhone)
}

func TestUserRepositoryCreate_DuplicateEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	require.NoError(t, repo.Create(db, newRepoUser("taken@test.dev", "70000000001")))

	err := repo.Create(db, newRepoUser("taken@test.dev", "70000000002"))
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

// DeleteExpired убирает только просроченные записи, живые токены не трогает
func TestAccessTokenRepository_DeleteExpired(t *testing.T) {
	db := helpers.NewTestDB(t)
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewAccessTokenRepository()

	user := newRepoUser("tokens@test.dev", "70000000001")
	require.NoError(t, userRepo.Create(db, user))

	expired := &models.AccessToken{
		JTI:       uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	active := &models.AccessToken{
		JTI:       uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, tokenRepo.Create(db, expired))
	require.NoError(t, tokenRepo.Create(db, active))

	require.NoError(t, tokenRepo.DeleteExpired(db))

	_, err := tokenRepo.FindByJTI(db, expired.JTI)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	got, err := tokenRepo.FindByJTI(db, active.JTI)
	require.NoError(t, err)
	assert.Equal(t, active.JTI, got.JTI)
}
