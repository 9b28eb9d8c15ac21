package repositories

import (
	"errors"
	"time"

	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// AccessTokenRepository - учет выданных bearer-токенов
type AccessTokenRepository struct{}

func NewAccessTokenRepository() *AccessTokenRepository {
	return &AccessTokenRepository{}
}

func (r *AccessTokenRepository) Create(db *gorm.DB, token *models.AccessToken) error {
	return db.Create(token).Error
}

func (r *AccessTokenRepository) FindByJTI(db *gorm.DB, jti string) (*models.AccessToken, error) {
	var token models.AccessToken
	err := db.Where("jti = ?", jti).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// RevokeByJTI помечает ровно один токен отозванным.
// Повторный отзыв уже отозванного токена - no-op без ошибки.
func (r *AccessTokenRepository) RevokeByJTI(db *gorm.DB, jti string) error {
	return db.Model(&models.AccessToken{}).Where("jti = ?", jti).
		Update("revoked", true).Error
}

// RevokeAllForUser отзывает все токены пользователя (после сброса пароля)
func (r *AccessTokenRepository) RevokeAllForUser(db *gorm.DB, userID uint) error {
	return db.Model(&models.AccessToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

// DeleteExpired чистит просроченные записи
func (r *AccessTokenRepository) DeleteExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).
		Delete(&models.AccessToken{}).Error
}
