package repositories

import (
	"errors"
	"time"

	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// PasswordResetRepository - одноразовые тикеты сброса пароля
type PasswordResetRepository struct{}

func NewPasswordResetRepository() *PasswordResetRepository {
	return &PasswordResetRepository{}
}

// Replace удаляет старые тикеты email-а и создает новый в одной
// транзакции: у пользователя всегда максимум один действующий тикет,
// и сбой создания не оставляет его вовсе без тикета.
func (r *PasswordResetRepository) Replace(db *gorm.DB, reset *models.PasswordReset) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", reset.Email).Delete(&models.PasswordReset{}).Error; err != nil {
			return err
		}
		return tx.Create(reset).Error
	})
}

// FindValid ищет неистекший тикет по email и хешу токена
func (r *PasswordResetRepository) FindValid(db *gorm.DB, email, tokenHash string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := db.Where("email = ? AND token_hash = ? AND expires_at > ?", email, tokenHash, time.Now()).
		First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reset, nil
}

// Delete удаляет тикет (после успешного сброса)
func (r *PasswordResetRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.PasswordReset{}, id).Error
}
