package repositories

import (
	"errors"

	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// RoleRepository - доступ к справочнику ролей
type RoleRepository struct{}

func NewRoleRepository() *RoleRepository {
	return &RoleRepository{}
}

func (r *RoleRepository) FindByID(db *gorm.DB, id uint) (*models.Role, error) {
	var role models.Role
	err := db.First(&role, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}
