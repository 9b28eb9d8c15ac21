package database

import (
	"fmt"

	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет автомиграцию всех таблиц
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Role{},
		&models.Company{},
		&models.User{},
		&models.AccessToken{},
		&models.PasswordReset{},
		&models.Product{},
		&models.ProductFeature{},
		&models.Category{},
		&models.Tag{},
		&models.WishlistItem{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	return SeedRoles(db)
}

// SeedRoles создает справочник ролей с фиксированными ID.
// Идемпотентно: существующие записи не трогаются.
func SeedRoles(db *gorm.DB) error {
	for i, name := range models.AllRoles() {
		role := models.Role{Name: name}
		role.ID = uint(i + 1)

		err := db.Where("id = ?", role.ID).FirstOrCreate(&role).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %q: %w", name, err)
		}
	}
	return nil
}
