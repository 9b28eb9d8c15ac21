package repositories

import (
	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository - вишлист покупателя
type WishlistRepository struct{}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

// Add добавляет товар в вишлист. Повторное добавление - no-op.
func (r *WishlistRepository) Add(db *gorm.DB, userID, productID uint) error {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	return db.Where("user_id = ? AND product_id = ?", userID, productID).
		FirstOrCreate(&item).Error
}

// Remove удаляет товар из вишлиста, ErrNotFound если его там не было
func (r *WishlistRepository) Remove(db *gorm.DB, userID, productID uint) error {
	result := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser возвращает вишлист пользователя с товарами
func (r *WishlistRepository) ListByUser(db *gorm.DB, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := db.Preload("Product").Where("user_id = ?", userID).
		Order("id").Find(&items).Error
	return items, err
}
