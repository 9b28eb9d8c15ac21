package repositories

import (
	"errors"

	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// ProductFilters - фильтры выборки каталога
type ProductFilters struct {
	CompanyID   *uint
	CategoryID  *uint
	TagID       *uint
	IsSponsored *bool
	Search      string
}

// ProductRepository - доступ к каталогу товаров
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Create сохраняет товар вместе с характеристиками и связями many2many
func (r *ProductRepository) Create(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

// FindByID загружает товар со всеми связями
func (r *ProductRepository) FindByID(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	err := db.
		Preload("Company").
		Preload("Features").
		Preload("Categories").
		Preload("Tags").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll возвращает товары по фильтрам
func (r *ProductRepository) FindAll(db *gorm.DB, filters ProductFilters) ([]models.Product, error) {
	query := db.Model(&models.Product{}).
		Preload("Features").
		Preload("Categories").
		Preload("Tags")

	if filters.CompanyID != nil {
		query = query.Where("products.company_id = ?", *filters.CompanyID)
	}
	if filters.IsSponsored != nil {
		query = query.Where("products.is_sponsored = ?", *filters.IsSponsored)
	}
	if filters.Search != "" {
		query = query.Where("products.name LIKE ?", "%"+filters.Search+"%")
	}
	if filters.CategoryID != nil {
		query = query.Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Where("pc.category_id = ?", *filters.CategoryID)
	}
	if filters.TagID != nil {
		query = query.Joins("JOIN product_tags pt ON pt.product_id = products.id").
			Where("pt.tag_id = ?", *filters.TagID)
	}

	var products []models.Product
	err := query.Order("products.id").Find(&products).Error
	return products, err
}

// UpdateStock выставляет остаток товара
func (r *ProductRepository) UpdateStock(db *gorm.DB, productID uint, stock int) error {
	return db.Model(&models.Product{}).Where("id = ?", productID).
		Update("stock", stock).Error
}

// UpdateSponsored переключает флаг спонсируемого товара
func (r *ProductRepository) UpdateSponsored(db *gorm.DB, productID uint, sponsored bool) error {
	return db.Model(&models.Product{}).Where("id = ?", productID).
		Update("is_sponsored", sponsored).Error
}

// ReplaceCategories заменяет набор категорий товара
func (r *ProductRepository) ReplaceCategories(db *gorm.DB, product *models.Product, categories []models.Category) error {
	return db.Model(product).Association("Categories").Replace(categories)
}

// ReplaceTags заменяет набор тегов товара
func (r *ProductRepository) ReplaceTags(db *gorm.DB, product *models.Product, tags []models.Tag) error {
	return db.Model(product).Association("Tags").Replace(tags)
}

// FindCategoriesByIDs загружает категории по списку ID
func (r *ProductRepository) FindCategoriesByIDs(db *gorm.DB, ids []uint) ([]models.Category, error) {
	var categories []models.Category
	err := db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

// FindTagsByIDs загружает теги по списку ID
func (r *ProductRepository) FindTagsByIDs(db *gorm.DB, ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

// CreateCategory создает категорию
func (r *ProductRepository) CreateCategory(db *gorm.DB, category *models.Category) error {
	err := db.Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return err
}

// FindAllCategories возвращает все категории
func (r *ProductRepository) FindAllCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("id").Find(&categories).Error
	return categories, err
}

// CreateTag создает тег
func (r *ProductRepository) CreateTag(db *gorm.DB, tag *models.Tag) error {
	err := db.Create(tag).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return err
}

// FindAllTags возвращает все теги
func (r *ProductRepository) FindAllTags(db *gorm.DB) ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Order("id").Find(&tags).Error
	return tags, err
}
