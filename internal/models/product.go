package models

import "gorm.io/datatypes"

type Product struct {
	BaseModel
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `json:"description,omitempty"`
	Price       float64        `gorm:"not null" json:"price"`
	Stock       int            `gorm:"not null" json:"stock"`
	IsSponsored bool           `gorm:"not null;default:false" json:"is_sponsored"`
	CompanyID   uint           `gorm:"not null;index" json:"company_id"`
	Images      datatypes.JSON `json:"images,omitempty"`

	// Relations (загружаются только явным Preload, никакого lazy loading)
	Company    *Company         `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Features   []ProductFeature `gorm:"foreignKey:ProductID" json:"features,omitempty"`
	Categories []Category       `gorm:"many2many:product_categories" json:"categories,omitempty"`
	Tags       []Tag            `gorm:"many2many:product_tags" json:"tags,omitempty"`
}

// ProductFeature - характеристика товара (например color=red, size=large)
type ProductFeature struct {
	BaseModel
	ProductID    uint   `gorm:"not null;index" json:"product_id"`
	FeatureType  string `gorm:"size:255;not null" json:"feature_type"`
	FeatureValue string `gorm:"size:255;not null" json:"feature_value"`
}

type Category struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

type Tag struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`
}

// WishlistItem - позиция вишлиста покупателя, пара (user, product) уникальна
type WishlistItem struct {
	BaseModel
	UserID    uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
