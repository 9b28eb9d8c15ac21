package dto

// ProductFeatureInput - характеристика товара при создании
type ProductFeatureInput struct {
	FeatureType  string `json:"feature_type" validate:"required,max=255"`
	FeatureValue string `json:"feature_value" validate:"required,max=255"`
}

// CreateProductRequest - создание товара.
// company_id обязателен только для super-admin; остальные роли
// всегда создают товар в своей компании.
type CreateProductRequest struct {
	Name        string                `json:"name" validate:"required,max=255"`
	Description string                `json:"description"`
	Price       float64               `json:"price" validate:"required,gte=0"`
	Stock       int                   `json:"stock" validate:"gte=0"`
	IsSponsored bool                  `json:"is_sponsored"`
	CompanyID   *uint                 `json:"company_id"`
	Images      []string              `json:"images" validate:"omitempty,dive,max=2048"`
	Features    []ProductFeatureInput `json:"features" validate:"omitempty,dive"`
	CategoryIDs []uint                `json:"category_ids"`
	TagIDs      []uint                `json:"tag_ids"`
}

// UpdateStockRequest - изменение остатка товара
type UpdateStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// UpdateSponsoredRequest - переключение флага спонсируемости
type UpdateSponsoredRequest struct {
	IsSponsored *bool `json:"is_sponsored" validate:"required"`
}

// AssignCategoriesTagsRequest - замена наборов категорий и тегов товара
type AssignCategoriesTagsRequest struct {
	CategoryIDs []uint `json:"category_ids"`
	TagIDs      []uint `json:"tag_ids"`
}

// CreateCategoryRequest - создание категории
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateTagRequest - создание тега
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ListProductsQuery - фильтры каталога из query-параметров
type ListProductsQuery struct {
	CompanyID   *uint  `form:"company_id"`
	CategoryID  *uint  `form:"category_id"`
	TagID       *uint  `form:"tag_id"`
	IsSponsored *bool  `form:"is_sponsored"`
	Search      string `form:"search"`
}
