package services

import (
	"context"
	"encoding/json"

	"shopkart_backend/internal/logger"
	"shopkart_backend/internal/models"
	"shopkart_backend/internal/repositories"
	"shopkart_backend/internal/services/dto"
	"shopkart_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogService - каталог товаров, категории, теги и вишлист
type CatalogService struct {
	productRepo  *repositories.ProductRepository
	wishlistRepo *repositories.WishlistRepository
}

func NewCatalogService(
	productRepo *repositories.ProductRepository,
	wishlistRepo *repositories.WishlistRepository,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		wishlistRepo: wishlistRepo,
	}
}

// resolveCompanyID определяет компанию создаваемого товара.
// super-admin обязан указать компанию явно, остальные всегда
// работают в своей.
func resolveCompanyID(actor *models.User, requested *uint) (uint, *apperrors.AppError) {
	if actor.RoleName() == models.RoleSuperAdmin {
		if requested == nil {
			return 0, apperrors.FieldError("company_id", "This field is required")
		}
		return *requested, nil
	}
	if actor.CompanyID == nil {
		return 0, apperrors.ErrForbidden
	}
	return *actor.CompanyID, nil
}

// authorizeProductAccess проверяет право актора менять товар:
// super-admin может всё, остальные - только товары своей компании.
func authorizeProductAccess(actor *models.User, product *models.Product) *apperrors.AppError {
	if actor.RoleName() == models.RoleSuperAdmin {
		return nil
	}
	if actor.CompanyID == nil || *actor.CompanyID != product.CompanyID {
		return apperrors.ErrForbidden
	}
	return nil
}

// CreateProduct создает товар с характеристиками, категориями и тегами
func (s *CatalogService) CreateProduct(ctx context.Context, db *gorm.DB, actor *models.User, req *dto.CreateProductRequest) (*models.Product, *apperrors.AppError) {
	companyID, appErr := resolveCompanyID(actor, req.CompanyID)
	if appErr != nil {
		return nil, appErr
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		IsSponsored: req.IsSponsored,
		CompanyID:   companyID,
	}

	if len(req.Images) > 0 {
		raw, err := json.Marshal(req.Images)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		product.Images = datatypes.JSON(raw)
	}

	for _, f := range req.Features {
		product.Features = append(product.Features, models.ProductFeature{
			FeatureType:  f.FeatureType,
			FeatureValue: f.FeatureValue,
		})
	}

	if len(req.CategoryIDs) > 0 {
		categories, err := s.productRepo.FindCategoriesByIDs(db, req.CategoryIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if len(categories) != len(req.CategoryIDs) {
			return nil, apperrors.FieldError("category_ids", "One or more categories do not exist")
		}
		product.Categories = categories
	}
	if len(req.TagIDs) > 0 {
		tags, err := s.productRepo.FindTagsByIDs(db, req.TagIDs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if len(tags) != len(req.TagIDs) {
			return nil, apperrors.FieldError("tag_ids", "One or more tags do not exist")
		}
		product.Tags = tags
	}

	if err := s.productRepo.Create(db, product); err != nil {
		logger.CtxWithError(ctx, "failed to create product", err)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "product created",
		"product_id", product.ID, "company_id", companyID)
	return product, nil
}

// ListProducts возвращает товары по фильтрам
func (s *CatalogService) ListProducts(ctx context.Context, db *gorm.DB, query *dto.ListProductsQuery) ([]models.Product, *apperrors.AppError) {
	products, err := s.productRepo.FindAll(db, repositories.ProductFilters{
		CompanyID:   query.CompanyID,
		CategoryID:  query.CategoryID,
		TagID:       query.TagID,
		IsSponsored: query.IsSponsored,
		Search:      query.Search,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

// GetProduct возвращает товар со всеми связями
func (s *CatalogService) GetProduct(ctx context.Context, db *gorm.DB, id uint) (*models.Product, *apperrors.AppError) {
	product, err := s.productRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Product")
		}
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

// UpdateStock выставляет остаток товара
func (s *CatalogService) UpdateStock(ctx context.Context, db *gorm.DB, actor *models.User, productID uint, stock int) (*models.Product, *apperrors.AppError) {
	product, appErr := s.GetProduct(ctx, db, productID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := authorizeProductAccess(actor, product); appErr != nil {
		return nil, appErr
	}

	if err := s.productRepo.UpdateStock(db, productID, stock); err != nil {
		return nil, apperrors.InternalError(err)
	}
	product.Stock = stock

	logger.CtxInfo(ctx, "product stock updated", "product_id", productID, "stock", stock)
	return product, nil
}

// SetSponsored переключает флаг спонсируемости товара
func (s *CatalogService) SetSponsored(ctx context.Context, db *gorm.DB, actor *models.User, productID uint, sponsored bool) (*models.Product, *apperrors.AppError) {
	product, appErr := s.GetProduct(ctx, db, productID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := authorizeProductAccess(actor, product); appErr != nil {
		return nil, appErr
	}

	if err := s.productRepo.UpdateSponsored(db, productID, sponsored); err != nil {
		return nil, apperrors.InternalError(err)
	}
	product.IsSponsored = sponsored

	logger.CtxInfo(ctx, "product sponsored flag updated",
		"product_id", productID, "is_sponsored", sponsored)
	return product, nil
}

// AssignCategoriesTags заменяет наборы категорий и тегов товара
func (s *CatalogService) AssignCategoriesTags(ctx context.Context, db *gorm.DB, actor *models.User, productID uint, req *dto.AssignCategoriesTagsRequest) (*models.Product, *apperrors.AppError) {
	product, appErr := s.GetProduct(ctx, db, productID)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := authorizeProductAccess(actor, product); appErr != nil {
		return nil, appErr
	}

	categories, err := s.productRepo.FindCategoriesByIDs(db, req.CategoryIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(categories) != len(req.CategoryIDs) {
		return nil, apperrors.FieldError("category_ids", "One or more categories do not exist")
	}
	tags, err := s.productRepo.FindTagsByIDs(db, req.TagIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(tags) != len(req.TagIDs) {
		return nil, apperrors.FieldError("tag_ids", "One or more tags do not exist")
	}

	if err := s.productRepo.ReplaceCategories(db, product, categories); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.productRepo.ReplaceTags(db, product, tags); err != nil {
		return nil, apperrors.InternalError(err)
	}

	product.Categories = categories
	product.Tags = tags

	logger.CtxInfo(ctx, "product categories/tags assigned", "product_id", productID)
	return product, nil
}

// CreateCategory создает категорию
func (s *CatalogService) CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, *apperrors.AppError) {
	category := &models.Category{Name: req.Name}
	if err := s.productRepo.CreateCategory(db, category); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateName) {
			return nil, apperrors.FieldError("name", "The name has already been taken")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

// ListCategories возвращает все категории
func (s *CatalogService) ListCategories(ctx context.Context, db *gorm.DB) ([]models.Category, *apperrors.AppError) {
	categories, err := s.productRepo.FindAllCategories(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

// CreateTag создает тег
func (s *CatalogService) CreateTag(ctx context.Context, db *gorm.DB, req *dto.CreateTagRequest) (*models.Tag, *apperrors.AppError) {
	tag := &models.Tag{Name: req.Name}
	if err := s.productRepo.CreateTag(db, tag); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateName) {
			return nil, apperrors.FieldError("name", "The name has already been taken")
		}
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

// ListTags возвращает все теги
func (s *CatalogService) ListTags(ctx context.Context, db *gorm.DB) ([]models.Tag, *apperrors.AppError) {
	tags, err := s.productRepo.FindAllTags(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

// AddToWishlist добавляет товар в вишлист покупателя
func (s *CatalogService) AddToWishlist(ctx context.Context, db *gorm.DB, userID, productID uint) *apperrors.AppError {
	if _, appErr := s.GetProduct(ctx, db, productID); appErr != nil {
		return appErr
	}
	if err := s.wishlistRepo.Add(db, userID, productID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "product added to wishlist", "product_id", productID)
	return nil
}

// RemoveFromWishlist удаляет товар из вишлиста
func (s *CatalogService) RemoveFromWishlist(ctx context.Context, db *gorm.DB, userID, productID uint) *apperrors.AppError {
	err := s.wishlistRepo.Remove(db, userID, productID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Wishlist item")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListWishlist возвращает вишлист пользователя
func (s *CatalogService) ListWishlist(ctx context.Context, db *gorm.DB, userID uint) ([]models.WishlistItem, *apperrors.AppError) {
	items, err := s.wishlistRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}
