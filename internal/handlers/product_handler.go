package handlers

import (
	"net/http"

	"shopkart_backend/internal/middleware"
	"shopkart_backend/internal/models"
	"shopkart_backend/internal/services"
	"shopkart_backend/internal/services/dto"
	"shopkart_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ProductHandler - каталог товаров, категории, теги и вишлист
type ProductHandler struct {
	*BaseHandler
	catalogService *services.CatalogService
}

func NewProductHandler(base *BaseHandler, catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

// RegisterRoutes вешает маршруты каталога. Весь каталог за аутентификацией:
// чтение доступно любой роли, мутации - seller/company-admin/super-admin,
// вишлист - только buyer.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)

		manage := products.Group("")
		manage.Use(middleware.RequireRoles(
			models.RoleSuperAdmin, models.RoleCompanyAdmin, models.RoleSeller,
		))
		{
			manage.POST("", h.Create)
			manage.PATCH("/:id/stock", h.UpdateStock)
			manage.PATCH("/:id/sponsored", h.SetSponsored)
			manage.PATCH("/:id/categories-tags", h.AssignCategoriesTags)
		}
	}

	categories := rg.Group("/categories")
	categories.Use(middleware.AuthMiddleware())
	{
		categories.GET("", h.ListCategories)
		categories.POST("", middleware.RequireRoles(
			models.RoleSuperAdmin, models.RoleCompanyAdmin,
		), h.CreateCategory)
	}

	tags := rg.Group("/tags")
	tags.Use(middleware.AuthMiddleware())
	{
		tags.GET("", h.ListTags)
		tags.POST("", middleware.RequireRoles(
			models.RoleSuperAdmin, models.RoleCompanyAdmin,
		), h.CreateTag)
	}

	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RoleBuyer))
	{
		wishlist.GET("", h.ListWishlist)
		wishlist.POST("/:productId", h.AddToWishlist)
		wishlist.DELETE("/:productId", h.RemoveFromWishlist)
	}
}

// Create godoc
// @Summary      Create a product
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "Product data"
// @Success      201 {object} models.Product
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateProductRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	product, appErr := h.catalogService.CreateProduct(c.Request.Context(), db, actor, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// List godoc
// @Summary      List products
// @Security     BearerAuth
// @Tags         products
// @Produce      json
// @Param        company_id query int false "Filter by company"
// @Param        category_id query int false "Filter by category"
// @Param        tag_id query int false "Filter by tag"
// @Param        is_sponsored query bool false "Filter by sponsored flag"
// @Param        search query string false "Search by name"
// @Success      200 {array} models.Product
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	products, appErr := h.catalogService.ListProducts(c.Request.Context(), db, &query)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Get godoc
// @Summary      Get a product by ID
// @Security     BearerAuth
// @Tags         products
// @Produce      json
// @Param        id path int true "Product ID"
// @Success      200 {object} models.Product
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	product, appErr := h.catalogService.GetProduct(c.Request.Context(), db, id)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateStock godoc
// @Summary      Update product stock
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Product ID"
// @Param        request body dto.UpdateStockRequest true "New stock"
// @Success      200 {object} models.Product
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	product, appErr := h.catalogService.UpdateStock(c.Request.Context(), db, actor, id, *req.Stock)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// SetSponsored godoc
// @Summary      Toggle the sponsored flag of a product
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Product ID"
// @Param        request body dto.UpdateSponsoredRequest true "Sponsored flag"
// @Success      200 {object} models.Product
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /products/{id}/sponsored [patch]
func (h *ProductHandler) SetSponsored(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSponsoredRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	product, appErr := h.catalogService.SetSponsored(c.Request.Context(), db, actor, id, *req.IsSponsored)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// AssignCategoriesTags godoc
// @Summary      Replace the categories and tags of a product
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Product ID"
// @Param        request body dto.AssignCategoriesTagsRequest true "Category and tag IDs"
// @Success      200 {object} models.Product
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /products/{id}/categories-tags [patch]
func (h *ProductHandler) AssignCategoriesTags(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.AssignCategoriesTagsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	product, appErr := h.catalogService.AssignCategoriesTags(c.Request.Context(), db, actor, id, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "Category data"
// @Success      201 {object} models.Category
// @Router       /categories [post]
func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	category, appErr := h.catalogService.CreateCategory(c.Request.Context(), db, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// ListCategories godoc
// @Summary      List all categories
// @Security     BearerAuth
// @Tags         catalog
// @Produce      json
// @Success      200 {array} models.Category
// @Router       /categories [get]
func (h *ProductHandler) ListCategories(c *gin.Context) {
	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	categories, appErr := h.catalogService.ListCategories(c.Request.Context(), db)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateTag godoc
// @Summary      Create a tag
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTagRequest true "Tag data"
// @Success      201 {object} models.Tag
// @Router       /tags [post]
func (h *ProductHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	tag, appErr := h.catalogService.CreateTag(c.Request.Context(), db, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}

// ListTags godoc
// @Summary      List all tags
// @Security     BearerAuth
// @Tags         catalog
// @Produce      json
// @Success      200 {array} models.Tag
// @Router       /tags [get]
func (h *ProductHandler) ListTags(c *gin.Context) {
	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	tags, appErr := h.catalogService.ListTags(c.Request.Context(), db)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// AddToWishlist godoc
// @Summary      Add a product to the wishlist
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Param        productId path int true "Product ID"
// @Success      201 {object} map[string]string
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /wishlist/{productId} [post]
func (h *ProductHandler) AddToWishlist(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	productID, ok := h.ParseParamUint(c, "productId")
	if !ok {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	if appErr := h.catalogService.AddToWishlist(c.Request.Context(), db, userID, productID); appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product added to wishlist"})
}

// RemoveFromWishlist godoc
// @Summary      Remove a product from the wishlist
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Param        productId path int true "Product ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /wishlist/{productId} [delete]
func (h *ProductHandler) RemoveFromWishlist(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	productID, ok := h.ParseParamUint(c, "productId")
	if !ok {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	if appErr := h.catalogService.RemoveFromWishlist(c.Request.Context(), db, userID, productID); appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist"})
}

// ListWishlist godoc
// @Summary      List the current user's wishlist
// @Tags         wishlist
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} models.WishlistItem
// @Router       /wishlist [get]
func (h *ProductHandler) ListWishlist(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	items, appErr := h.catalogService.ListWishlist(c.Request.Context(), db, userID)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": items})
}
