package handlers

import (
	"net/http"

	"shopkart_backend/internal/middleware"
	"shopkart_backend/internal/services"
	"shopkart_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// CompanyHandler - чтение справочника компаний
type CompanyHandler struct {
	*BaseHandler
	companyService *services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
	}
}

// List godoc
// @Summary      List all companies
// @Security     BearerAuth
// @Tags         companies
// @Produce      json
// @Success      200 {array} models.Company
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	companies, appErr := h.companyService.List(c.Request.Context(), db)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get godoc
// @Summary      Get a company by ID
// @Security     BearerAuth
// @Tags         companies
// @Produce      json
// @Param        id path int true "Company ID"
// @Success      200 {object} models.Company
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	company, appErr := h.companyService.Get(c.Request.Context(), db, id)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": company})
}
