package handlers

import (
	"shopkart_backend/internal/services"
	appvalidator "shopkart_backend/internal/validator"
)

// AppHandlers собирает все HTTP хендлеры приложения
type AppHandlers struct {
	Auth    *AuthHandler
	Company *CompanyHandler
	Product *ProductHandler
}

// NewAppHandlers создает хендлеры поверх сервисов
func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(appvalidator.New())

	return &AppHandlers{
		Auth:    NewAuthHandler(base, svc.Auth),
		Company: NewCompanyHandler(base, svc.Company),
		Product: NewProductHandler(base, svc.Catalog),
	}
}
