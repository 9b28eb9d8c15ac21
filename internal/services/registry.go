package services

import (
	"shopkart_backend/internal/email"
	"shopkart_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения
type ServiceContainer struct {
	Auth    *AuthService
	Company *CompanyService
	Catalog *CatalogService
}

// NewServiceContainer создает сервисы со всеми зависимостями
func NewServiceContainer(mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	roleRepo := repositories.NewRoleRepository()
	tokenRepo := repositories.NewAccessTokenRepository()
	resetRepo := repositories.NewPasswordResetRepository()
	productRepo := repositories.NewProductRepository()
	wishlistRepo := repositories.NewWishlistRepository()

	return &ServiceContainer{
		Auth:    NewAuthService(userRepo, companyRepo, roleRepo, tokenRepo, resetRepo, mailer),
		Company: NewCompanyService(companyRepo),
		Catalog: NewCatalogService(productRepo, wishlistRepo),
	}
}
