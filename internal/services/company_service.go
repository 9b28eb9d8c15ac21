package services

import (
	"context"

	"shopkart_backend/internal/models"
	"shopkart_backend/internal/repositories"
	"shopkart_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CompanyService - чтение справочника компаний
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
}

func NewCompanyService(companyRepo *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// List возвращает все компании
func (s *CompanyService) List(ctx context.Context, db *gorm.DB) ([]models.Company, *apperrors.AppError) {
	companies, err := s.companyRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

// Get возвращает компанию по ID
func (s *CompanyService) Get(ctx context.Context, db *gorm.DB, id uint) (*models.Company, *apperrors.AppError) {
	company, err := s.companyRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Company")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}
