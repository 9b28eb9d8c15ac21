package repositories

import (
	"errors"

	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// CompanyRepository - доступ к таблице companies
type CompanyRepository struct{}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

func (r *CompanyRepository) Create(db *gorm.DB, company *models.Company) error {
	return db.Create(company).Error
}

func (r *CompanyRepository) FindByID(db *gorm.DB, id uint) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) FindAll(db *gorm.DB) ([]models.Company, error) {
	var companies []models.Company
	err := db.Order("id").Find(&companies).Error
	return companies, err
}

// Exists проверяет существование компании по ID
func (r *CompanyRepository) Exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
