package repositories

import (
	"errors"

	"shopkart_backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository - доступ к таблице users.
// Репозитории не держат соединение: *gorm.DB приходит первым аргументом,
// так один и тот же код работает и с основной БД, и с тестовой транзакцией.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create сохраняет нового пользователя.
// Нарушение уникальности email/phone транслируется в ErrDuplicate*.
func (r *UserRepository) Create(db *gorm.DB, user *models.User) error {
	err := db.Create(user).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// TranslateError стирает имя конфликтующего индекса,
		// поэтому смотрим, какое из полей уже занято
		var count int64
		db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count)
		if count > 0 {
			return ErrDuplicateEmail
		}
		return ErrDuplicatePhone
	}
	return err
}

// FindByID ищет пользователя по ID вместе с ролью и компанией
func (r *UserRepository) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.Preload("Role").Preload("Company").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail ищет пользователя по email вместе с ролью и компанией
func (r *UserRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("Role").Preload("Company").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EmailTaken проверяет занятость email
func (r *UserRepository) EmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// PhoneTaken проверяет занятость телефона, исключая пользователя excludeID
// (0 - не исключать никого)
func (r *UserRepository) PhoneTaken(db *gorm.DB, phone string, excludeID uint) (bool, error) {
	query := db.Model(&models.User{}).Where("phone = ?", phone)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// UpdateProfileFields обновляет только разрешенные поля профиля.
// Карта updates формируется сервисом - сюда не попадают email, role_id и т.п.
func (r *UserRepository) UpdateProfileFields(db *gorm.DB, userID uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

// UpdatePasswordHash меняет хеш пароля пользователя
func (r *UserRepository) UpdatePasswordHash(db *gorm.DB, userID uint, passwordHash string) error {
	return db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}
