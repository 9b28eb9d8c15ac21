package services

import (
	"context"
	"time"

	"shopkart_backend/internal/auth"
	"shopkart_backend/internal/config"
	"shopkart_backend/internal/email"
	"shopkart_backend/internal/logger"
	"shopkart_backend/internal/models"
	"shopkart_backend/internal/repositories"
	"shopkart_backend/internal/services/dto"
	"shopkart_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService - регистрация, вход, выход, профиль и сброс пароля
type AuthService struct {
	userRepo    *repositories.UserRepository
	companyRepo *repositories.CompanyRepository
	roleRepo    *repositories.RoleRepository
	tokenRepo   *repositories.AccessTokenRepository
	resetRepo   *repositories.PasswordResetRepository
	mailer      email.Provider
}

func NewAuthService(
	userRepo *repositories.UserRepository,
	companyRepo *repositories.CompanyRepository,
	roleRepo *repositories.RoleRepository,
	tokenRepo *repositories.AccessTokenRepository,
	resetRepo *repositories.PasswordResetRepository,
	mailer email.Provider,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
		tokenRepo:   tokenRepo,
		resetRepo:   resetRepo,
		mailer:      mailer,
	}
}

// RegisterCompany создает новую компанию-арендатора
func (s *AuthService) RegisterCompany(ctx context.Context, db *gorm.DB, req *dto.RegisterCompanyRequest) (*models.Company, *apperrors.AppError) {
	company := &models.Company{
		Name:           req.Name,
		Speciality:     req.Speciality,
		GSTNo:          req.GSTNo,
		RegistrationNo: req.RegistrationNo,
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		logger.CtxWithError(ctx, "failed to create company", err)
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "company registered", "company_id", company.ID, "name", company.Name)
	return company, nil
}

// RegisterUser создает пользователя с учетом правила привязки к компании:
// super-admin всегда получает company_id = NULL (даже если прислали),
// остальным ролям company_id обязателен и должен указывать на
// существующую компанию.
func (s *AuthService) RegisterUser(ctx context.Context, db *gorm.DB, req *dto.RegisterUserRequest) (*models.User, *apperrors.AppError) {
	role, err := s.roleRepo.FindByID(db, req.RoleID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.FieldError("role_id", "Unknown role")
		}
		return nil, apperrors.InternalError(err)
	}

	companyID := req.CompanyID
	if role.Name.RequiresCompany() {
		if companyID == nil {
			return nil, apperrors.FieldError("company_id",
				"This field is required for the "+role.Name.DisplayName()+" role")
		}
		exists, err := s.companyRepo.Exists(db, *companyID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !exists {
			return nil, apperrors.FieldError("company_id", "Company does not exist")
		}
	} else {
		// super-admin работает поверх всех арендаторов
		companyID = nil
	}

	if taken, err := s.userRepo.EmailTaken(db, req.Email); err != nil {
		return nil, apperrors.InternalError(err)
	} else if taken {
		return nil, apperrors.FieldError("email", "The email has already been taken")
	}
	if taken, err := s.userRepo.PhoneTaken(db, req.Phone, 0); err != nil {
		return nil, apperrors.InternalError(err)
	} else if taken {
		return nil, apperrors.FieldError("phone", "The phone has already been taken")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		City:         req.City,
		Address:      req.Address,
		Pincode:      req.Pincode,
		RoleID:       role.ID,
		CompanyID:    companyID,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		// Страховка от гонки между pre-check и INSERT
		switch {
		case apperrors.Is(err, repositories.ErrDuplicateEmail):
			return nil, apperrors.FieldError("email", "The email has already been taken")
		case apperrors.Is(err, repositories.ErrDuplicatePhone):
			return nil, apperrors.FieldError("phone", "The phone has already been taken")
		default:
			logger.CtxWithError(ctx, "failed to create user", err)
			return nil, apperrors.InternalError(err)
		}
	}

	user.Role = role
	logger.CtxInfo(ctx, "user registered",
		"user_id", user.ID, "role", role.Name, "has_company", companyID != nil)
	return user, nil
}

// Login проверяет учетные данные и выдает новый bearer-токен.
// Неизвестный email и неверный пароль дают один и тот же ответ.
func (s *AuthService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, *apperrors.AppError) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokenStr, jti, expiresAt, err := auth.GenerateToken(user.ID, string(user.RoleName()))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	record := &models.AccessToken{
		JTI:       jti,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Create(db, record); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return &dto.LoginResponse{Token: tokenStr, User: user}, nil
}

// Logout отзывает ровно тот токен, который был предъявлен.
// Остальные сессии пользователя продолжают работать.
func (s *AuthService) Logout(ctx context.Context, db *gorm.DB, jti string) *apperrors.AppError {
	if err := s.tokenRepo.RevokeByJTI(db, jti); err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "token revoked", "jti", jti)
	return nil
}

// UpdateProfile перезаписывает пять полей профиля: name, phone, city,
// address, pincode. Уникальность телефона проверяется без учета самого
// пользователя, чтобы можно было прислать свой же номер.
func (s *AuthService) UpdateProfile(ctx context.Context, db *gorm.DB, userID uint, req *dto.UpdateProfileRequest) (*models.User, *apperrors.AppError) {
	taken, err := s.userRepo.PhoneTaken(db, req.Phone, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.FieldError("phone", "The phone has already been taken")
	}

	updates := map[string]interface{}{
		"name":    req.Name,
		"phone":   req.Phone,
		"city":    req.City,
		"address": req.Address,
		"pincode": req.Pincode,
	}

	if err := s.userRepo.UpdateProfileFields(db, userID, updates); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", userID)
	return user, nil
}

// RequestPasswordReset создает тикет сброса и отправляет письмо.
// Ответ всегда одинаков вне зависимости от существования аккаунта,
// чтобы endpoint не позволял перечислять email-ы. Исключение - сбой
// самой отправки письма существующему пользователю: это 500.
func (s *AuthService) RequestPasswordReset(ctx context.Context, db *gorm.DB, req *dto.PasswordResetRequest) *apperrors.AppError {
	_, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			logger.CtxInfo(ctx, "password reset requested for unknown email")
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	reset := &models.PasswordReset{
		Email:     req.Email,
		TokenHash: auth.HashResetToken(token),
		ExpiresAt: time.Now().Add(time.Duration(cfg.PasswordReset.TTL) * time.Minute),
	}
	if err := s.resetRepo.Replace(db, reset); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.mailer.SendPasswordReset(req.Email, token); err != nil {
		logger.CtxWithError(ctx, "failed to send password reset email", err)
		return apperrors.ErrDispatchFailure
	}

	logger.CtxInfo(ctx, "password reset email sent")
	return nil
}

// ResetPassword проверяет токен и атомарно меняет пароль: обновление
// хеша и удаление тикета идут в одной транзакции, тикет одноразовый.
// Все активные токены пользователя отзываются.
func (s *AuthService) ResetPassword(ctx context.Context, db *gorm.DB, req *dto.PasswordResetConfirm) *apperrors.AppError {
	reset, err := s.resetRepo.FindValid(db, req.Email, auth.HashResetToken(req.Token))
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		// Тикет есть, а пользователя нет - тикет осиротел
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdatePasswordHash(tx, user.ID, passwordHash); err != nil {
			return err
		}
		if err := s.resetRepo.Delete(tx, reset.ID); err != nil {
			return err
		}
		return s.tokenRepo.RevokeAllForUser(tx, user.ID)
	})
	if txErr != nil {
		logger.CtxWithError(ctx, "failed to reset password", txErr)
		return apperrors.InternalError(txErr)
	}

	logger.CtxInfo(ctx, "password reset completed", "user_id", user.ID)
	return nil
}
