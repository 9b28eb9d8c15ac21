package dto

import "shopkart_backend/internal/models"

// RegisterCompanyRequest - регистрация новой компании-арендатора
type RegisterCompanyRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Speciality     string `json:"speciality" validate:"max=255"`
	GSTNo          string `json:"gst_no" validate:"max=64"`
	RegistrationNo string `json:"registration_no" validate:"max=64"`
}

// RegisterUserRequest - регистрация пользователя.
// company_id обязателен для всех ролей кроме super-admin,
// для super-admin он игнорируется и сохраняется как NULL.
type RegisterUserRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	Phone     string `json:"phone" validate:"required,min=10,max=15"`
	City      string `json:"city" validate:"required,max=255"`
	Address   string `json:"address" validate:"max=255"`
	Pincode   string `json:"pincode" validate:"pincode"`
	RoleID    uint   `json:"role_id" validate:"required"`
	CompanyID *uint  `json:"company_id"`
}

// LoginRequest - вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - результат успешного входа
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateProfileRequest - обновление профиля. name/phone/city обязательны,
// address/pincode опциональны; email, роль и компания через профиль
// не меняются.
type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	City    string `json:"city" validate:"required,max=255"`
	Address string `json:"address" validate:"max=255"`
	Pincode string `json:"pincode" validate:"pincode"`
}

// PasswordResetRequest - запрос письма со ссылкой сброса
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm - установка нового пароля по токену из письма
type PasswordResetConfirm struct {
	Email        string `json:"email" validate:"required,email"`
	Token        string `json:"token" validate:"required"`
	NewPassword  string `json:"new_password" validate:"required,min=8"`
	Confirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}
