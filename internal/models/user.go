package models

import "time"

type User struct {
	BaseModel
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `gorm:"size:15;uniqueIndex;not null" json:"phone"`
	City         string `gorm:"size:255;not null" json:"city"`
	Address      string `gorm:"size:255" json:"address,omitempty"`
	Pincode      string `gorm:"size:10" json:"pincode,omitempty"`
	RoleID       uint   `gorm:"not null;index" json:"role_id"`
	// NULL только для super-admin (инвариант проверяется сервисом регистрации)
	CompanyID *uint `gorm:"index" json:"company_id"`

	// Relations
	Role         *Role         `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	AccessTokens []AccessToken `gorm:"foreignKey:UserID" json:"-"`
}

// RoleName возвращает имя роли, если Role загружена
func (u *User) RoleName() RoleName {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// AccessToken - запись о выданном bearer-токене. JTI совпадает с jti в JWT.
// Logout помечает ровно одну запись как отозванную; middleware отклоняет
// отозванные и истекшие записи независимо от валидности подписи.
type AccessToken struct {
	BaseModel
	JTI       string    `gorm:"size:36;uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
}

// PasswordReset - одноразовый тикет сброса пароля.
// Храним только SHA-256 токена, сам токен уходит пользователю письмом.
type PasswordReset struct {
	BaseModel
	Email     string    `gorm:"size:255;index;not null" json:"email"`
	TokenHash string    `gorm:"size:64;index;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
