package models

// RoleName - закрытое перечисление ролей.
// Имена совпадают с сидами ролей (см. database/migrate.go),
// ID фиксированы: 1=super-admin, 2=company-admin, 3=seller, 4=buyer.
type RoleName string

const (
	RoleSuperAdmin   RoleName = "super-admin"
	RoleCompanyAdmin RoleName = "company-admin"
	RoleSeller       RoleName = "seller"
	RoleBuyer        RoleName = "buyer"
)

// RoleSuperAdminID - фиксированный ID супер-админа, company_id для него всегда NULL
const RoleSuperAdminID uint = 1

// AllRoles возвращает роли в порядке их фиксированных ID
func AllRoles() []RoleName {
	return []RoleName{RoleSuperAdmin, RoleCompanyAdmin, RoleSeller, RoleBuyer}
}

// Valid проверяет, что роль входит в перечисление
func (r RoleName) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleCompanyAdmin, RoleSeller, RoleBuyer:
		return true
	default:
		return false
	}
}

// RequiresCompany - единственная точка, где решается правило привязки к компании:
// все роли кроме super-admin обязаны ссылаться на существующую компанию.
func (r RoleName) RequiresCompany() bool {
	return r != RoleSuperAdmin
}

// DisplayName - человекочитаемое имя роли для сообщений API
func (r RoleName) DisplayName() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleCompanyAdmin:
		return "Company Admin"
	case RoleSeller:
		return "Seller"
	case RoleBuyer:
		return "Buyer"
	default:
		return string(r)
	}
}
