package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleName_RequiresCompany(t *testing.T) {
	assert.False(t, RoleSuperAdmin.RequiresCompany())
	assert.True(t, RoleCompanyAdmin.RequiresCompany())
	assert.True(t, RoleSeller.RequiresCompany())
	assert.True(t, RoleBuyer.RequiresCompany())
}

func TestRoleName_Valid(t *testing.T) {
	for _, role := range AllRoles() {
		assert.True(t, role.Valid(), role)
	}
	assert.False(t, RoleName("manager").Valid())
	assert.False(t, RoleName("").Valid())
}

func TestAllRoles_FixedOrder(t *testing.T) {
	roles := AllRoles()
	assert.Equal(t, RoleSuperAdmin, roles[RoleSuperAdminID-1])
	assert.Equal(t, []RoleName{RoleSuperAdmin, RoleCompanyAdmin, RoleSeller, RoleBuyer}, roles)
}
