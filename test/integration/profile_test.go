package integration

import (
	"net/http"
	"testing"

	"shopkart_backend/internal/models"
	"shopkart_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profilePayload(phone string) map[string]interface{} {
	return map[string]interface{}{
		"name":    "Renamed",
		"phone":   phone,
		"city":    "Astana",
		"address": "Abay ave 1",
		"pincode": "050000",
	}
}

func TestUpdateProfile_AllowedFields(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	user, token := ts.CreateAndLoginUser(t, "profile@test.dev", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/update-profile",
		profilePayload("87071112233"), token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, user.ID).Error)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "87071112233", updated.Phone)
	assert.Equal(t, "Astana", updated.City)
	assert.Equal(t, "Abay ave 1", updated.Address)
	assert.Equal(t, "050000", updated.Pincode)
}

func TestUpdateProfile_RequiredFieldsMissing(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	user, token := ts.CreateAndLoginUser(t, "partial@test.dev", 4, &company.ID)

	// Один только city - 422: name и phone обязательны
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/update-profile",
		map[string]string{"city": "Astana"}, token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	body := helpers.DecodeBody(t, rec)
	errors := body["errors"].(map[string]interface{})
	assert.Contains(t, errors, "name")
	assert.Contains(t, errors, "phone")

	// Профиль не тронут
	var untouched models.User
	require.NoError(t, ts.DB.First(&untouched, user.ID).Error)
	assert.Equal(t, user.Name, untouched.Name)
	assert.Equal(t, user.City, untouched.City)
}

func TestUpdateProfile_OwnPhoneAccepted(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	user, token := ts.CreateAndLoginUser(t, "same@test.dev", 4, &company.ID)

	// Свой же номер не считается занятым
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/update-profile",
		profilePayload(user.Phone), token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateProfile_EmailAndRoleIgnored(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	user, token := ts.CreateAndLoginUser(t, "immutable@test.dev", 4, &company.ID)

	// Лишние поля не входят в DTO и молча отбрасываются
	payload := profilePayload(user.Phone)
	payload["email"] = "hacked@test.dev"
	payload["role_id"] = models.RoleSuperAdminID
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/update-profile", payload, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, user.ID).Error)
	assert.Equal(t, "immutable@test.dev", updated.Email)
	assert.Equal(t, user.RoleID, updated.RoleID)
	assert.Equal(t, "Astana", updated.City)
}

func TestUpdateProfile_PhoneConflict(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	other := ts.CreateUser(t, "other@test.dev", "password123", 4, &company.ID)
	_, token := ts.CreateAndLoginUser(t, "me@test.dev", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/update-profile",
		profilePayload(other.Phone), token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := helpers.DecodeBody(t, rec)
	errors := body["errors"].(map[string]interface{})
	assert.Contains(t, errors, "phone")
}

func TestUpdateProfile_RequiresAuth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/update-profile",
		profilePayload("87071112233"), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
