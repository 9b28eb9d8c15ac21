package integration

import (
	"net/http"
	"testing"

	"shopkart_backend/internal/models"
	"shopkart_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUserPayload(email string, roleID uint, companyID *uint) map[string]interface{} {
	payload := map[string]interface{}{
		"name":     "Aida Test",
		"email":    email,
		"password": "password123",
		"phone":    "87001234" + email[:3],
		"city":     "Almaty",
		"role_id":  roleID,
	}
	if companyID != nil {
		payload["company_id"] = *companyID
	}
	return payload
}

func TestRegisterCompany(t *testing.T) {
	ts := helpers.NewTestServer(t)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register-company", map[string]string{
		"name":       "Acme Traders",
		"speciality": "electronics",
		"gst_no":     "GST-001",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var company models.Company
	require.NoError(t, ts.DB.First(&company).Error)
	assert.Equal(t, "Acme Traders", company.Name)
	assert.Equal(t, "GST-001", company.GSTNo)
}

func TestRegisterCompany_ValidationFailure(t *testing.T) {
	ts := helpers.NewTestServer(t)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register-company",
		map[string]string{"speciality": "electronics"}, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := helpers.DecodeBody(t, rec)
	errors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok, "expected errors map, got: %s", rec.Body.String())
	assert.Contains(t, errors, "name")
}

func TestRegisterUser_SuperAdminCompanyNulled(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")

	// company_id прислан, но для super-admin он должен быть проигнорирован
	payload := registerUserPayload("admin@test.dev", models.RoleSuperAdminID, &company.ID)
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register-user", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", "admin@test.dev").First(&user).Error)
	assert.Nil(t, user.CompanyID)
}

func TestRegisterUser_NonSuperAdminRequiresCompany(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// role_id=3 (seller) без company_id - 422
	payload := registerUserPayload("seller@test.dev", 3, nil)
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register-user", payload, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	body := helpers.DecodeBody(t, rec)
	errors := body["errors"].(map[string]interface{})
	assert.Contains(t, errors, "company_id")
}

func TestRegisterUser_UnknownCompanyRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)

	missing := uint(999)
	payload := registerUserPayload("seller@test.dev", 3, &missing)
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register-user", payload, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := helpers.DecodeBody(t, rec)
	errors := body["errors"].(map[string]interface{})
	assert.Contains(t, errors, "company_id")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "dup@test.dev", "password123", 4, &company.ID)

	payload := registerUserPayload("dup@test.dev", 4, &company.ID)
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register-user", payload, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := helpers.DecodeBody(t, rec)
	errors := body["errors"].(map[string]interface{})
	assert.Contains(t, errors, "email")
}

func TestRegisterUser_ShortPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")

	payload := registerUserPayload("short@test.dev", 4, &company.ID)
	payload["password"] = "short"
	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register-user", payload, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := helpers.DecodeBody(t, rec)
	errors := body["errors"].(map[string]interface{})
	assert.Contains(t, errors, "password")
}

func TestLogin_Success(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "buyer@test.dev", "password123", 4, &company.ID)

	token := ts.LoginUser(t, "buyer@test.dev", "password123")
	assert.NotEmpty(t, token)

	// Токен работает
	rec := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_IdenticalFailureResponses(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "known@test.dev", "password123", 4, &company.ID)

	// Неизвестный email и неверный пароль должны быть неотличимы
	recUnknown := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "unknown@test.dev", "password": "password123",
	}, "")
	recWrongPass := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "known@test.dev", "password": "wrong-password",
	}, "")

	require.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	require.Equal(t, http.StatusUnauthorized, recWrongPass.Code)
	assert.Equal(t, recUnknown.Body.String(), recWrongPass.Body.String())
}

func TestLogout_RevokesOnlyPresentedToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "multi@test.dev", "password123", 4, &company.ID)

	tokenA := ts.LoginUser(t, "multi@test.dev", "password123")
	tokenB := ts.LoginUser(t, "multi@test.dev", "password123")

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/logout", nil, tokenA)
	require.Equal(t, http.StatusOK, rec.Code)

	// Отозванный токен мертв сразу
	rec = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", nil, tokenA)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Вторая сессия продолжает жить
	rec = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", nil, tokenB)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingAndGarbageTokens(t *testing.T) {
	ts := helpers.NewTestServer(t)

	rec := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
