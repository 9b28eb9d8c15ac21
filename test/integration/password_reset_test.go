package integration

import (
	"net/http"
	"testing"

	"shopkart_backend/internal/models"
	"shopkart_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetPayload(email, token, password string) map[string]string {
	return map[string]string{
		"email":                     email,
		"token":                     token,
		"new_password":              password,
		"new_password_confirmation": password,
	}
}

func TestPasswordReset_FullFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "reset@test.dev", "password123", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/request",
		map[string]string{"email": "reset@test.dev"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	token := ts.Mailer.LastResetToken("reset@test.dev")
	require.NotEmpty(t, token)

	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/reset",
		resetPayload("reset@test.dev", token, "newpassword456"), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Старый пароль больше не работает, новый - работает
	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "reset@test.dev", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ts.LoginUser(t, "reset@test.dev", "newpassword456")
}

func TestPasswordReset_TokenSingleUse(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "once@test.dev", "password123", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/request",
		map[string]string{"email": "once@test.dev"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := ts.Mailer.LastResetToken("once@test.dev")

	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/reset",
		resetPayload("once@test.dev", token, "newpassword456"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Повторное использование того же токена - отказ
	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/reset",
		resetPayload("once@test.dev", token, "anotherpass789"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordReset_RevokesActiveSessions(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "sessions@test.dev", "password123", 4, &company.ID)
	token := ts.LoginUser(t, "sessions@test.dev", "password123")

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/request",
		map[string]string{"email": "sessions@test.dev"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/reset",
		resetPayload("sessions@test.dev", ts.Mailer.LastResetToken("sessions@test.dev"), "newpassword456"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Старая сессия отозвана
	rec = ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordReset_UnknownEmailSameResponse(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "real@test.dev", "password123", 4, &company.ID)

	recKnown := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/request",
		map[string]string{"email": "real@test.dev"}, "")
	recUnknown := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/request",
		map[string]string{"email": "ghost@test.dev"}, "")

	require.Equal(t, http.StatusOK, recKnown.Code)
	require.Equal(t, http.StatusOK, recUnknown.Code)
	assert.Equal(t, recKnown.Body.String(), recUnknown.Body.String())

	// Письмо ушло только существующему
	assert.NotEmpty(t, ts.Mailer.LastResetToken("real@test.dev"))
	assert.Empty(t, ts.Mailer.LastResetToken("ghost@test.dev"))
}

func TestPasswordReset_WrongToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "wrong@test.dev", "password123", 4, &company.ID)

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/reset",
		resetPayload("wrong@test.dev", "bogus-token", "newpassword456"), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordReset_ConfirmationMismatch(t *testing.T) {
	ts := helpers.NewTestServer(t)

	payload := resetPayload("any@test.dev", "whatever", "newpassword456")
	payload["new_password_confirmation"] = "different789"

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/reset", payload, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := helpers.DecodeBody(t, rec)
	errors := body["errors"].(map[string]interface{})
	assert.Contains(t, errors, "new_password_confirmation")
}

func TestPasswordReset_NewRequestInvalidatesOldTicket(t *testing.T) {
	ts := helpers.NewTestServer(t)
	company := ts.CreateCompany(t, "Acme")
	ts.CreateUser(t, "replace@test.dev", "password123", 4, &company.ID)

	for i := 0; i < 2; i++ {
		rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/password-reset/request",
			map[string]string{"email": "replace@test.dev"}, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// В БД ровно один тикет - старый заменен
	var count int64
	require.NoError(t, ts.DB.Model(&models.PasswordReset{}).
		Where("email = ?", "replace@test.dev").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
