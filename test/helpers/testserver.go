package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"shopkart_backend/internal/app"
	"shopkart_backend/internal/auth"
	"shopkart_backend/internal/config"
	"shopkart_backend/internal/email"
	"shopkart_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MailRecorder - email.Provider для тестов: запоминает отправленное
type MailRecorder struct {
	mu          sync.Mutex
	Sent        []email.Email
	ResetTokens map[string]string // email -> последний токен сброса
}

func NewMailRecorder() *MailRecorder {
	return &MailRecorder{ResetTokens: map[string]string{}}
}

func (m *MailRecorder) Send(e *email.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, *e)
	return nil
}

func (m *MailRecorder) SendPasswordReset(to string, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetTokens[to] = token
	return nil
}

func (m *MailRecorder) Close() error { return nil }

// LastResetToken возвращает последний токен сброса для email
func (m *MailRecorder) LastResetToken(emailAddr string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ResetTokens[emailAddr]
}

// TestServer - полный HTTP стек приложения поверх тестовой БД
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Mailer *MailRecorder
}

// NewTestServer собирает приложение с in-memory БД и записью писем
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.TTL = 60
	cfg.PasswordReset.TTL = 60
	config.AppConfig = cfg

	db := NewTestDB(t)
	mailer := NewMailRecorder()
	router := app.SetupRouterWithMailer(cfg, db, mailer)

	return &TestServer{
		Router: router,
		DB:     db,
		Mailer: mailer,
	}
}

// SendRequest выполняет HTTP запрос против тестового роутера.
// body сериализуется в JSON, token (если не пуст) уходит bearer-заголовком.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)
	return rec
}

// DecodeBody разбирает JSON тело ответа в карту
func DecodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// CreateCompany создает компанию напрямую в БД
func (ts *TestServer) CreateCompany(t *testing.T, name string) *models.Company {
	t.Helper()
	company := &models.Company{Name: name}
	require.NoError(t, ts.DB.Create(company).Error)
	return company
}

// CreateUser создает пользователя напрямую в БД, минуя API
func (ts *TestServer) CreateUser(t *testing.T, emailAddr, password string, roleID uint, companyID *uint) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        emailAddr,
		PasswordHash: hash,
		Phone:        uniquePhone(),
		City:         "Almaty",
		RoleID:       roleID,
		CompanyID:    companyID,
	}
	require.NoError(t, ts.DB.Create(user).Error)
	return user
}

// LoginUser логинится через API и возвращает bearer-токен
func (ts *TestServer) LoginUser(t *testing.T, emailAddr, password string) string {
	t.Helper()

	rec := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    emailAddr,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	body := DecodeBody(t, rec)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// CreateAndLoginUser - создание пользователя и вход одним вызовом
func (ts *TestServer) CreateAndLoginUser(t *testing.T, emailAddr string, roleID uint, companyID *uint) (*models.User, string) {
	t.Helper()
	const password = "password123"
	user := ts.CreateUser(t, emailAddr, password, roleID, companyID)
	token := ts.LoginUser(t, emailAddr, password)
	return user, token
}

var (
	phoneMu   sync.Mutex
	phoneNext = 7000000000
)

// uniquePhone выдает уникальный телефон (в users уникальный индекс)
func uniquePhone() string {
	phoneMu.Lock()
	defer phoneMu.Unlock()
	phoneNext++
	return "8" + strconv.Itoa(phoneNext)
}
