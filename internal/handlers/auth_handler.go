package handlers

import (
	"net/http"

	"shopkart_backend/internal/middleware"
	"shopkart_backend/internal/services"
	"shopkart_backend/internal/services/dto"
	"shopkart_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler - HTTP endpoints регистрации, входа и сброса пароля
type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes вешает маршруты аутентификации на группу
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register-company", h.RegisterCompany)
		auth.POST("/register-user", h.RegisterUser)
		auth.POST("/login", h.Login)
		auth.POST("/password-reset/request", h.RequestPasswordReset)
		auth.POST("/password-reset/reset", h.ResetPassword)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/logout", h.Logout)
			protected.POST("/update-profile", h.UpdateProfile)
			protected.GET("/me", h.Me)
		}
	}
}

// RegisterCompany godoc
// @Summary      Register a new company
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterCompanyRequest true "Company data"
// @Success      201 {object} models.Company
// @Failure      422 {object} apperrors.ValidationResponse
// @Router       /auth/register-company [post]
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req dto.RegisterCompanyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	company, appErr := h.authService.RegisterCompany(c.Request.Context(), db, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully",
		"company": company,
	})
}

// RegisterUser godoc
// @Summary      Register a new user
// @Description  company_id is required for every role except super-admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterUserRequest true "User data"
// @Success      201 {object} models.User
// @Failure      422 {object} apperrors.ValidationResponse
// @Router       /auth/register-user [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	user, appErr := h.authService.RegisterUser(c.Request.Context(), db, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": user.RoleName().DisplayName() + " registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	resp, appErr := h.authService.Login(c.Request.Context(), db, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Revoke the presented token
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, ok := middleware.GetTokenJTI(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	if appErr := h.authService.Logout(c.Request.Context(), db, jti); appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} models.User
// @Failure      401 {object} apperrors.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile godoc
// @Summary      Update own profile fields
// @Description  Only name, phone, city, address and pincode can be changed; name, phone and city are required
// @Tags         auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "Profile fields"
// @Success      200 {object} models.User
// @Failure      422 {object} apperrors.ValidationResponse
// @Router       /auth/update-profile [post]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	user, appErr := h.authService.UpdateProfile(c.Request.Context(), db, userID, &req)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RequestPasswordReset godoc
// @Summary      Request a password reset email
// @Description  Responds 200 regardless of whether the email is registered
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.PasswordResetRequest true "Email"
// @Success      200 {object} map[string]string
// @Router       /auth/password-reset/request [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	if appErr := h.authService.RequestPasswordReset(c.Request.Context(), db, &req); appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If the email is registered, a reset link has been sent",
	})
}

// ResetPassword godoc
// @Summary      Set a new password using a reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.PasswordResetConfirm true "Token and new password"
// @Success      200 {object} map[string]string
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /auth/password-reset/reset [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.PasswordResetConfirm
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db, appErr := h.GetDB(c)
	if appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	if appErr := h.authService.ResetPassword(c.Request.Context(), db, &req); appErr != nil {
		apperrors.HandleError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
