package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"shopkart_backend/internal/auth"
	"shopkart_backend/internal/logger"
	"shopkart_backend/internal/models"
	"shopkart_backend/internal/repositories"
	"shopkart_backend/pkg/apperrors"
	"shopkart_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Ключи gin-контекста для данных аутентификации
const (
	ContextUserKey   = "current_user"
	ContextJTIKey    = "token_jti"
	ContextUserIDKey = "user_id"
)

// AuthMiddleware проверяет bearer-токен.
// Токен валиден, только если подпись верна И запись access_tokens по jti
// существует, не отозвана и не истекла. Logout делает запись отозванной,
// поэтому токен умирает сразу, несмотря на неистекший JWT.
func AuthMiddleware() gin.HandlerFunc {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewAccessTokenRepository()

	return func(c *gin.Context) {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			abortUnauthenticated(c)
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
		if !ok {
			logger.CtxError(c.Request.Context(), "database missing from request context")
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": apperrors.InternalError(nil)})
			return
		}

		record, err := tokenRepo.FindByJTI(db, claims.ID)
		if err != nil || record.Revoked || time.Now().After(record.ExpiresAt) {
			abortUnauthenticated(c)
			return
		}

		user, err := userRepo.FindByID(db, claims.UserID)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextJTIKey, claims.ID)
		c.Set(ContextUserIDKey, user.ID)

		// user_id в контекст логгера
		ctx := logger.WithUserID(c.Request.Context(), strconv.FormatUint(uint64(user.ID), 10))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles пропускает только пользователей с одной из перечисленных ролей.
// Вешается после AuthMiddleware.
func RequireRoles(roles ...models.RoleName) gin.HandlerFunc {
	allowed := make(map[models.RoleName]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		if !allowed[user.RoleName()] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": apperrors.ErrForbidden})
			return
		}

		c.Next()
	}
}

// CurrentUser достает аутентифицированного пользователя из gin-контекста
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// GetUserID возвращает ID аутентифицированного пользователя
func GetUserID(c *gin.Context) (uint, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		return 0, false
	}
	return user.ID, true
}

// GetTokenJTI возвращает jti токена текущего запроса
func GetTokenJTI(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextJTIKey)
	if !exists {
		return "", false
	}
	jti, ok := value.(string)
	return jti, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		gin.H{"error": apperrors.ErrUnauthenticated})
}
