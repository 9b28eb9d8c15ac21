package handlers

import (
	"errors"
	"strconv"

	appvalidator "shopkart_backend/internal/validator"
	"shopkart_backend/pkg/apperrors"
	"shopkart_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler - общая часть всех хендлеров: доступ к БД из контекста,
// биндинг с валидацией и единая отправка ошибок.
type BaseHandler struct {
	validator *appvalidator.Validator
}

func NewBaseHandler(v *appvalidator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB достает *gorm.DB из контекста запроса (кладет DBMiddleware)
func (h *BaseHandler) GetDB(c *gin.Context) (*gorm.DB, *apperrors.AppError) {
	db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	if !ok {
		return nil, apperrors.InternalError(errors.New("database missing from request context"))
	}
	return db, nil
}

// BindAndValidate_JSON биндит JSON тело и гоняет через валидатор.
// Ошибки валидации сразу уходят клиентом как 422 с картой полей.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid JSON body"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *appvalidator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}

	return true
}

// ParseParamUint парсит числовой path-параметр
func (h *BaseHandler) ParseParamUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(value), true
}
