package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// ValidationResponse - ответ 422 в формате поле -> сообщение
// (совместим с форматом errors исходного API)
type ValidationResponse struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// HandleError - отправка AppError в ответ Gin.
// Ошибки валидации с деталями отдаются как {"message", "errors"},
// остальные - как {"error": {...}}.
func HandleError(c *gin.Context, err *AppError) {
	if err.Code == CodeValidationFailed && err.Details != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Message: err.Message,
			Errors:  err.Details,
		})
		return
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
