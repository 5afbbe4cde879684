package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleError - обработка ошибок для Gin контекста
func HandleError(c *gin.Context, err *AppError) {
	handler := &GinErrorHandler{Debug: true}
	handler.HandleGinError(c, err)
}

// HandleValidationError - специальный обработчик для ошибок валидации
func HandleValidationError(c *gin.Context, err error) {
	validationErr := ErrValidationFailed.WithDetails(gin.H{"details": err.Error()})
	HandleError(c, validationErr)
}
