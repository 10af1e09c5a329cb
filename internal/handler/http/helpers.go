package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/validator"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, validator.FormatBindingError(err))
		return err
	}
	return nil
}

// respondError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a generic 500 so storage details never leak.
func respondError(c *gin.Context, logger usecasecontract.IAppLogger, err error) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		ErrorHandler(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, entity.ErrUnauthorized):
		ErrorHandler(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, entity.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "operation not permitted")
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, "resource not found")
	default:
		if logger != nil {
			logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		}
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}
