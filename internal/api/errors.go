package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// statusFor maps the domain error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTransientStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Server-side failures are not echoed
// back to the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		message = http.StatusText(status)
	}
	c.JSON(status, dto.Error{Error: message})
}

// bindError reports the first field that failed validation.
func bindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		field := validationErrs[0]
		c.JSON(http.StatusBadRequest, dto.Error{
			Error: fmt.Sprintf("field %s failed validation: %s", field.Field(), field.Tag()),
		})
		return
	}
	c.JSON(http.StatusBadRequest, dto.Error{Error: "invalid request body: " + err.Error()})
}
