package httperr

import (
	"errors"
	"net/http"

	"rental-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category to its HTTP status. Unmarked errors are 500.
func StatusOf(err error) int {
	switch errs.CategoryOf(err) {
	case errs.ErrValidation, errs.ErrAvailability, errs.ErrInvalidState, errs.ErrSignature:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes err with the status of its category. Categorised errors carry
// a message meant for the caller; anything else is reported as fallback.
func Abort(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, fallback, nil)
		return
	}
	AbortWithError(c, status, err, publicMessage(err), nil)
}

// AbortBind reports a request binding failure, listing failed fields when the
// validator produced them.
func AbortBind(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

// publicMessage unwraps to the innermost message, which is the sentinel text
// for domain errors.
func publicMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
