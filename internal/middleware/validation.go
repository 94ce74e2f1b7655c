package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// BindJSON decodes the request body into obj and runs its binding rules.
// Any failure is reported as missing attributes.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindError(err)
	}
	return nil
}

// BindOptionalJSON is BindJSON for partial updates: an absent or empty body
// leaves obj untouched.
func BindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, validation.FormatFieldError(e))
		}
		return fmt.Errorf("%w: %s", apperrors.ErrMissingAttrs, strings.Join(fields, "; "))
	}
	return fmt.Errorf("%w: %v", apperrors.ErrMissingAttrs, err)
}
