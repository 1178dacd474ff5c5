// Package handler holds the HTTP handlers of the gallery API.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "gallery/internal/errors"
	"gallery/internal/response"
)

// fail renders err as a failure envelope with the status MapErrorToHTTP picks.
func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, response.Fail(httpErr.Message))
}

// bind decodes the JSON body into dst and validates it. Every failure comes back
// as a *errors.ValidationError.
func bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		verr := &apperrors.ValidationError{}
		verr.Add("body", "must be valid JSON")
		return verr
	}
	if err := c.Validate(dst); err != nil {
		return toValidationError(err)
	}
	return nil
}

func toValidationError(err error) error {
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		verr := &apperrors.ValidationError{}
		verr.Add("body", "is invalid")
		return verr
	}
	verr := &apperrors.ValidationError{}
	for _, fe := range fes {
		verr.Add(fieldPath(fe), fieldReason(fe))
	}
	return verr
}

// fieldPath drops the struct name from the namespace: "CheckoutInput.shippingAddress.city"
// becomes "shippingAddress.city".
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid id"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// pathID parses the uuid path parameter name.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		verr := &apperrors.ValidationError{}
		verr.Add(name, "must be a valid id")
		return uuid.Nil, verr
	}
	return id, nil
}

func ok(c echo.Context, v interface{}) error {
	return c.JSON(http.StatusOK, response.OK(v))
}
