package common

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// GetUserIDFromContext extracts the authenticated user's id from the request context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// FieldError is a single per-field validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SendValidationErrors sends a 400 with the field-level error list
func SendValidationErrors(c echo.Context, errs []FieldError) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"status": "error",
		"errors": errs,
	})
}

// SendClientError sends a 400 with a single message
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"status":  "error",
		"message": message,
	})
}

// SendUnauthorizedError sends a 401 with a generic message
func SendUnauthorizedError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"status":  "error",
		"message": message,
	})
}

// SendNotFoundError sends a 404
func SendNotFoundError(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"status":  "error",
		"message": message,
	})
}

// SendServerError sends a 500 with a generic message; internal detail is the
// caller's to log, never to return
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"status":  "error",
		"message": message,
	})
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

// ValidEmail reports whether the value looks like an email address
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether the value contains only phone characters
// (digits, +, -, spaces, parentheses)
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// RequiredString reports whether the value is non-empty after trimming
func RequiredString(value string) bool {
	return strings.TrimSpace(value) != ""
}

// HTTPErrorHandler shapes errors that escape the handlers (unmatched routes,
// method not allowed, stray echo.HTTPError) into the standard envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if code == http.StatusNotFound {
			message = "Route not found"
		}
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if jsonErr := c.JSON(code, echo.Map{
		"status":  "error",
		"message": message,
	}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
