// Package response holds the helpers that write wire bodies.
package response

import (
	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Message writes the plain message body used by mutation endpoints,
// e.g. {"message": "Deleted seller."}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.Response{Message: message})
}

// Error writes the error envelope directly, for paths that bypass the
// centralized error handler.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return c.JSON(statusCode, domainerrors.Response{
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}
