// Package response contains the JSON response helpers shared by all handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error bodies are {"error": string}; multi-field validation failures
// are {"errors": [string]}.

// JSON writes an arbitrary payload with the given status code.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Message writes {"message": msg}.
func Message(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, map[string]string{"message": msg})
}

// Error writes {"error": msg} with the given status code.
func Error(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, map[string]string{"error": msg})
}

// ValidationErrors writes the collected field messages as a 400.
func ValidationErrors(c echo.Context, messages []string) error {
	return c.JSON(http.StatusBadRequest, map[string][]string{"errors": messages})
}

// BadRequest 400 error
func BadRequest(c echo.Context, msg string) error {
	return Error(c, http.StatusBadRequest, msg)
}

// NotFound 404 error
func NotFound(c echo.Context, msg string) error {
	return Error(c, http.StatusNotFound, msg)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error")
}
