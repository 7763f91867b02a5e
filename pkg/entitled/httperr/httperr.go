// Package httperr owns the error envelope every non-2xx response uses.
// The wire shape is always {"error": CODE, "message": text}.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned on the wire.
const (
	CodeUsernameExists = "USERNAME_EXISTS"
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeGroupNotFound  = "GROUP_NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeHTTPError      = "HTTP_ERROR"
)

// Error is a failure with an explicit wire representation.
type Error struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// New builds an Error with the given code, message and HTTP status.
func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// UsernameExists reports a create racing or repeating an existing username.
func UsernameExists() *Error {
	return New(CodeUsernameExists, "Username already exists", http.StatusConflict)
}

// UserNotFound reports a user id with no matching row.
func UserNotFound() *Error {
	return New(CodeUserNotFound, "User not found", http.StatusNotFound)
}

// GroupNotFound reports a group id with no matching row.
func GroupNotFound() *Error {
	return New(CodeGroupNotFound, "One or more group IDs not found", http.StatusNotFound)
}

// Invalid reports a malformed body or out-of-range query parameter.
func Invalid(message string) *Error {
	if message == "" {
		message = "Request validation failed"
	}
	return New(CodeInvalidRequest, message, http.StatusBadRequest)
}

// Unauthorized reports a missing or wrong API key.
func Unauthorized() *Error {
	return New(CodeUnauthorized, "Invalid or missing API key", http.StatusUnauthorized)
}

// Respond writes err as the JSON envelope. Errors without an explicit wire
// form are rendered as a generic HTTP_ERROR without leaking internals.
func Respond(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		c.JSON(e.Status, e)
		return
	}
	c.JSON(http.StatusInternalServerError, &Error{
		Code:    CodeHTTPError,
		Message: "Internal server error",
	})
}

// Abort writes the envelope and stops the middleware chain.
func Abort(c *gin.Context, e *Error) {
	c.AbortWithStatusJSON(e.Status, e)
}
