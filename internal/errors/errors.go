package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the "code" field of every error body
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError is the JSON body of every non-2xx response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode maps an error code back to its HTTP status
func StatusCode(code string) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Respond aborts the handler chain with err, using the status that matches its code
func Respond(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(StatusCode(err.Code), err)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Respond(c, &APIError{Code: ErrCodeNotFound, Message: message})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	BadRequestWithDetails(c, message, nil)
}

// BadRequestWithDetails sends a 400 response, with details such as a binding error
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "Invalid request"
	}
	Respond(c, &APIError{Code: ErrCodeInvalidInput, Message: message, Details: details})
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Respond(c, &APIError{Code: ErrCodeInternalError, Message: message})
}
