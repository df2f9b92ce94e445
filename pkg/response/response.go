package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes returned in ErrorInfo.Code.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeEmptyInput        = "EMPTY_INPUT"
	CodeInvalidID         = "INVALID_ID"
	CodeNamespaceNotFound = "NAMESPACE_NOT_FOUND"
	CodeInternal          = "INTERNAL_ERROR"
)

// Response represents a standard API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success sends a successful response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Error sends an error response.
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message)
}

// InvalidID sends a 400 error response for an id that does not decode.
func InvalidID(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeInvalidID, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, code, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternal, message)
}
