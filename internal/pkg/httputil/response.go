package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-variants/internal/pkg/apperror"
)

const (
	RequestIDKey = "request_id"
	SubjectKey   = "subject"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

// HandleError writes err as a JSON error response. Server errors are also
// attached to the gin context so the request logger records the cause.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.JSON(appErr.StatusCode, ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		Details:   appErr.Details,
		RequestID: GetRequestID(c),
	})
}

func GetSubject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
