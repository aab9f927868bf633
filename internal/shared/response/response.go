package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"mader-backend/internal/shared/apperror"
)

// Message is the single error and acknowledgement envelope.
type Message struct {
	Message string `json:"message"`
}

// JSON writes data as the response body
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// OK writes a 200 {"message": ...}
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Message{Message: message})
}

// Error writes {"message": ...} with the given status
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Message{Message: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, http.StatusUnauthorized, message)
}

func UnprocessableEntity(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// FromError maps a domain error to its status code and message.
// Internal errors are logged and replaced by a generic message.
func FromError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")
		InternalServerError(c)
		return
	}

	if status == http.StatusUnauthorized {
		Unauthorized(c, apperror.PublicMessage(err))
		return
	}

	Error(c, status, apperror.PublicMessage(err))
}
