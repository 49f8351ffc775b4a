package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mensagem genérica para 500; a causa só vai para o log.
const InternalMessage = "an error occurred"

type HTTPError struct {
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Invalid(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "invalid_request",
		Message: "Invalid request data",
		Errors:  fields,
	})
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code string) {
	Write(c, http.StatusInternalServerError, code, InternalMessage)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func ServiceUnavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}
