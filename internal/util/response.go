package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data part of a success envelope.
type Response map[string]interface{}

// Business codes used alongside HTTP status.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeServerErr    = 50001
)

// FieldErrors maps a field name to the validation messages collected for it.
type FieldErrors map[string][]string

// Add appends a message to a field's error list.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Has reports whether the field already failed validation.
func (fe FieldErrors) Has(field string) bool {
	return len(fe[field]) > 0
}

// Success writes a success envelope with the given status.
func Success(c *gin.Context, status int, data Response) {
	c.JSON(status, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes an error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// ValidationError writes a 400 with per-field error messages.
func ValidationError(c *gin.Context, errs FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":   CodeInvalidParam,
		"errors": errs,
	})
}
