package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/code"
)

// ErrorResponse is the uniform failure body. Success bodies are raw payloads,
// matching what the admin dashboard and contact form consume.
type ErrorResponse struct {
	Error string `json:"error" example:"Client not found"`
}

// Success writes a 200 with the payload as-is
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload as-is
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Fail writes the mapped status with the code's default message
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{Error: code.GetMessage(errorCode)})
}

// FailWithMessage writes the mapped status with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{Error: message})
}

// ParamError writes a 400 validation failure
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message)
}

// ServerError writes an opaque 500; internals never leak to the caller
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}

// Unauthorized writes a 401
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrTokenInvalid)
	}
	FailWithMessage(c, code.ErrTokenInvalid, message)
}
