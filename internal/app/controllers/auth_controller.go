package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services/container"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/code"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/response"
)

// InterfaceAuthController defines the auth controller interface
type InterfaceAuthController interface {
	Login()
	ChangePassword()
	Me()
}

// AuthController handles authentication requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"changeme123"`
}

// ChangePasswordRequest is the change-password payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"changeme123"`
	NewPassword     string `json:"newPassword" binding:"required" example:"s0lar-power!"`
}

// HandleAuthFunc returns a gin handler for the given auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "changePassword":
			controller.ChangePassword()
		case "me":
			controller.Me()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method")
		}
	}
}

// Login authenticates an admin
// @Summary      Admin login
// @Description  Exchanges admin credentials for a time-limited bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Username and password are required")
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Username, req.Password)
	if err != nil {
		// Unknown user and wrong password are indistinguishable on purpose.
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrInvalidCredentials)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token":    result.Token,
		"username": result.Username,
	})
}

// ChangePassword updates the current admin's password
// @Summary      Change password
// @Description  Verifies the current password and stores a new one. Existing sessions stay valid until their tokens expire.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body ChangePasswordRequest true "Current and new password"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/change-password [post]
func (c *AuthController) ChangePassword() {
	var req ChangePasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Both current and new password are required")
		return
	}
	if len(req.NewPassword) < 8 {
		response.ParamError(c.Ctx, "New password must be at least 8 characters")
		return
	}

	adminID := c.Ctx.GetUint("adminID")
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.ChangePassword(adminID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.FailWithMessage(c.Ctx, code.ErrInvalidCredentials, "Current password is incorrect")
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Password updated"})
}

// Me returns the authenticated admin's identity
// @Summary      Current admin
// @Description  Returns the identity bound to the presented token; used by the dashboard to verify sessions
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/me [get]
func (c *AuthController) Me() {
	response.Success(c.Ctx, gin.H{
		"id":       c.Ctx.GetUint("adminID"),
		"username": c.Ctx.GetString("username"),
	})
}
