package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services/container"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/code"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/response"
)

// HealthController handles liveness and status requests
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a gin handler for the given health method
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method")
		}
	}
}

// Ping reports service liveness
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Status reports liveness plus backing-store reachability
// @Summary      Health status
// @Description  Health check including a database ping
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/status [get]
func (h *HealthController) Status() {
	databaseStatus := "up"
	if sqlDB, err := h.Container.GetDB().DB(); err != nil {
		databaseStatus = "down"
	} else {
		ctx, cancel := context.WithTimeout(h.Ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(ctx); err != nil {
			databaseStatus = "down"
		}
	}

	response.Success(h.Ctx, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  databaseStatus,
	})
}
