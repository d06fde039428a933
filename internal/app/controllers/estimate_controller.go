package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/models"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services/container"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/code"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/error/response"
)

// InterfaceEstimateController defines the estimate controller interface
type InterfaceEstimateController interface {
	CreateEstimate()
	GetEstimate()
	UpdateEstimate()
	DeleteEstimate()
}

// EstimateController handles estimate requests
type EstimateController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEstimateController creates a new estimate controller
func NewEstimateController(ctx *gin.Context, container *container.ServiceContainer) *EstimateController {
	return &EstimateController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateEstimateRequest is the estimate creation payload
type CreateEstimateRequest struct {
	ClientID         uint    `json:"client_id" binding:"required" example:"1"`
	SystemSize       *string `json:"system_size" example:"6kW"`
	PanelCount       *string `json:"panel_count" example:"15"`
	AnnualProduction *string `json:"annual_production" example:"8200 kWh"`
	EstimatedSavings *string `json:"estimated_savings" example:"$1,400/yr"`
	Incentives       *string `json:"incentives" example:"30% federal tax credit"`
	Notes            *string `json:"notes"`
}

// UpdateEstimateRequest carries the updatable estimate fields; anything else
// in the request body is silently ignored.
type UpdateEstimateRequest struct {
	SystemSize       *string `json:"system_size"`
	PanelCount       *string `json:"panel_count"`
	AnnualProduction *string `json:"annual_production"`
	EstimatedSavings *string `json:"estimated_savings"`
	Incentives       *string `json:"incentives"`
	Notes            *string `json:"notes"`
}

// Updates folds the set fields into an update map
func (r *UpdateEstimateRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.SystemSize != nil {
		updates["system_size"] = *r.SystemSize
	}
	if r.PanelCount != nil {
		updates["panel_count"] = *r.PanelCount
	}
	if r.AnnualProduction != nil {
		updates["annual_production"] = *r.AnnualProduction
	}
	if r.EstimatedSavings != nil {
		updates["estimated_savings"] = *r.EstimatedSavings
	}
	if r.Incentives != nil {
		updates["incentives"] = *r.Incentives
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates
}

// HandleEstimateFunc returns a gin handler for the given estimate method
func HandleEstimateFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEstimateController(ctx, container)

		switch method {
		case "createEstimate":
			controller.CreateEstimate()
		case "getEstimate":
			controller.GetEstimate()
		case "updateEstimate":
			controller.UpdateEstimate()
		case "deleteEstimate":
			controller.DeleteEstimate()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method")
		}
	}
}

// CreateEstimate creates an estimate for an existing client
// @Summary      Create an estimate
// @Description  Attaches a cost/savings projection to an existing lead
// @Tags         Estimate
// @Accept       json
// @Produce      json
// @Param        body body CreateEstimateRequest true "Estimate details"
// @Security     BearerAuth
// @Success      201  {object}  models.Estimate
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /estimates [post]
func (c *EstimateController) CreateEstimate() {
	var req CreateEstimateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrEstimateClientRequired)
		return
	}

	estimate := models.Estimate{
		ClientID:         req.ClientID,
		SystemSize:       req.SystemSize,
		PanelCount:       req.PanelCount,
		AnnualProduction: req.AnnualProduction,
		EstimatedSavings: req.EstimatedSavings,
		Incentives:       req.Incentives,
		Notes:            req.Notes,
	}

	estimateService := c.Container.GetService("estimate").(services.InterfaceEstimateService)
	if err := estimateService.CreateEstimate(&estimate); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			response.Fail(c.Ctx, code.ErrClientNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Created(c.Ctx, estimate)
}

// GetEstimate fetches a single estimate
// @Summary      Get an estimate
// @Tags         Estimate
// @Produce      json
// @Param        id path int true "Estimate ID"
// @Security     BearerAuth
// @Success      200  {object}  models.Estimate
// @Failure      404  {object}  response.ErrorResponse
// @Router       /estimates/{id} [get]
func (c *EstimateController) GetEstimate() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	estimateService := c.Container.GetService("estimate").(services.InterfaceEstimateService)
	estimate, err := estimateService.GetEstimateByID(id)
	if err != nil {
		c.failEstimate(err)
		return
	}

	response.Success(c.Ctx, estimate)
}

// UpdateEstimate applies a partial update
// @Summary      Update an estimate
// @Description  Applies whitelisted fields only; unknown fields are ignored
// @Tags         Estimate
// @Accept       json
// @Produce      json
// @Param        id   path int                   true "Estimate ID"
// @Param        body body UpdateEstimateRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  models.Estimate
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /estimates/{id} [patch]
func (c *EstimateController) UpdateEstimate() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	var req UpdateEstimateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	updates := req.Updates()
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "No valid fields to update")
		return
	}

	estimateService := c.Container.GetService("estimate").(services.InterfaceEstimateService)
	estimate, err := estimateService.UpdateEstimate(id, updates)
	if err != nil {
		c.failEstimate(err)
		return
	}

	response.Success(c.Ctx, estimate)
}

// DeleteEstimate removes a single estimate
// @Summary      Delete an estimate
// @Tags         Estimate
// @Produce      json
// @Param        id path int true "Estimate ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /estimates/{id} [delete]
func (c *EstimateController) DeleteEstimate() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	estimateService := c.Container.GetService("estimate").(services.InterfaceEstimateService)
	if err := estimateService.DeleteEstimate(id); err != nil {
		c.failEstimate(err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Estimate deleted"})
}

func (c *EstimateController) parseID() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid ID parameter")
		return 0, false
	}
	return uint(id), true
}

func (c *EstimateController) failEstimate(err error) {
	if errors.Is(err, services.ErrEstimateNotFound) {
		response.Fail(c.Ctx, code.ErrEstimateNotFound)
		return
	}
	response.Fail(c.Ctx, code.ErrDatabase)
}
