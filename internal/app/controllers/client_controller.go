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

// InterfaceClientController defines the client controller interface
type InterfaceClientController interface {
	SubmitClient()
	GetClients()
	GetClient()
	UpdateClient()
	DeleteClient()
}

// ClientController handles lead requests
type ClientController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewClientController creates a new client controller
func NewClientController(ctx *gin.Context, container *container.ServiceContainer) *ClientController {
	return &ClientController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubmitClientRequest is the public contact-form payload
type SubmitClientRequest struct {
	Name  string  `json:"name" binding:"required" example:"Jane Doe"`
	Email string  `json:"email" binding:"required" example:"jane@example.com"`
	Phone string  `json:"phone" binding:"required" example:"555-0142"`
	Zip   string  `json:"zip" binding:"required" example:"10001"`
	Bill  *string `json:"bill" example:"$180"`
}

// UpdateClientRequest carries the updatable lead fields. Only fields present
// in this struct ever reach the storage layer; anything else in the request
// body is silently ignored.
type UpdateClientRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Zip    *string `json:"zip"`
	Bill   *string `json:"bill"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Updates folds the set fields into an update map
func (r *UpdateClientRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Zip != nil {
		updates["zip"] = *r.Zip
	}
	if r.Bill != nil {
		updates["bill"] = *r.Bill
	}
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates
}

// ClientDetailResponse is a lead merged with its estimates, newest first
type ClientDetailResponse struct {
	models.Client
	Estimates []models.Estimate `json:"estimates"`
}

// HandleClientFunc returns a gin handler for the given client method
func HandleClientFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewClientController(ctx, container)

		switch method {
		case "submitClient":
			controller.SubmitClient()
		case "getClients":
			controller.GetClients()
		case "getClient":
			controller.GetClient()
		case "updateClient":
			controller.UpdateClient()
		case "deleteClient":
			controller.DeleteClient()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method")
		}
	}
}

// SubmitClient accepts a public lead submission
// @Summary      Submit a lead
// @Description  Called by the website contact form; no authentication required
// @Tags         Client
// @Accept       json
// @Produce      json
// @Param        body body SubmitClientRequest true "Lead details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Router       /clients [post]
func (c *ClientController) SubmitClient() {
	var req SubmitClientRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrClientFieldsRequired)
		return
	}

	client := models.Client{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Zip:    req.Zip,
		Bill:   req.Bill,
		Status: "new",
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	if err := clientService.CreateClient(&client); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Created(c.Ctx, gin.H{
		"id":      client.ID,
		"message": "Submission received",
	})
}

// GetClients lists leads
// @Summary      List leads
// @Description  Lists all leads with optional status filter, substring search and sorting
// @Tags         Client
// @Produce      json
// @Param        status query string false "Exact status filter"
// @Param        search query string false "Substring match on name, email, phone or ZIP"
// @Param        sort   query string false "Sort column: name, email, created_at, status or zip"
// @Param        order  query string false "asc or desc (default desc)"
// @Security     BearerAuth
// @Success      200  {array}   models.Client
// @Failure      401  {object}  response.ErrorResponse
// @Router       /clients [get]
func (c *ClientController) GetClients() {
	opts := services.ClientListOptions{
		Status:    c.Ctx.Query("status"),
		Search:    c.Ctx.Query("search"),
		SortField: c.Ctx.Query("sort"),
		SortOrder: c.Ctx.Query("order"),
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	clients, err := clientService.GetAllClients(opts)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, clients)
}

// GetClient fetches a lead with its estimates
// @Summary      Get a lead
// @Description  Returns the lead and its estimates, most recent first
// @Tags         Client
// @Produce      json
// @Param        id path int true "Client ID"
// @Security     BearerAuth
// @Success      200  {object}  ClientDetailResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /clients/{id} [get]
func (c *ClientController) GetClient() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	client, err := clientService.GetClientByID(id)
	if err != nil {
		c.failClient(err)
		return
	}

	estimates, err := clientService.GetClientEstimates(id)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.Success(c.Ctx, ClientDetailResponse{
		Client:    *client,
		Estimates: estimates,
	})
}

// UpdateClient applies a partial update
// @Summary      Update a lead
// @Description  Applies whitelisted fields only; unknown fields are ignored
// @Tags         Client
// @Accept       json
// @Produce      json
// @Param        id   path int                 true "Client ID"
// @Param        body body UpdateClientRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  models.Client
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /clients/{id} [patch]
func (c *ClientController) UpdateClient() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	updates := req.Updates()
	if len(updates) == 0 {
		response.ParamError(c.Ctx, "No valid fields to update")
		return
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	client, err := clientService.UpdateClient(id, updates)
	if err != nil {
		c.failClient(err)
		return
	}

	response.Success(c.Ctx, client)
}

// DeleteClient removes a lead and its estimates
// @Summary      Delete a lead
// @Description  Removes the lead and cascades to all of its estimates
// @Tags         Client
// @Produce      json
// @Param        id path int true "Client ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /clients/{id} [delete]
func (c *ClientController) DeleteClient() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	if err := clientService.DeleteClient(id); err != nil {
		c.failClient(err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Client deleted"})
}

func (c *ClientController) parseID() (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid ID parameter")
		return 0, false
	}
	return uint(id), true
}

func (c *ClientController) failClient(err error) {
	if errors.Is(err, services.ErrClientNotFound) {
		response.Fail(c.Ctx, code.ErrClientNotFound)
		return
	}
	response.Fail(c.Ctx, code.ErrDatabase)
}
