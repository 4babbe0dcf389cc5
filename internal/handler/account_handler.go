package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/internal/service"
	"github.com/noah-isme/hr-portal/pkg/response"
)

type accountService interface {
	listOperations[models.UserCredentials]
	SetRole(ctx context.Context, session service.Session, role string) (listing.View[models.UserCredentials], error)
	Register(ctx context.Context, session service.Session, req dto.RegisterAccountRequest) (*models.UserCredentials, error)
	Update(ctx context.Context, session service.Session, id string, req dto.UpdateAccountRequest) (*models.UserCredentials, error)
	Delete(ctx context.Context, session service.Session, id string) error
}

// AccountHandler serves the administrator's account list and forms.
type AccountHandler struct {
	listEndpoints[models.UserCredentials]
	service accountService
}

// NewAccountHandler creates an account handler.
func NewAccountHandler(svc accountService) *AccountHandler {
	return &AccountHandler{listEndpoints: newListEndpoints[models.UserCredentials](svc), service: svc}
}

// Role godoc
// @Summary Filter accounts by role
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body dto.FieldFilterRequest true "Role name; empty shows all"
// @Success 200 {object} response.Envelope
// @Router /accounts/role [put]
func (h *AccountHandler) Role(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.FieldFilterRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.service.SetRole(c.Request.Context(), session, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderView(c, v)
}

// Create godoc
// @Summary Register an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body dto.RegisterAccountRequest true "Account"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.RegisterAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.service.Register(c.Request.Context(), session, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update godoc
// @Summary Edit an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param payload body dto.UpdateAccountRequest true "Account"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// Delete godoc
// @Summary Delete an account
// @Tags Accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 409 {object} response.Envelope
// @Router /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
