package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/middleware"
	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/internal/service"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
	"github.com/noah-isme/hr-portal/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type workspaceDropper interface {
	Drop(session service.Session)
}

// AuthHandler opens and closes portal sessions.
type AuthHandler struct {
	service      authService
	workspaces   workspaceDropper
	secureCookie bool
}

// NewAuthHandler creates a new handler. secureCookie marks the session cookie HTTPS-only.
func NewAuthHandler(svc authService, workspaces workspaceDropper, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: svc, workspaces: workspaces, secureCookie: secureCookie}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate by username and password against user_credentials
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, res.AccessToken, int(res.ExpiresIn), "/", "", h.secureCookie, true)
	response.JSON(c, http.StatusOK, res, nil)
}

// Logout godoc
// @Summary Close the current view
// @Description Clears the session cookie and forgets the list state of this view
// @Tags Authentication
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	if h.workspaces != nil {
		h.workspaces.Drop(session)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureCookie, true)
	response.NoContent(c)
}
