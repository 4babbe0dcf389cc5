package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/pkg/response"
)

type credentialsService interface {
	Current(ctx context.Context, userID string) (*models.UserCredentials, error)
	Refresh(ctx context.Context, userID string) (*models.UserCredentials, error)
	Profile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.UserProfile, error)
}

type referenceService interface {
	Snapshot(ctx context.Context) (models.ReferenceData, error)
	Refresh(ctx context.Context) (models.ReferenceData, error)
}

// ProfileHandler serves the signed-in user's credentials, profile and the
// reference data that populates forms.
type ProfileHandler struct {
	credentials credentialsService
	reference   referenceService
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler(credentials credentialsService, reference referenceService) *ProfileHandler {
	return &ProfileHandler{credentials: credentials, reference: reference}
}

// Me godoc
// @Summary Current user credentials
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	creds, err := h.credentials.Current(c.Request.Context(), session.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, creds, nil)
}

// RefreshMe refetches the current user's credentials.
func (h *ProfileHandler) RefreshMe(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	creds, err := h.credentials.Refresh(c.Request.Context(), session.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, creds, nil)
}

// Profile godoc
// @Summary Current user profile
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /me/profile [get]
func (h *ProfileHandler) Profile(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	profile, err := h.credentials.Profile(c.Request.Context(), session.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// UpdateProfile godoc
// @Summary Edit the current user profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /me/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.credentials.UpdateProfile(c.Request.Context(), session.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// ReferenceData godoc
// @Summary Departments, form types, statuses, purposes, approvers and roles
// @Tags Reference
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /reference-data [get]
func (h *ProfileHandler) ReferenceData(c *gin.Context) {
	data, err := h.reference.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}

// RefreshReferenceData refetches every reference collection.
func (h *ProfileHandler) RefreshReferenceData(c *gin.Context) {
	data, err := h.reference.Refresh(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}
