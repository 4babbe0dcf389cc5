package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/internal/service"
	"github.com/noah-isme/hr-portal/pkg/response"
)

type notificationService interface {
	listOperations[models.Notification]
	SetReadFilter(ctx context.Context, session service.Session, filter models.NotificationReadFilter) (listing.View[models.Notification], error)
	LoadMore(ctx context.Context, session service.Session) listing.View[models.Notification]
	MarkRead(ctx context.Context, session service.Session, id string) (listing.View[models.Notification], error)
}

// NotificationHandler serves the notification feed.
type NotificationHandler struct {
	listEndpoints[models.Notification]
	service notificationService
}

// NewNotificationHandler creates a notification handler.
func NewNotificationHandler(svc notificationService) *NotificationHandler {
	return &NotificationHandler{listEndpoints: newListEndpoints[models.Notification](svc), service: svc}
}

// Filter godoc
// @Summary Toggle All/Read/Unread
// @Tags Notifications
// @Accept json
// @Produce json
// @Param payload body dto.NotificationFilterRequest true "Filter"
// @Success 200 {object} response.Envelope
// @Router /notifications/filter [put]
func (h *NotificationHandler) Filter(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.NotificationFilterRequest
	if !h.bind(c, &req) {
		return
	}
	v, err := h.service.SetReadFilter(c.Request.Context(), session, models.NotificationReadFilter(req.Filter))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderView(c, v)
}

// More grows the visible window by one batch.
func (h *NotificationHandler) More(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	renderView(c, h.service.LoadMore(c.Request.Context(), session))
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	v, err := h.service.MarkRead(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderView(c, v)
}
