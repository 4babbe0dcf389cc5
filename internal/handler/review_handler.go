package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/internal/service"
	"github.com/noah-isme/hr-portal/pkg/response"
)

type reviewService interface {
	Approve(ctx context.Context, session service.Session, id string, req dto.ApproveRequest) (*models.Request, error)
	Reject(ctx context.Context, session service.Session, id string, req dto.RejectRequest) (*models.Request, error)
	Book(ctx context.Context, session service.Session, id string, req dto.BookingDetailsRequest) (*models.BookingDetails, error)
}

type flightRequestService interface {
	Submit(ctx context.Context, session service.Session, form dto.FlightRequestForm) (*models.RequestDetail, error)
}

// ReviewHandler handles request submission and HR review.
type ReviewHandler struct {
	reviews reviewService
	flights flightRequestService
}

// NewReviewHandler creates a review handler.
func NewReviewHandler(reviews reviewService, flights flightRequestService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, flights: flights}
}

// SubmitFlight godoc
// @Summary Submit a flight request
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.FlightRequestForm true "Flight request form"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /requests/flight [post]
func (h *ReviewHandler) SubmitFlight(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var form dto.FlightRequestForm
	if !bindJSON(c, &form) {
		return
	}
	detail, err := h.flights.Submit(c.Request.Context(), session, form)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// Approve godoc
// @Summary Approve a pending request
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.ApproveRequest false "Remarks"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /requests/{id}/approve [put]
func (h *ReviewHandler) Approve(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.ApproveRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	updated, err := h.reviews.Approve(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// Reject godoc
// @Summary Reject a pending request
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.RejectRequest true "Notes"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /requests/{id}/reject [put]
func (h *ReviewHandler) Reject(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.RejectRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.reviews.Reject(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// Book godoc
// @Summary Record booking details for an approved request
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body dto.BookingDetailsRequest true "Booking details"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /requests/{id}/booking [post]
func (h *ReviewHandler) Book(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.BookingDetailsRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := h.reviews.Book(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, booking)
}
