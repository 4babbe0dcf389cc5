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

type requestService interface {
	listOperations[models.Request]
	SetStatus(ctx context.Context, session service.Session, status string) (listing.View[models.Request], error)
	ApplyFilters(ctx context.Context, session service.Session, req dto.FilterCriteriaRequest) (listing.View[models.Request], error)
	SelectDateRange(ctx context.Context, session service.Session, req dto.DateRangeSelection) (listing.View[models.Request], error)
	ResetFilters(ctx context.Context, session service.Session) listing.View[models.Request]
	Summary(ctx context.Context, session service.Session) (models.RequestSummary, error)
	Detail(ctx context.Context, id string) (*models.RequestDetail, error)
	Delete(ctx context.Context, session service.Session, id string) error
}

type exportService interface {
	Requests(ctx context.Context, session service.Session, format service.ExportFormat) (*service.ExportResult, error)
}

// RequestHandler serves the home screen request list and request detail routes.
type RequestHandler struct {
	listEndpoints[models.Request]
	service requestService
	exports exportService
}

// NewRequestHandler creates a request handler.
func NewRequestHandler(svc requestService, exports exportService) *RequestHandler {
	return &RequestHandler{listEndpoints: newListEndpoints[models.Request](svc), service: svc, exports: exports}
}

// Status godoc
// @Summary Apply a status card
// @Description Filter requests by status; an empty value shows every request
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.FieldFilterRequest true "Status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /requests/status [put]
func (h *RequestHandler) Status(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.FieldFilterRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.service.SetStatus(c.Request.Context(), session, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderView(c, v)
}

// Filters godoc
// @Summary Replace request filters
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.FilterCriteriaRequest true "Equality and date filters"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /requests/filters [put]
func (h *RequestHandler) Filters(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.FilterCriteriaRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.service.ApplyFilters(c.Request.Context(), session, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderView(c, v)
}

// DateRange godoc
// @Summary Select a calendar date range
// @Description Filters on one date dimension; null bounds clear every date filter
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body dto.DateRangeSelection true "Date range"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /requests/date-range [put]
func (h *RequestHandler) DateRange(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.DateRangeSelection
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.service.SelectDateRange(c.Request.Context(), session, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderView(c, v)
}

// ResetFilters clears every filter and the search term.
func (h *RequestHandler) ResetFilters(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	renderView(c, h.service.ResetFilters(c.Request.Context(), session))
}

// Summary godoc
// @Summary Status card counts
// @Tags Requests
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /requests/summary [get]
func (h *RequestHandler) Summary(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Export godoc
// @Summary Download the filtered request list
// @Tags Requests
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /requests/export [get]
func (h *RequestHandler) Export(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))
	result, err := h.exports.Requests(c.Request.Context(), session, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}

// Get godoc
// @Summary Request detail
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Delete godoc
// @Summary Delete a request
// @Tags Requests
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /requests/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
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
