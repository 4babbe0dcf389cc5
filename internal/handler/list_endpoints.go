package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/service"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
	"github.com/noah-isme/hr-portal/pkg/response"
)

// listOperations is the part of every list service shared by all lists.
type listOperations[T any] interface {
	View(ctx context.Context, session service.Session) listing.View[T]
	Refresh(ctx context.Context, session service.Session) listing.View[T]
	SetSearchTerm(ctx context.Context, session service.Session, term string) listing.View[T]
	SetPage(ctx context.Context, session service.Session, n int) listing.View[T]
	StepPage(ctx context.Context, session service.Session, forward bool) listing.View[T]
	SetPageSize(ctx context.Context, session service.Session, n int) (listing.View[T], error)
}

// listEndpoints serves the view, refresh, search and paging routes of one list.
type listEndpoints[T any] struct {
	list      listOperations[T]
	validator *validator.Validate
}

func newListEndpoints[T any](list listOperations[T]) listEndpoints[T] {
	return listEndpoints[T]{list: list, validator: validator.New()}
}

// View renders the current page.
func (h listEndpoints[T]) View(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	renderView(c, h.list.View(c.Request.Context(), session))
}

// Refresh refetches the snapshot from the backend.
func (h listEndpoints[T]) Refresh(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	renderView(c, h.list.Refresh(c.Request.Context(), session))
}

// Search replaces the free-text term.
func (h listEndpoints[T]) Search(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.SearchRequest
	if !h.bind(c, &req) {
		return
	}
	renderView(c, h.list.SetSearchTerm(c.Request.Context(), session, req.Term))
}

// Page jumps to a page or steps next/prev.
func (h listEndpoints[T]) Page(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.PageRequest
	if !h.bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	switch {
	case req.Action == "next":
		renderView(c, h.list.StepPage(ctx, session, true))
	case req.Action == "prev":
		renderView(c, h.list.StepPage(ctx, session, false))
	case req.Page > 0:
		renderView(c, h.list.SetPage(ctx, session, req.Page))
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "page or action is required"))
	}
}

// PageSize changes the rows per page.
func (h listEndpoints[T]) PageSize(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		return
	}
	var req dto.PageSizeRequest
	if !h.bind(c, &req) {
		return
	}
	v, err := h.list.SetPageSize(c.Request.Context(), session, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderView(c, v)
}

func (h listEndpoints[T]) bind(c *gin.Context, dst interface{}) bool {
	if !bindJSON(c, dst) {
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}
