package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/middleware"
	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/internal/service"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
	"github.com/noah-isme/hr-portal/pkg/response"
)

// ViewHeader lets one user keep independent list state per browser tab.
const ViewHeader = "X-View-ID"

var viewIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, ok := middleware.Claims(c)
	if !ok {
		return nil
	}
	return claims
}

// sessionFromContext writes a 401 when no claims are present and a 400 for
// a malformed view header.
func sessionFromContext(c *gin.Context) (service.Session, bool) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return service.Session{}, false
	}
	view := strings.TrimSpace(c.GetHeader(ViewHeader))
	if view != "" && !viewIDPattern.MatchString(view) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid X-View-ID header"))
		return service.Session{}, false
	}
	return service.Session{
		UserID: claims.UserID,
		Role:   claims.Role,
		ViewID: view,
	}, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

func renderView[T any](c *gin.Context, v listing.View[T]) {
	response.ListView(c, v.Items, models.Pagination{
		Page:       v.CurrentPage,
		PageSize:   v.PageSize,
		TotalCount: v.TotalItems,
		TotalPages: v.TotalPages,
	}, v.State.String(), v.Error)
}
