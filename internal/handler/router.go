package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/middleware"
	"github.com/noah-isme/hr-portal/internal/models"
)

// Routes bundles the handlers mounted by RegisterRoutes.
type Routes struct {
	Auth          *AuthHandler
	Requests      *RequestHandler
	Reviews       *ReviewHandler
	Accounts      *AccountHandler
	Notifications *NotificationHandler
	Profile       *ProfileHandler
	Metrics       *MetricsHandler
}

// RegisterRoutes mounts the portal API under prefix. Everything except login
// requires a session token.
func RegisterRoutes(r *gin.Engine, prefix string, tokens middleware.TokenValidator, h Routes, metricsEnabled bool) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if metricsEnabled {
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	api := r.Group(prefix)
	api.POST("/auth/login", h.Auth.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(tokens))
	secured.POST("/auth/logout", h.Auth.Logout)

	reviewers := middleware.RequireRoles(models.RoleHR, models.RoleAdmin)
	admins := middleware.RequireRoles(models.RoleAdmin)

	requests := secured.Group("/requests")
	requests.GET("", h.Requests.View)
	requests.POST("/refresh", h.Requests.Refresh)
	requests.PUT("/search", h.Requests.Search)
	requests.PUT("/page", h.Requests.Page)
	requests.PUT("/page-size", h.Requests.PageSize)
	requests.PUT("/status", h.Requests.Status)
	requests.PUT("/filters", h.Requests.Filters)
	requests.DELETE("/filters", h.Requests.ResetFilters)
	requests.PUT("/date-range", h.Requests.DateRange)
	requests.GET("/summary", h.Requests.Summary)
	requests.GET("/export", h.Requests.Export)
	requests.POST("/flight", h.Reviews.SubmitFlight)
	requests.GET("/:id", h.Requests.Get)
	requests.DELETE("/:id", reviewers, h.Requests.Delete)
	requests.PUT("/:id/approve", reviewers, h.Reviews.Approve)
	requests.PUT("/:id/reject", reviewers, h.Reviews.Reject)
	requests.POST("/:id/booking", reviewers, h.Reviews.Book)

	accounts := secured.Group("/accounts", admins)
	accounts.GET("", h.Accounts.View)
	accounts.POST("", h.Accounts.Create)
	accounts.POST("/refresh", h.Accounts.Refresh)
	accounts.PUT("/search", h.Accounts.Search)
	accounts.PUT("/role", h.Accounts.Role)
	accounts.PUT("/page", h.Accounts.Page)
	accounts.PUT("/page-size", h.Accounts.PageSize)
	accounts.PUT("/:id", h.Accounts.Update)
	accounts.DELETE("/:id", h.Accounts.Delete)

	notifications := secured.Group("/notifications")
	notifications.GET("", h.Notifications.View)
	notifications.POST("/refresh", h.Notifications.Refresh)
	notifications.PUT("/filter", h.Notifications.Filter)
	notifications.PUT("/search", h.Notifications.Search)
	notifications.POST("/more", h.Notifications.More)
	notifications.PUT("/:id/read", h.Notifications.MarkRead)

	secured.GET("/reference-data", h.Profile.ReferenceData)
	secured.POST("/reference-data/refresh", admins, h.Profile.RefreshReferenceData)
	secured.GET("/me", h.Profile.Me)
	secured.POST("/me/refresh", h.Profile.RefreshMe)
	secured.GET("/me/profile", h.Profile.Profile)
	secured.PUT("/me/profile", h.Profile.UpdateProfile)
	secured.GET("/metrics/summary", admins, h.Metrics.Snapshot)
}
