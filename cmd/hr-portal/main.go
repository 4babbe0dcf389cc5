package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/hr-portal/api/swagger"
	"github.com/noah-isme/hr-portal/internal/handler"
	internalmiddleware "github.com/noah-isme/hr-portal/internal/middleware"
	"github.com/noah-isme/hr-portal/internal/repository"
	"github.com/noah-isme/hr-portal/internal/service"
	"github.com/noah-isme/hr-portal/pkg/apiclient"
	"github.com/noah-isme/hr-portal/pkg/cache"
	"github.com/noah-isme/hr-portal/pkg/config"
	"github.com/noah-isme/hr-portal/pkg/logger"
	corsmiddleware "github.com/noah-isme/hr-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/hr-portal/pkg/middleware/requestid"
)

// @title HR Portal API
// @version 1.0.0
// @description Session-aware request, account and notification lists over the HR backend
// @BasePath /portal/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()

	var cacheRepo *repository.CacheRepository
	if cfg.Reference.CacheEnabled {
		redisClient, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("reference cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}
	var cacheStore service.CacheStore
	if cacheRepo != nil {
		cacheStore = cacheRepo
	}
	cacheSvc := service.NewCacheService(cacheStore, metrics, cfg.Reference.CacheTTL, logr, cacheRepo != nil)

	client, err := apiclient.New(apiclient.Config{
		BaseURL:   cfg.Backend.BaseURL,
		APIPrefix: cfg.Backend.APIPrefix,
		Timeout:   cfg.Backend.Timeout,
		Token:     cfg.Backend.Token,
	}, apiclient.WithLogger(logr), apiclient.WithObserver(metrics))
	if err != nil {
		logr.Fatal("invalid backend configuration", zap.Error(err))
	}
	backend := repository.NewBackend(client)

	validate := validator.New()
	workspaces := service.NewWorkspaceStore(service.WorkspaceConfig{
		PageSize:              cfg.Listing.PageSize,
		NotificationBatchSize: cfg.Listing.NotificationBatchSize,
		IdleTTL:               cfg.Listing.WorkspaceIdleTTL,
		MaxViewsPerUser:       cfg.Listing.MaxViewsPerUser,
	}, metrics)

	reference := service.NewReferenceDataService(service.ReferenceSources{
		Departments:      backend.Departments,
		FormTypes:        backend.FormTypes,
		StatusTypes:      backend.StatusTypes,
		PurposesOfTravel: backend.PurposesOfTravel,
		Approvers:        backend.Approvers,
		Roles:            backend.Roles,
	}, cacheSvc, cfg.Reference.CacheTTL, logr)

	requests := service.NewRequestService(backend.Requests, service.RequestDetailSources{
		FlightRequests:  backend.FlightRequests,
		Fliers:          backend.Fliers,
		BookingDetails:  backend.BookingDetails,
		ProgressUpdates: backend.ProgressUpdates,
	}, workspaces, metrics, logr)
	accounts := service.NewAccountService(backend.Users, reference, workspaces, metrics, validate, logr)
	notifications := service.NewNotificationService(backend.Notifications, workspaces, metrics, logr)
	credentials := service.NewCredentialsService(backend.Users, backend.Profiles, validate, logr)
	auth := service.NewAuthService(backend.Users, validate, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: "hr-portal",
	})
	reviews := service.NewReviewService(backend.Requests, backend.ProgressUpdates, backend.BookingDetails, reference, requests, validate, logr)
	flights := service.NewFlightRequestService(backend.Requests, backend.FlightRequests, backend.Fliers, reference, requests, validate, logr)
	exports := service.NewExportService(requests, cfg.Exports.Enabled, logr)

	checks := map[string]handler.ReadinessCheck{
		"backend": func(ctx context.Context) error {
			_, err := backend.StatusTypes.List(ctx)
			return err
		},
	}
	if cacheRepo != nil {
		checks["redis"] = cacheRepo.Ping
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Secure(cfg.IsProduction()))
	r.Use(internalmiddleware.Metrics(metrics, "/health", "/ready", "/metrics"))

	handler.RegisterRoutes(r, cfg.APIPrefix, auth, handler.Routes{
		Auth:          handler.NewAuthHandler(auth, workspaces, cfg.IsProduction()),
		Requests:      handler.NewRequestHandler(requests, exports),
		Reviews:       handler.NewReviewHandler(reviews, flights),
		Accounts:      handler.NewAccountHandler(accounts),
		Notifications: handler.NewNotificationHandler(notifications),
		Profile:       handler.NewProfileHandler(credentials, reference),
		Metrics:       handler.NewMetricsHandler(metrics, checks),
	}, cfg.Metrics.Enabled)

	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "backend", client.BaseURL())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logr.Error("graceful shutdown failed", zap.Error(err))
		}
		logr.Info("server stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}
}
