package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

const referenceCacheKey = "reference:all"

type lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// ReferenceSources are the static lookup collections.
type ReferenceSources struct {
	Departments      lister[models.Department]
	FormTypes        lister[models.FormType]
	StatusTypes      lister[models.StatusType]
	PurposesOfTravel lister[models.PurposeOfTravel]
	Approvers        lister[models.Approver]
	Roles            lister[models.RoleType]
}

// ReferenceDataService serves departments, form types, statuses, purposes,
// approvers and roles. The data rarely changes, so it is kept in memory and in
// Redis until an explicit refresh.
type ReferenceDataService struct {
	sources ReferenceSources
	cache   *CacheService
	ttl     time.Duration
	logger  *zap.Logger

	mu       sync.RWMutex
	snapshot *models.ReferenceData
}

// NewReferenceDataService constructs the service. cache may be nil.
func NewReferenceDataService(sources ReferenceSources, cache *CacheService, ttl time.Duration, logger *zap.Logger) *ReferenceDataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceDataService{sources: sources, cache: cache, ttl: ttl, logger: logger}
}

// Snapshot returns the reference data, loading it on first use.
func (s *ReferenceDataService) Snapshot(ctx context.Context) (models.ReferenceData, error) {
	s.mu.RLock()
	cached := s.snapshot
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	var fromCache models.ReferenceData
	if s.cache.Load(ctx, referenceCacheKey, &fromCache) {
		s.store(&fromCache)
		return fromCache, nil
	}

	return s.Refresh(ctx)
}

// Refresh refetches every collection from the backend and replaces both
// the memory and Redis copies. The Redis copy is dropped first so other portal
// instances stop serving it; the in-memory snapshot is kept on failure.
func (s *ReferenceDataService) Refresh(ctx context.Context) (models.ReferenceData, error) {
	s.cache.Forget(ctx, referenceCacheKey)
	data, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("reference data refresh failed", zap.Error(err))
		return models.ReferenceData{}, err
	}

	s.store(data)
	s.cache.Save(ctx, referenceCacheKey, data, s.ttl)
	return *data, nil
}

func (s *ReferenceDataService) store(data *models.ReferenceData) {
	s.mu.Lock()
	s.snapshot = data
	s.mu.Unlock()
}

func (s *ReferenceDataService) fetch(ctx context.Context) (*models.ReferenceData, error) {
	data := &models.ReferenceData{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Departments, err = s.sources.Departments.List(gctx)
		return wrapReference(err, "departments")
	})
	g.Go(func() (err error) {
		data.FormTypes, err = s.sources.FormTypes.List(gctx)
		return wrapReference(err, "form types")
	})
	g.Go(func() (err error) {
		data.StatusTypes, err = s.sources.StatusTypes.List(gctx)
		return wrapReference(err, "status types")
	})
	g.Go(func() (err error) {
		data.PurposesOfTravel, err = s.sources.PurposesOfTravel.List(gctx)
		return wrapReference(err, "purposes of travel")
	})
	g.Go(func() (err error) {
		data.Approvers, err = s.sources.Approvers.List(gctx)
		return wrapReference(err, "approvers")
	})
	g.Go(func() (err error) {
		data.Roles, err = s.sources.Roles.List(gctx)
		return wrapReference(err, "roles")
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func wrapReference(err error, what string) error {
	if err == nil {
		return nil
	}
	appErr := appErrors.FromError(err)
	return appErrors.Wrap(err, appErr.Code, appErr.Status, "failed to load "+what+": "+appErr.Message)
}
