package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type requestRepository interface {
	List(ctx context.Context) ([]models.Request, error)
	Get(ctx context.Context, id string) (*models.Request, error)
	Update(ctx context.Context, id string, payload interface{}) (*models.Request, error)
	Delete(ctx context.Context, id string) error
}

// RequestDetailSources supply the pieces of a request detail page.
type RequestDetailSources struct {
	FlightRequests interface {
		Get(ctx context.Context, id string) (*models.FlightRequest, error)
	}
	Fliers          lister[models.Flier]
	BookingDetails  lister[models.BookingDetails]
	ProgressUpdates lister[models.ProgressUpdate]
}

// RequestService backs the home screen request list.
type RequestService struct {
	*ListService[models.Request]
	repo    requestRepository
	details RequestDetailSources
	logger  *zap.Logger
}

// NewRequestService constructs the service.
func NewRequestService(repo requestRepository, details RequestDetailSources, store *WorkspaceStore, metrics *MetricsService, logger *zap.Logger) *RequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &RequestService{repo: repo, details: details, logger: logger}
	svc.ListService = NewListService("requests", store,
		func(ws *Workspace) *listing.Controller[models.Request] { return ws.Requests },
		func(ctx context.Context, _ Session) ([]models.Request, error) { return repo.List(ctx) },
		metrics, logger)
	return svc
}

// SetStatus applies a status card. An empty status shows every request.
func (s *RequestService) SetStatus(ctx context.Context, session Session, status string) (listing.View[models.Request], error) {
	if status != "" && !knownStatus(status) {
		return listing.View[models.Request]{}, appErrors.Clone(appErrors.ErrValidation, "unknown status "+strconv.Quote(status))
	}
	return s.With(ctx, session, func(c *listing.Controller[models.Request]) {
		c.SetFilter(models.RequestFieldStatus, status)
	}), nil
}

// ApplyFilters replaces every equality and date filter from the filter form.
func (s *RequestService) ApplyFilters(ctx context.Context, session Session, req dto.FilterCriteriaRequest) (listing.View[models.Request], error) {
	criteria, err := requestCriteria(req)
	if err != nil {
		return listing.View[models.Request]{}, err
	}
	return s.With(ctx, session, func(c *listing.Controller[models.Request]) {
		c.SetFilterCriteria(criteria)
	}), nil
}

// SelectDateRange filters on a single calendar dimension; null bounds clear every date filter.
func (s *RequestService) SelectDateRange(ctx context.Context, session Session, req dto.DateRangeSelection) (listing.View[models.Request], error) {
	dim := listing.DateDimension(req.Dimension)
	if !knownDimension(dim) {
		return listing.View[models.Request]{}, appErrors.Clone(appErrors.ErrValidation, "unknown date dimension "+strconv.Quote(req.Dimension))
	}
	from, err := parseBound(req.From)
	if err != nil {
		return listing.View[models.Request]{}, err
	}
	to, err := parseBound(req.To)
	if err != nil {
		return listing.View[models.Request]{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return listing.View[models.Request]{}, appErrors.Clone(appErrors.ErrValidation, "date range ends before it starts")
	}
	return s.With(ctx, session, func(c *listing.Controller[models.Request]) {
		c.SetDateRange(dim, from, to)
	}), nil
}

// ResetFilters clears criteria and search.
func (s *RequestService) ResetFilters(ctx context.Context, session Session) listing.View[models.Request] {
	return s.With(ctx, session, func(c *listing.Controller[models.Request]) {
		c.ResetFilters()
	})
}

// Summary counts the snapshot per status for the status cards.
func (s *RequestService) Summary(ctx context.Context, session Session) (models.RequestSummary, error) {
	var summary models.RequestSummary
	err := s.Read(ctx, session, func(c *listing.Controller[models.Request]) {
		counts := c.Tally(models.RequestFieldStatus, models.RequestStatuses...)
		summary = models.RequestSummary{
			Total:    len(c.Snapshot()),
			Pending:  counts[models.StatusPending],
			Approved: counts[models.StatusApproved],
			Rejected: counts[models.StatusRejected],
			Draft:    counts[models.StatusDraft],
		}
	})
	if err != nil {
		return models.RequestSummary{}, err
	}
	return summary, nil
}

// Detail loads a request together with its flight data, fliers, booking and progress.
func (s *RequestService) Detail(ctx context.Context, id string) (*models.RequestDetail, error) {
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &models.RequestDetail{Request: *req}

	g, gctx := errgroup.WithContext(ctx)
	if req.FlightRequestID > 0 && s.details.FlightRequests != nil {
		g.Go(func() error {
			flight, err := s.details.FlightRequests.Get(gctx, strconv.FormatInt(req.FlightRequestID, 10))
			if err != nil {
				return err
			}
			detail.Flight = flight
			return nil
		})
		if s.details.Fliers != nil {
			g.Go(func() error {
				fliers, err := s.details.Fliers.List(gctx)
				if err != nil {
					return err
				}
				for _, f := range fliers {
					if f.FlightRequestID == req.FlightRequestID {
						detail.Fliers = append(detail.Fliers, f)
					}
				}
				return nil
			})
		}
	}
	if s.details.BookingDetails != nil {
		g.Go(func() error {
			bookings, err := s.details.BookingDetails.List(gctx)
			if err != nil {
				return err
			}
			for i := range bookings {
				if bookings[i].RequestID == req.ID {
					detail.Booking = &bookings[i]
					break
				}
			}
			return nil
		})
	}
	if s.details.ProgressUpdates != nil {
		g.Go(func() error {
			updates, err := s.details.ProgressUpdates.List(gctx)
			if err != nil {
				return err
			}
			for _, u := range updates {
				if u.RequestID == req.ID {
					detail.Progress = append(detail.Progress, u)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// Delete removes a request and refreshes the session's list.
func (s *RequestService) Delete(ctx context.Context, session Session, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("request deleted", zap.String("request_id", id), zap.String("user_id", session.UserID))
	s.Refresh(ctx, session)
	return nil
}

func requestCriteria(req dto.FilterCriteriaRequest) (listing.Criteria, error) {
	criteria := listing.Criteria{}
	for name, value := range req.Equals {
		field := listing.Field(name)
		if !knownRequestField(field) {
			return listing.Criteria{}, appErrors.Clone(appErrors.ErrValidation, "unknown filter field "+strconv.Quote(name))
		}
		criteria = criteria.WithEqual(field, value)
	}
	for name, r := range req.Ranges {
		dim := listing.DateDimension(name)
		if !knownDimension(dim) {
			return listing.Criteria{}, appErrors.Clone(appErrors.ErrValidation, "unknown date dimension "+strconv.Quote(name))
		}
		from, err := parseBound(&r.From)
		if err != nil {
			return listing.Criteria{}, err
		}
		to, err := parseBound(&r.To)
		if err != nil {
			return listing.Criteria{}, err
		}
		if from == nil && to == nil {
			continue
		}
		if criteria.Ranges == nil {
			criteria.Ranges = map[listing.DateDimension]listing.DateRange{}
		}
		criteria.Ranges[dim] = listing.DateRange{From: from, To: to}
	}
	return criteria, nil
}

func parseBound(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "dates must use YYYY-MM-DD")
	}
	return &t, nil
}

func knownStatus(status string) bool {
	for _, s := range models.RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func knownRequestField(field listing.Field) bool {
	for _, f := range models.RequestFields {
		if f == field {
			return true
		}
	}
	return false
}

func knownDimension(dim listing.DateDimension) bool {
	for _, d := range models.RequestDateDimensions {
		if d == dim {
			return true
		}
	}
	return false
}
