package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type reviewRequestRepository interface {
	Get(ctx context.Context, id string) (*models.Request, error)
	Update(ctx context.Context, id string, payload interface{}) (*models.Request, error)
}

type progressWriter interface {
	Create(ctx context.Context, payload interface{}) (*models.ProgressUpdate, error)
}

type bookingWriter interface {
	Create(ctx context.Context, payload interface{}) (*models.BookingDetails, error)
}

// ReviewService lets HR approve, reject and book requests.
type ReviewService struct {
	requests  reviewRequestRepository
	progress  progressWriter
	bookings  bookingWriter
	reference referenceProvider
	list      *RequestService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReviewService constructs the service. list may be nil; when set the
// reviewer's request list is refreshed after each decision.
func NewReviewService(requests reviewRequestRepository, progress progressWriter, bookings bookingWriter, reference referenceProvider, list *RequestService, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		requests:  requests,
		progress:  progress,
		bookings:  bookings,
		reference: reference,
		list:      list,
		validator: registerFormRules(validate),
		logger:    logger,
	}
}

// Approve moves a pending request to Approved.
func (s *ReviewService) Approve(ctx context.Context, session Session, id string, req dto.ApproveRequest) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "approval")
	}
	return s.decide(ctx, session, id, models.StatusApproved, req.Remarks)
}

// Reject moves a pending request to Rejected with the reviewer's notes.
func (s *ReviewService) Reject(ctx context.Context, session Session, id string, req dto.RejectRequest) (*models.Request, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "rejection")
	}
	return s.decide(ctx, session, id, models.StatusRejected, req.Notes)
}

// Book records the tickets for an approved request.
func (s *ReviewService) Book(ctx context.Context, session Session, id string, req dto.BookingDetailsRequest) (*models.BookingDetails, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "booking details")
	}
	current, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusApproved {
		return nil, appErrors.Clone(appErrors.ErrConflict, "only approved requests can be booked")
	}

	booking, err := s.bookings.Create(ctx, models.BookingDetails{
		RequestID:          current.ID,
		DepartureReference: req.DepartureReference,
		DepartureCost:      req.DepartureCost,
		ReturnReference:    req.ReturnReference,
		ReturnCost:         req.ReturnCost,
		Ticket:             req.Ticket,
		Notes:              req.Notes,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("request booked", zap.String("request_id", id), zap.String("by", session.UserID))
	return booking, nil
}

func (s *ReviewService) decide(ctx context.Context, session Session, id, status, remarks string) (*models.Request, error) {
	current, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.StatusPending {
		return nil, appErrors.Clone(appErrors.ErrConflict, "request is "+current.Status+", not Pending")
	}

	ref, err := s.reference.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	statusID, ok := ref.StatusID(status)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrInternal, "status "+status+" missing from status types")
	}

	update := models.RequestStatusUpdate{StatusID: statusID, Remarks: remarks}
	reviewerID, _ := strconv.ParseInt(session.UserID, 10, 64)
	if approver, ok := ref.ApproverByUser(reviewerID); ok {
		update.ApproverID = approver.ID
	}

	updated, err := s.requests.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if updated.ID == 0 {
		current.Status = status
		current.StatusID = statusID
		current.Remarks = remarks
		updated = current
	}

	if _, err := s.progress.Create(ctx, models.ProgressUpdate{
		RequestID: current.ID,
		StatusID:  statusID,
		Remarks:   remarks,
		UpdatedBy: reviewerID,
	}); err != nil {
		s.logger.Warn("progress update not recorded", zap.String("request_id", id), zap.Error(err))
	}

	s.logger.Info("request reviewed", zap.String("request_id", id), zap.String("status", status), zap.String("by", session.UserID))
	if s.list != nil {
		s.list.Refresh(ctx, session)
	}
	return updated, nil
}
