package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type requestWriter interface {
	Create(ctx context.Context, payload interface{}) (*models.Request, error)
	Update(ctx context.Context, id string, payload interface{}) (*models.Request, error)
}

type flightRequestWriter interface {
	Create(ctx context.Context, payload interface{}) (*models.FlightRequest, error)
}

type flierWriter interface {
	Create(ctx context.Context, payload interface{}) (*models.Flier, error)
}

// FlightRequestService submits the flight request form.
type FlightRequestService struct {
	requests  requestWriter
	flights   flightRequestWriter
	fliers    flierWriter
	reference referenceProvider
	list      *RequestService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFlightRequestService constructs the service. list may be nil.
func NewFlightRequestService(requests requestWriter, flights flightRequestWriter, fliers flierWriter, reference referenceProvider, list *RequestService, validate *validator.Validate, logger *zap.Logger) *FlightRequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlightRequestService{
		requests:  requests,
		flights:   flights,
		fliers:    fliers,
		reference: reference,
		list:      list,
		validator: registerFormRules(validate),
		logger:    logger,
	}
}

// Submit validates the form, then creates the flight request, the request
// row pointing at it and one flier per traveller.
func (s *FlightRequestService) Submit(ctx context.Context, session Session, form dto.FlightRequestForm) (*models.RequestDetail, error) {
	if err := s.validator.Struct(form); err != nil {
		return nil, validationError(err, "flight request")
	}
	if form.EndBusiness < form.StartBusiness {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid flight request: end_business is before start_business")
	}
	if form.ReturnDate < form.DepartureDate {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid flight request: return_date is before departure_date")
	}

	userID, err := strconv.ParseInt(session.UserID, 10, 64)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session user")
	}

	ref, err := s.reference.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	formID, statusID, err := s.resolveReferences(ref, form)
	if err != nil {
		return nil, err
	}

	flight, err := s.flights.Create(ctx, models.FlightRequest{
		Requestor:     form.Requestor,
		Email:         form.Email,
		DepartmentID:  form.DepartmentID,
		PurposeID:     form.PurposeID,
		PurposeOthers: form.PurposeOthers,
		DepartureCity: form.DepartureCity,
		DepartureDate: form.DepartureDate,
		DepartureTime: form.DepartureTime,
		ReturnCity:    form.ReturnCity,
		ReturnDate:    form.ReturnDate,
		ReturnTime:    form.ReturnTime,
		StartBusiness: form.StartBusiness,
		EndBusiness:   form.EndBusiness,
		ExtraBaggage:  form.ExtraBaggage,
		ApproverID:    form.ApproverID,
		Remarks:       form.Remarks,
	})
	if err != nil {
		return nil, err
	}

	request, err := s.requests.Create(ctx, models.RequestSubmission{
		Subject:         fmt.Sprintf("%s to %s (%s)", models.FlightRequestFormName, form.DepartureCity, form.DepartureDate),
		UserID:          userID,
		FormID:          formID,
		StatusID:        statusID,
		DepartmentID:    form.DepartmentID,
		FlightRequestID: flight.ID,
	})
	if err != nil {
		return nil, err
	}

	detail := &models.RequestDetail{Request: *request, Flight: flight}
	for _, in := range form.Fliers {
		flier, err := s.fliers.Create(ctx, models.Flier{
			FlightRequestID: flight.ID,
			FirstName:       in.FirstName,
			MiddleName:      in.MiddleName,
			LastName:        in.LastName,
			Birthday:        in.Birthday,
			Extensions:      in.Extensions,
			Title:           in.Title,
		})
		if err != nil {
			return nil, err
		}
		detail.Fliers = append(detail.Fliers, *flier)
	}

	s.logger.Info("flight request submitted",
		zap.Int64("request_id", request.ID),
		zap.Int64("flight_request_id", flight.ID),
		zap.Int("fliers", len(detail.Fliers)),
		zap.String("by", session.UserID),
	)
	if s.list != nil {
		s.list.Refresh(ctx, session)
	}
	return detail, nil
}

func (s *FlightRequestService) resolveReferences(ref models.ReferenceData, form dto.FlightRequestForm) (formID, statusID int64, err error) {
	if !ref.HasDepartment(form.DepartmentID) {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "invalid flight request: department_id does not exist")
	}
	if !hasApprover(ref, form.ApproverID) {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "invalid flight request: approver_id does not exist")
	}
	if form.PurposeID != 0 && !hasPurpose(ref, form.PurposeID) {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, "invalid flight request: purpose_id does not exist")
	}
	for _, ft := range ref.FormTypes {
		if ft.Name == models.FlightRequestFormName {
			formID = ft.ID
		}
	}
	if formID == 0 {
		return 0, 0, appErrors.Clone(appErrors.ErrInternal, "form type "+models.FlightRequestFormName+" is not configured")
	}
	statusID, ok := ref.StatusID(models.StatusPending)
	if !ok {
		return 0, 0, appErrors.Clone(appErrors.ErrInternal, "status Pending is not configured")
	}
	return formID, statusID, nil
}

func hasApprover(ref models.ReferenceData, id int64) bool {
	for _, a := range ref.Approvers {
		if a.ID == id {
			return true
		}
	}
	return false
}

func hasPurpose(ref models.ReferenceData, id int64) bool {
	for _, p := range ref.PurposesOfTravel {
		if p.ID == id {
			return true
		}
	}
	return false
}
