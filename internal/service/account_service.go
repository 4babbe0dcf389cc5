package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type accountRepository interface {
	List(ctx context.Context) ([]models.UserCredentials, error)
	Create(ctx context.Context, payload interface{}) (*models.UserCredentials, error)
	Update(ctx context.Context, id string, payload interface{}) (*models.UserCredentials, error)
	Delete(ctx context.Context, id string) error
}

type referenceProvider interface {
	Snapshot(ctx context.Context) (models.ReferenceData, error)
}

// AccountService backs the administrator's account list and forms.
type AccountService struct {
	*ListService[models.UserCredentials]
	repo      accountRepository
	reference referenceProvider
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAccountService constructs the service.
func NewAccountService(repo accountRepository, reference referenceProvider, store *WorkspaceStore, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &AccountService{repo: repo, reference: reference, validator: registerFormRules(validate), logger: logger}
	svc.ListService = NewListService("accounts", store,
		func(ws *Workspace) *listing.Controller[models.UserCredentials] { return ws.Accounts },
		svc.fetch, metrics, logger)
	return svc
}

// SetRole narrows the list to one role. An empty role shows every account.
func (s *AccountService) SetRole(ctx context.Context, session Session, role string) (listing.View[models.UserCredentials], error) {
	switch models.Role(role) {
	case "", models.RoleAdmin, models.RoleHR, models.RoleEmployee:
	default:
		return listing.View[models.UserCredentials]{}, appErrors.Clone(appErrors.ErrValidation, "unknown role "+strconv.Quote(role))
	}
	return s.With(ctx, session, func(c *listing.Controller[models.UserCredentials]) {
		c.SetFilter(models.AccountFieldRole, role)
	}), nil
}

// Register creates an account and reloads the list.
func (s *AccountService) Register(ctx context.Context, session Session, req dto.RegisterAccountRequest) (*models.UserCredentials, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "account")
	}
	if err := s.checkReferences(ctx, req.DepartmentID, req.RoleID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, models.UserCredentials{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Username:     req.Username,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account registered", zap.String("username", req.Username), zap.String("by", session.UserID))
	s.Refresh(ctx, session)
	public := created.Public()
	return &public, nil
}

// Update edits an account. An empty password leaves the current one untouched.
func (s *AccountService) Update(ctx context.Context, session Session, id string, req dto.UpdateAccountRequest) (*models.UserCredentials, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "account")
	}
	if err := s.checkReferences(ctx, req.DepartmentID, req.RoleID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, models.UserCredentials{
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Username:     req.Username,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account updated", zap.String("account_id", id), zap.String("by", session.UserID))
	s.Refresh(ctx, session)
	public := updated.Public()
	return &public, nil
}

// Delete removes an account. Administrators cannot delete themselves.
func (s *AccountService) Delete(ctx context.Context, session Session, id string) error {
	if id == session.UserID {
		return appErrors.Clone(appErrors.ErrConflict, "cannot delete the signed-in account")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("account deleted", zap.String("account_id", id), zap.String("by", session.UserID))
	s.Refresh(ctx, session)
	return nil
}

func (s *AccountService) fetch(ctx context.Context, _ Session) ([]models.UserCredentials, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.UserCredentials, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}

func (s *AccountService) checkReferences(ctx context.Context, departmentID, roleID int64) error {
	ref, err := s.reference.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !ref.HasDepartment(departmentID) {
		return appErrors.Clone(appErrors.ErrValidation, "invalid account: department_id does not exist")
	}
	if !ref.HasRole(roleID) {
		return appErrors.Clone(appErrors.ErrValidation, "invalid account: role_id does not exist")
	}
	return nil
}
