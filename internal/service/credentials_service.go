package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type credentialsRepository interface {
	Get(ctx context.Context, id string) (*models.UserCredentials, error)
}

type profileRepository interface {
	List(ctx context.Context) ([]models.UserProfile, error)
	Update(ctx context.Context, id string, payload interface{}) (*models.UserProfile, error)
}

// CredentialsService provides the signed-in user's account and profile.
// Credentials are memoised per user until Refresh.
type CredentialsService struct {
	users     credentialsRepository
	profiles  profileRepository
	validator *validator.Validate
	logger    *zap.Logger

	mu      sync.RWMutex
	current map[string]models.UserCredentials
}

// NewCredentialsService constructs the service.
func NewCredentialsService(users credentialsRepository, profiles profileRepository, validate *validator.Validate, logger *zap.Logger) *CredentialsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialsService{
		users:     users,
		profiles:  profiles,
		validator: registerFormRules(validate),
		logger:    logger,
		current:   make(map[string]models.UserCredentials),
	}
}

// Current returns the credentials of userID, fetching them once.
func (s *CredentialsService) Current(ctx context.Context, userID string) (*models.UserCredentials, error) {
	s.mu.RLock()
	creds, ok := s.current[userID]
	s.mu.RUnlock()
	if ok {
		return &creds, nil
	}
	return s.Refresh(ctx, userID)
}

// Refresh refetches the credentials of userID.
func (s *CredentialsService) Refresh(ctx context.Context, userID string) (*models.UserCredentials, error) {
	creds, err := s.users.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("credentials fetch failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	public := creds.Public()
	s.mu.Lock()
	s.current[userID] = public
	s.mu.Unlock()
	return &public, nil
}

// Forget drops the memoised credentials of userID.
func (s *CredentialsService) Forget(userID string) {
	s.mu.Lock()
	delete(s.current, userID)
	s.mu.Unlock()
}

// Profile returns the profile belonging to userID.
func (s *CredentialsService) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid user id")
	}
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].UserID == id {
			return &profiles[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
}

// UpdateProfile edits the profile of userID.
func (s *CredentialsService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.UserProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "profile")
	}
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = req.FirstName
	profile.MiddleName = req.MiddleName
	profile.LastName = req.LastName
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.Birthday = req.Birthday
	profile.Address = req.Address

	updated, err := s.profiles.Update(ctx, strconv.FormatInt(profile.ID, 10), profile)
	if err != nil {
		return nil, err
	}
	s.Forget(userID)
	return updated, nil
}
