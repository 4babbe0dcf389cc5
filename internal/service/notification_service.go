package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type notificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	Get(ctx context.Context, id string) (*models.Notification, error)
	Update(ctx context.Context, id string, payload interface{}) (*models.Notification, error)
}

// NotificationService backs the notification feed. The feed shows a growing
// window on page 1 rather than numbered pages.
type NotificationService struct {
	*ListService[models.Notification]
	repo   notificationRepository
	batch  int
	logger *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(repo notificationRepository, store *WorkspaceStore, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &NotificationService{repo: repo, batch: store.Config().NotificationBatchSize, logger: logger}
	svc.ListService = NewListService("notifications", store,
		func(ws *Workspace) *listing.Controller[models.Notification] { return ws.Notifications },
		svc.fetch, metrics, logger)
	return svc
}

// SetReadFilter toggles All/Read/Unread.
func (s *NotificationService) SetReadFilter(ctx context.Context, session Session, filter models.NotificationReadFilter) (listing.View[models.Notification], error) {
	var value string
	switch filter {
	case models.NotificationsAll, "":
	case models.NotificationsRead:
		value = "true"
	case models.NotificationsUnread:
		value = "false"
	default:
		return listing.View[models.Notification]{}, appErrors.Clone(appErrors.ErrValidation, "unknown notification filter "+strconv.Quote(string(filter)))
	}
	return s.With(ctx, session, func(c *listing.Controller[models.Notification]) {
		c.SetFilter(models.NotificationFieldRead, value)
	}), nil
}

// LoadMore grows the visible window by one batch once the feed is loaded.
func (s *NotificationService) LoadMore(ctx context.Context, session Session) listing.View[models.Notification] {
	var v listing.View[models.Notification]
	err := s.Read(ctx, session, func(c *listing.Controller[models.Notification]) {
		if ps := c.PageState(); ps.PageSize < ps.TotalItems {
			c.SetPageSize(ps.PageSize + s.batch)
			c.SetPage(1)
		}
		v = c.View()
	})
	if err != nil {
		return s.View(ctx, session)
	}
	return v
}

// MarkRead flags a notification as read and reloads the feed.
func (s *NotificationService) MarkRead(ctx context.Context, session Session, id string) (listing.View[models.Notification], error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return listing.View[models.Notification]{}, err
	}
	if !owns(session, current.UserID) {
		return listing.View[models.Notification]{}, appErrors.ErrNotFound
	}
	if !current.Read {
		current.Read = true
		if _, err := s.repo.Update(ctx, id, current); err != nil {
			return listing.View[models.Notification]{}, err
		}
	}
	return s.Refresh(ctx, session), nil
}

func (s *NotificationService) fetch(ctx context.Context, session Session) ([]models.Notification, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if owns(session, n.UserID) {
			mine = append(mine, n)
		}
	}
	return mine, nil
}

// owns treats notifications without a recipient as broadcast.
func owns(session Session, userID int64) bool {
	return userID == 0 || strconv.FormatInt(userID, 10) == session.UserID
}
