package service

import (
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/models"
)

// DefaultViewID names the workspace of clients that do not send X-View-ID.
const DefaultViewID = "default"

// Session identifies whose list state an operation touches.
type Session struct {
	UserID string
	Role   models.Role
	ViewID string
}

// Key returns the workspace key of the session.
func (s Session) Key() string {
	view := strings.TrimSpace(s.ViewID)
	if view == "" {
		view = DefaultViewID
	}
	return s.UserID + "/" + view
}

// Workspace holds the list controllers of one browser view. All access goes
// through the workspace mutex.
type Workspace struct {
	mu            sync.Mutex
	user          string
	lastUsed      time.Time
	Requests      *listing.Controller[models.Request]
	Accounts      *listing.Controller[models.UserCredentials]
	Notifications *listing.Controller[models.Notification]
}

// WorkspaceConfig sizes new workspaces and bounds their idle lifetime and
// how many views one user may hold at once.
type WorkspaceConfig struct {
	PageSize              int
	NotificationBatchSize int
	IdleTTL               time.Duration
	MaxViewsPerUser       int
}

// WorkspaceStore keeps workspaces in memory. Idle workspaces are evicted
// lazily whenever the store is accessed.
type WorkspaceStore struct {
	mu      sync.Mutex
	items   map[string]*Workspace
	cfg     WorkspaceConfig
	metrics *MetricsService
	now     func() time.Time
}

// NewWorkspaceStore constructs a store.
func NewWorkspaceStore(cfg WorkspaceConfig, metrics *MetricsService) *WorkspaceStore {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.NotificationBatchSize <= 0 {
		cfg.NotificationBatchSize = 15
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	if cfg.MaxViewsPerUser <= 0 {
		cfg.MaxViewsPerUser = 8
	}
	return &WorkspaceStore{
		items:   make(map[string]*Workspace),
		cfg:     cfg,
		metrics: metrics,
		now:     time.Now,
	}
}

// Config returns the store configuration.
func (s *WorkspaceStore) Config() WorkspaceConfig { return s.cfg }

// Acquire returns the workspace of session, creating it on first use, and
// holds its lock until release is called. Opening a view beyond the user's
// limit evicts that user's least recently used view.
func (s *WorkspaceStore) Acquire(session Session) (ws *Workspace, release func()) {
	key := session.Key()
	now := s.now()

	s.mu.Lock()
	s.evictLocked(now)
	ws, ok := s.items[key]
	if !ok {
		s.trimUserLocked(session.UserID)
		ws = s.newWorkspace(session.UserID)
		s.items[key] = ws
		s.metrics.WorkspaceOpened()
	}
	ws.lastUsed = now
	s.mu.Unlock()

	ws.mu.Lock()
	return ws, ws.mu.Unlock
}

// Drop forgets the workspace of session.
func (s *WorkspaceStore) Drop(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[session.Key()]; ok {
		delete(s.items, session.Key())
		s.metrics.WorkspacesClosed(1)
	}
}

// Len returns the number of live workspaces.
func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(s.now())
	return len(s.items)
}

func (s *WorkspaceStore) evictLocked(now time.Time) {
	evicted := 0
	for key, ws := range s.items {
		if now.Sub(ws.lastUsed) > s.cfg.IdleTTL {
			delete(s.items, key)
			evicted++
		}
	}
	s.metrics.WorkspacesClosed(evicted)
}

// trimUserLocked makes room for one more view of user.
func (s *WorkspaceStore) trimUserLocked(user string) {
	for {
		var (
			count  int
			oldest string
			at     time.Time
		)
		for key, ws := range s.items {
			if ws.user != user {
				continue
			}
			count++
			if oldest == "" || ws.lastUsed.Before(at) {
				oldest, at = key, ws.lastUsed
			}
		}
		if count < s.cfg.MaxViewsPerUser {
			return
		}
		delete(s.items, oldest)
		s.metrics.WorkspacesClosed(1)
	}
}

func (s *WorkspaceStore) newWorkspace(user string) *Workspace {
	return &Workspace{
		user:          user,
		Requests:      listing.NewController[models.Request](s.cfg.PageSize),
		Accounts:      listing.NewController[models.UserCredentials](s.cfg.PageSize),
		Notifications: listing.NewController[models.Notification](s.cfg.NotificationBatchSize),
	}
}
