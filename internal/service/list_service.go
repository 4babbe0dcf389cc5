package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hr-portal/internal/listing"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

// ListService drives one list controller per workspace. Snapshots are
// fetched on first access and on explicit refresh; every other operation
// recomputes in memory.
type ListService[T listing.Record] struct {
	name    string
	store   *WorkspaceStore
	pick    func(*Workspace) *listing.Controller[T]
	fetch   func(ctx context.Context, session Session) ([]T, error)
	metrics *MetricsService
	logger  *zap.Logger
}

// NewListService wires a list to its controller selector and snapshot source.
func NewListService[T listing.Record](
	name string,
	store *WorkspaceStore,
	pick func(*Workspace) *listing.Controller[T],
	fetch func(ctx context.Context, session Session) ([]T, error),
	metrics *MetricsService,
	logger *zap.Logger,
) *ListService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListService[T]{name: name, store: store, pick: pick, fetch: fetch, metrics: metrics, logger: logger}
}

// View renders the current page, loading the snapshot if none was fetched yet.
func (s *ListService[T]) View(ctx context.Context, session Session) listing.View[T] {
	return s.With(ctx, session, nil)
}

// Refresh refetches the snapshot.
func (s *ListService[T]) Refresh(ctx context.Context, session Session) listing.View[T] {
	return s.With(ctx, session, func(c *listing.Controller[T]) {
		c.Refresh()
	})
}

// SetSearchTerm replaces the free-text term.
func (s *ListService[T]) SetSearchTerm(ctx context.Context, session Session, term string) listing.View[T] {
	return s.With(ctx, session, func(c *listing.Controller[T]) {
		c.SetSearchTerm(term)
	})
}

// SetPage jumps to page n.
func (s *ListService[T]) SetPage(ctx context.Context, session Session, n int) listing.View[T] {
	return s.With(ctx, session, func(c *listing.Controller[T]) {
		c.SetPage(n)
	})
}

// StepPage moves one page forward or back.
func (s *ListService[T]) StepPage(ctx context.Context, session Session, forward bool) listing.View[T] {
	return s.With(ctx, session, func(c *listing.Controller[T]) {
		if forward {
			c.NextPage()
		} else {
			c.PrevPage()
		}
	})
}

// SetPageSize changes the window size.
func (s *ListService[T]) SetPageSize(ctx context.Context, session Session, n int) (listing.View[T], error) {
	if n <= 0 {
		return listing.View[T]{}, appErrors.Clone(appErrors.ErrValidation, "page size must be positive")
	}
	return s.With(ctx, session, func(c *listing.Controller[T]) {
		c.SetPageSize(n)
	}), nil
}

// Filtered returns every record passing the current criteria.
func (s *ListService[T]) Filtered(ctx context.Context, session Session) ([]T, error) {
	var items []T
	err := s.Read(ctx, session, func(c *listing.Controller[T]) {
		items = c.Filtered()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// With runs fn against the session's controller and returns the resulting view.
// A pending snapshot is fetched after fn so criteria set while loading apply to it.
func (s *ListService[T]) With(ctx context.Context, session Session, fn func(c *listing.Controller[T])) listing.View[T] {
	ws, release := s.store.Acquire(session)
	defer release()

	c := s.pick(ws)
	if fn != nil {
		fn(c)
	}
	if c.State() == listing.StateLoading {
		s.load(ctx, session, c)
	}
	return c.View()
}

// Read fetches a pending snapshot, then runs fn against the loaded controller.
// fn is skipped and ErrFetchFailed returned while the list is in the error state.
func (s *ListService[T]) Read(ctx context.Context, session Session, fn func(c *listing.Controller[T])) error {
	ws, release := s.store.Acquire(session)
	defer release()

	c := s.pick(ws)
	if c.State() == listing.StateLoading {
		s.load(ctx, session, c)
	}
	if c.State() == listing.StateError {
		err := c.Err()
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, appErrors.Message(err))
	}
	fn(c)
	return nil
}

func (s *ListService[T]) load(ctx context.Context, session Session, c *listing.Controller[T]) {
	start := time.Now()
	items, err := s.fetch(ctx, session)
	if err != nil {
		c.Fail(err)
		s.logger.Warn("list load failed",
			zap.String("list", s.name),
			zap.String("session", session.Key()),
			zap.Error(err),
		)
	} else {
		c.Load(items)
		s.logger.Debug("list loaded",
			zap.String("list", s.name),
			zap.String("session", session.Key()),
			zap.Int("records", len(items)),
			zap.Stringer("state", c.State()),
			zap.Duration("duration", time.Since(start)),
		)
	}
	s.metrics.RecordListLoad(s.name, c.State().String())
}
