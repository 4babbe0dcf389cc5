package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionKeyDefaultsView(t *testing.T) {
	assert.Equal(t, "7/default", Session{UserID: "7"}.Key())
	assert.Equal(t, "7/default", Session{UserID: "7", ViewID: "  "}.Key())
	assert.Equal(t, "7/tab-2", Session{UserID: "7", ViewID: "tab-2"}.Key())
}

func TestWorkspaceStoreSeparatesViews(t *testing.T) {
	store := testStore()

	first, release := store.Acquire(Session{UserID: "7"})
	release()
	again, release := store.Acquire(Session{UserID: "7", ViewID: DefaultViewID})
	release()
	other, release := store.Acquire(Session{UserID: "7", ViewID: "tab-2"})
	release()

	assert.Same(t, first, again)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 5, first.Notifications.PageState().PageSize)
	assert.Equal(t, 10, first.Requests.PageState().PageSize)
}

func TestWorkspaceStoreEvictsIdleWorkspaces(t *testing.T) {
	metrics := NewMetricsService()
	store := NewWorkspaceStore(WorkspaceConfig{IdleTTL: time.Minute}, metrics)
	now := time.Date(2025, 7, 8, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, release := store.Acquire(Session{UserID: "1"})
	release()
	now = now.Add(30 * time.Second)
	_, release = store.Acquire(Session{UserID: "2"})
	release()

	now = now.Add(45 * time.Second)
	assert.Equal(t, 1, store.Len())

	store.Drop(Session{UserID: "2"})
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, int64(0), metrics.Snapshot().ActiveWorkspaces)
}

func TestWorkspaceStoreCapsViewsPerUser(t *testing.T) {
	store := NewWorkspaceStore(WorkspaceConfig{MaxViewsPerUser: 2}, nil)
	now := time.Date(2025, 7, 8, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	open := func(user, view string) *Workspace {
		now = now.Add(time.Second)
		ws, release := store.Acquire(Session{UserID: user, ViewID: view})
		release()
		return ws
	}

	first := open("7", "tab-1")
	second := open("7", "tab-2")
	open("8", "tab-1")
	assert.Same(t, first, open("7", "tab-1"))

	open("7", "tab-3")
	assert.Equal(t, 3, store.Len())
	assert.Same(t, first, open("7", "tab-1"))
	assert.NotSame(t, second, open("7", "tab-2"))
	assert.Equal(t, 3, store.Len())
}
