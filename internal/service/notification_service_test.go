package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-portal/internal/listing"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

func sampleNotifications() []models.Notification {
	out := []models.Notification{}
	for i := 1; i <= 12; i++ {
		out = append(out, models.Notification{
			ID:      int64(i),
			UserID:  42,
			Message: fmt.Sprintf("Request %d updated", i),
			Read:    i%3 == 0,
		})
	}
	out = append(out,
		models.Notification{ID: 13, UserID: 0, Message: "Office closed Friday"},
		models.Notification{ID: 14, UserID: 7, Message: "Someone else's"},
	)
	return out
}

func newNotificationServiceForTest() (*NotificationService, *fakeRepo[models.Notification]) {
	items := sampleNotifications()
	byID := map[string]models.Notification{}
	for _, n := range items {
		byID[fmt.Sprint(n.ID)] = n
	}
	repo := &fakeRepo[models.Notification]{items: items, byID: byID}
	return NewNotificationService(repo, testStore(), nil, nil), repo
}

func TestNotificationFeedShowsOwnAndBroadcast(t *testing.T) {
	svc, _ := newNotificationServiceForTest()
	v := svc.View(context.Background(), alice)

	assert.Equal(t, 13, v.TotalItems)
	assert.Len(t, v.Items, 5)
	for _, n := range v.Items {
		assert.NotEqual(t, int64(14), n.ID)
	}
}

func TestNotificationReadFilter(t *testing.T) {
	svc, _ := newNotificationServiceForTest()
	ctx := context.Background()

	v, err := svc.SetReadFilter(ctx, alice, models.NotificationsRead)
	require.NoError(t, err)
	assert.Equal(t, 4, v.TotalItems)

	v, err = svc.SetReadFilter(ctx, alice, models.NotificationsUnread)
	require.NoError(t, err)
	assert.Equal(t, 9, v.TotalItems)

	v, err = svc.SetReadFilter(ctx, alice, models.NotificationsAll)
	require.NoError(t, err)
	assert.Equal(t, 13, v.TotalItems)

	_, err = svc.SetReadFilter(ctx, alice, "archived")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestNotificationLoadMoreGrowsWindow(t *testing.T) {
	svc, _ := newNotificationServiceForTest()
	ctx := context.Background()
	svc.View(ctx, alice)

	v := svc.LoadMore(ctx, alice)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Len(t, v.Items, 10)

	v = svc.LoadMore(ctx, alice)
	assert.Len(t, v.Items, 13)
	assert.Equal(t, 1, v.TotalPages)

	v = svc.LoadMore(ctx, alice)
	assert.Equal(t, 15, v.PageSize)
}

func TestNotificationLoadMoreOnFreshView(t *testing.T) {
	svc, repo := newNotificationServiceForTest()

	v := svc.LoadMore(context.Background(), alice)
	assert.Equal(t, listing.StateReady, v.State)
	assert.Equal(t, 10, v.PageSize)
	assert.Len(t, v.Items, 10)
	assert.Equal(t, 1, repo.calls())

	failing, broken := newNotificationServiceForTest()
	broken.listErr = errors.New("connection reset")
	v = failing.LoadMore(context.Background(), alice)
	assert.Equal(t, listing.StateError, v.State)
	assert.Contains(t, v.Error, "connection reset")
}

func TestNotificationMarkRead(t *testing.T) {
	svc, repo := newNotificationServiceForTest()
	ctx := context.Background()

	_, err := svc.MarkRead(ctx, alice, "1")
	require.NoError(t, err)
	require.Contains(t, repo.updated, "1")
	assert.True(t, repo.updated["1"].(*models.Notification).Read)

	_, err = svc.MarkRead(ctx, alice, "14")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = svc.MarkRead(ctx, alice, "3")
	require.NoError(t, err)
	assert.NotContains(t, repo.updated, "3")
}
