package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

func newCacheRepo(t *testing.T) (*CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheRepository(client, nil), mr
}

func TestCacheRepositoryStoresDocumentWithTimestamp(t *testing.T) {
	repo, mr := newCacheRepo(t)
	stored := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return stored }
	ctx := context.Background()

	want := []models.Department{{ID: 1, Name: "Finance"}}
	require.NoError(t, repo.Set(ctx, "reference:all", want, time.Minute))
	assert.True(t, mr.Exists(KeyPrefix+"reference:all"))
	assert.Equal(t, time.Minute, mr.TTL(KeyPrefix+"reference:all"))

	var got []models.Department
	at, err := repo.Get(ctx, "reference:all", &got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, stored.Equal(at))

	mr.FastForward(2 * time.Minute)
	_, err = repo.Get(ctx, "reference:all", &got)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
}

func TestCacheRepositorySetReplacesDocument(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "reference:all", []int{1, 2}, 0))
	require.NoError(t, repo.Set(ctx, "reference:all", []int{3}, 0))

	var got []int
	_, err := repo.Get(ctx, "reference:all", &got)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)
}

func TestCacheRepositoryDropsUndecodableEntries(t *testing.T) {
	repo, mr := newCacheRepo(t)
	mr.HSet(KeyPrefix+"broken", fieldData, "{not json")

	var dest map[string]string
	_, err := repo.Get(context.Background(), "broken", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.False(t, mr.Exists(KeyPrefix+"broken"))
}

func TestCacheRepositoryDelete(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "reference:a", 1, 0))
	require.NoError(t, repo.Set(ctx, "reference:b", 2, 0))
	require.NoError(t, mr.Set("reference:a", "foreign"))

	require.NoError(t, repo.Delete(ctx, "reference:a", "reference:b", "missing"))
	assert.False(t, mr.Exists(KeyPrefix+"reference:a"))
	assert.False(t, mr.Exists(KeyPrefix+"reference:b"))
	assert.True(t, mr.Exists("reference:a"))
}

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	assert.NoError(t, repo.Set(ctx, "k", 1, time.Minute))
	_, err := repo.Get(ctx, "k", new(int))
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.NoError(t, repo.Delete(ctx, "k"))
	assert.NoError(t, repo.Ping(ctx))
	assert.NoError(t, repo.Close())
}
