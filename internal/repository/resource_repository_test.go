package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-portal/internal/models"
	"github.com/noah-isme/hr-portal/pkg/apiclient"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *Backend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL, APIPrefix: "/api/v1"})
	require.NoError(t, err)
	return NewBackend(client)
}

func TestResourceRepositoryListsRequests(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/request/all", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"request_id":1,"subject":"Manila trip","form_name":"Flight Request","status_name":"Pending","date_submitted":"2025-07-08"},
			{"request_id":2,"subject":"Cebu trip","form_name":"Flight Request","status_name":"Approved","date_submitted":"2025-07-09"}
		]}`))
	})

	items, err := backend.Requests.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Manila trip", items[0].Subject)
	assert.Equal(t, models.StatusApproved, items[1].Status)
	assert.Equal(t, models.ResourceRequest, backend.Requests.Resource())
}

func TestResourceRepositoryEmptyListIsNotNil(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})

	items, err := backend.Notifications.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestResourceRepositoryWriteOperations(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch r.Method {
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"success":true,"message":"deleted"}`))
		default:
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":5,"username":"ana.cruz"}}`))
		}
	})
	ctx := context.Background()

	created, err := backend.Users.Create(ctx, map[string]string{"username": "ana.cruz"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	updated, err := backend.Users.Update(ctx, "5", map[string]string{"username": "ana.cruz"})
	require.NoError(t, err)
	assert.Equal(t, "ana.cruz", updated.Username)

	got, err := backend.Users.Get(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)

	require.NoError(t, backend.Users.Delete(ctx, "5"))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"POST /api/v1/user_credentials/create",
		"PUT /api/v1/user_credentials/5",
		"GET /api/v1/user_credentials/5",
		"DELETE /api/v1/user_credentials/5",
	}, seen)
}

func TestResourceRepositoryPropagatesErrors(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"no such profile"}`))
	})

	profile, err := backend.Profiles.Get(context.Background(), "9")
	assert.Nil(t, profile)
	assert.EqualError(t, err, "no such profile: backend status 404")
}
