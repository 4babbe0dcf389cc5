package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
	"github.com/noah-isme/hr-portal/pkg/middleware/requestid"
)

type department struct {
	ID   int64  `json:"department_id"`
	Name string `json:"department_name"`
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (o *recordingObserver) ObserveUpstream(resource, method string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, method+" "+resource+" "+http.StatusText(status))
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL + "/", APIPrefix: "/api/v1", Token: "secret"}, opts...)
	require.NoError(t, err)
	return client
}

func TestListUnwrapsEnvelope(t *testing.T) {
	observer := &recordingObserver{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/department/all", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get(requestid.HeaderKey))
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":[{"department_id":1,"department_name":"Finance"}]}`))
	}, WithObserver(observer))

	var out []department
	ctx := requestid.WithValue(context.Background(), "req-1")
	require.NoError(t, client.List(ctx, "department", &out))
	assert.Equal(t, []department{{ID: 1, Name: "Finance"}}, out)
	assert.Equal(t, []string{"GET department OK"}, observer.calls)
}

func TestBareArrayBodyIsAccepted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"department_id":2,"department_name":"HR"}]`))
	})

	var out []department
	require.NoError(t, client.List(context.Background(), "department", &out))
	assert.Equal(t, "HR", out[0].Name)
}

func TestBareObjectBodyIsAccepted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/department/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"department_id":7,"department_name":"IT"}`))
	})

	var out department
	require.NoError(t, client.Get(context.Background(), "department", "7", &out))
	assert.Equal(t, department{ID: 7, Name: "IT"}, out)
}

func TestSuccessFalseIsFetchFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"database offline","data":null}`))
	})

	var out []department
	err := client.List(context.Background(), "department", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrFetchFailed))
	assert.Equal(t, "database offline", appErrors.Message(err))
	assert.Empty(t, out)
}

func TestStatusCodesMapToPortalErrors(t *testing.T) {
	cases := []struct {
		status  int
		body    string
		want    *appErrors.Error
		message string
	}{
		{http.StatusNotFound, `{"success":false,"message":"request 9 not found"}`, appErrors.ErrNotFound, "request 9 not found"},
		{http.StatusBadRequest, `{"message":"email taken"}`, appErrors.ErrValidation, "email taken"},
		{http.StatusUnprocessableEntity, ``, appErrors.ErrValidation, "Unprocessable Entity"},
		{http.StatusConflict, `{}`, appErrors.ErrConflict, "Conflict"},
		{http.StatusForbidden, `nope`, appErrors.ErrForbidden, "Forbidden"},
		{http.StatusInternalServerError, `<html>oops</html>`, appErrors.ErrFetchFailed, "Internal Server Error"},
	}

	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(tc.body))
		})

		err := client.Delete(context.Background(), "request", "9")
		appErr := appErrors.FromError(err)
		require.NotNil(t, appErr, "status %d", tc.status)
		assert.Equal(t, tc.want.Code, appErr.Code, "status %d", tc.status)
		assert.Equal(t, tc.message, appErr.Message, "status %d", tc.status)
	}
}

func TestCreateSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/department/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in department
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 11
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": in})
	})

	var out department
	require.NoError(t, client.Create(context.Background(), "department", department{Name: "Legal"}, &out))
	assert.Equal(t, int64(11), out.ID)
}

func TestEmptyBodyWithNilOut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.Update(context.Background(), "request", "3", map[string]int{"status_id": 2}, nil))
}

func TestMalformedDataIsFetchFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"department_id":"x"}}`))
	})

	var out department
	err := client.Get(context.Background(), "department", "1", &out)
	assert.True(t, errors.Is(err, appErrors.ErrFetchFailed))
}

func TestTransportFailureIsUpstreamUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	observer := &recordingObserver{}
	client, err := New(Config{BaseURL: srv.URL, APIPrefix: "api/v1", Timeout: time.Second}, WithObserver(observer))
	require.NoError(t, err)

	err = client.List(context.Background(), "request", &[]department{})
	assert.True(t, errors.Is(err, appErrors.ErrUpstreamUnavailable))
	assert.Len(t, observer.calls, 1)
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "localhost"})
	assert.Error(t, err)

	c, err := New(Config{BaseURL: "http://backend:5000/", APIPrefix: "/api/v1/"})
	require.NoError(t, err)
	assert.Equal(t, "http://backend:5000/api/v1", c.BaseURL())
}
