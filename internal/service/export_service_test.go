package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type filteredStub struct {
	items []models.Request
	err   error
}

func (s filteredStub) Filtered(ctx context.Context, session Session) ([]models.Request, error) {
	return s.items, s.err
}

func newExportServiceForTest(source filteredRequests, enabled bool) *ExportService {
	svc := NewExportService(source, enabled, nil)
	svc.now = func() time.Time { return time.Date(2025, 7, 8, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestExportRequestsCSV(t *testing.T) {
	svc := newExportServiceForTest(filteredStub{items: sampleRequests()[:3]}, true)

	result, err := svc.Requests(context.Background(), alice, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "requests_20250708_093000.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	assert.Equal(t, 3, result.Rows)

	lines := strings.Split(strings.TrimSpace(string(result.Body)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Subject"))
	assert.Contains(t, lines[1], "Trip 1")
}

func TestExportRequestsPDF(t *testing.T) {
	svc := newExportServiceForTest(filteredStub{items: sampleRequests()}, true)

	result, err := svc.Requests(context.Background(), alice, "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Body), "%PDF"))
}

func TestExportRequestsRejections(t *testing.T) {
	svc := newExportServiceForTest(filteredStub{}, false)
	_, err := svc.Requests(context.Background(), alice, ExportFormatCSV)
	assert.True(t, errors.Is(err, appErrors.ErrFeatureDisabled))

	svc = newExportServiceForTest(filteredStub{}, true)
	_, err = svc.Requests(context.Background(), alice, "xlsx")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	svc = newExportServiceForTest(filteredStub{err: appErrors.ErrFetchFailed}, true)
	_, err = svc.Requests(context.Background(), alice, ExportFormatCSV)
	assert.True(t, errors.Is(err, appErrors.ErrFetchFailed))
}

func TestExportRequestsLoadsFreshWorkspace(t *testing.T) {
	requests, _ := newRequestServiceForTest(sampleRequests())
	svc := newExportServiceForTest(requests, true)

	result, err := svc.Requests(context.Background(), alice, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 25, result.Rows)

	failing, repo := newRequestServiceForTest(nil)
	repo.listErr = errors.New("connection reset")
	svc = newExportServiceForTest(failing, true)
	_, err = svc.Requests(context.Background(), alice, ExportFormatCSV)
	assert.True(t, errors.Is(err, appErrors.ErrFetchFailed))
}
