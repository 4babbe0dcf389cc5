package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
	"github.com/noah-isme/hr-portal/pkg/export"
)

// ExportFormat names a download format.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type renderer interface {
	ContentType() string
	Extension() string
	Render(data export.Dataset, title string) ([]byte, error)
}

type filteredRequests interface {
	Filtered(ctx context.Context, session Session) ([]models.Request, error)
}

// ExportResult is a rendered download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
	Rows        int
}

// ExportService renders the filtered request list as CSV or PDF.
type ExportService struct {
	requests  filteredRequests
	renderers map[ExportFormat]renderer
	enabled   bool
	now       func() time.Time
	logger    *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(requests filteredRequests, enabled bool, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		requests: requests,
		renderers: map[ExportFormat]renderer{
			ExportFormatCSV: export.NewCSVExporter(),
			ExportFormatPDF: export.NewPDFExporter(),
		},
		enabled: enabled,
		now:     time.Now,
		logger:  logger,
	}
}

// Requests renders every request passing the session's current filters.
func (s *ExportService) Requests(ctx context.Context, session Session, format ExportFormat) (*ExportResult, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrFeatureDisabled, "exports are disabled")
	}
	r, ok := s.renderers[ExportFormat(strings.ToLower(string(format)))]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	items, err := s.requests.Filtered(ctx, session)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.ExportRow())
	}
	dataset := export.Dataset{Headers: models.RequestExportHeaders, Rows: rows}

	generated := s.now().UTC()
	body, err := r.Render(dataset, "Requests "+generated.Format("2006-01-02"))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Info("requests exported",
		zap.String("session", session.Key()),
		zap.String("format", r.Extension()),
		zap.Int("rows", len(rows)),
	)
	return &ExportResult{
		Filename:    fmt.Sprintf("requests_%s.%s", generated.Format("20060102_150405"), r.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
		Rows:        len(rows),
	}, nil
}
