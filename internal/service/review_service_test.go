package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hr-portal/internal/dto"
	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type reviewFixture struct {
	svc      *ReviewService
	requests *fakeRepo[models.Request]
	progress *fakeRepo[models.ProgressUpdate]
	bookings *fakeRepo[models.BookingDetails]
}

func newReviewFixture() reviewFixture {
	requests := &fakeRepo[models.Request]{byID: map[string]models.Request{
		"1": {ID: 1, Status: models.StatusPending},
		"2": {ID: 2, Status: models.StatusApproved},
		"3": {ID: 3, Status: models.StatusRejected},
	}}
	progress := &fakeRepo[models.ProgressUpdate]{}
	bookings := &fakeRepo[models.BookingDetails]{result: &models.BookingDetails{ID: 8, RequestID: 2}}
	svc := NewReviewService(requests, progress, bookings, fakeReference{data: sampleReference()}, nil, nil, nil)
	return reviewFixture{svc: svc, requests: requests, progress: progress, bookings: bookings}
}

func TestReviewApprovePending(t *testing.T) {
	f := newReviewFixture()

	updated, err := f.svc.Approve(context.Background(), alice, "1", dto.ApproveRequest{Remarks: "ok"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)

	payload := f.requests.updated["1"].(models.RequestStatusUpdate)
	assert.Equal(t, int64(3), payload.StatusID)
	assert.Equal(t, int64(9), payload.ApproverID)

	require.Len(t, f.progress.created, 1)
	step := f.progress.created[0].(models.ProgressUpdate)
	assert.Equal(t, int64(1), step.RequestID)
	assert.Equal(t, int64(42), step.UpdatedBy)
}

func TestReviewRejectNeedsNotes(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.Reject(context.Background(), alice, "1", dto.RejectRequest{})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, appErrors.Message(err), "notes is required")

	updated, err := f.svc.Reject(context.Background(), alice, "1", dto.RejectRequest{Notes: "missing receipts"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)
	assert.Equal(t, "missing receipts", updated.Remarks)
}

func TestReviewOnlyPendingRequests(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.Approve(context.Background(), alice, "3", dto.ApproveRequest{})
	assert.True(t, errors.Is(err, appErrors.ErrConflict))
	assert.Empty(t, f.requests.updated)
}

func TestReviewProgressFailureIsNotFatal(t *testing.T) {
	f := newReviewFixture()
	f.progress.err = errors.New("progress store down")

	_, err := f.svc.Approve(context.Background(), alice, "1", dto.ApproveRequest{})
	assert.NoError(t, err)
}

func TestReviewBookApprovedOnly(t *testing.T) {
	f := newReviewFixture()
	req := dto.BookingDetailsRequest{
		DepartureReference: "PR 102",
		DepartureCost:      4500,
		ReturnReference:    "PR-103",
		ReturnCost:         4300,
		Ticket:             "e-ticket.pdf",
	}

	_, err := f.svc.Book(context.Background(), alice, "1", req)
	assert.True(t, errors.Is(err, appErrors.ErrConflict))

	booking, err := f.svc.Book(context.Background(), alice, "2", req)
	require.NoError(t, err)
	assert.Equal(t, int64(8), booking.ID)
	payload := f.bookings.created[0].(models.BookingDetails)
	assert.Equal(t, int64(2), payload.RequestID)

	req.DepartureReference = "PR#102"
	_, err = f.svc.Book(context.Background(), alice, "2", req)
	assert.Contains(t, appErrors.Message(err), "departure_reference")
}
