package models

import (
	"strconv"

	"github.com/noah-isme/hr-portal/internal/listing"
)

// Request statuses as named by the status_type collection.
const (
	StatusDraft    = "Draft"
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// RequestStatuses are the values shown on the status cards, in display order.
var RequestStatuses = []string{StatusPending, StatusApproved, StatusRejected, StatusDraft}

// Equality-filterable request fields.
const (
	RequestFieldRequestor     listing.Field = "requestor"
	RequestFieldRequestedFor  listing.Field = "requested_for"
	RequestFieldDepartment    listing.Field = "department"
	RequestFieldFormType      listing.Field = "form_type"
	RequestFieldStatus        listing.Field = "status"
	RequestFieldPurpose       listing.Field = "purpose"
	RequestFieldDepartureCity listing.Field = "departure_city"
	RequestFieldReturnCity    listing.Field = "return_city"
	RequestFieldApprovedBy    listing.Field = "approved_by"
)

// RequestFields lists the fields accepted by the request filter form.
var RequestFields = []listing.Field{
	RequestFieldRequestor,
	RequestFieldRequestedFor,
	RequestFieldDepartment,
	RequestFieldFormType,
	RequestFieldStatus,
	RequestFieldPurpose,
	RequestFieldDepartureCity,
	RequestFieldReturnCity,
	RequestFieldApprovedBy,
}

// Date dimensions selectable in the request calendar.
const (
	DateSubmitted     listing.DateDimension = "submitted"
	DateDeparture     listing.DateDimension = "departure"
	DateReturn        listing.DateDimension = "return"
	DateBusinessStart listing.DateDimension = "business_start"
	DateBusinessEnd   listing.DateDimension = "business_end"
)

// RequestDateDimensions lists every request date dimension.
var RequestDateDimensions = []listing.DateDimension{
	DateSubmitted,
	DateDeparture,
	DateReturn,
	DateBusinessStart,
	DateBusinessEnd,
}

// Request is one row of the request list.
type Request struct {
	ID              int64  `json:"request_id"`
	Subject         string `json:"subject"`
	Requestor       string `json:"requestor"`
	RequestedFor    string `json:"requested_for,omitempty"`
	Department      string `json:"department_name,omitempty"`
	FormType        string `json:"form_name"`
	Status          string `json:"status_name"`
	StatusID        int64  `json:"status_id,omitempty"`
	Purpose         string `json:"purpose_name,omitempty"`
	DepartureCity   string `json:"departure_city,omitempty"`
	ReturnCity      string `json:"return_city,omitempty"`
	ApprovedBy      string `json:"approver_name,omitempty"`
	DateSubmitted   string `json:"date_submitted"`
	DepartureDate   string `json:"departure_date,omitempty"`
	ReturnDate      string `json:"return_date,omitempty"`
	BusinessStart   string `json:"start_business,omitempty"`
	BusinessEnd     string `json:"end_business,omitempty"`
	FlightRequestID int64  `json:"flight_request_id,omitempty"`
	Remarks         string `json:"remarks,omitempty"`
}

// FieldValue implements listing.Record.
func (r Request) FieldValue(field listing.Field) (string, bool) {
	switch field {
	case RequestFieldRequestor:
		return r.Requestor, true
	case RequestFieldRequestedFor:
		return r.RequestedFor, true
	case RequestFieldDepartment:
		return r.Department, true
	case RequestFieldFormType:
		return r.FormType, true
	case RequestFieldStatus:
		return r.Status, true
	case RequestFieldPurpose:
		return r.Purpose, true
	case RequestFieldDepartureCity:
		return r.DepartureCity, true
	case RequestFieldReturnCity:
		return r.ReturnCity, true
	case RequestFieldApprovedBy:
		return r.ApprovedBy, true
	}
	return "", false
}

// DateValue implements listing.Record.
func (r Request) DateValue(dim listing.DateDimension) (string, bool) {
	switch dim {
	case DateSubmitted:
		return r.DateSubmitted, r.DateSubmitted != ""
	case DateDeparture:
		return r.DepartureDate, r.DepartureDate != ""
	case DateReturn:
		return r.ReturnDate, r.ReturnDate != ""
	case DateBusinessStart:
		return r.BusinessStart, r.BusinessStart != ""
	case DateBusinessEnd:
		return r.BusinessEnd, r.BusinessEnd != ""
	}
	return "", false
}

// SearchText implements listing.Record.
func (r Request) SearchText() []string {
	return []string{r.Subject, r.FormType}
}

// ExportRow flattens the request for CSV/PDF downloads.
func (r Request) ExportRow() map[string]string {
	return map[string]string{
		"ID":         strconv.FormatInt(r.ID, 10),
		"Subject":    r.Subject,
		"Submitted":  r.DateSubmitted,
		"Form Type":  r.FormType,
		"Requestor":  r.Requestor,
		"Department": r.Department,
		"Status":     r.Status,
		"Approver":   r.ApprovedBy,
	}
}

// RequestExportHeaders orders the columns of ExportRow.
var RequestExportHeaders = []string{"ID", "Subject", "Submitted", "Form Type", "Requestor", "Department", "Status", "Approver"}

// RequestSummary feeds the status cards above the request list.
type RequestSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Draft    int `json:"draft"`
}

// RequestStatusUpdate is sent to the backend when HR decides on a request.
type RequestStatusUpdate struct {
	StatusID   int64  `json:"status_id"`
	ApproverID int64  `json:"approver_id,omitempty"`
	Remarks    string `json:"remarks,omitempty"`
}

// FlightRequestFormName is the form type of travel requests.
const FlightRequestFormName = "Flight Request"

// RequestSubmission is posted to the request collection when a form is submitted.
type RequestSubmission struct {
	Subject         string `json:"subject"`
	UserID          int64  `json:"user_id"`
	FormID          int64  `json:"form_id"`
	StatusID        int64  `json:"status_id"`
	DepartmentID    int64  `json:"department_id"`
	FlightRequestID int64  `json:"flight_request_id,omitempty"`
}
