package models

// FlightRequest is the travel part of a request.
type FlightRequest struct {
	ID            int64  `json:"flight_request_id,omitempty"`
	RequestID     int64  `json:"request_id,omitempty"`
	Requestor     string `json:"requestor"`
	Email         string `json:"email"`
	DepartmentID  int64  `json:"department_id"`
	PurposeID     int64  `json:"purpose_id,omitempty"`
	PurposeOthers string `json:"purpose_others,omitempty"`
	DepartureCity string `json:"departure_city"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ReturnCity    string `json:"return_city"`
	ReturnDate    string `json:"return_date"`
	ReturnTime    string `json:"return_time"`
	StartBusiness string `json:"start_business"`
	EndBusiness   string `json:"end_business"`
	ExtraBaggage  string `json:"extra_baggage,omitempty"`
	ApproverID    int64  `json:"approver_id"`
	Remarks       string `json:"remarks,omitempty"`
}

// Flier is a traveller attached to a flight request.
type Flier struct {
	ID              int64  `json:"flier_id,omitempty"`
	FlightRequestID int64  `json:"flight_request_id,omitempty"`
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	LastName        string `json:"last_name"`
	Birthday        string `json:"birthday,omitempty"`
	Extensions      string `json:"extensions,omitempty"`
	Title           string `json:"title,omitempty"`
}

// BookingDetails records the tickets HR booked for an approved request.
type BookingDetails struct {
	ID                 int64   `json:"booking_id,omitempty"`
	RequestID          int64   `json:"request_id"`
	DepartureReference string  `json:"departure_reference"`
	DepartureCost      float64 `json:"departure_cost"`
	ReturnReference    string  `json:"return_reference"`
	ReturnCost         float64 `json:"return_cost"`
	Ticket             string  `json:"ticket"`
	Notes              string  `json:"notes,omitempty"`
}

// ProgressUpdate is one step on a request's progress ladder.
type ProgressUpdate struct {
	ID        int64  `json:"update_id,omitempty"`
	RequestID int64  `json:"request_id"`
	StatusID  int64  `json:"status_id"`
	Remarks   string `json:"remarks,omitempty"`
	UpdatedBy int64  `json:"updated_by,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// UserProfile holds personal details shown on the profile page.
type UserProfile struct {
	ID         int64  `json:"profile_id"`
	UserID     int64  `json:"user_id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Birthday   string `json:"birthday,omitempty"`
	Address    string `json:"address,omitempty"`
}

// RequestDetail is a request with its flight data, fliers, booking and progress.
type RequestDetail struct {
	Request  Request          `json:"request"`
	Flight   *FlightRequest   `json:"flight_request,omitempty"`
	Fliers   []Flier          `json:"fliers,omitempty"`
	Booking  *BookingDetails  `json:"booking_details,omitempty"`
	Progress []ProgressUpdate `json:"progress,omitempty"`
}
