package dto

// ApproveRequest approves a pending request.
type ApproveRequest struct {
	Remarks string `json:"remarks" validate:"max=500"`
}

// RejectRequest rejects a pending request with the reviewer's notes.
type RejectRequest struct {
	Notes string `json:"notes" validate:"required,max=500"`
}

// BookingDetailsRequest records the tickets booked for an approved request.
type BookingDetailsRequest struct {
	DepartureReference string  `json:"departure_reference" validate:"required,max=100,bookingref"`
	DepartureCost      float64 `json:"departure_cost" validate:"gte=0"`
	ReturnReference    string  `json:"return_reference" validate:"required,max=100,bookingref"`
	ReturnCost         float64 `json:"return_cost" validate:"gte=0"`
	Ticket             string  `json:"ticket" validate:"required"`
	Notes              string  `json:"notes" validate:"max=500"`
}
