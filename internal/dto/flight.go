package dto

// FlierInput is one traveller on a flight request form.
type FlierInput struct {
	FirstName  string `json:"first_name" validate:"required,max=50,personname"`
	MiddleName string `json:"middle_name" validate:"omitempty,max=50,personname"`
	LastName   string `json:"last_name" validate:"required,max=50,personname"`
	Birthday   string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Extensions string `json:"extensions" validate:"max=10"`
	Title      string `json:"title" validate:"max=20"`
}

// FlightRequestForm is the payload of the flight request page.
type FlightRequestForm struct {
	Requestor     string       `json:"requestor" validate:"required,max=100"`
	Email         string       `json:"email" validate:"required,email"`
	DepartmentID  int64        `json:"department_id" validate:"required,gt=0"`
	PurposeID     int64        `json:"purpose_id" validate:"required_without=PurposeOthers"`
	PurposeOthers string       `json:"purpose_others" validate:"max=200"`
	StartBusiness string       `json:"start_business" validate:"required,datetime=2006-01-02"`
	EndBusiness   string       `json:"end_business" validate:"required,datetime=2006-01-02"`
	DepartureCity string       `json:"departure_city" validate:"required,max=100"`
	DepartureDate string       `json:"departure_date" validate:"required,datetime=2006-01-02"`
	DepartureTime string       `json:"departure_time" validate:"required,datetime=15:04"`
	ReturnCity    string       `json:"return_city" validate:"required,max=100"`
	ReturnDate    string       `json:"return_date" validate:"required,datetime=2006-01-02"`
	ReturnTime    string       `json:"return_time" validate:"required,datetime=15:04"`
	ExtraBaggage  string       `json:"extra_baggage" validate:"max=100"`
	ApproverID    int64        `json:"approver_id" validate:"required,gt=0"`
	Remarks       string       `json:"remarks" validate:"max=500"`
	Fliers        []FlierInput `json:"fliers" validate:"required,min=1,dive"`
}
