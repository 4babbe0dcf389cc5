package models

// Department is a row of the department collection.
type Department struct {
	ID   int64  `json:"department_id"`
	Name string `json:"department_name"`
}

// FormType is a row of the form_type collection.
type FormType struct {
	ID   int64  `json:"form_id"`
	Name string `json:"form_name"`
}

// StatusType is a row of the status_type collection.
type StatusType struct {
	ID   int64  `json:"status_id"`
	Name string `json:"status_name"`
}

// PurposeOfTravel is a row of the purpose_of_travel collection.
type PurposeOfTravel struct {
	ID   int64  `json:"purpose_id"`
	Name string `json:"purpose_name"`
}

// Approver is a row of the approver collection.
type Approver struct {
	ID     int64  `json:"approver_id"`
	Name   string `json:"approver_name"`
	UserID int64  `json:"user_id,omitempty"`
}

// RoleType is a row of the role collection.
type RoleType struct {
	ID   int64  `json:"role_id"`
	Name string `json:"role_name"`
}

// ReferenceData bundles the static lookup tables used by forms and filters.
type ReferenceData struct {
	Departments      []Department      `json:"departments"`
	FormTypes        []FormType        `json:"form_types"`
	StatusTypes      []StatusType      `json:"status_types"`
	PurposesOfTravel []PurposeOfTravel `json:"purposes_of_travel"`
	Approvers        []Approver        `json:"approvers"`
	Roles            []RoleType        `json:"roles"`
}

// HasDepartment reports whether id names a known department.
func (r ReferenceData) HasDepartment(id int64) bool {
	for _, d := range r.Departments {
		if d.ID == id {
			return true
		}
	}
	return false
}

// HasRole reports whether id names a known role.
func (r ReferenceData) HasRole(id int64) bool {
	for _, role := range r.Roles {
		if role.ID == id {
			return true
		}
	}
	return false
}

// StatusID looks up a status by name.
func (r ReferenceData) StatusID(name string) (int64, bool) {
	for _, s := range r.StatusTypes {
		if s.Name == name {
			return s.ID, true
		}
	}
	return 0, false
}

// ApproverByUser finds the approver entry of a user.
func (r ReferenceData) ApproverByUser(userID int64) (Approver, bool) {
	for _, a := range r.Approvers {
		if a.UserID == userID {
			return a, true
		}
	}
	return Approver{}, false
}
