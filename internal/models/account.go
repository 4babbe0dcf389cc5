package models

import (
	"strings"

	"github.com/noah-isme/hr-portal/internal/listing"
)

// Role names a portal role as stored in the role collection.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleHR       Role = "HR"
	RoleEmployee Role = "Employee"
)

// AccountFieldRole filters the account list by role name.
const AccountFieldRole listing.Field = "role"

// UserCredentials is one account as returned by the user_credentials collection.
type UserCredentials struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	MiddleName     string `json:"middle_name,omitempty"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Username       string `json:"username"`
	Password       string `json:"password,omitempty"`
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	RoleID         int64  `json:"role_id"`
	RoleName       string `json:"role_name,omitempty"`
}

// FullName renders "first last" the way the account list shows it.
func (u UserCredentials) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Public returns a copy without secrets for portal responses.
func (u UserCredentials) Public() UserCredentials {
	u.Password = ""
	return u
}

// FieldValue implements listing.Record.
func (u UserCredentials) FieldValue(field listing.Field) (string, bool) {
	if field == AccountFieldRole {
		return u.RoleName, true
	}
	return "", false
}

// DateValue implements listing.Record; accounts carry no filterable dates.
func (u UserCredentials) DateValue(listing.DateDimension) (string, bool) {
	return "", false
}

// SearchText implements listing.Record.
func (u UserCredentials) SearchText() []string {
	return []string{u.FullName(), u.DepartmentName}
}
