package dto

// RegisterAccountRequest creates a user account.
type RegisterAccountRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=50,personname"`
	MiddleName   string `json:"middle_name" validate:"omitempty,max=50,personname"`
	LastName     string `json:"last_name" validate:"required,max=50,personname"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,phoneph"`
	Username     string `json:"username" validate:"required,max=20,username"`
	Password     string `json:"password" validate:"required,min=8,password"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
	RoleID       int64  `json:"role_id" validate:"required,gt=0"`
}

// UpdateAccountRequest edits an account. An empty password keeps the current one.
type UpdateAccountRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=50,personname"`
	MiddleName   string `json:"middle_name" validate:"omitempty,max=50,personname"`
	LastName     string `json:"last_name" validate:"required,max=50,personname"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,phoneph"`
	Username     string `json:"username" validate:"required,max=20,username"`
	Password     string `json:"password" validate:"omitempty,min=8,password"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
	RoleID       int64  `json:"role_id" validate:"required,gt=0"`
}

// UpdateProfileRequest edits the signed-in user's profile.
type UpdateProfileRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=50,personname"`
	MiddleName string `json:"middle_name" validate:"omitempty,max=50,personname"`
	LastName   string `json:"last_name" validate:"required,max=50,personname"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phoneph"`
	Birthday   string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Address    string `json:"address" validate:"max=200"`
}
