package dto

type CreateUserRequest struct {
	FirstName    string `json:"first_name" validate:"required,min=4,max=250"`
	LastName     string `json:"last_name" validate:"required,min=4,max=250"`
	Address      string `json:"address" validate:"required,min=3,max=250"`
	MobileNumber string `json:"mobile_number" validate:"required,mobile"`
	EmailID      string `json:"email_id" validate:"required,email,max=250"`
	Password     string `json:"password" validate:"required,min=8,max=12"`
	UserTypeID   uint   `json:"user_type_id" validate:"required,min=1"`
}

// UpdateUserRequest carries partial overwrite semantics: nil fields
// keep their stored value.
type UpdateUserRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=4,max=250"`
	LastName     *string `json:"last_name" validate:"omitempty,min=4,max=250"`
	Address      *string `json:"address" validate:"omitempty,min=3,max=250"`
	MobileNumber *string `json:"mobile_number" validate:"omitempty,mobile"`
	EmailID      *string `json:"email_id" validate:"omitempty,email,max=250"`
	UserTypeID   *uint   `json:"user_type_id" validate:"omitempty,min=1"`
}

type UserTypeRequest struct {
	UserType string `json:"user_type" validate:"required,min=3,max=250"`
}

type UpdateUserTypeRequest struct {
	UserType *string `json:"user_type" validate:"omitempty,min=3,max=250"`
}
