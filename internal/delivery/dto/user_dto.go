package dto

import (
	"student-health-records/internal/domain/entity"
)

// Request DTOs

type CreateUserRequest struct {
	// ID is never persisted; when the client submits one, the uniqueness
	// checks skip the row with that id.
	ID                   uint    `json:"id"`
	Name                 string  `json:"name" validate:"required,max=255"`
	Email                string  `json:"email" validate:"required,email,max=255"`
	Password             string  `json:"password" validate:"required,min=8"`
	PasswordConfirmation string  `json:"password_confirmation" validate:"required,eqfield=Password"`
	StudentID            *string `json:"student_id" validate:"required_if=Role student,omitempty,student_id"`
	Role                 string  `json:"role" validate:"required,oneof=student nurse admin"`
}

// UpdateUserRequest applies "sometimes" semantics: only fields present in the
// request body are validated and written.
type UpdateUserRequest struct {
	Name                         *string `json:"name" validate:"omitempty,max=255"`
	Email                        *string `json:"email" validate:"omitempty,email,max=255"`
	Password                     *string `json:"password" validate:"omitempty,min=8"`
	PasswordConfirmation         *string `json:"password_confirmation" validate:"required_with=Password,omitempty,eqfield=Password"`
	StudentID                    *string `json:"student_id" validate:"omitempty,student_id"`
	Role                         *string `json:"role" validate:"omitempty,oneof=student nurse admin"`
	Course                       *string `json:"course"`
	YearLevel                    *string `json:"year_level"`
	DateOfBirth                  *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender                       *string `json:"gender"`
	Address                      *string `json:"address"`
	ContactNumber                *string `json:"contact_number"`
	MaritalStatus                *string `json:"marital_status"`
	Occupation                   *string `json:"occupation"`
	Nationality                  *string `json:"nationality"`
	EmergencyContactName         *string `json:"emergency_contact_name"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship"`
	EmergencyContactNumber       *string `json:"emergency_contact_number"`
	EmergencyContactEmail        *string `json:"emergency_contact_email" validate:"omitempty,email"`
}

// Response DTOs

type UserListResponse struct {
	Success bool          `json:"success"`
	Data    []entity.User `json:"data"`
	Table   string        `json:"table"`
}

type UserResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
	Table   string       `json:"table"`
	Message string       `json:"message,omitempty"`
}

type UserMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UserValidationResponse struct {
	Success bool        `json:"success"`
	Errors  interface{} `json:"errors"`
	Message string      `json:"message"`
}
