package dto

import (
	"student-health-records/internal/domain/entity"
)

// Request DTOs

// RegisterStudentRequest is the student intake form. Marital status,
// occupation, nationality and the emergency contact email are optional.
type RegisterStudentRequest struct {
	Name                         string  `json:"name" validate:"required,max=255"`
	Email                        string  `json:"email" validate:"required,email,max=255"`
	Password                     string  `json:"password" validate:"required,min=8"`
	PasswordConfirmation         string  `json:"password_confirmation" validate:"required,eqfield=Password"`
	StudentID                    string  `json:"student_id" validate:"required"`
	Course                       string  `json:"course" validate:"required"`
	YearLevel                    string  `json:"year_level" validate:"required"`
	DateOfBirth                  string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender                       string  `json:"gender" validate:"required"`
	Address                      string  `json:"address" validate:"required"`
	ContactNumber                string  `json:"contact_number" validate:"required"`
	MaritalStatus                *string `json:"marital_status"`
	Occupation                   *string `json:"occupation"`
	Nationality                  *string `json:"nationality"`
	EmergencyContactName         string  `json:"emergency_contact_name" validate:"required"`
	EmergencyContactRelationship string  `json:"emergency_contact_relationship" validate:"required"`
	EmergencyContactNumber       string  `json:"emergency_contact_number" validate:"required"`
	EmergencyContactEmail        *string `json:"emergency_contact_email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type RegisterResponse struct {
	Status      string       `json:"status"`
	Message     string       `json:"message"`
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

type LoginResponse struct {
	Status      string       `json:"status"`
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

type CurrentUserResponse struct {
	Status string       `json:"status"`
	User   *entity.User `json:"user"`
}
