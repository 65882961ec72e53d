package entity

import (
	"time"
)

// User represents a clinic account: students, nurses and admins share one table.
// The password hash is serialized in API responses to stay wire-compatible
// with the existing clients.
type User struct {
	ID                           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email                        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	EmailVerifiedAt              *time.Time `gorm:"type:timestamp" json:"email_verified_at"`
	Password                     string     `gorm:"type:varchar(255);not null" json:"password"`
	Role                         string     `gorm:"type:varchar(255);not null;default:student" json:"role"`
	StudentID                    *string    `gorm:"type:varchar(255);uniqueIndex" json:"student_id"`
	Course                       *string    `gorm:"type:varchar(255)" json:"course"`
	YearLevel                    *string    `gorm:"type:varchar(255)" json:"year_level"`
	DateOfBirth                  *time.Time `gorm:"type:date" json:"date_of_birth"`
	Gender                       *string    `gorm:"type:varchar(255)" json:"gender"`
	Address                      *string    `gorm:"type:text" json:"address"`
	ContactNumber                *string    `gorm:"type:varchar(255)" json:"contact_number"`
	MaritalStatus                *string    `gorm:"type:varchar(255)" json:"marital_status"`
	Occupation                   *string    `gorm:"type:varchar(255)" json:"occupation"`
	Nationality                  *string    `gorm:"type:varchar(255)" json:"nationality"`
	EmergencyContactName         *string    `gorm:"type:varchar(255)" json:"emergency_contact_name"`
	EmergencyContactRelationship *string    `gorm:"type:varchar(255)" json:"emergency_contact_relationship"`
	EmergencyContactNumber       *string    `gorm:"type:varchar(255)" json:"emergency_contact_number"`
	EmergencyContactEmail        *string    `gorm:"type:varchar(255)" json:"emergency_contact_email"`
	CreatedAt                    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	MedicalRecords []MedicalRecord `gorm:"foreignKey:UserID" json:"medical_records,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RoleStudent = "student"
	RoleNurse   = "nurse"
	RoleAdmin   = "admin"
)
