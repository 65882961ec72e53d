package entity

import (
	"time"
)

// MedicalRecord holds the clinical intake for one student. The user_id column
// is a plain foreign key, not a unique index: the access pattern is
// first-record-per-user, but the schema allows more than one row per user.
type MedicalRecord struct {
	ID                           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                       uint       `gorm:"not null;index" json:"user_id"`
	PicturePath                  *string    `gorm:"type:varchar(255)" json:"picture_path"`
	DateOfBirth                  *string    `gorm:"type:varchar(255)" json:"date_of_birth"`
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
	ChronicConditions            *string    `gorm:"type:text" json:"chronic_conditions"`
	PreviousIllnesses            *string    `gorm:"type:text" json:"previous_illnesses"`
	SurgeriesHospitalizations    *string    `gorm:"type:text" json:"surgeries_hospitalizations"`
	Allergies                    *string    `gorm:"type:text" json:"allergies"`
	ImmunizationHistory          *string    `gorm:"type:text" json:"immunization_history"`
	ChildhoodIllnesses           *string    `gorm:"type:text" json:"childhood_illnesses"`
	CreatedAt                    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
