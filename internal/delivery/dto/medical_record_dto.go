package dto

// Request DTOs

// CreateMedicalRecordRequest requires only the owning user; every clinical
// and intake field is optional free text.
type CreateMedicalRecordRequest struct {
	UserID                       uint    `json:"user_id" validate:"required"`
	PicturePath                  *string `json:"picture_path"`
	DateOfBirth                  *string `json:"date_of_birth"`
	Gender                       *string `json:"gender"`
	Address                      *string `json:"address"`
	ContactNumber                *string `json:"contact_number"`
	MaritalStatus                *string `json:"marital_status"`
	Occupation                   *string `json:"occupation"`
	Nationality                  *string `json:"nationality"`
	EmergencyContactName         *string `json:"emergency_contact_name"`
	EmergencyContactRelationship *string `json:"emergency_contact_relationship"`
	EmergencyContactNumber       *string `json:"emergency_contact_number"`
	EmergencyContactEmail        *string `json:"emergency_contact_email"`
	ChronicConditions            *string `json:"chronic_conditions"`
	PreviousIllnesses            *string `json:"previous_illnesses"`
	SurgeriesHospitalizations    *string `json:"surgeries_hospitalizations"`
	Allergies                    *string `json:"allergies"`
	ImmunizationHistory          *string `json:"immunization_history"`
	ChildhoodIllnesses           *string `json:"childhood_illnesses"`
}

// UpdateMedicalRecordRequest touches only the six clinical fields; anything
// else in the body is ignored.
type UpdateMedicalRecordRequest struct {
	ChronicConditions         *string `json:"chronic_conditions"`
	PreviousIllnesses         *string `json:"previous_illnesses"`
	SurgeriesHospitalizations *string `json:"surgeries_hospitalizations"`
	Allergies                 *string `json:"allergies"`
	ImmunizationHistory       *string `json:"immunization_history"`
	ChildhoodIllnesses        *string `json:"childhood_illnesses"`
}

// Response DTOs

type MedicalRecordDataResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type MedicalRecordErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
