package model

import "time"

// Patient represents a patient record owned by a doctor.
type Patient struct {
	ID               int64     `json:"id"`
	DoctorID         int64     `json:"doctor_id"`
	FullName         string    `json:"full_name"`
	CPF              string    `json:"cpf"`
	BirthDate        string    `json:"birth_date"` // ISO date (YYYY-MM-DD)
	Gender           string    `json:"gender"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email,omitempty"`
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `json:"emergency_phone,omitempty"`
	BloodType        string    `json:"blood_type,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	MedicalNotes     string    `json:"medical_notes,omitempty"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PatientDetail extends Patient with the latest recorded vitals and
// upcoming appointments, as returned by the patient detail endpoint.
type PatientDetail struct {
	Patient

	LatestVitals         *VitalSign    `json:"latest_vitals,omitempty"`
	UpcomingAppointments []Appointment `json:"upcoming_appointments"`
}

// PatientCreate holds the fields accepted by the create endpoint.
type PatientCreate struct {
	FullName         string `json:"full_name"`
	CPF              string `json:"cpf"`
	BirthDate        string `json:"birth_date"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	BloodType        string `json:"blood_type,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	MedicalNotes     string `json:"medical_notes,omitempty"`
}

// PatientUpdate holds the mutable fields. Nil pointers are omitted from
// the request body so the server only touches the fields actually sent.
type PatientUpdate struct {
	FullName         *string `json:"full_name,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`
	MedicalNotes     *string `json:"medical_notes,omitempty"`
	AvatarURL        *string `json:"avatar_url,omitempty"`
}
