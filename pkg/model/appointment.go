package model

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentInProgress AppointmentStatus = "in_progress"
	AppointmentCompleted  AppointmentStatus = "completed"
	AppointmentCancelled  AppointmentStatus = "cancelled"
	AppointmentNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a scheduled consultation.
type Appointment struct {
	ID              int64             `json:"id"`
	DoctorID        int64             `json:"doctor_id"`
	PatientID       int64             `json:"patient_id"`
	ScheduledAt     time.Time         `json:"scheduled_at"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	AppointmentType string            `json:"appointment_type"`
	Reason          string            `json:"reason,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	Diagnosis       string            `json:"diagnosis,omitempty"`
	Prescription    string            `json:"prescription,omitempty"`
	IsTelemedicine  bool              `json:"is_telemedicine"`
	MeetingURL      string            `json:"meeting_url,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// AppointmentDetail extends Appointment with the related patient and doctor.
type AppointmentDetail struct {
	Appointment

	Patient Patient `json:"patient"`
	Doctor  User    `json:"doctor"`
}

// AppointmentCreate holds the fields accepted by the create endpoint.
type AppointmentCreate struct {
	PatientID       int64     `json:"patient_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	AppointmentType string    `json:"appointment_type,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	IsTelemedicine  bool      `json:"is_telemedicine,omitempty"`
}

// AppointmentUpdate holds the mutable fields of an appointment.
type AppointmentUpdate struct {
	ScheduledAt     *time.Time         `json:"scheduled_at,omitempty"`
	DurationMinutes *int               `json:"duration_minutes,omitempty"`
	Status          *AppointmentStatus `json:"status,omitempty"`
	Reason          *string            `json:"reason,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	Diagnosis       *string            `json:"diagnosis,omitempty"`
	Prescription    *string            `json:"prescription,omitempty"`
	IsTelemedicine  *bool              `json:"is_telemedicine,omitempty"`
	MeetingURL      *string            `json:"meeting_url,omitempty"`
}

// AppointmentFilter configures appointment list queries.
type AppointmentFilter struct {
	Page      int
	PageSize  int
	Status    AppointmentStatus
	DateFrom  string // ISO date
	DateTo    string // ISO date
	PatientID int64
}
