package model

import (
	"strings"
	"time"
)

// UserRole represents the role of a clinical user.
type UserRole string

const (
	// RoleAdmin has elevated permissions for administration.
	RoleAdmin UserRole = "admin"
	// RoleDoctor is a physician with a patient roster.
	RoleDoctor UserRole = "doctor"
	// RoleNurse records vitals and manages appointments.
	RoleNurse UserRole = "nurse"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse:
		return true
	}
	return false
}

// User represents a Vita user account as issued by the server.
// Accounts are immutable on the client; they change only through an
// explicit profile refresh.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CRM       string    `json:"crm,omitempty"` // Professional registration code
	Specialty string    `json:"specialty,omitempty"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"is_active"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin returns true if the user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserProfile is the authenticated user's own profile, as returned by
// the /auth/me endpoint. It extends User with roster counters.
type UserProfile struct {
	User

	PatientCount     int `json:"patient_count"`
	AppointmentCount int `json:"appointment_count"`
}

// Initials derives up to two display initials from the full name.
func (u *UserProfile) Initials() string {
	fields := strings.Fields(u.FullName)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		if len(fields[0]) >= 2 {
			return strings.ToUpper(fields[0][:2])
		}
		return strings.ToUpper(fields[0])
	default:
		return strings.ToUpper(fields[0][:1] + fields[len(fields)-1][:1])
	}
}

// RegisterRequest holds the fields sent to the registration endpoint.
type RegisterRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FullName  string   `json:"full_name"`
	CRM       string   `json:"crm,omitempty"`
	Specialty string   `json:"specialty,omitempty"`
	Role      UserRole `json:"role,omitempty"`
}

// LoginRequest holds the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
