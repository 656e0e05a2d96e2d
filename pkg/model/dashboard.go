package model

// DashboardStats is the summary returned by the dashboard stats endpoint.
type DashboardStats struct {
	TotalPatients         int `json:"total_patients"`
	TotalAppointments     int `json:"total_appointments"`
	AppointmentsToday     int `json:"appointments_today"`
	AppointmentsThisWeek  int `json:"appointments_this_week"`
	PatientsWithAlerts    int `json:"patients_with_alerts"`
	CompletedAppointments int `json:"completed_appointments"`
	PendingAppointments   int `json:"pending_appointments"`
}
