package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/me/vita/internal/api"
	"github.com/me/vita/pkg/model"
)

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":      "Login - Vita",
		"Error":      r.URL.Query().Get("error"),
		"Registered": r.URL.Query().Get("registered") != "",
		"ReturnTo":   returnTarget(r.URL.Query().Get("return_to")),
	}
	ui.render(w, "login", data)
}

// HandleLoginPost processes the login form.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+request", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	returnTo := returnTarget(r.FormValue("return_to"))

	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	user, err := ui.client.Login(r.Context(), email, password)
	if err != nil {
		ui.logger.Warn("login failed", "email", email, "error", err)
		msg := url.QueryEscape(api.ErrorMessage(err))
		http.Redirect(w, r, "/login?error="+msg, http.StatusSeeOther)
		return
	}

	ui.logger.Info("user logged in", "email", user.Email)
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// HandleRegister renders the registration page.
func (ui *UI) HandleRegister(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title": "Register - Vita",
		"Error": r.URL.Query().Get("error"),
	}
	ui.render(w, "register", data)
}

// HandleRegisterPost processes the registration form. A new account is
// created but not signed in; the browser lands on the login page.
func (ui *UI) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?error=Invalid+request", http.StatusSeeOther)
		return
	}

	req := model.RegisterRequest{
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
		FullName:  strings.TrimSpace(r.FormValue("full_name")),
		CRM:       strings.TrimSpace(r.FormValue("crm")),
		Specialty: strings.TrimSpace(r.FormValue("specialty")),
		Role:      model.UserRole(r.FormValue("role")),
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		http.Redirect(w, r, "/register?error=Name,+email+and+password+required", http.StatusSeeOther)
		return
	}
	if req.Role == "" {
		req.Role = model.RoleDoctor
	}

	user, err := ui.client.Register(r.Context(), req)
	if err != nil {
		msg := url.QueryEscape(api.ErrorMessage(err))
		http.Redirect(w, r, "/register?error="+msg, http.StatusSeeOther)
		return
	}

	ui.logger.Info("user registered", "email", user.Email)
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// HandleLogout clears the session and redirects to login.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := ui.client.Logout(r.Context()); err != nil {
		ui.logger.Warn("logout cleanup failed", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleDashboard renders the main dashboard.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := ui.client.DashboardStats(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load dashboard", err)
		return
	}

	// Secondary panels are best-effort; a partial dashboard beats an
	// error page.
	today, err := ui.client.TodayAppointments(r.Context())
	if err != nil {
		ui.logger.Warn("today appointments unavailable", "error", err)
	}
	upcoming, err := ui.client.UpcomingAppointments(r.Context(), 5)
	if err != nil {
		ui.logger.Warn("upcoming appointments unavailable", "error", err)
	}

	data := map[string]any{
		"Title":    "Dashboard - Vita",
		"User":     ui.client.Session().Current(),
		"Stats":    stats,
		"Today":    today,
		"Upcoming": upcoming,
		"Uptime":   time.Since(ui.startTime).Round(time.Second).String(),
	}
	ui.render(w, "dashboard", data)
}

// --- Patient Handlers ---

// HandlePatientList renders the patient list page.
func (ui *UI) HandlePatientList(w http.ResponseWriter, r *http.Request) {
	opts := ui.parseListOptions(r)

	page, err := ui.client.Patients(r.Context(), opts)
	if err != nil {
		ui.renderError(w, "Failed to load patients", err)
		return
	}

	data := map[string]any{
		"Title":      "Patients - Vita",
		"User":       ui.client.Session().Current(),
		"Patients":   page.Items,
		"Search":     opts.Search,
		"Pagination": ui.buildPagination(page.Page, page.PageSize, page.Total, page.TotalPages),
	}
	ui.render(w, "patients/list", data)
}

// HandlePatientDetail renders a patient with latest vitals and upcoming
// appointments.
func (ui *UI) HandlePatientDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}

	patient, err := ui.client.Patient(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			ui.renderNotFound(w, "Patient not found")
			return
		}
		ui.renderError(w, "Failed to load patient", err)
		return
	}

	data := map[string]any{
		"Title":   patient.FullName + " - Vita",
		"User":    ui.client.Session().Current(),
		"Patient": patient,
	}
	ui.render(w, "patients/detail", data)
}

// HandlePatientCreate renders the patient registration form.
func (ui *UI) HandlePatientCreate(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title": "New Patient - Vita",
		"User":  ui.client.Session().Current(),
		"Error": r.URL.Query().Get("error"),
	}
	ui.render(w, "patients/create", data)
}

// HandlePatientCreatePost processes the patient registration form.
func (ui *UI) HandlePatientCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/patients/new?error=Invalid+request", http.StatusSeeOther)
		return
	}

	in := model.PatientCreate{
		FullName:         strings.TrimSpace(r.FormValue("full_name")),
		CPF:              strings.TrimSpace(r.FormValue("cpf")),
		BirthDate:        r.FormValue("birth_date"),
		Gender:           r.FormValue("gender"),
		Phone:            strings.TrimSpace(r.FormValue("phone")),
		Email:            strings.TrimSpace(r.FormValue("email")),
		Address:          strings.TrimSpace(r.FormValue("address")),
		EmergencyContact: strings.TrimSpace(r.FormValue("emergency_contact")),
		EmergencyPhone:   strings.TrimSpace(r.FormValue("emergency_phone")),
		BloodType:        r.FormValue("blood_type"),
		Allergies:        strings.TrimSpace(r.FormValue("allergies")),
		MedicalNotes:     strings.TrimSpace(r.FormValue("medical_notes")),
	}
	if in.FullName == "" || in.CPF == "" || in.BirthDate == "" {
		http.Redirect(w, r, "/patients/new?error=Name,+CPF+and+birth+date+required", http.StatusSeeOther)
		return
	}

	patient, err := ui.client.CreatePatient(r.Context(), in)
	if err != nil {
		msg := url.QueryEscape(api.ErrorMessage(err))
		http.Redirect(w, r, "/patients/new?error="+msg, http.StatusSeeOther)
		return
	}

	ui.logger.Info("patient created", "id", patient.ID)
	http.Redirect(w, r, "/patients/"+strconv.FormatInt(patient.ID, 10), http.StatusSeeOther)
}

// HandlePatientEdit renders the patient edit form.
func (ui *UI) HandlePatientEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}

	patient, err := ui.client.Patient(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			ui.renderNotFound(w, "Patient not found")
			return
		}
		ui.renderError(w, "Failed to load patient", err)
		return
	}

	data := map[string]any{
		"Title":   "Edit " + patient.FullName + " - Vita",
		"User":    ui.client.Session().Current(),
		"Patient": patient,
		"Error":   r.URL.Query().Get("error"),
	}
	ui.render(w, "patients/edit", data)
}

// HandlePatientEditPost processes the patient edit form. Only non-empty
// fields are sent so untouched data stays as it is.
func (ui *UI) HandlePatientEditPost(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/patients/"+strconv.FormatInt(id, 10)+"/edit?error=Invalid+request", http.StatusSeeOther)
		return
	}

	in := model.PatientUpdate{
		FullName:         formPtr(r, "full_name"),
		Phone:            formPtr(r, "phone"),
		Email:            formPtr(r, "email"),
		Address:          formPtr(r, "address"),
		EmergencyContact: formPtr(r, "emergency_contact"),
		EmergencyPhone:   formPtr(r, "emergency_phone"),
		Allergies:        formPtr(r, "allergies"),
		MedicalNotes:     formPtr(r, "medical_notes"),
	}

	if _, err := ui.client.UpdatePatient(r.Context(), id, in); err != nil {
		msg := url.QueryEscape(api.ErrorMessage(err))
		http.Redirect(w, r, "/patients/"+strconv.FormatInt(id, 10)+"/edit?error="+msg, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/patients/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// HandlePatientDeactivate deactivates a patient record.
func (ui *UI) HandlePatientDeactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}

	if err := ui.client.DeletePatient(r.Context(), id); err != nil {
		ui.renderError(w, "Failed to deactivate patient", err)
		return
	}

	ui.logger.Info("patient deactivated", "id", id)
	http.Redirect(w, r, "/patients", http.StatusSeeOther)
}

// HandlePatientVitals renders a patient's vitals history with stats and
// chart series.
func (ui *UI) HandlePatientVitals(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}

	days := 30
	if d := r.URL.Query().Get("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	patient, err := ui.client.Patient(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			ui.renderNotFound(w, "Patient not found")
			return
		}
		ui.renderError(w, "Failed to load patient", err)
		return
	}

	vitals, err := ui.client.PatientVitals(r.Context(), id, 50)
	if err != nil {
		ui.renderError(w, "Failed to load vitals", err)
		return
	}

	// Stats and chart are optional enrichments.
	stats, err := ui.client.VitalStats(r.Context(), id, days)
	if err != nil {
		ui.logger.Warn("vital stats unavailable", "patient_id", id, "error", err)
	}
	chart, err := ui.client.VitalChart(r.Context(), id, days)
	if err != nil {
		ui.logger.Warn("vital chart unavailable", "patient_id", id, "error", err)
	}

	data := map[string]any{
		"Title":   "Vitals: " + patient.FullName + " - Vita",
		"User":    ui.client.Session().Current(),
		"Patient": patient,
		"Vitals":  vitals.Items,
		"Stats":   stats,
		"Chart":   chart,
		"Days":    days,
		"Error":   r.URL.Query().Get("error"),
	}
	ui.render(w, "patients/vitals", data)
}

// HandleVitalsPost records a new measurement for a patient.
func (ui *UI) HandleVitalsPost(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}
	vitalsPath := "/patients/" + strconv.FormatInt(id, 10) + "/vitals"

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, vitalsPath+"?error=Invalid+request", http.StatusSeeOther)
		return
	}

	in := model.VitalSignCreate{
		PatientID:         id,
		HeartRate:         formIntPtr(r, "heart_rate"),
		SystolicPressure:  formIntPtr(r, "systolic_pressure"),
		DiastolicPressure: formIntPtr(r, "diastolic_pressure"),
		Temperature:       formFloatPtr(r, "temperature"),
		OxygenSaturation:  formFloatPtr(r, "oxygen_saturation"),
		RespiratoryRate:   formIntPtr(r, "respiratory_rate"),
		Weight:            formFloatPtr(r, "weight"),
		Height:            formFloatPtr(r, "height"),
		GlucoseLevel:      formFloatPtr(r, "glucose_level"),
		Notes:             strings.TrimSpace(r.FormValue("notes")),
	}

	if _, err := ui.client.RecordVitals(r.Context(), in); err != nil {
		msg := url.QueryEscape(api.ErrorMessage(err))
		http.Redirect(w, r, vitalsPath+"?error="+msg, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, vitalsPath, http.StatusSeeOther)
}

// --- Appointment Handlers ---

// HandleAppointmentList renders the appointment list page.
func (ui *UI) HandleAppointmentList(w http.ResponseWriter, r *http.Request) {
	f := model.AppointmentFilter{Page: 1, PageSize: 20}
	q := r.URL.Query()
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		f.Page = p
	}
	if s := q.Get("status"); s != "" {
		f.Status = model.AppointmentStatus(s)
	}
	f.DateFrom = q.Get("date_from")
	f.DateTo = q.Get("date_to")
	if pid, err := strconv.ParseInt(q.Get("patient_id"), 10, 64); err == nil {
		f.PatientID = pid
	}

	page, err := ui.client.Appointments(r.Context(), f)
	if err != nil {
		ui.renderError(w, "Failed to load appointments", err)
		return
	}

	data := map[string]any{
		"Title":        "Appointments - Vita",
		"User":         ui.client.Session().Current(),
		"Appointments": page.Items,
		"StatusFilter": string(f.Status),
		"DateFrom":     f.DateFrom,
		"DateTo":       f.DateTo,
		"Pagination":   ui.buildPagination(page.Page, page.PageSize, page.Total, page.TotalPages),
	}
	ui.render(w, "appointments/list", data)
}

// HandleAppointmentDetail renders one appointment with its patient.
func (ui *UI) HandleAppointmentDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}

	appt, err := ui.client.Appointment(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			ui.renderNotFound(w, "Appointment not found")
			return
		}
		ui.renderError(w, "Failed to load appointment", err)
		return
	}

	data := map[string]any{
		"Title":       "Appointment - Vita",
		"User":        ui.client.Session().Current(),
		"Appointment": appt,
	}
	ui.render(w, "appointments/detail", data)
}

// HandleAppointmentCreate renders the scheduling form.
func (ui *UI) HandleAppointmentCreate(w http.ResponseWriter, r *http.Request) {
	// Load patients for the selector; the roster is small enough to
	// fetch in one page.
	page, err := ui.client.Patients(r.Context(), model.ListOptions{Page: 1, PageSize: 100})
	if err != nil {
		ui.renderError(w, "Failed to load patients", err)
		return
	}

	var selectedID int64
	if pid, err := strconv.ParseInt(r.URL.Query().Get("patient_id"), 10, 64); err == nil {
		selectedID = pid
	}

	data := map[string]any{
		"Title":      "Schedule Appointment - Vita",
		"User":       ui.client.Session().Current(),
		"Patients":   page.Items,
		"SelectedID": selectedID,
		"Error":      r.URL.Query().Get("error"),
	}
	ui.render(w, "appointments/create", data)
}

// HandleAppointmentCreatePost processes the scheduling form.
func (ui *UI) HandleAppointmentCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/appointments/new?error=Invalid+request", http.StatusSeeOther)
		return
	}

	patientID, err := strconv.ParseInt(r.FormValue("patient_id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/appointments/new?error=Patient+required", http.StatusSeeOther)
		return
	}
	scheduledAt, err := time.ParseInLocation("2006-01-02T15:04", r.FormValue("scheduled_at"), time.Local)
	if err != nil {
		http.Redirect(w, r, "/appointments/new?error=Valid+date+and+time+required", http.StatusSeeOther)
		return
	}

	in := model.AppointmentCreate{
		PatientID:       patientID,
		ScheduledAt:     scheduledAt,
		AppointmentType: r.FormValue("appointment_type"),
		Reason:          strings.TrimSpace(r.FormValue("reason")),
		IsTelemedicine:  r.FormValue("is_telemedicine") == "on",
	}
	if d, err := strconv.Atoi(r.FormValue("duration_minutes")); err == nil && d > 0 {
		in.DurationMinutes = d
	}

	appt, err := ui.client.CreateAppointment(r.Context(), in)
	if err != nil {
		msg := url.QueryEscape(api.ErrorMessage(err))
		http.Redirect(w, r, "/appointments/new?error="+msg, http.StatusSeeOther)
		return
	}

	ui.logger.Info("appointment scheduled", "id", appt.ID, "patient_id", patientID)
	http.Redirect(w, r, "/appointments/"+strconv.FormatInt(appt.ID, 10), http.StatusSeeOther)
}

// HandleAppointmentCancel cancels an appointment.
func (ui *UI) HandleAppointmentCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.pathID(w, r)
	if !ok {
		return
	}

	if err := ui.client.CancelAppointment(r.Context(), id); err != nil {
		ui.renderError(w, "Failed to cancel appointment", err)
		return
	}

	ui.logger.Info("appointment cancelled", "id", id)
	http.Redirect(w, r, "/appointments", http.StatusSeeOther)
}

// --- Alert Handlers ---

// HandleCriticalAlerts renders recent out-of-range measurements across
// the roster.
func (ui *UI) HandleCriticalAlerts(w http.ResponseWriter, r *http.Request) {
	vitals, err := ui.client.CriticalVitals(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load alerts", err)
		return
	}

	data := map[string]any{
		"Title":  "Critical Alerts - Vita",
		"User":   ui.client.Session().Current(),
		"Vitals": vitals,
	}
	ui.render(w, "alerts", data)
}

// --- Helper Methods ---

func (ui *UI) parseListOptions(r *http.Request) model.ListOptions {
	opts := model.DefaultListOptions()
	q := r.URL.Query()

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		opts.Page = p
	}
	if n, err := strconv.Atoi(q.Get("page_size")); err == nil && n > 0 && n <= 100 {
		opts.PageSize = n
	}
	opts.Search = strings.TrimSpace(q.Get("search"))
	if v := q.Get("is_active"); v != "" {
		active := v == "true"
		opts.IsActive = &active
	}

	return opts
}

func (ui *UI) buildPagination(page, pageSize, total, totalPages int) map[string]any {
	return map[string]any{
		"Total":      total,
		"Page":       page,
		"PageSize":   pageSize,
		"TotalPages": totalPages,
		"HasMore":    page < totalPages,
		"HasPrev":    page > 1,
		"NextPage":   page + 1,
		"PrevPage":   max(1, page-1),
	}
}

// pathID parses the {id} path parameter. On failure it renders a 404
// and reports false.
func (ui *UI) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		ui.renderNotFound(w, "Not found")
		return 0, false
	}
	return id, true
}

func isNotFound(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func formPtr(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil
	}
	return &v
}

func formIntPtr(r *http.Request, name string) *int {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func formFloatPtr(r *http.Request, name string) *float64 {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
