package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/me/vita/pkg/model"
)

// Appointments lists appointments with pagination and optional filters.
func (c *Client) Appointments(ctx context.Context, f model.AppointmentFilter) (*model.Page[model.Appointment], error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(f.Page))
	query.Set("page_size", strconv.Itoa(f.PageSize))
	if f.Status != "" {
		query.Set("status", string(f.Status))
	}
	if f.DateFrom != "" {
		query.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		query.Set("date_to", f.DateTo)
	}
	if f.PatientID != 0 {
		query.Set("patient_id", strconv.FormatInt(f.PatientID, 10))
	}

	var page model.Page[model.Appointment]
	if err := c.do(ctx, http.MethodGet, "/appointments", query, nil, &page); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return &page, nil
}

// TodayAppointments lists today's appointments with patient details.
func (c *Client) TodayAppointments(ctx context.Context) ([]model.AppointmentDetail, error) {
	var appts []model.AppointmentDetail
	if err := c.do(ctx, http.MethodGet, "/appointments/today", nil, nil, &appts); err != nil {
		return nil, fmt.Errorf("today appointments: %w", err)
	}
	return appts, nil
}

// UpcomingAppointments lists the next scheduled appointments.
func (c *Client) UpcomingAppointments(ctx context.Context, limit int) ([]model.AppointmentDetail, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var appts []model.AppointmentDetail
	if err := c.do(ctx, http.MethodGet, "/appointments/upcoming", query, nil, &appts); err != nil {
		return nil, fmt.Errorf("upcoming appointments: %w", err)
	}
	return appts, nil
}

// Appointment fetches one appointment with patient and doctor details.
func (c *Client) Appointment(ctx context.Context, id int64) (*model.AppointmentDetail, error) {
	var detail model.AppointmentDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/appointments/%d", id), nil, nil, &detail); err != nil {
		return nil, fmt.Errorf("get appointment %d: %w", id, err)
	}
	return &detail, nil
}

// CreateAppointment schedules a new appointment.
func (c *Client) CreateAppointment(ctx context.Context, in model.AppointmentCreate) (*model.Appointment, error) {
	var appt model.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", nil, in, &appt); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &appt, nil
}

// UpdateAppointment updates the given fields of an appointment.
func (c *Client) UpdateAppointment(ctx context.Context, id int64, in model.AppointmentUpdate) (*model.Appointment, error) {
	var appt model.Appointment
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", id), nil, in, &appt); err != nil {
		return nil, fmt.Errorf("update appointment %d: %w", id, err)
	}
	return &appt, nil
}

// CancelAppointment cancels an appointment.
func (c *Client) CancelAppointment(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("cancel appointment %d: %w", id, err)
	}
	return nil
}
