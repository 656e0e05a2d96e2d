package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/me/vita/pkg/model"
)

// Patients lists the doctor's patients with pagination and an optional
// name/CPF search.
func (c *Client) Patients(ctx context.Context, opts model.ListOptions) (*model.Page[model.Patient], error) {
	opts.Clamp()

	query := url.Values{}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("page_size", strconv.Itoa(opts.PageSize))
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*opts.IsActive))
	}

	var page model.Page[model.Patient]
	if err := c.do(ctx, http.MethodGet, "/patients", query, nil, &page); err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return &page, nil
}

// Patient fetches one patient with latest vitals and upcoming appointments.
func (c *Client) Patient(ctx context.Context, id int64) (*model.PatientDetail, error) {
	var detail model.PatientDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/patients/%d", id), nil, nil, &detail); err != nil {
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return &detail, nil
}

// CreatePatient registers a new patient.
func (c *Client) CreatePatient(ctx context.Context, in model.PatientCreate) (*model.Patient, error) {
	var patient model.Patient
	if err := c.do(ctx, http.MethodPost, "/patients", nil, in, &patient); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return &patient, nil
}

// UpdatePatient updates the given fields of an existing patient.
func (c *Client) UpdatePatient(ctx context.Context, id int64, in model.PatientUpdate) (*model.Patient, error) {
	var patient model.Patient
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/patients/%d", id), nil, in, &patient); err != nil {
		return nil, fmt.Errorf("update patient %d: %w", id, err)
	}
	return &patient, nil
}

// DeletePatient deactivates a patient record.
func (c *Client) DeletePatient(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/patients/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete patient %d: %w", id, err)
	}
	return nil
}
