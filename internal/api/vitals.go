package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/me/vita/pkg/model"
)

// PatientVitals lists a patient's vital-sign records, newest first.
func (c *Client) PatientVitals(ctx context.Context, patientID int64, limit int) (*model.List[model.VitalSign], error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var list model.List[model.VitalSign]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/vitals/%d", patientID), query, nil, &list); err != nil {
		return nil, fmt.Errorf("list vitals for patient %d: %w", patientID, err)
	}
	return &list, nil
}

// VitalStats aggregates a patient's measurements over the last days.
func (c *Client) VitalStats(ctx context.Context, patientID int64, days int) (*model.VitalStats, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}

	var stats model.VitalStats
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/vitals/%d/stats", patientID), query, nil, &stats); err != nil {
		return nil, fmt.Errorf("vital stats for patient %d: %w", patientID, err)
	}
	return &stats, nil
}

// VitalChart returns per-metric chart series for a patient.
func (c *Client) VitalChart(ctx context.Context, patientID int64, days int) (*model.VitalChartData, error) {
	query := url.Values{}
	if days > 0 {
		query.Set("days", strconv.Itoa(days))
	}

	var chart model.VitalChartData
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/vitals/%d/chart", patientID), query, nil, &chart); err != nil {
		return nil, fmt.Errorf("vital chart for patient %d: %w", patientID, err)
	}
	return &chart, nil
}

// RecordVitals stores a new vital-sign measurement.
func (c *Client) RecordVitals(ctx context.Context, in model.VitalSignCreate) (*model.VitalSign, error) {
	var vs model.VitalSign
	if err := c.do(ctx, http.MethodPost, "/vitals", nil, in, &vs); err != nil {
		return nil, fmt.Errorf("record vitals: %w", err)
	}
	return &vs, nil
}

// CriticalVitals lists recent measurements outside safe ranges across
// the doctor's roster.
func (c *Client) CriticalVitals(ctx context.Context) ([]model.VitalSign, error) {
	var vitals []model.VitalSign
	if err := c.do(ctx, http.MethodGet, "/vitals/alerts/critical", nil, nil, &vitals); err != nil {
		return nil, fmt.Errorf("critical vitals: %w", err)
	}
	return vitals, nil
}
