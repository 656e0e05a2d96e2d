package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/me/vita/pkg/model"
)

// DashboardStats fetches the summary counters for the dashboard.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
