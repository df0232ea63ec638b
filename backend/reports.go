package backend

import (
	"context"

	"hotel-frontdesk/models"
)

// ListActivities fetches the recent activity feed.
func (c *Client) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var acts []models.Activity
	if err := c.get(ctx, "/activities", &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

// DashboardReport fetches the revenue/metrics report.
func (c *Client) DashboardReport(ctx context.Context) (models.DashboardReport, error) {
	var report models.DashboardReport
	if err := c.get(ctx, "/reports/dashboard", &report); err != nil {
		return models.DashboardReport{}, err
	}
	return report, nil
}
