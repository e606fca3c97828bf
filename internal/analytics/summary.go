package analytics

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

type Summary struct {
	TotalDevices       int64   `json:"totalDevices"`
	ActiveAlerts       int64   `json:"activeAlerts"`
	TotalMaintenance   int64   `json:"totalMaintenance"`
	AvgMaintenanceCost float64 `json:"avgMaintenanceCost"`
}

// DashboardSummary runs the four headline counters on a single pooled
// connection. With no maintenance rows the average cost is 0.
func (a *Aggregator) DashboardSummary(ctx context.Context) (Summary, error) {
	var s Summary
	err := store.WithConn(ctx, a.db, func(conn *gorm.DB) error {
		scalars := []struct {
			query string
			args  []any
			dest  any
		}{
			{"SELECT COUNT(*) FROM devices", nil, &s.TotalDevices},
			{"SELECT COUNT(*) FROM alerts WHERE resolved = ?", []any{false}, &s.ActiveAlerts},
			{"SELECT COUNT(*) FROM maintenance", nil, &s.TotalMaintenance},
			{"SELECT COALESCE(AVG(cost), 0) FROM maintenance", nil, &s.AvgMaintenanceCost},
		}
		for _, sc := range scalars {
			if err := conn.Raw(sc.query, sc.args...).Scan(sc.dest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, apierr.Store(err)
	}
	return s, nil
}
