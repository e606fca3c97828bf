package alert

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/pagination"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

const DefaultListLimit = 100

type Repository struct {
	*store.Repository[Alert]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{store.NewRepository[Alert](db, "alert_id", "Alert")}
}

// List returns the newest alerts first within the page window.
func (r *Repository) List(ctx context.Context, p pagination.Pagination) ([]View, error) {
	q := r.DB(ctx).Table("alerts a").
		Select("a.*, d.type AS device_type").
		Joins("LEFT JOIN devices d ON d.device_id = a.device_id").
		Order("a.alert_time DESC").Order("a.alert_id DESC").
		Limit(p.Limit).Offset(p.Offset)
	return store.Find[View](q, r.Entity())
}

// ListActive returns every unresolved alert, newest first.
func (r *Repository) ListActive(ctx context.Context) ([]Alert, error) {
	q := r.DB(ctx).Model(&Alert{}).
		Where("resolved = ?", false).
		Order("alert_time DESC")
	return store.Find[Alert](q, r.Entity())
}
