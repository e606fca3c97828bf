package device

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

type Repository struct {
	*store.Repository[Device]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{store.NewRepository[Device](db, "device_id", "Device")}
}

// List returns all devices with their zone name (LEFT JOIN keeps orphans).
func (r *Repository) List(ctx context.Context) ([]View, error) {
	q := r.DB(ctx).Table("devices d").
		Select("d.*, z.name AS zone_name").
		Joins("LEFT JOIN zones z ON z.zone_id = d.zone_id").
		Order("d.device_id")
	return store.Find[View](q, r.Entity())
}

func (r *Repository) ListByZone(ctx context.Context, zoneID int64) ([]Device, error) {
	q := r.DB(ctx).Model(&Device{}).Where("zone_id = ?", zoneID).Order("device_id")
	return store.Find[Device](q, r.Entity())
}
