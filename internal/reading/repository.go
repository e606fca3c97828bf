package reading

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/pagination"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

const (
	DefaultListLimit   = 100
	DeviceHistoryLimit = 50
)

type Repository struct {
	*store.Repository[Reading]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{store.NewRepository[Reading](db, "reading_id", "Reading")}
}

// List returns the newest readings first within the page window.
func (r *Repository) List(ctx context.Context, p pagination.Pagination) ([]View, error) {
	q := r.DB(ctx).Table("readings r").
		Select("r.*, d.type AS device_type").
		Joins("LEFT JOIN devices d ON d.device_id = r.device_id").
		Order("r.timestamp DESC").Order("r.reading_id DESC").
		Limit(p.Limit).Offset(p.Offset)
	return store.Find[View](q, r.Entity())
}

// ListByDevice returns a device's most recent readings.
func (r *Repository) ListByDevice(ctx context.Context, deviceID int64) ([]Reading, error) {
	q := r.DB(ctx).Model(&Reading{}).
		Where("device_id = ?", deviceID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Limit(DeviceHistoryLimit)
	return store.Find[Reading](q, r.Entity())
}
