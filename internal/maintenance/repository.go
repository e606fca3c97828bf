package maintenance

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

type Repository struct {
	*store.Repository[Log]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{store.NewRepository[Log](db, "log_id", "Maintenance log")}
}

// List returns every log, newest first, with the device type joined in.
func (r *Repository) List(ctx context.Context) ([]View, error) {
	q := r.DB(ctx).Table("maintenance m").
		Select("m.*, d.type AS device_type").
		Joins("LEFT JOIN devices d ON d.device_id = m.device_id").
		Order("m.date DESC").Order("m.log_id DESC")
	return store.Find[View](q, r.Entity())
}

func (r *Repository) ListByDevice(ctx context.Context, deviceID int64) ([]Log, error) {
	q := r.DB(ctx).Model(&Log{}).
		Where("device_id = ?", deviceID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true})
	return store.Find[Log](q, r.Entity())
}
