package zone

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
)

type Repository struct {
	*store.Repository[Zone]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{store.NewRepository[Zone](db, "zone_id", "Zone")}
}

// List returns every zone ordered by id. The table is small, so it is not capped.
func (r *Repository) List(ctx context.Context) ([]Zone, error) {
	return store.Find[Zone](r.DB(ctx).Model(&Zone{}).Order("zone_id"), r.Entity())
}
