package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
)

// Repository implements get/create/delete by caller-assigned integer key.
// Entity packages embed it and add their own list queries.
type Repository[T any] struct {
	db     *gorm.DB
	key    string
	entity string
}

func NewRepository[T any](db *gorm.DB, key, entity string) *Repository[T] {
	return &Repository[T]{db: db, key: key, entity: entity}
}

// DB returns a session bound to ctx.
func (r *Repository[T]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Entity is the display name used in error messages.
func (r *Repository[T]) Entity() string { return r.entity }

func (r *Repository[T]) Get(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.DB(ctx).Where(r.key+" = ?", id).Take(&out).Error; err != nil {
		return nil, Classify(err, r.entity)
	}
	return &out, nil
}

func (r *Repository[T]) Create(ctx context.Context, v *T) error {
	return Classify(r.DB(ctx).Create(v).Error, r.entity)
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	res := r.DB(ctx).Where(r.key+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return Classify(res.Error, r.entity)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(r.entity + " not found")
	}
	return nil
}

// Find runs q (already scoped by the caller) into a fresh slice, never nil.
func Find[T any](q *gorm.DB, entity string) ([]T, error) {
	out := make([]T, 0)
	if err := q.Scan(&out).Error; err != nil {
		return nil, Classify(err, entity)
	}
	return out, nil
}
