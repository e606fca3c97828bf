package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
)

const pgUniqueViolation = "23505"

// IsDuplicate reports whether err is a uniqueness violation on any supported driver.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Classify maps a gorm error onto the API error taxonomy. entity is the
// display name used in messages, e.g. "Zone".
func Classify(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierr.NotFound(entity + " not found")
	case IsDuplicate(err):
		return apierr.Duplicate(entity+" ID already exists", err)
	default:
		return apierr.Store(err)
	}
}
