// Package schema brings the database up to the current table layout.
package schema

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/alert"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/config"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/device"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/maintenance"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/reading"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/zone"
)

// Models lists every persisted entity.
func Models() []any {
	return []any{
		&zone.Zone{},
		&device.Device{},
		&reading.Reading{},
		&alert.Alert{},
		&maintenance.Log{},
	}
}

// Migrate runs the SQL migrations for postgres and AutoMigrate for sqlite.
func Migrate(cfg *config.Config, db *gorm.DB, log *zap.Logger) error {
	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(Models()...); err != nil {
			return fmt.Errorf("automigrate: %w", err)
		}
		log.Info("sqlite schema migrated")
		return nil
	}

	m, err := migrate.New(cfg.Database.MigrationsPath, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no new migrations, schema is up to date")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}
	version, _, _ := m.Version()
	log.Info("migrations applied", zap.Uint("version", version))
	return nil
}
