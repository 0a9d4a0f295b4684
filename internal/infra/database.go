// Package infra opens the relational store and applies the schema.
package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"qtravel/internal/logger"
	"qtravel/internal/models/db_models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const pingTimeout = 10 * time.Second

// StorageConfig is passed explicitly to OpenDatabase. Driver decides which
// column shims the schema uses: postgres gets geography and text[], sqlite
// gets plain text columns.
type StorageConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // seconds
	AutoMigrate     bool
	LogLevel        string
}

func (c StorageConfig) dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case DriverPostgres:
		return postgres.Open(c.DSN), nil
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(c.DSN)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement unless the DSN already sets
// it. Cascades and FK checks depend on it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=1"
	}
	return dsn + "?_foreign_keys=1"
}

// inMemory reports whether every pooled connection must share one sqlite
// connection to see the same database.
func (c StorageConfig) inMemory() bool {
	return c.Driver == DriverSQLite && (strings.Contains(c.DSN, ":memory:") || strings.Contains(c.DSN, "mode=memory"))
}

// OpenDatabase connects with the configured driver, tunes the pool, pings
// and, when AutoMigrate is set, creates or updates every table.
func OpenDatabase(cfg StorageConfig, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(log, cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database handle: %w", err)
	}
	if cfg.inMemory() {
		sqlDB.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		if err := requireForeignKeys(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	log.Info().Str("driver", cfg.Driver).Msg("database connected")

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info().Int("tables", len(db_models.AllModels())).Msg("schema migrated")
	}

	return db, nil
}

func requireForeignKeys(db *gorm.DB) error {
	var enabled int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		return fmt.Errorf("read sqlite foreign_keys: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("sqlite foreign_keys is off, remove _foreign_keys=0 from the DSN")
	}
	return nil
}

// Migrate creates the tables, their check constraints and cascading
// foreign keys. Postgres needs PostGIS for the geography column.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == DriverPostgres {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
			return fmt.Errorf("enable postgis: %w", err)
		}
	}
	if err := db.AutoMigrate(db_models.AllModels()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func CloseDatabase(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("get database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("close database connection")
		return
	}
	log.Info().Msg("database connection closed")
}
