package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BerretW/BatteryGuard-sub000/config"
	"github.com/BerretW/BatteryGuard-sub000/internal/model"
)

// Init opens the database connection and runs migrations. Sqlite DSNs
// (a *.db file or ":memory:") are used for local development, anything
// else is handed to the postgres driver.
func Init(cfg *config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(pickDialector(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	log.Info().Msg("running database migrations")
	if err := db.AutoMigrate(
		&model.Group{},
		&model.Site{},
		&model.Technology{},
		&model.Battery{},
		&model.ScheduledEvent{},
		&model.PendingIssue{},
		&model.ManualTask{},
		&model.Contact{},
		&model.LogEntry{},
		&model.User{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	log.Info().Msg("database initialization complete")
	return db, nil
}

func pickDialector(dsn string) gorm.Dialector {
	if dsn == ":memory:" || strings.HasSuffix(dsn, ".db") || strings.HasPrefix(dsn, "file:") {
		return sqlite.Open(dsn)
	}
	return postgres.Open(dsn)
}
