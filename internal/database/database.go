package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contact-form-backend/internal/database/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens the relational store named by dsn and creates the
// form_submissions table. postgres:// and postgresql:// go to Postgres;
// sqlite://path, file:... and :memory: go to SQLite.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	dialector, isSQLite, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if isSQLite {
			// one writer at a time; in-memory databases live per connection
			sqlDB.SetMaxOpenConns(1)
		} else {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
			sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
		}
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(&models.Submission{}); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// Dialector picks the gorm driver for dsn
func Dialector(dsn string) (gorm.Dialector, bool, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "":
		return nil, false, fmt.Errorf("empty database url")
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return postgres.Open(dsn), false, nil
	case dsn == ":memory:", strings.HasPrefix(lower, "file:"):
		return sqlite.Open(dsn), true, nil
	case strings.HasPrefix(lower, "sqlite://"):
		path := SQLitePath(dsn)
		if err := ensureSQLiteDirectory(path); err != nil {
			return nil, false, err
		}
		return sqlite.Open(path), true, nil
	default:
		return nil, false, fmt.Errorf("unsupported database url %q", dsn)
	}
}

// SQLitePath strips the sqlite:// scheme. sqlite:///app.db and sqlite://app.db
// both mean the relative file app.db; sqlite:////var/app.db is absolute.
func SQLitePath(dsn string) string {
	path := dsn[len("sqlite://"):]
	if strings.HasPrefix(path, "//") {
		return path[1:]
	}
	return strings.TrimPrefix(path, "/")
}

func ensureSQLiteDirectory(path string) error {
	candidate := path
	if idx := strings.Index(candidate, "?"); idx >= 0 {
		candidate = candidate[:idx]
	}
	if candidate == "" || candidate == ":memory:" {
		return nil
	}
	dir := filepath.Dir(candidate)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sqlite directory %q: %w", dir, err)
	}
	return nil
}
