// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers: opening
// the hosted Postgres store or a local SQLite file (pure Go driver) from a
// single datastore URL, and schema migrations for local stores.
package repo

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/fanclub-backend/internal/domain"
)

// ErrUnsupportedURL is returned by Open for datastore URLs whose scheme is
// neither Postgres nor SQLite.
var ErrUnsupportedURL = errors.New("unsupported datastore url")

// Open connects to the datastore named by rawURL, authenticating with key.
//
// Supported forms:
//   - postgres://user@host:5432/db, postgresql://...: hosted Postgres. When
//     the URL carries no password, key is used as the password (and
//     "postgres" as the user when none is given).
//   - sqlite://path/to/app.db: local SQLite file; key is ignored.
//   - file:name?mode=memory&cache=shared: SQLite DSN passed through as-is.
func Open(rawURL, key string) (*gorm.DB, error) {
	switch {
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		dsn, err := postgresDSN(rawURL, key)
		if err != nil {
			return nil, err
		}
		return OpenPostgres(dsn)
	case strings.HasPrefix(rawURL, "sqlite://"):
		return OpenSQLite(strings.TrimPrefix(rawURL, "sqlite://"))
	case strings.HasPrefix(rawURL, "file:"):
		return OpenSQLite(rawURL)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, redactURL(rawURL))
}

// OpenPostgres opens the hosted Postgres store and tunes the pool.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// slowQuery is the threshold above which GORM reports a statement.
const slowQuery = 200 * time.Millisecond

// gormConfig routes GORM's own diagnostics (slow queries, errors) into the
// zerolog stream. Lookups that match nothing are expected and not logged.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.New(zerologWriter{}, logger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}
}

// zerologWriter adapts the global zerolog logger to logger.Writer.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...any) {
	log.Warn().Str("component", "gorm").Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// AutoMigrate creates or updates every table the site reads or writes.
// Hosted deployments manage their schema out of band; this is for local
// and test stores.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(domain.All()...)
}

// postgresDSN injects key as the password when rawURL has none.
func postgresDSN(rawURL, key string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse datastore url: %w", err)
	}
	if key == "" {
		return u.String(), nil
	}
	switch {
	case u.User == nil:
		u.User = url.UserPassword("postgres", key)
	default:
		if _, has := u.User.Password(); !has {
			u.User = url.UserPassword(u.User.Username(), key)
		}
	}
	return u.String(), nil
}

// redactURL drops credentials so the URL is safe to log or return in errors.
func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[unparseable]"
	}
	return u.Redacted()
}
