package repo

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/config"
)

// ErrUnconfigured is returned by the Gateway when the credentials for the
// requested client are absent.
var ErrUnconfigured = errors.New("datastore not configured")

// OpenFunc opens a datastore handle for a URL and credential. Open is the
// production implementation.
type OpenFunc func(rawURL, key string) (*gorm.DB, error)

// GatewayOption customizes a Gateway.
type GatewayOption func(*Gateway)

// WithOpener replaces the function used to connect (tests).
func WithOpener(fn OpenFunc) GatewayOption {
	return func(g *Gateway) { g.open = fn }
}

// WithSetup registers a hook run once on every freshly opened handle, before
// it is handed out (tracing plugins, migrations).
func WithSetup(fn func(*gorm.DB) error) GatewayOption {
	return func(g *Gateway) { g.setup = append(g.setup, fn) }
}

// Gateway hands out the process-wide datastore clients.
//
// There are two clients: the reader, authenticated with the anon key and
// used by the public feeds, and the writer, authenticated with the service
// key and used by voting and health checks. Whether each is available is
// decided once from configuration; the connection itself is opened lazily on
// first use and then reused until Close. A failed open is not cached, so the
// next request retries.
type Gateway struct {
	cfg   config.DatastoreConfig
	open  OpenFunc
	setup []func(*gorm.DB) error

	reader lazyDB
	writer lazyDB
}

type lazyDB struct {
	mu sync.Mutex
	db *gorm.DB
}

// NewGateway returns a Gateway for cfg. No connection is made here.
func NewGateway(cfg config.DatastoreConfig, opts ...GatewayOption) *Gateway {
	g := &Gateway{cfg: cfg, open: Open}
	for _, o := range opts {
		o(g)
	}
	return g
}

// NewStaticGateway returns a Gateway whose reader and writer are both db.
// It is configured for both roles; a nil db yields an unconfigured Gateway.
func NewStaticGateway(db *gorm.DB) *Gateway {
	if db == nil {
		return NewGateway(config.DatastoreConfig{})
	}
	g := NewGateway(config.DatastoreConfig{URL: "static", AnonKey: "static", ServiceKey: "static"})
	g.reader.db = db
	g.writer.db = db
	return g
}

// ReaderConfigured reports whether the public client can be obtained.
func (g *Gateway) ReaderConfigured() bool { return g != nil && g.cfg.ReaderConfigured() }

// WriterConfigured reports whether the service-role client can be obtained.
func (g *Gateway) WriterConfigured() bool { return g != nil && g.cfg.WriterConfigured() }

// Reader returns the public client bound to ctx, or ErrUnconfigured.
func (g *Gateway) Reader(ctx context.Context) (*gorm.DB, error) {
	if !g.ReaderConfigured() {
		return nil, ErrUnconfigured
	}
	return g.get(ctx, &g.reader, g.cfg.AnonKey)
}

// Writer returns the service-role client bound to ctx, or ErrUnconfigured.
func (g *Gateway) Writer(ctx context.Context) (*gorm.DB, error) {
	if !g.WriterConfigured() {
		return nil, ErrUnconfigured
	}
	return g.get(ctx, &g.writer, g.cfg.ServiceKey)
}

func (g *Gateway) get(ctx context.Context, l *lazyDB, key string) (*gorm.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		db, err := g.open(g.cfg.URL, key)
		if err != nil {
			return nil, err
		}
		for _, fn := range g.setup {
			if err := fn(db); err != nil {
				closeDB(db)
				return nil, err
			}
		}
		l.db = db
	}
	return l.db.WithContext(ctx), nil
}

// Close releases any opened connections. The Gateway must not be used
// afterwards.
func (g *Gateway) Close() error {
	var errs []error
	for _, l := range []*lazyDB{&g.reader, &g.writer} {
		l.mu.Lock()
		if l.db != nil {
			if sqlDB, err := l.db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					errs = append(errs, err)
				}
			}
			l.db = nil
		}
		l.mu.Unlock()
	}
	return errors.Join(errs...)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
