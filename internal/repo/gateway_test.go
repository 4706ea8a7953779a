package repo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/config"
)

func TestGateway_Unconfigured(t *testing.T) {
	g := NewGateway(config.DatastoreConfig{})
	if g.ReaderConfigured() || g.WriterConfigured() {
		t.Fatalf("empty config should not be configured")
	}
	if _, err := g.Reader(context.Background()); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("Reader: expected ErrUnconfigured, got %v", err)
	}
	if _, err := g.Writer(context.Background()); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("Writer: expected ErrUnconfigured, got %v", err)
	}

	var nilGW *Gateway
	if nilGW.ReaderConfigured() || nilGW.WriterConfigured() {
		t.Fatalf("nil gateway should report unconfigured")
	}
}

func TestGateway_ReaderOnly(t *testing.T) {
	db := newTestDB(t)
	var keys []string
	g := NewGateway(
		config.DatastoreConfig{URL: "sqlite://x", AnonKey: "anon"},
		WithOpener(func(_, key string) (*gorm.DB, error) {
			keys = append(keys, key)
			return db, nil
		}),
	)
	if _, err := g.Reader(context.Background()); err != nil {
		t.Fatalf("Reader: %v", err)
	}
	if _, err := g.Writer(context.Background()); !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("Writer without service key should be unconfigured, got %v", err)
	}
	if len(keys) != 1 || keys[0] != "anon" {
		t.Fatalf("reader should authenticate with the anon key, got %v", keys)
	}
}

func TestGateway_OpensOnceUnderConcurrency(t *testing.T) {
	db := newTestDB(t)
	var opens, setups int32
	g := NewGateway(
		config.DatastoreConfig{URL: "sqlite://x", AnonKey: "a", ServiceKey: "s"},
		WithOpener(func(_, key string) (*gorm.DB, error) {
			atomic.AddInt32(&opens, 1)
			return db, nil
		}),
		WithSetup(func(*gorm.DB) error {
			atomic.AddInt32(&setups, 1)
			return nil
		}),
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Writer(context.Background()); err != nil {
				t.Errorf("Writer: %v", err)
			}
		}()
	}
	wg.Wait()

	if opens != 1 || setups != 1 {
		t.Fatalf("expected exactly one open/setup, got opens=%d setups=%d", opens, setups)
	}
}

func TestGateway_FailedOpenIsRetried(t *testing.T) {
	db := newTestDB(t)
	calls := 0
	g := NewGateway(
		config.DatastoreConfig{URL: "sqlite://x", AnonKey: "a", ServiceKey: "s"},
		WithOpener(func(_, _ string) (*gorm.DB, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("connection refused")
			}
			return db, nil
		}),
	)
	if _, err := g.Writer(context.Background()); err == nil {
		t.Fatalf("first call should surface the open error")
	}
	if _, err := g.Writer(context.Background()); err != nil {
		t.Fatalf("second call should retry and succeed, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 open attempts, got %d", calls)
	}
}

func TestGateway_SetupErrorPropagates(t *testing.T) {
	db := newTestDB(t)
	boom := errors.New("plugin failed")
	g := NewGateway(
		config.DatastoreConfig{URL: "sqlite://x", AnonKey: "a"},
		WithOpener(func(_, _ string) (*gorm.DB, error) { return db, nil }),
		WithSetup(func(*gorm.DB) error { return boom }),
	)
	if _, err := g.Reader(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected setup error, got %v", err)
	}
}

func TestStaticGateway_AndClose(t *testing.T) {
	db := newTestDB(t)
	g := NewStaticGateway(db)
	if !g.ReaderConfigured() || !g.WriterConfigured() {
		t.Fatalf("static gateway should be configured")
	}
	r, err := g.Reader(context.Background())
	if err != nil || r == nil {
		t.Fatalf("Reader: %v", err)
	}
	if err := Ping(context.Background(), r); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if NewStaticGateway(nil).WriterConfigured() {
		t.Fatalf("nil static gateway should be unconfigured")
	}
}
