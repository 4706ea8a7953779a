// Package services – StatusService
//
// StatusService answers the operational endpoints: datastore reachability
// and object-storage configuration.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/fanclub-backend/internal/repo"
	"github.com/tbourn/fanclub-backend/internal/storage"
)

// Health values reported by StatusService.Health.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// Health is the datastore reachability report.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// StorageReporter describes the object-store configuration.
// *storage.Gateway is the production implementation.
type StorageReporter interface {
	Status() storage.Status
}

// StatusService reports on backing services.
type StatusService struct {
	Store   Datastore
	Storage StorageReporter
	Timeout time.Duration
	Now     func() time.Time
}

// NewStatusService returns a StatusService with a probe timeout.
func NewStatusService(store Datastore, st StorageReporter, timeout time.Duration) *StatusService {
	return &StatusService{Store: store, Storage: st, Timeout: timeout, Now: time.Now}
}

// Health probes the datastore with a one-row read bounded by Timeout. It
// never fails; an unconfigured or unreachable datastore is "disconnected".
func (s *StatusService) Health(ctx context.Context) Health {
	status := StatusDisconnected
	if err := s.ping(ctx); err == nil {
		status = StatusConnected
	} else if s.Store != nil && s.Store.WriterConfigured() {
		log.Ctx(ctx).Warn().Err(err).Msg("health check failed")
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return Health{Status: status, Timestamp: now().UTC().Format(time.RFC3339Nano)}
}

func (s *StatusService) ping(ctx context.Context) error {
	if s.Store == nil || !s.Store.WriterConfigured() {
		return ErrUnconfigured
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	db, err := s.Store.Writer(ctx)
	if err != nil {
		return err
	}
	return repo.Ping(ctx, db)
}

// StorageStatus reports the object-store configuration without exposing
// credentials.
func (s *StatusService) StorageStatus() storage.Status {
	if s.Storage == nil {
		return (*storage.Gateway)(nil).Status()
	}
	return s.Storage.Status()
}
