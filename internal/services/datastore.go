package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/repo"
)

// Datastore hands out request-scoped GORM handles. *repo.Gateway is the
// production implementation.
type Datastore interface {
	ReaderConfigured() bool
	WriterConfigured() bool
	Reader(ctx context.Context) (*gorm.DB, error)
	Writer(ctx context.Context) (*gorm.DB, error)
}

// mapUnconfigured translates the gateway's sentinel into ErrUnconfigured.
func mapUnconfigured(err error) error {
	if errors.Is(err, repo.ErrUnconfigured) {
		return ErrUnconfigured
	}
	return err
}
