// Package services – UploadService
//
// UploadService stores media files in the object store under a
// timestamp-prefixed key and returns their public CDN URL.
package services

import (
	"context"
	"errors"
	"path"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/fanclub-backend/internal/storage"
)

// ObjectStore is the storage contract used by UploadService.
// *storage.Gateway is the production implementation.
type ObjectStore interface {
	Configured() bool
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) (string, error)
}

// Upload is a file received from a client.
type Upload struct {
	Name        string
	ContentType string
	Body        []byte
}

// UploadService writes uploads to the object store.
type UploadService struct {
	Store ObjectStore
	Now   func() time.Time
}

// NewUploadService returns an UploadService reading the wall clock.
func NewUploadService(store ObjectStore) *UploadService {
	return &UploadService{Store: store, Now: time.Now}
}

// Configured reports whether uploads can be accepted at all.
func (s *UploadService) Configured() bool {
	return s.Store != nil && s.Store.Configured()
}

// Save puts f under "<unix millis>-<base name>" and returns its public URL.
// The object is written before the URL is derived, so ErrNoPublicURL means
// the file is stored but not addressable through the CDN.
func (s *UploadService) Save(ctx context.Context, f *Upload) (string, error) {
	if !s.Configured() {
		return "", ErrUnconfigured
	}
	if f == nil {
		return "", ErrNoFile
	}

	key := s.objectKey(f.Name)
	ctx, span := otel.Tracer("services/UploadService").Start(ctx, "Save",
		trace.WithAttributes(
			attribute.String("upload.key", key),
			attribute.Int("upload.size", len(f.Body)),
		),
	)
	defer span.End()

	if err := s.Store.Put(ctx, key, f.Body, f.ContentType); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "put object")
		if errors.Is(err, storage.ErrUnconfigured) {
			return "", ErrUnconfigured
		}
		return "", err
	}

	url, err := s.Store.PublicURL(key)
	if err != nil {
		if errors.Is(err, storage.ErrNoPublicURL) {
			return "", ErrNoPublicURL
		}
		return "", err
	}
	return url, nil
}

func (s *UploadService) objectKey(name string) string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return strconv.FormatInt(now().UnixMilli(), 10) + "-" + base
}
