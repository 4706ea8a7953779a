// Package storage is the object-storage gateway for media uploads. It talks
// to an S3-compatible endpoint (Backblaze B2) through aws-sdk-go and derives
// public URLs for stored objects from a configured CDN base URL.
//
// The S3 client is built once per process on first use. When credentials are
// missing the Gateway reports itself unconfigured and every write fails with
// ErrUnconfigured instead of reaching the network.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/tbourn/fanclub-backend/internal/config"
)

var (
	// ErrUnconfigured is returned when storage credentials are absent.
	ErrUnconfigured = errors.New("object storage not configured")
	// ErrNoPublicURL is returned when no CDN base URL is configured.
	ErrNoPublicURL = errors.New("media CDN base url not configured")
)

const (
	msgConfigured   = "Backblaze B2 is properly configured"
	msgUnconfigured = "Backblaze B2 is not configured. Please set the required environment variables."
)

// ClientFactory builds the S3 API client from configuration.
type ClientFactory func(cfg config.StorageConfig) (s3iface.S3API, error)

// Option customizes a Gateway.
type Option func(*Gateway)

// WithClientFactory replaces the S3 client constructor (tests).
func WithClientFactory(fn ClientFactory) Option {
	return func(g *Gateway) { g.newClient = fn }
}

// Gateway stores objects in a single bucket.
type Gateway struct {
	cfg       config.StorageConfig
	newClient ClientFactory

	once   sync.Once
	client s3iface.S3API
	err    error
}

// NewGateway returns a Gateway for cfg. No client is built here.
func NewGateway(cfg config.StorageConfig, opts ...Option) *Gateway {
	g := &Gateway{cfg: cfg, newClient: NewS3Client}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Configured reports whether objects can be stored.
func (g *Gateway) Configured() bool { return g != nil && g.cfg.Configured() }

// Bucket returns the configured bucket name.
func (g *Gateway) Bucket() string { return g.cfg.Bucket }

// CDNBaseURL returns the public base URL without a trailing slash.
func (g *Gateway) CDNBaseURL() string { return strings.TrimRight(g.cfg.CDNBaseURL, "/") }

// Put stores body under key with the given content type.
func (g *Gateway) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if !g.Configured() {
		return ErrUnconfigured
	}
	client, err := g.s3()
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.Bucket()),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns "<cdn base>/<key>".
func (g *Gateway) PublicURL(key string) (string, error) {
	base := g.CDNBaseURL()
	if base == "" {
		return "", ErrNoPublicURL
	}
	return base + "/" + strings.TrimLeft(key, "/"), nil
}

// Status describes the storage configuration without exposing credentials.
type Status struct {
	Configured bool    `json:"configured"`
	BucketName *string `json:"bucketName"`
	CDNBaseURL *string `json:"cdnBaseUrl"`
	Message    string  `json:"message"`
}

// Status reports whether storage is configured, with the bucket and CDN
// base URL when it is.
func (g *Gateway) Status() Status {
	if !g.Configured() {
		return Status{Message: msgUnconfigured}
	}
	st := Status{Configured: true, Message: msgConfigured}
	bucket := g.Bucket()
	st.BucketName = &bucket
	if base := g.CDNBaseURL(); base != "" {
		st.CDNBaseURL = &base
	}
	return st
}

func (g *Gateway) s3() (s3iface.S3API, error) {
	g.once.Do(func() {
		g.client, g.err = g.newClient(g.cfg)
	})
	return g.client, g.err
}

// NewS3Client builds an S3 client for the B2 S3-compatible endpoint.
func NewS3Client(cfg config.StorageConfig) (s3iface.S3API, error) {
	endpoint := cfg.Endpoint
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}
	region := cfg.Region
	if region == "" {
		region = "us-west-004"
	}
	sess, err := session.NewSession(&aws.Config{
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		Credentials:      credentials.NewStaticCredentials(cfg.KeyID, cfg.ApplicationKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	return s3.New(sess), nil
}
