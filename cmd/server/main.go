// Command server runs the fan club HTTP API.
//
//	@title       Fan Club API
//	@version     1.0
//	@description Weekly vote, feeds, media uploads and status endpoints for the fan club site.
//	@BasePath    /api
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/fanclub-backend/internal/config"
	httpapi "github.com/tbourn/fanclub-backend/internal/http"
	"github.com/tbourn/fanclub-backend/internal/observability"
	"github.com/tbourn/fanclub-backend/internal/repo"
	"github.com/tbourn/fanclub-backend/internal/storage"
	"github.com/tbourn/fanclub-backend/internal/sysutil"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownGrace = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		sysutil.ConfigureLogging(os.Stderr, "info", false)
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	sysutil.ConfigureLogging(os.Stderr, cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db := repo.NewGateway(cfg.Datastore, repo.WithSetup(func(g *gorm.DB) error {
		if cfg.Datastore.TraceSQL {
			if err := observability.InstrumentDB(g); err != nil {
				return err
			}
		}
		if cfg.Datastore.AutoMigrate {
			return repo.AutoMigrate(g)
		}
		return nil
	}))
	media := storage.NewGateway(cfg.Storage)

	log.Info().
		Bool("datastore_reader", db.ReaderConfigured()).
		Bool("datastore_writer", db.WriterConfigured()).
		Bool("storage", media.Configured()).
		Str("bucket", media.Bucket()).
		Str("version", version).
		Msg("backends")

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, media, cfg)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server failed")
		}
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("datastore close")
	}
	if err := shutdownOTel(sctx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	log.Info().Msg("bye")
}
