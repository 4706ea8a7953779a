// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns:
// tracing, correlation IDs, access logging, panic recovery, body limits,
// metrics, rate limiting, CORS, security headers and compression.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/fanclub-backend/docs"
	"github.com/tbourn/fanclub-backend/internal/config"
	"github.com/tbourn/fanclub-backend/internal/http/handlers"
	"github.com/tbourn/fanclub-backend/internal/http/middleware"
	"github.com/tbourn/fanclub-backend/internal/services"
)

const (
	// defaultBodyLimit caps JSON request bodies.
	defaultBodyLimit = 1 << 20
	// multipartOverhead is allowed on top of the upload cap for form framing.
	multipartOverhead = 64 << 10
)

// MediaStore is the object-storage dependency: *storage.Gateway.
type MediaStore interface {
	services.ObjectStore
	services.StorageReporter
}

// RegisterRoutes attaches all middleware and HTTP endpoints to r and
// mounts the API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Metrics
//  6. Rate limiter (per client IP)
//  7. CORS and security headers
//  8. gzip
//
// Body limits are per route: 1 MiB for JSON, the configured upload cap for
// /upload.
func RegisterRoutes(r *gin.Engine, db services.Datastore, media MediaStore, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(middleware.LogOptions{
		MaskHeaders: []string{"apikey", "X-Api-Key"},
	}))
	r.Use(middleware.Recovery())

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:     cfg.Security.EnableHSTS,
		HSTSMaxAge:     cfg.Security.HSTSMaxAge,
		EnablePolicy:   true,
		ResourcePolicy: "cross-origin",
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← gateways
	voteSvc := services.NewVoteService(db)
	feedSvc := services.NewFeedService(db)
	feedSvc.CalendarLimit = cfg.CalendarLimit
	uploadSvc := services.NewUploadService(media)
	statusSvc := services.NewStatusService(db, media, cfg.HealthTimeout)
	h := handlers.New(voteSvc, feedSvc, uploadSvc, statusSvc)

	api := groupWithPrefix(r, cfg.APIBasePath)

	uploadLimit := cfg.Storage.MaxUploadBytes
	if uploadLimit <= 0 {
		uploadLimit = 10 << 20
	}
	api.POST("/upload", limitBody(uploadLimit+multipartOverhead), h.Upload)

	rest := api.Group("", limitBody(defaultBodyLimit))
	{
		rest.GET("/vote", h.GetVote)
		rest.POST("/vote", h.CastVote)

		rest.GET("/faq", h.ListFAQ)
		rest.GET("/timeline", h.ListTimeline)
		rest.GET("/friends", h.ListFriends)
		rest.GET("/calendar", h.ListCalendar)
		rest.GET("/calendar.ics", h.ExportCalendar)

		rest.GET("/health", h.Health)
		rest.GET("/storage-status", h.StorageStatus)
	}
}

// corsMiddleware allows every origin when none are configured, otherwise
// only the listed ones. Credentials are never allowed.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		base.AllowAllOrigins = true
		// ACAO: * even without an Origin header, for simple fetches and probes.
		return []gin.HandlerFunc{
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{cors.New(base)}
}

// limitBody caps the request body at maxBytes using http.MaxBytesReader.
// Reads past the cap fail; handlers map that to 413.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
