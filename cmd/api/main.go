// Package main is the entrypoint for the Vitalog API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vitalog/vitalog/internal/cache"
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/handler"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/metrics"
	"github.com/vitalog/vitalog/internal/middleware"
	"github.com/vitalog/vitalog/internal/repository"
	"github.com/vitalog/vitalog/internal/server"
	"github.com/vitalog/vitalog/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	log, flushLogs, err := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer flushLogs()

	// Apply pending schema migrations before opening the pool
	if err := repository.Migrate(cfg.DatabaseURL); err != nil {
		log.Error("failed to run migrations",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	log.Info("migrations applied")

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	log.Info("connected to database")

	// Initialize cache
	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	log.Info("connected to Redis")

	// Initialize services
	recorder := metrics.NewInMemory()
	userService := service.NewUserService(repo, recorder)
	trackingService := service.NewTrackingService(repo, recorder)
	wellnessService := service.NewWellnessService(repo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	metricsHandler := handler.NewMetricsHandler(recorder)
	userHandler := handler.NewUserHandler(userService, log)
	trackingHandler := handler.NewTrackingHandler(trackingService, log)
	wellnessHandler := handler.NewWellnessHandler(wellnessService, log)
	contentHandler := handler.NewContentHandler(recorder)

	r := setupRouter(routerDeps{
		health:   healthHandler,
		metrics:  metricsHandler,
		user:     userHandler,
		tracking: trackingHandler,
		wellness: wellnessHandler,
		content:  contentHandler,
		cache:    cacheClient,
		cfg:      cfg,
		logger:   log,
	})

	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, log)

	// Connections close in reverse registration order after the HTTP
	// server has drained.
	srv.OnShutdown("postgres", func(ctx context.Context) error {
		repo.Close()
		return nil
	})
	srv.OnShutdown("redis", func(ctx context.Context) error {
		return cacheClient.Close()
	})

	log.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// routerDeps bundles everything setupRouter needs.
type routerDeps struct {
	health   *handler.HealthHandler
	metrics  *handler.MetricsHandler
	user     *handler.UserHandler
	tracking *handler.TrackingHandler
	wellness *handler.WellnessHandler
	content  *handler.ContentHandler
	cache    *cache.Cache
	cfg      *config.Config
	logger   *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      deps.cfg.IsDevelopment(),
		MaxRequestBodySize: deps.cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(deps.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health endpoints
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)

	// Metrics endpoint
	r.Get("/metrics", deps.metrics.Metrics)

	// Root info endpoint
	r.Get("/", handler.Hello)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  deps.logger,
		Cache:   deps.cache,
		Enabled: deps.cfg.RateLimitEnabled,
		RPS:     deps.cfg.RateLimitRPS,
		Burst:   deps.cfg.RateLimitBurst,
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimitIP(rateLimitCfg))

		r.Route("/user", func(r chi.Router) {
			r.Post("/", deps.user.Create)
			r.Get("/{id}", deps.user.Get)
			r.Put("/{id}", deps.user.Update)
		})

		r.Route("/water", func(r chi.Router) {
			r.Post("/", deps.tracking.LogWater)
			// The static /calculate segment takes priority over the
			// {user_id} parameter in chi's routing tree.
			r.Get("/calculate/{user_id}", deps.wellness.WaterGoal)
			r.Get("/{user_id}", deps.tracking.WaterLogs)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Post("/", deps.tracking.LogProgress)
			r.Get("/{user_id}", deps.tracking.Progress)
		})

		r.Get("/bmi/{user_id}", deps.wellness.BMI)
		r.Get("/workouts/{user_id}", deps.wellness.WorkoutPlan)
		r.Get("/meals", deps.content.Meals)
		r.Get("/motivation", deps.content.Motivation)
	})

	// 404 and 405 handlers
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
