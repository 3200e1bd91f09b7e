package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dreamjobs/api/internal/config"
	"github.com/dreamjobs/api/internal/database"
	"github.com/dreamjobs/api/internal/handler"
	"github.com/dreamjobs/api/internal/middleware"
	"github.com/dreamjobs/api/internal/repository"
	"github.com/dreamjobs/api/internal/service"
	"github.com/dreamjobs/api/pkg/jwt"
)

func main() {
	// Structured JSON logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server",
		"port", cfg.Server.Port,
		"env", cfg.Server.Env,
	)

	// Connect to database
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	slog.Info("connected to database",
		"host", cfg.Database.Host,
		"namespace", cfg.Database.Namespace,
		"database", cfg.Database.Database,
	)

	// JWT service for session tokens
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// Repositories
	jobRepo := repository.NewJobRepository(db)
	appliedRepo := repository.NewAppliedJobRepository(db)

	// Services
	sessionService := service.NewSessionService(service.SessionServiceConfig{
		JWTService: jwtService,
	})
	jobService := service.NewJobService(service.JobServiceConfig{
		JobRepo: jobRepo,
	})
	applicationService := service.NewApplicationService(service.ApplicationServiceConfig{
		AppliedRepo: appliedRepo,
		JobFinder:   jobRepo,
	})

	// Handlers
	authHandler := handler.NewAuthHandler(handler.AuthHandlerConfig{
		Sessions:   sessionService,
		CookieName: cfg.JWT.CookieName,
	})
	jobHandler := handler.NewJobHandler(handler.JobHandlerConfig{
		Jobs: jobService,
	})
	applicationHandler := handler.NewApplicationHandler(handler.ApplicationHandlerConfig{
		Applications: applicationService,
	})

	// Rate limiter with background cleanup
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100,
		Window: time.Minute,
		Burst:  20,
	})
	defer rateLimiter.Stop()

	// Session middleware for routes that require a signed-in user
	sessionMiddleware := middleware.Session(sessionService, cfg.JWT.CookieName)

	// Routes
	mux := http.NewServeMux()

	// Liveness
	mux.HandleFunc("GET /{$}", handler.Health)

	// Jobs
	mux.HandleFunc("GET /api/v1/jobs", jobHandler.List)
	mux.HandleFunc("POST /api/v1/jobs", jobHandler.Create)
	mux.HandleFunc("GET /api/v1/job/{id}", jobHandler.Get)
	mux.HandleFunc("PUT /api/v1/job/{id}", jobHandler.Replace)
	mux.HandleFunc("POST /api/v1/job/update-applicant-count", jobHandler.IncrementApplicants)
	mux.HandleFunc("DELETE /api/v1/user/delete-job/{id}", jobHandler.Delete)
	mux.Handle("GET /api/v1/my-jobs",
		sessionMiddleware(middleware.RequireOwner(http.HandlerFunc(jobHandler.MyJobs))))

	// Applications
	mux.HandleFunc("POST /api/v1/user/applied-job", applicationHandler.Apply)
	mux.Handle("GET /api/v1/user/applied-job",
		sessionMiddleware(middleware.RequireOwner(http.HandlerFunc(applicationHandler.ListApplied))))

	// Auth
	mux.HandleFunc("POST /api/v1/auth/access-token", authHandler.AccessToken)
	mux.HandleFunc("POST /api/v1/auth/access-cancel", authHandler.AccessCancel)

	// Global middleware chain
	wrapped := middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine for graceful shutdown
	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
