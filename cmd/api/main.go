package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/mariposa/wedding-rsvp/internal/http/handlers"
	authmw "github.com/mariposa/wedding-rsvp/internal/http/middleware"
	"github.com/mariposa/wedding-rsvp/internal/mailer"
	"github.com/mariposa/wedding-rsvp/internal/repo/postgres"
	"github.com/mariposa/wedding-rsvp/internal/service"
	"github.com/mariposa/wedding-rsvp/pkg/config"
	"github.com/mariposa/wedding-rsvp/pkg/database"
	"github.com/mariposa/wedding-rsvp/pkg/events"
	"github.com/mariposa/wedding-rsvp/pkg/logger"
	mw "github.com/mariposa/wedding-rsvp/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Connect to database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Create tables and seed the admin credential on first startup
	if err := postgres.Migrate(ctx, pool); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	rsvpRepo := postgres.NewRsvpRepo(pool)
	adminRepo := postgres.NewAdminRepo(pool)

	// Event bus is optional; without NATS_URL events are dropped
	var eventBus events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		eventBus = bus
	}
	defer eventBus.Close()

	// Initialize services
	authService := service.NewAuthService(adminRepo, cfg.Auth)
	rsvpService := service.NewRsvpService(rsvpRepo, newMailer(cfg), eventBus)

	if err := authService.EnsureCredential(ctx); err != nil {
		logger.Error("Failed to bootstrap admin credential", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	h := handlers.New(rsvpService, authService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(mw.Health)

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/rsvp", h.SubmitRsvp)
		r.Post("/admin/login", h.Login)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authmw.RequireAdmin(cfg.Auth.JWTSecret))
			r.Get("/rsvps", h.ListRsvps)
		})
	})

	// Serve the built frontend when present
	if st, err := os.Stat(cfg.Server.StaticDir); err == nil && st.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func newMailer(cfg *config.Config) mailer.Service {
	switch {
	case cfg.Email.DevMode:
		return mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	default:
		return mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPFrom)
	}
}
