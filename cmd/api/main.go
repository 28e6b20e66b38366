package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/handler"
	"fintrack/internal/integrations/cbr"
	"fintrack/internal/middleware"
	"fintrack/internal/repository"
	"fintrack/internal/scheduler"
	"fintrack/internal/service"
	"fintrack/internal/utils/email"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := repository.RunMigrations(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger, cfg)
	rates := cbr.NewClient(cfg.CBRURL, logger)
	h := handler.NewHandler(svc, rates, logger)

	// Reminder mailer
	if cfg.RemindersEnabled() {
		sender := email.NewSender(cfg, logger)
		sched, err := scheduler.New(cfg.ReminderCron, repo, sender, logger)
		if err != nil {
			logger.Fatalf("Failed to create reminder scheduler: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		logger.Infof("Reminder scheduler running on %q", cfg.ReminderCron)
	} else {
		logger.Info("SMTP not configured, reminder mail disabled")
	}

	// Setup router. CORS wraps the router itself so preflight requests are
	// answered even when no method matches.
	r := mux.NewRouter()
	h.Register(r, middleware.AuthMiddleware(cfg))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
