package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "fitadmin/docs"

	"fitadmin/internal/config"
	"fitadmin/internal/db"
	"fitadmin/internal/email"
	"fitadmin/internal/logger"
	"fitadmin/internal/server"
)

// @title FitAdmin API
// @version 1.0
// @description Multi-tenant facility management platform API.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	logger.Info("Starting FitAdmin application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go emailService.Start(ctx)
	logger.Info("Email worker running")

	srv := server.New(database, cfg, emailService)
	logger.Infof("Listening on :%s", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		logger.Fatalf("Server exited: %v", err)
	}
}
