package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labtrack/labtrack/internal/app"
	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/blob"
	"github.com/labtrack/labtrack/internal/config"
	"github.com/labtrack/labtrack/internal/db"
	"github.com/labtrack/labtrack/internal/logger"
	"github.com/labtrack/labtrack/internal/metrics"
	"github.com/labtrack/labtrack/internal/services"
	"github.com/labtrack/labtrack/internal/telemetry"
	"github.com/labtrack/labtrack/pkg/api/v1/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Fatalf("Failed to set up tracing: %v", err)
	}

	conn, err := db.New(db.Options{
		Host:        cfg.DB.Host,
		User:        cfg.DB.User,
		Password:    cfg.DB.Password,
		DBName:      cfg.DB.Name,
		Port:        cfg.DB.Port,
		SSLMode:     cfg.DB.SSLMode,
		LogLevel:    db.ParseLogLevel(cfg.DB.LogLevel),
		AutoMigrate: cfg.DB.AutoMigrate,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := blob.Open(ctx, cfg.Blob)
	if err != nil {
		logger.Fatalf("Failed to open blob store: %v", err)
	}

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	verifier := auth.Chain{issuer}
	if cfg.Auth.JWKSURL != "" {
		jwks, err := auth.NewJWKSVerifier(ctx, cfg.Auth.JWKSURL, cfg.Auth.Issuer)
		if err != nil {
			logger.Fatalf("Failed to load JWKS: %v", err)
		}
		verifier = append(verifier, jwks)
	}

	svc := services.New(conn, services.Options{
		Blob:        store,
		Issuer:      issuer,
		AllowSignup: cfg.Auth.AllowSignup,
		PresignTTL:  cfg.Blob.PresignTTL,
		ContentURL:  routes.DocumentContentURL,
	})
	if cfg.Auth.AdminEmail != "" {
		if err := svc.Users.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			logger.Fatalf("Failed to create admin user: %v", err)
		}
	}

	var m *metrics.Metrics
	if cfg.Telemetry.MetricsEnabled {
		m = metrics.New()
	}

	server, err := app.NewApp(app.Deps{
		DB:          conn,
		Services:    svc,
		Verifier:    verifier,
		Metrics:     m,
		Server:      cfg.Server,
		RequireAuth: cfg.Auth.Required,
	})
	if err != nil {
		logger.Fatalf("Failed to build application: %v", err)
	}

	go func() {
		logger.InfoWithFields("server listening", map[string]interface{}{
			"port":        cfg.Server.Port,
			"environment": cfg.Environment,
			"blob_driver": cfg.Blob.Driver,
		})
		if err := server.Listen(":" + cfg.Server.Port); err != nil {
			logger.Errorf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warnf("Server shutdown: %v", err)
	}
	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Warnf("Tracer shutdown: %v", err)
	}
	if err := db.Close(conn); err != nil {
		logger.Warnf("Database close: %v", err)
	}
}
