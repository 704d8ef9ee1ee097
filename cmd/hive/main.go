// Hive central server — ingests fleet telemetry over HTTP, persists it,
// and fans it out to dashboards over WebSocket and SSE.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/honeybotlabs/honeybot/pkg/api"
	"github.com/honeybotlabs/honeybot/pkg/cleanup"
	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/database"
	"github.com/honeybotlabs/honeybot/pkg/events"
	"github.com/honeybotlabs/honeybot/pkg/services"
	"github.com/honeybotlabs/honeybot/pkg/version"
)

// resolveInstanceID determines the instance identifier for multi-replica
// deployments. Priority: INSTANCE_ID env > HOSTNAME env > "local"
func resolveInstanceID() string {
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	envFile := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	instanceID := resolveInstanceID()
	slog.Info("Starting hive", "version", version.Full(), "instance_id", instanceID)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.LoadHiveFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs pending migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database configuration", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Failed to close database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Realtime hub and the cross-instance NOTIFY bus
	warningsService := services.NewSystemWarningsService()
	connManager := events.NewConnectionManager(nil, 10*time.Second)
	eventPublisher := events.NewEventPublisher(dbClient.DB(), events.NotifyChannel)

	// 4. Initialize domain services
	botService := services.NewBotService(dbClient.Client, connManager)
	patternService := services.NewPatternService(dbClient.Client)
	alertService := services.NewAlertService(dbClient.Client, connManager, eventPublisher)
	eventService := services.NewEventService(dbClient.Client, patternService, alertService, connManager, eventPublisher)
	sessionService := services.NewSessionService(dbClient.Client, connManager)
	statsService := services.NewStatsService(dbClient.Client, botService)
	connManager.SetHistory(events.NewHistoryAdapter(eventService, alertService))
	slog.Info("Services initialized")

	// 5. Start the NOTIFY listener on its own connection so frames from
	// peer instances reach this hub too
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), events.NotifyChannel, connManager, warningsService)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	slog.Info("Event infrastructure initialized", "channel", events.NotifyChannel)

	// 6. Retention and fleet-status sweeps
	cleanupService := cleanup.NewService(cfg, botService, eventService, sessionService,
		alertService, statsService, connManager, warningsService)
	cleanupService.Start(ctx)
	slog.Info("Cleanup service started", "interval", cfg.CleanupInterval)

	// 7. Create HTTP server
	httpServer := api.NewServer(cfg, dbClient, botService, eventService, sessionService,
		patternService, alertService, statsService, connManager)
	httpServer.SetWarningsService(warningsService)
	httpServer.SetNotifyListener(notifyListener)

	// 8. Start HTTP server (non-blocking)
	serverErrCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", cfg.Addr)
		if err := httpServer.Start(cfg.Addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			serverErrCh <- err
		}
	}()

	slog.Info("Hive started successfully", "instance_id", instanceID)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown
	slog.Info("Shutting down gracefully...")

	// Stop accepting HTTP traffic and drain in-flight requests
	httpCtx, httpCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	// Stop the background sweeps
	cleanupDone := make(chan struct{})
	go func() {
		cleanupService.Stop()
		close(cleanupDone)
	}()
	select {
	case <-cleanupDone:
		slog.Info("Cleanup service stopped gracefully")
	case <-time.After(10 * time.Second):
		slog.Warn("Cleanup service shutdown timeout exceeded")
	}

	// Close the NOTIFY connection last; broadcasts during drain still count
	listenerCtx, listenerCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer listenerCancel()
	notifyListener.Stop(listenerCtx)

	slog.Info("Shutdown complete")
}
