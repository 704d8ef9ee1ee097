// Command honeybot runs a single honeypot agent: a decoy customer-service
// chatbot that detects prompt injection, stalls attackers with honeypot
// replies, and ships telemetry to the hive.
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

	"github.com/honeybotlabs/honeybot/pkg/alert"
	"github.com/honeybotlabs/honeybot/pkg/analyze"
	"github.com/honeybotlabs/honeybot/pkg/blocklist"
	"github.com/honeybotlabs/honeybot/pkg/bot"
	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/detect"
	"github.com/honeybotlabs/honeybot/pkg/feed"
	"github.com/honeybotlabs/honeybot/pkg/kv"
	"github.com/honeybotlabs/honeybot/pkg/llm"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/report"
	"github.com/honeybotlabs/honeybot/pkg/respond"
	"github.com/honeybotlabs/honeybot/pkg/score"
	"github.com/honeybotlabs/honeybot/pkg/session"
	"github.com/honeybotlabs/honeybot/pkg/version"
)

const registerTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", os.Getenv("HONEYBOT_CONFIG"), "Path to the agent config file (YAML)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting honeybot agent",
		"version", version.Full(),
		"persona", cfg.Persona.Name,
		"category", cfg.Persona.Category)

	// 2. Blocklist store: Redis when configured, process memory otherwise
	var store kv.Store
	if cfg.Redis.Addr != "" {
		redisStore, err := kv.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			slog.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
		slog.Info("Blocklist backed by Redis", "addr", cfg.Redis.Addr)
	} else {
		store = kv.NewMemoryStore()
	}

	blockSvc, err := blocklist.NewService(ctx, store)
	if err != nil {
		slog.Error("Failed to initialize blocklist", "error", err)
		os.Exit(1)
	}
	slog.Info("Blocklist initialized", "entries", blockSvc.Count())

	// 3. Detection pipeline and scoring
	thresholds, err := cfg.Detection.ResolveThresholds()
	if err != nil {
		slog.Error("Invalid detection configuration", "error", err)
		os.Exit(1)
	}
	pipeline := detect.NewPipeline()
	scorer := score.NewScorer(thresholds)

	// 4. Optional local model for honeypot replies and deep analysis
	var responder *respond.Responder
	var analyzer *analyze.Analyzer
	if cfg.Model.Enabled {
		model := llm.NewClient(cfg.Model.BaseURL, cfg.Model.Name)
		responder = respond.NewResponder(model)
		if cfg.Model.Analyzer {
			analyzer = analyze.NewAnalyzer(model)
		}
		slog.Info("Local model enabled", "model", cfg.Model.Name, "analyzer", cfg.Model.Analyzer)
	} else {
		responder = respond.NewResponder(nil)
	}

	// 5. Session tracking and hive reporting
	sessions := session.NewManager()
	var reporter *report.Reporter
	if cfg.Central.Enabled() {
		reporter = report.NewReporter(report.Config{
			BaseURL:   cfg.Central.URL,
			BotID:     cfg.Central.BotID,
			BotSecret: cfg.Central.BotSecret,
			Version:   version.Full(),
		}, sessions.Count)
	}

	// 6. Alert sinks. Unconfigured sinks come back nil and are skipped.
	sinks := []alert.Sink{alert.NewLogSink()}
	if s := alert.NewWebhookSink(cfg.Alerts.WebhookURL); s != nil {
		sinks = append(sinks, s)
	}
	if s := alert.NewTelegramSink(cfg.Alerts.Telegram.Token, cfg.Alerts.Telegram.ChatID); s != nil {
		sinks = append(sinks, s)
	}
	if s := alert.NewSlackSink(cfg.Alerts.Slack.Token, cfg.Alerts.Slack.Channel); s != nil {
		sinks = append(sinks, s)
	}
	if s := alert.NewEmailSink(alert.EmailConfig{
		Host:     cfg.Alerts.Email.Host,
		Port:     cfg.Alerts.Email.Port,
		Username: cfg.Alerts.Email.Username,
		Password: cfg.Alerts.Email.Password,
		From:     cfg.Alerts.Email.From,
		To:       cfg.Alerts.Email.To,
	}); s != nil {
		sinks = append(sinks, s)
	}
	if reporter != nil {
		sinks = append(sinks, alert.NewCentralSink(reporter))
	}
	alerts := alert.NewManager(sinks...).WithHistorySize(cfg.Alerts.HistorySize)

	// 7. Coordinator wires the message path
	coordinator := bot.NewCoordinator(bot.Deps{
		Pipeline:  pipeline,
		Scorer:    scorer,
		Sessions:  sessions,
		Responder: responder,
		Analyzer:  analyzer,
		Alerts:    alerts,
		Blocklist: blockSvc,
		Reporter:  reporter,
		Persona:   cfg.Persona,
	})

	// 8. Announce to the hive and start the telemetry loop
	if reporter != nil {
		regCtx, regCancel := context.WithTimeout(ctx, registerTimeout)
		if err := reporter.Register(regCtx, models.RegisterPayload{
			PersonaCategory: cfg.Persona.Category,
			PersonaName:     cfg.Persona.Name,
			CompanyName:     cfg.Persona.Company,
			ConfigHash:      cfg.Hash(),
		}); err != nil {
			slog.Warn("Hive registration failed, telemetry will catch up in background", "error", err)
		}
		regCancel()
		reporter.Start(ctx)
	}

	// 9. Community feed sync
	var syncer *feed.Syncer
	if cfg.Feed.URL != "" {
		syncer = feed.NewSyncer(feed.NewClient(cfg.Feed.URL), blockSvc, cfg.Feed.ResolveInterval())
		syncer.Start(ctx)
		slog.Info("Community feed sync enabled", "url", cfg.Feed.URL, "interval", cfg.Feed.ResolveInterval())
	}

	// 10. Chat ingress server (non-blocking)
	srv := bot.NewServer(coordinator, sessions.Count)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Chat ingress listening", "addr", cfg.Server.Addr)
		if err := srv.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Chat ingress error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Honeybot agent started successfully")

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. Intake stops first; the reporter drains last
	// so the final batch and the offline heartbeat still reach the hive.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Chat ingress shutdown error", "error", err)
	}
	if syncer != nil {
		syncer.Stop()
	}
	reporter.Stop()

	slog.Info("Shutdown complete")
}
