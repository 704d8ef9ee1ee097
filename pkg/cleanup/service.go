// Package cleanup provides data retention and fleet staleness sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/events"
	"github.com/honeybotlabs/honeybot/pkg/services"
)

// Heartbeats arrive every 30 seconds, so three missed beats degrade a bot
// and ten take it offline.
const (
	statusInterval = 30 * time.Second
	degradedAfter  = 90 * time.Second
	offlineAfter   = 5 * time.Minute
)

// Service periodically enforces retention policies and keeps fleet status
// fresh:
//   - Deletes events past the retention window
//   - Deletes acknowledged alerts past theirs
//   - Closes sessions left open by crashed or disconnected agents
//   - Degrades bots with quiet heartbeats and takes long-silent ones offline
//   - Broadcasts a fleet:status snapshot for dashboards
//
// All passes are idempotent and safe to run from multiple instances.
type Service struct {
	config   *config.HiveConfig
	bots     *services.BotService
	events   *services.EventService
	sessions *services.SessionService
	alerts   *services.AlertService
	stats    *services.StatsService
	hub      services.Broadcaster
	warnings *services.SystemWarningsService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. hub and warnings may be nil.
func NewService(
	cfg *config.HiveConfig,
	bots *services.BotService,
	eventService *services.EventService,
	sessions *services.SessionService,
	alerts *services.AlertService,
	stats *services.StatsService,
	hub services.Broadcaster,
	warnings *services.SystemWarningsService,
) *Service {
	return &Service{
		config:   cfg,
		bots:     bots,
		events:   eventService,
		sessions: sessions,
		alerts:   alerts,
		stats:    stats,
		hub:      hub,
		warnings: warnings,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_retention", s.config.EventRetention,
		"alert_retention", s.config.AlertRetention,
		"session_idle_close", s.config.SessionIdleClose,
		"interval", s.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)
	s.refreshFleetStatus(ctx)

	retention := time.NewTicker(s.config.CleanupInterval)
	defer retention.Stop()
	status := time.NewTicker(statusInterval)
	defer status.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-retention.C:
			s.runAll(ctx)
		case <-status.C:
			s.refreshFleetStatus(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.sweepEvents(ctx)
	s.sweepAlerts(ctx)
	s.closeIdleSessions(ctx)
}

func (s *Service) sweepEvents(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.EventRetention)
	count, err := s.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: event sweep failed", "error", err)
		s.warn("events", "event retention sweep failed", err)
		return
	}
	s.clear("events")
	if count > 0 {
		slog.Info("Retention: deleted old events", "count", count)
	}
}

func (s *Service) sweepAlerts(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.AlertRetention)
	count, err := s.alerts.DeleteAcknowledgedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: alert sweep failed", "error", err)
		s.warn("alerts", "acknowledged alert sweep failed", err)
		return
	}
	s.clear("alerts")
	if count > 0 {
		slog.Info("Retention: deleted acknowledged alerts", "count", count)
	}
}

func (s *Service) closeIdleSessions(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.SessionIdleClose)
	count, err := s.sessions.CloseIdleBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: idle session close failed", "error", err)
		s.warn("sessions", "idle session close failed", err)
		return
	}
	s.clear("sessions")
	if count > 0 {
		slog.Info("Retention: closed idle sessions", "count", count)
	}
}

// refreshFleetStatus runs the heartbeat-staleness sweep and pushes the
// fleet snapshot to subscribers.
func (s *Service) refreshFleetStatus(ctx context.Context) {
	degraded, offline, err := s.bots.MarkStale(ctx, degradedAfter, offlineAfter)
	if err != nil {
		slog.Error("Staleness: heartbeat sweep failed", "error", err)
		s.warn("staleness", "heartbeat staleness sweep failed", err)
	} else {
		s.clear("staleness")
		if degraded > 0 || offline > 0 {
			slog.Info("Staleness: marked quiet bots",
				"degraded", degraded, "offline", offline)
		}
	}

	if s.hub == nil {
		return
	}
	stats, err := s.stats.Overview(ctx, 24*time.Hour)
	if err != nil {
		slog.Error("Fleet status refresh failed", "error", err)
		return
	}
	s.hub.Broadcast(events.EventTypeFleetStatus, stats.Payload())
}

func (s *Service) warn(source, message string, err error) {
	if s.warnings == nil {
		return
	}
	s.warnings.AddWarning(services.WarningCategoryRetention, message, err.Error(), source)
}

func (s *Service) clear(source string) {
	if s.warnings == nil {
		return
	}
	s.warnings.ClearBySourceID(services.WarningCategoryRetention, source)
}
