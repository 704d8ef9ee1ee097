package services

import (
	"context"
	"fmt"
	"time"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/event"
	"github.com/honeybotlabs/honeybot/ent/session"
)

// FleetStats is the aggregate snapshot served by the stats endpoint and
// pushed periodically as fleet:status.
type FleetStats struct {
	Bots                 map[string]int `json:"bots"`
	ActiveSessions       int            `json:"active_sessions"`
	TotalEvents          int            `json:"total_events"`
	EventsByLevel        map[string]int `json:"events_by_level"`
	EventsByType         map[string]int `json:"events_by_type"`
	UnacknowledgedAlerts int            `json:"unacknowledged_alerts"`
	WindowHours          int            `json:"window_hours"`
}

// Payload renders the snapshot for broadcast.
func (f *FleetStats) Payload() map[string]any {
	return map[string]any{
		"bots":                  f.Bots,
		"active_sessions":       f.ActiveSessions,
		"total_events":          f.TotalEvents,
		"events_by_level":       f.EventsByLevel,
		"events_by_type":        f.EventsByType,
		"unacknowledged_alerts": f.UnacknowledgedAlerts,
		"window_hours":          f.WindowHours,
	}
}

// StatsService computes fleet-wide aggregates for dashboards.
type StatsService struct {
	client *ent.Client
	bots   *BotService
}

// NewStatsService creates a new StatsService.
func NewStatsService(client *ent.Client, bots *BotService) *StatsService {
	if client == nil {
		panic("NewStatsService: client must not be nil")
	}
	if bots == nil {
		panic("NewStatsService: bots must not be nil")
	}
	return &StatsService{client: client, bots: bots}
}

// Overview aggregates fleet health over the trailing window. A zero or
// negative window defaults to 24 hours.
func (s *StatsService) Overview(ctx context.Context, window time.Duration) (*FleetStats, error) {
	if window <= 0 {
		window = 24 * time.Hour
	}
	since := time.Now().Add(-window)

	stats := &FleetStats{
		EventsByLevel: make(map[string]int),
		EventsByType:  make(map[string]int),
		WindowHours:   int(window.Hours()),
	}

	botCounts, err := s.bots.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	stats.Bots = botCounts

	active, err := s.client.Session.Query().
		Where(session.EndedAtIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}
	stats.ActiveSessions = active

	total, err := s.client.Event.Query().
		Where(event.CreatedAtGTE(since)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	stats.TotalEvents = total

	var byLevel []struct {
		Level string `json:"level"`
		Count int    `json:"count"`
	}
	err = s.client.Event.Query().
		Where(event.CreatedAtGTE(since)).
		GroupBy(event.FieldLevel).
		Aggregate(ent.Count()).
		Scan(ctx, &byLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to group events by level: %w", err)
	}
	for _, row := range byLevel {
		stats.EventsByLevel[row.Level] = row.Count
	}

	var byType []struct {
		EventType string `json:"event_type"`
		Count     int    `json:"count"`
	}
	err = s.client.Event.Query().
		Where(event.CreatedAtGTE(since)).
		GroupBy(event.FieldEventType).
		Aggregate(ent.Count()).
		Scan(ctx, &byType)
	if err != nil {
		return nil, fmt.Errorf("failed to group events by type: %w", err)
	}
	for _, row := range byType {
		stats.EventsByType[row.EventType] = row.Count
	}

	unacked, err := s.client.Alert.Query().
		Where(alert.AcknowledgedEQ(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count unacknowledged alerts: %w", err)
	}
	stats.UnacknowledgedAlerts = unacked

	return stats, nil
}
