package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/alert"
	"github.com/honeybotlabs/honeybot/ent/event"
)

// AlertService manages operator-facing alert rows derived from warning
// and critical events.
type AlertService struct {
	client *ent.Client
	hub    Broadcaster
	bus    EventBus
}

// NewAlertService creates a new AlertService. hub and bus may be nil.
func NewAlertService(client *ent.Client, hub Broadcaster, bus EventBus) *AlertService {
	if client == nil {
		panic("NewAlertService: client must not be nil")
	}
	return &AlertService{client: client, hub: hub, bus: bus}
}

// CreateFromEvent derives an alert row from an already persisted event
// and announces it on the hub.
func (s *AlertService) CreateFromEvent(httpCtx context.Context, evt *ent.Event) (*ent.Alert, error) {
	if evt == nil {
		return nil, NewValidationError("event", "required")
	}
	if evt.Level != event.LevelWarning && evt.Level != event.LevelCritical {
		return nil, NewValidationError("level", "alerts derive only from warning or critical events")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Alert.Create().
		SetID(uuid.New().String()).
		SetLevel(alert.Level(evt.Level)).
		SetTitle(alertTitle(evt)).
		SetSummary(alertSummary(evt)).
		SetBotID(evt.BotID).
		SetEventID(evt.ID).
		SetCreatedAt(time.Now())
	if evt.SessionID != "" {
		builder.SetSessionID(evt.SessionID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	payload := map[string]any{
		"alert_id": row.ID,
		"level":    string(row.Level),
		"title":    row.Title,
		"summary":  row.Summary,
		"bot_id":   row.BotID,
		"event_id": row.EventID,
	}
	if row.SessionID != "" {
		payload["session_id"] = row.SessionID
	}
	if evt.ThreatScore != nil {
		payload["threat_score"] = *evt.ThreatScore
	}

	if s.hub != nil {
		s.hub.Broadcast("alert:new", payload)
	}
	if s.bus != nil {
		// Peer instances re-broadcast from the envelope type.
		envelope := make(map[string]any, len(payload)+1)
		for k, v := range payload {
			envelope[k] = v
		}
		envelope["type"] = "alert:new"

		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		if err := s.bus.PublishEvent(pubCtx, envelope); err != nil {
			slog.Error("Alert publish failed", "alert_id", row.ID, "error", err)
		}
	}

	return row, nil
}

// List returns alerts newest-first, optionally filtered by level and
// acknowledgement state, plus the unpaginated total.
func (s *AlertService) List(ctx context.Context, level string, acknowledged *bool, limit, offset int) ([]*ent.Alert, int, error) {
	if level != "" && level != string(alert.LevelWarning) && level != string(alert.LevelCritical) {
		return nil, 0, NewValidationError("level", fmt.Sprintf("unknown alert level %q", level))
	}

	query := s.client.Alert.Query()
	if level != "" {
		query = query.Where(alert.LevelEQ(alert.Level(level)))
	}
	if acknowledged != nil {
		query = query.Where(alert.AcknowledgedEQ(*acknowledged))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	alerts, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(alert.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alerts: %w", err)
	}

	return alerts, totalCount, nil
}

// Acknowledge marks an alert as handled by an operator.
func (s *AlertService) Acknowledge(httpCtx context.Context, alertID string) (*ent.Alert, error) {
	if alertID == "" {
		return nil, NewValidationError("alert_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.Alert.UpdateOneID(alertID).
		SetAcknowledged(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	return row, nil
}

// DeleteAcknowledgedBefore removes acknowledged alerts past the retention
// cutoff.
func (s *AlertService) DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Alert.Delete().
		Where(alert.AcknowledgedEQ(true), alert.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete acknowledged alerts: %w", err)
	}

	return count, nil
}

func alertTitle(evt *ent.Event) string {
	switch evt.EventType {
	case event.EventTypeUserBlocked:
		return "User blocked"
	case event.EventTypeHoneypotActivated:
		return "Honeypot engaged"
	case event.EventTypeDetection:
		return "Injection attempt detected"
	case event.EventTypeAlert:
		return "Agent alert"
	default:
		return "Suspicious activity"
	}
}

func alertSummary(evt *ent.Event) string {
	summary := fmt.Sprintf("Bot %s reported a %s event", evt.BotID, evt.EventType)
	if evt.UserID != "" {
		summary += fmt.Sprintf(" for user %s", evt.UserID)
	}
	if evt.ThreatScore != nil {
		summary += fmt.Sprintf(" (threat score %.1f)", *evt.ThreatScore)
	}
	if len(evt.DetectionTypes) > 0 {
		summary += fmt.Sprintf(", detections: %v", evt.DetectionTypes)
	}
	return summary
}
