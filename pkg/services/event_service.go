package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/event"
	"github.com/honeybotlabs/honeybot/pkg/models"
)

// Broadcaster fans processed payloads out to live subscribers.
type Broadcaster interface {
	Broadcast(eventType string, data map[string]any)
}

// EventBus carries processed events to peer hive instances.
type EventBus interface {
	PublishEvent(ctx context.Context, payload map[string]any) error
}

// EventService is the ingest pipeline for agent telemetry: validate,
// derive, persist, then fan out a sanitized copy.
type EventService struct {
	client   *ent.Client
	patterns *PatternService
	alerts   *AlertService
	hub      Broadcaster
	bus      EventBus
	logger   *slog.Logger
}

// NewEventService creates a new EventService. hub and bus may be nil.
func NewEventService(client *ent.Client, patterns *PatternService, alerts *AlertService, hub Broadcaster, bus EventBus) *EventService {
	return &EventService{
		client:   client,
		patterns: patterns,
		alerts:   alerts,
		hub:      hub,
		bus:      bus,
		logger:   slog.Default().With("component", "event_service"),
	}
}

// ProcessEvent runs one event through the full pipeline. Persistence
// failure aborts the request; everything after persistence is best-effort
// and only logged. Duplicate event ids return ErrAlreadyExists so retries
// can converge without re-persisting.
func (s *EventService) ProcessEvent(httpCtx context.Context, botID string, in models.ReportEvent) (*ent.Event, error) {
	if botID == "" {
		return nil, NewValidationError("bot_id", "required")
	}
	if err := validateEvent(in); err != nil {
		return nil, err
	}

	eventID := in.EventID
	if eventID == "" {
		eventID = uuid.New().String()
	}
	eventType := in.EventType
	if eventType == "" {
		eventType = models.EventTypeMessage
	}
	level := in.Level
	if level == "" {
		level = models.LevelInfo
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Event.Create().
		SetID(eventID).
		SetBotID(botID).
		SetEventType(event.EventType(eventType)).
		SetLevel(event.Level(level)).
		SetCreatedAt(time.Now())
	if in.UserID != "" {
		builder.SetUserID(in.UserID)
	}
	if in.SessionID != "" {
		builder.SetSessionID(in.SessionID)
	}
	if in.ThreatScore != nil {
		builder.SetThreatScore(*in.ThreatScore)
	}
	if in.DetectionTypes != nil {
		builder.SetDetectionTypes(in.DetectionTypes)
	}
	if in.MessageContent != "" {
		builder.SetMessageContent(in.MessageContent)
		builder.SetMessageHash(MessageHash(in.MessageContent))
	}
	if in.AnalysisResult != nil {
		builder.SetAnalysisResult(in.AnalysisResult)
	}
	if in.Metadata != nil {
		builder.SetMetadata(in.Metadata)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to persist event: %w", err)
	}

	s.fanOut(evt)

	for _, p := range in.NovelPatterns {
		source := map[string]any{"bot_id": botID}
		if in.UserID != "" {
			source["user_id"] = in.UserID
		}
		if _, err := s.patterns.Upsert(ctx, p, source); err != nil {
			s.logger.Error("Novel pattern upsert failed",
				"event_id", evt.ID, "attack_type", p.AttackType, "error", err)
		}
	}

	if evt.Level == event.LevelWarning || evt.Level == event.LevelCritical {
		if _, err := s.alerts.CreateFromEvent(ctx, evt); err != nil {
			s.logger.Error("Alert derivation failed", "event_id", evt.ID, "error", err)
		}
	}

	return evt, nil
}

// fanOut pushes the sanitized copy onto the local hub and the pub/sub bus.
func (s *EventService) fanOut(evt *ent.Event) {
	payload := SanitizedEventPayload(evt)
	if s.hub != nil {
		s.hub.Broadcast("event:new", payload)
	}
	if s.bus != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.bus.PublishEvent(ctx, payload); err != nil {
			s.logger.Error("Event publish failed", "event_id", evt.ID, "error", err)
		}
	}
}

// ListEvents queries persisted events newest-first. Returns the page and
// the unpaginated total.
func (s *EventService) ListEvents(ctx context.Context, f models.EventFilters) ([]*ent.Event, int, error) {
	if f.EventType != "" && !models.EventType(f.EventType).Valid() {
		return nil, 0, NewValidationError("event_type", fmt.Sprintf("unknown event type %q", f.EventType))
	}
	if f.Level != "" && !models.Level(f.Level).Valid() {
		return nil, 0, NewValidationError("level", fmt.Sprintf("unknown level %q", f.Level))
	}

	query := s.client.Event.Query()
	if f.BotID != "" {
		query = query.Where(event.BotIDEQ(f.BotID))
	}
	if f.UserID != "" {
		query = query.Where(event.UserIDEQ(f.UserID))
	}
	if f.SessionID != "" {
		query = query.Where(event.SessionIDEQ(f.SessionID))
	}
	if f.EventType != "" {
		query = query.Where(event.EventTypeEQ(event.EventType(f.EventType)))
	}
	if f.Level != "" {
		query = query.Where(event.LevelEQ(event.Level(f.Level)))
	}
	if f.DetectionType != "" {
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(event.FieldDetectionTypes, f.DetectionType))
		})
	}
	if f.MinScore != nil {
		query = query.Where(event.ThreatScoreGTE(*f.MinScore))
	}
	if f.From != nil {
		query = query.Where(event.CreatedAtGTE(*f.From))
	}
	if f.To != nil {
		query = query.Where(event.CreatedAtLT(*f.To))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	events, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(event.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}

	return events, totalCount, nil
}

// GetEvent retrieves one event by id.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*ent.Event, error) {
	evt, err := s.client.Event.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return evt, nil
}

// DeleteOlderThan removes events past the retention cutoff.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}

	return count, nil
}

// SanitizedEventPayload renders an event for the broadcast paths. Raw
// message content never leaves the store; only its hash travels.
func SanitizedEventPayload(evt *ent.Event) map[string]any {
	payload := map[string]any{
		"event_id":   evt.ID,
		"bot_id":     evt.BotID,
		"event_type": string(evt.EventType),
		"level":      string(evt.Level),
		"created_at": evt.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if evt.UserID != "" {
		payload["user_id"] = evt.UserID
	}
	if evt.SessionID != "" {
		payload["session_id"] = evt.SessionID
	}
	if evt.ThreatScore != nil {
		payload["threat_score"] = *evt.ThreatScore
	}
	if len(evt.DetectionTypes) > 0 {
		payload["detection_types"] = evt.DetectionTypes
	}
	if evt.MessageHash != "" {
		payload["message_hash"] = evt.MessageHash
	}
	if len(evt.AnalysisResult) > 0 {
		payload["analysis_result"] = evt.AnalysisResult
	}
	if len(evt.Metadata) > 0 {
		payload["metadata"] = evt.Metadata
	}
	return payload
}

// MessageHash is the 64-hex sha256 digest stored alongside stripped
// message content.
func MessageHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func validateEvent(in models.ReportEvent) error {
	if in.EventType != "" && !in.EventType.Valid() {
		return NewValidationError("event_type", fmt.Sprintf("unknown event type %q", in.EventType))
	}
	if in.Level != "" && !in.Level.Valid() {
		return NewValidationError("level", fmt.Sprintf("unknown level %q", in.Level))
	}
	if in.ThreatScore != nil {
		v := *in.ThreatScore
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValidationError("threat_score", "must be a finite number")
		}
		if v < 0 || v > 100 {
			return NewValidationError("threat_score", fmt.Sprintf("must be within [0,100], got %g", v))
		}
	}
	for _, p := range in.NovelPatterns {
		if strings.TrimSpace(p.Text) == "" {
			return NewValidationError("novel_patterns", "pattern text is required")
		}
	}
	return nil
}
