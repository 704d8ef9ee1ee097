package services

import (
	"context"
	"fmt"
	"time"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/bot"
	"github.com/honeybotlabs/honeybot/pkg/models"
)

// BotService manages the fleet roster: registrations, heartbeats and the
// staleness sweep.
type BotService struct {
	client *ent.Client
	hub    Broadcaster
}

// NewBotService creates a new BotService. hub may be nil.
func NewBotService(client *ent.Client, hub Broadcaster) *BotService {
	return &BotService{client: client, hub: hub}
}

// Register upserts the bot row for a (re)registering agent and broadcasts
// bot:registered. Registration always flips the bot online.
func (s *BotService) Register(httpCtx context.Context, p models.RegisterPayload) (*ent.Bot, error) {
	if p.BotID == "" {
		return nil, NewValidationError("bot_id", "required")
	}
	category := p.PersonaCategory
	if category == "" {
		category = "unknown"
	}
	name := p.PersonaName
	if name == "" {
		name = p.BotID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Bot.Create().
		SetID(p.BotID).
		SetPersonaCategory(category).
		SetPersonaName(name).
		SetStatus(bot.StatusOnline).
		SetVersion(p.Version).
		SetConfigHash(p.ConfigHash)
	if p.CompanyName != "" {
		builder.SetCompanyName(p.CompanyName)
	}
	if p.Metadata != nil {
		builder.SetMetadata(p.Metadata)
	}

	err := builder.
		OnConflictColumns(bot.FieldID).
		Update(func(u *ent.BotUpsert) {
			u.SetPersonaCategory(category)
			u.SetPersonaName(name)
			u.SetStatus(bot.StatusOnline)
			u.SetVersion(p.Version)
			u.SetConfigHash(p.ConfigHash)
			if p.CompanyName != "" {
				u.SetCompanyName(p.CompanyName)
			}
			if p.Metadata != nil {
				u.SetMetadata(p.Metadata)
			}
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert bot: %w", err)
	}

	row, err := s.client.Bot.Get(ctx, p.BotID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bot after upsert: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast("bot:registered", map[string]any{
			"bot_id":           row.ID,
			"persona_category": row.PersonaCategory,
			"persona_name":     row.PersonaName,
			"status":           string(row.Status),
		})
	}

	return row, nil
}

// Heartbeat records a heartbeat for the bot: status, last_heartbeat and the
// reported runtime figures. Returns ErrNotFound for unregistered bots.
func (s *BotService) Heartbeat(httpCtx context.Context, botID string, p models.HeartbeatPayload) (*ent.Bot, error) {
	if botID == "" {
		return nil, NewValidationError("bot_id", "required")
	}
	if p.Status != "" && !p.Status.Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", p.Status))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.Bot.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load bot: %w", err)
	}

	metadata := existing.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["active_sessions"] = p.ActiveSessions
	metadata["memory_usage"] = p.MemoryUsage

	status := bot.StatusOnline
	if p.Status != "" {
		status = bot.Status(p.Status)
	}

	update := existing.Update().
		SetStatus(status).
		SetLastHeartbeat(time.Now()).
		SetMetadata(metadata)
	if p.Version != "" {
		update.SetVersion(p.Version)
	}

	row, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record heartbeat: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast("bot:heartbeat", map[string]any{
			"bot_id":           row.ID,
			"persona_category": row.PersonaCategory,
			"status":           string(row.Status),
			"active_sessions":  p.ActiveSessions,
		})
	}

	return row, nil
}

// GetBot retrieves one bot by id.
func (s *BotService) GetBot(ctx context.Context, botID string) (*ent.Bot, error) {
	row, err := s.client.Bot.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot: %w", err)
	}
	return row, nil
}

// ListBots lists the fleet roster, optionally narrowed to one status.
func (s *BotService) ListBots(ctx context.Context, status string) ([]*ent.Bot, error) {
	if status != "" && !models.BotStatus(status).Valid() {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	query := s.client.Bot.Query()
	if status != "" {
		query = query.Where(bot.StatusEQ(bot.Status(status)))
	}

	bots, err := query.
		Order(ent.Asc(bot.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bots: %w", err)
	}

	return bots, nil
}

// MarkStale degrades bots whose heartbeat went quiet and takes long-silent
// ones offline. Returns the number of rows each pass touched.
func (s *BotService) MarkStale(ctx context.Context, degradedAfter, offlineAfter time.Duration) (degraded, offline int, err error) {
	now := time.Now()

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	degraded, err = s.client.Bot.Update().
		Where(
			bot.StatusEQ(bot.StatusOnline),
			bot.LastHeartbeatNotNil(),
			bot.LastHeartbeatLT(now.Add(-degradedAfter)),
		).
		SetStatus(bot.StatusDegraded).
		Save(writeCtx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to degrade stale bots: %w", err)
	}

	offline, err = s.client.Bot.Update().
		Where(
			bot.StatusIn(bot.StatusOnline, bot.StatusDegraded),
			bot.LastHeartbeatNotNil(),
			bot.LastHeartbeatLT(now.Add(-offlineAfter)),
		).
		SetStatus(bot.StatusOffline).
		Save(writeCtx)
	if err != nil {
		return degraded, 0, fmt.Errorf("failed to offline stale bots: %w", err)
	}

	return degraded, offline, nil
}

// StatusCounts returns the fleet tally per status.
func (s *BotService) StatusCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Bot.Query().
		GroupBy(bot.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count bots by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
