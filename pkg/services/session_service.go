package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/session"
	"github.com/honeybotlabs/honeybot/pkg/models"
)

// SessionService manages conversation session records reported by agents.
type SessionService struct {
	client *ent.Client
	hub    Broadcaster
}

// NewSessionService creates a new SessionService. hub may be nil.
func NewSessionService(client *ent.Client, hub Broadcaster) *SessionService {
	if client == nil {
		panic("NewSessionService: client must not be nil")
	}
	return &SessionService{client: client, hub: hub}
}

// Upsert creates a session if it does not exist yet. Repeated posts for
// the same session id return the stored row unchanged, so agents can
// retry safely. The bool reports whether a row was created.
func (s *SessionService) Upsert(httpCtx context.Context, in models.SessionUpsert) (*ent.Session, bool, error) {
	if in.SessionID == "" {
		return nil, false, NewValidationError("session_id", "required")
	}
	if err := validateSessionFields(in); err != nil {
		return nil, false, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Existing rows win; a repeat post must not clobber recorded state.
	existing, err := s.client.Session.Get(ctx, in.SessionID)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to look up session: %w", err)
	}

	if in.BotID == "" {
		return nil, false, NewValidationError("bot_id", "required")
	}
	if in.UserID == "" {
		return nil, false, NewValidationError("user_id", "required")
	}

	builder := s.client.Session.Create().
		SetID(in.SessionID).
		SetBotID(in.BotID).
		SetUserID(in.UserID)
	if in.StartedAt != nil {
		builder.SetStartedAt(*in.StartedAt)
	}
	if in.EndedAt != nil {
		builder.SetEndedAt(*in.EndedAt)
	}
	if in.FinalMode != "" {
		builder.SetFinalMode(session.FinalMode(in.FinalMode))
	}
	finalScore := 0.0
	if in.FinalScore != nil {
		finalScore = *in.FinalScore
		builder.SetFinalScore(finalScore)
	}
	if in.MaxScore != nil {
		builder.SetMaxScore(math.Max(*in.MaxScore, finalScore))
	} else if finalScore > 0 {
		builder.SetMaxScore(finalScore)
	}
	if in.TotalMessages != nil {
		builder.SetTotalMessages(*in.TotalMessages)
	}
	if in.DetectionCount != nil {
		builder.SetDetectionCount(*in.DetectionCount)
	}
	if in.HoneypotResponses != nil {
		builder.SetHoneypotResponses(*in.HoneypotResponses)
	}
	if in.AttackTypes != nil {
		builder.SetAttackTypes(in.AttackTypes)
	}
	if in.ConversationLog != nil {
		builder.SetConversationLog(in.ConversationLog)
	}
	if in.Metadata != nil {
		builder.SetMetadata(in.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a concurrent post for the same id.
			row, gerr := s.client.Session.Get(ctx, in.SessionID)
			if gerr != nil {
				return nil, false, fmt.Errorf("failed to fetch session after conflict: %w", gerr)
			}
			return row, false, nil
		}
		return nil, false, fmt.Errorf("failed to create session: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast("session:started", map[string]any{
			"session_id": created.ID,
			"bot_id":     created.BotID,
			"user_id":    created.UserID,
			"started_at": created.StartedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	return created, true, nil
}

// Update applies a partial update to an existing session. Absent fields
// keep their stored values; metadata merges recursively instead of being
// replaced. The max score never trails the final score.
func (s *SessionService) Update(httpCtx context.Context, sessionID string, in models.SessionUpsert) (*ent.Session, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if err := validateSessionFields(in); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	upd := tx.Session.UpdateOneID(sessionID)
	if in.BotID != "" {
		upd.SetBotID(in.BotID)
	}
	if in.UserID != "" {
		upd.SetUserID(in.UserID)
	}
	if in.StartedAt != nil {
		upd.SetStartedAt(*in.StartedAt)
	}
	if in.EndedAt != nil {
		upd.SetEndedAt(*in.EndedAt)
	}
	if in.FinalMode != "" {
		upd.SetFinalMode(session.FinalMode(in.FinalMode))
	}
	if in.FinalScore != nil || in.MaxScore != nil {
		finalScore := existing.FinalScore
		if in.FinalScore != nil {
			finalScore = *in.FinalScore
		}
		maxScore := existing.MaxScore
		if in.MaxScore != nil {
			maxScore = *in.MaxScore
		}
		upd.SetFinalScore(finalScore)
		upd.SetMaxScore(math.Max(maxScore, finalScore))
	}
	if in.TotalMessages != nil {
		upd.SetTotalMessages(*in.TotalMessages)
	}
	if in.DetectionCount != nil {
		upd.SetDetectionCount(*in.DetectionCount)
	}
	if in.HoneypotResponses != nil {
		upd.SetHoneypotResponses(*in.HoneypotResponses)
	}
	if in.AttackTypes != nil {
		upd.SetAttackTypes(in.AttackTypes)
	}
	if in.ConversationLog != nil {
		upd.SetConversationLog(in.ConversationLog)
	}
	if in.Metadata != nil {
		upd.SetMetadata(deepMerge(existing.Metadata, in.Metadata))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session update: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast("session:updated", sanitizedSessionPayload(updated))
	}

	return updated, nil
}

// GetSession retrieves one session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// ListSessions queries sessions newest-first. Returns the page and the
// unpaginated total.
func (s *SessionService) ListSessions(ctx context.Context, f models.SessionFilters) ([]*ent.Session, int, error) {
	query := s.client.Session.Query()
	if f.BotID != "" {
		query = query.Where(session.BotIDEQ(f.BotID))
	}
	if f.UserID != "" {
		query = query.Where(session.UserIDEQ(f.UserID))
	}
	if f.ActiveOnly {
		query = query.Where(session.EndedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(session.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, totalCount, nil
}

// Replay returns the session plus its recorded conversation turns, verbatim
// and in reported order.
func (s *SessionService) Replay(ctx context.Context, sessionID string) (*ent.Session, []map[string]interface{}, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	turns := sess.ConversationLog
	if turns == nil {
		turns = []map[string]interface{}{}
	}
	return sess, turns, nil
}

// CloseIdleBefore stamps an end time on open sessions that started before
// the cutoff. Agents normally close their own sessions; this catches rows
// orphaned by crashed or disconnected agents.
func (s *SessionService) CloseIdleBefore(ctx context.Context, cutoff time.Time) (int, error) {
	// Use background context with timeout
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Session.Update().
		Where(session.EndedAtIsNil(), session.StartedAtLT(cutoff)).
		SetEndedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to close idle sessions: %w", err)
	}

	return count, nil
}

// ActiveCount returns the number of sessions without an end time.
func (s *SessionService) ActiveCount(ctx context.Context) (int, error) {
	count, err := s.client.Session.Query().
		Where(session.EndedAtIsNil()).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return count, nil
}

// sanitizedSessionPayload renders a session for broadcast. The raw
// conversation log stays in the store.
func sanitizedSessionPayload(sess *ent.Session) map[string]any {
	payload := map[string]any{
		"session_id":         sess.ID,
		"bot_id":             sess.BotID,
		"user_id":            sess.UserID,
		"started_at":         sess.StartedAt.UTC().Format(time.RFC3339Nano),
		"final_mode":         string(sess.FinalMode),
		"final_score":        sess.FinalScore,
		"max_score":          sess.MaxScore,
		"total_messages":     sess.TotalMessages,
		"detection_count":    sess.DetectionCount,
		"honeypot_responses": sess.HoneypotResponses,
	}
	if sess.EndedAt != nil {
		payload["ended_at"] = sess.EndedAt.UTC().Format(time.RFC3339Nano)
	}
	if len(sess.AttackTypes) > 0 {
		payload["attack_types"] = sess.AttackTypes
	}
	return payload
}

// deepMerge unions src into dst recursively. Nested maps merge key by
// key; any other value in src replaces the one in dst.
func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, len(src))
	}
	for k, v := range src {
		if srcMap, ok := v.(map[string]interface{}); ok {
			if dstMap, ok := dst[k].(map[string]interface{}); ok {
				dst[k] = deepMerge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}

func validateSessionFields(in models.SessionUpsert) error {
	if in.FinalMode != "" && !in.FinalMode.Valid() {
		return NewValidationError("final_mode", fmt.Sprintf("unknown mode %q", in.FinalMode))
	}
	scores := []struct {
		name  string
		value *float64
	}{
		{"final_score", in.FinalScore},
		{"max_score", in.MaxScore},
	}
	for _, check := range scores {
		if check.value == nil {
			continue
		}
		v := *check.value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValidationError(check.name, "must be a finite number")
		}
		if v < 0 || v > 100 {
			return NewValidationError(check.name, fmt.Sprintf("must be within [0,100], got %g", v))
		}
	}
	counts := []struct {
		name  string
		value *int
	}{
		{"total_messages", in.TotalMessages},
		{"detection_count", in.DetectionCount},
		{"honeypot_responses", in.HoneypotResponses},
	}
	for _, check := range counts {
		if check.value != nil && *check.value < 0 {
			return NewValidationError(check.name, "must not be negative")
		}
	}
	return nil
}
