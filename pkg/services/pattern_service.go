package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/ent/novelpattern"
	"github.com/honeybotlabs/honeybot/pkg/models"
)

// PatternService tracks novel attack templates across the fleet, keyed by
// the hash of their normalized text.
type PatternService struct {
	client *ent.Client
}

// NewPatternService creates a new PatternService.
func NewPatternService(client *ent.Client) *PatternService {
	return &PatternService{client: client}
}

// Upsert records a sighting of a pattern. The first sighting stores the
// text and the reporting context; later sightings only bump the counter
// and the last-seen timestamp, atomically, so concurrent reports from
// multiple bots never lose increments.
func (s *PatternService) Upsert(httpCtx context.Context, in models.NovelPatternIn, source map[string]any) (*ent.NovelPattern, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, NewValidationError("text", "required")
	}
	attackType := strings.TrimSpace(in.AttackType)
	if attackType == "" {
		attackType = "unknown"
	}

	hash := PatternHash(text)
	now := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.NovelPattern.Create().
		SetID(hash).
		SetPatternText(text).
		SetAttackType(attackType).
		SetOccurrenceCount(1).
		SetFirstSeenAt(now).
		SetLastSeenAt(now)
	if source != nil {
		builder.SetSampleContexts([]map[string]interface{}{source})
	}

	err := builder.
		OnConflictColumns(novelpattern.FieldID).
		Update(func(u *ent.NovelPatternUpsert) {
			u.AddOccurrenceCount(1)
			u.SetLastSeenAt(now)
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert pattern: %w", err)
	}

	pattern, err := s.client.NovelPattern.Get(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upserted pattern: %w", err)
	}

	return pattern, nil
}

// Top returns the most frequently sighted patterns, ties broken by
// recency.
func (s *PatternService) Top(ctx context.Context, limit int) ([]*ent.NovelPattern, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	patterns, err := s.client.NovelPattern.Query().
		Order(ent.Desc(novelpattern.FieldOccurrenceCount), ent.Desc(novelpattern.FieldLastSeenAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	return patterns, nil
}

// Get retrieves one pattern by its hash.
func (s *PatternService) Get(ctx context.Context, hash string) (*ent.NovelPattern, error) {
	pattern, err := s.client.NovelPattern.Get(ctx, hash)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}
	return pattern, nil
}

// PatternHash derives the dedup key for a pattern: sha256 over the
// lowercased, trimmed text, hex-encoded.
func PatternHash(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
