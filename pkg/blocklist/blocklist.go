// Package blocklist tracks blocked users in memory, persisted as a single
// blob through a kv.Store. Entries come from local blocking decisions and
// from community imports keyed by anonymized hashes.
package blocklist

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/kv"
)

const (
	// DefaultKey is the blob key the list persists under.
	DefaultKey = "honeybot:blocklist"

	// defaultBlockHours applies when block_duration is absent or does not
	// parse as hours or "permanent".
	defaultBlockHours = 24
)

// Entry sources.
const (
	SourceLocal     = "local"
	SourceCommunity = "community"
)

// Entry is one blocked user. Map keys are user ids for local blocks and
// anonymized hashes for community imports.
type Entry struct {
	Reason    string     `json:"reason,omitempty"`
	Source    string     `json:"source,omitempty"`
	Score     float64    `json:"score,omitempty"`
	BlockedAt time.Time  `json:"blocked_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (e Entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && e.ExpiresAt.Before(now)
}

// AddData carries the parameters of a block decision.
type AddData struct {
	Reason string
	// BlockDuration is integer hours or "permanent".
	BlockDuration string
	Score         float64
}

// SharedEntry is the anonymized shape used for community exchange.
type SharedEntry struct {
	Hash      string     `json:"hash"`
	Reason    string     `json:"reason,omitempty"`
	BlockedAt time.Time  `json:"blocked_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Service is the blocklist. All map access and the persisted blob's
// read-modify-write happen under one mutex.
type Service struct {
	store  kv.Store
	key    string
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]Entry
}

// NewService loads the persisted blocklist from the store. A missing blob
// starts an empty list; a corrupt blob is logged and discarded rather than
// failing startup.
func NewService(ctx context.Context, store kv.Store) (*Service, error) {
	s := &Service{
		store:   store,
		key:     DefaultKey,
		logger:  slog.Default().With("component", "blocklist"),
		now:     time.Now,
		entries: make(map[string]Entry),
	}

	blob, err := store.Get(ctx, s.key)
	if err != nil {
		if err == kv.ErrNotFound {
			return s, nil
		}
		return nil, fmt.Errorf("failed to load blocklist: %w", err)
	}
	if err := json.Unmarshal(blob, &s.entries); err != nil {
		s.logger.Warn("Discarding unreadable blocklist blob", "error", err)
		s.entries = make(map[string]Entry)
	}
	return s, nil
}

// IsBlocked reports whether the user is currently blocked, checking both
// the raw user id and its community hash. Expired entries are removed on
// the way through.
func (s *Service) IsBlocked(ctx context.Context, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	blocked := false
	dirty := false
	for _, key := range []string{userID, AnonymizeUserID(userID)} {
		entry, ok := s.entries[key]
		if !ok {
			continue
		}
		if entry.expired(now) {
			delete(s.entries, key)
			dirty = true
			continue
		}
		blocked = true
	}
	if dirty {
		if err := s.persistLocked(ctx); err != nil {
			s.logger.Warn("Failed to persist blocklist after lazy expiry", "error", err)
		}
	}
	return blocked
}

// Add blocks a user and persists the list.
func (s *Service) Add(ctx context.Context, userID string, data AddData) error {
	now := s.now()
	entry := Entry{
		Reason:    data.Reason,
		Source:    SourceLocal,
		Score:     data.Score,
		BlockedAt: now,
	}

	duration := strings.ToLower(strings.TrimSpace(data.BlockDuration))
	if duration != "permanent" {
		hours, err := strconv.Atoi(duration)
		if err != nil || hours <= 0 {
			hours = defaultBlockHours
		}
		expires := now.Add(time.Duration(hours) * time.Hour)
		entry.ExpiresAt = &expires
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = entry
	return s.persistLocked(ctx)
}

// Remove unblocks a user and persists the list.
func (s *Service) Remove(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return s.persistLocked(ctx)
}

// Cleanup sweeps every expired entry and returns how many were removed.
func (s *Service) Cleanup(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, key)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persistLocked(ctx)
}

// ImportCommunity merges hash-keyed entries from a community feed. Existing
// entries are never overwritten; local knowledge wins. Returns how many
// entries were added.
func (s *Service) ImportCommunity(ctx context.Context, entries []SharedEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	added := 0
	for _, in := range entries {
		if in.Hash == "" {
			continue
		}
		if _, exists := s.entries[in.Hash]; exists {
			continue
		}
		entry := Entry{
			Reason:    in.Reason,
			Source:    SourceCommunity,
			BlockedAt: in.BlockedAt,
			ExpiresAt: in.ExpiresAt,
		}
		if entry.BlockedAt.IsZero() {
			entry.BlockedAt = now
		}
		if entry.expired(now) {
			continue
		}
		s.entries[in.Hash] = entry
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, s.persistLocked(ctx)
}

// ExportAnonymized returns the local, unexpired entries with user ids
// replaced by their sharing hashes. Community entries are not re-exported.
func (s *Service) ExportAnonymized() []SharedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]SharedEntry, 0, len(s.entries))
	for userID, entry := range s.entries {
		if entry.Source == SourceCommunity || entry.expired(now) {
			continue
		}
		out = append(out, SharedEntry{
			Hash:      AnonymizeUserID(userID),
			Reason:    entry.Reason,
			BlockedAt: entry.BlockedAt,
			ExpiresAt: entry.ExpiresAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hash < out[j].Hash })
	return out
}

// Count returns the number of unexpired entries.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for _, entry := range s.entries {
		if !entry.expired(now) {
			n++
		}
	}
	return n
}

func (s *Service) persistLocked(ctx context.Context) error {
	blob, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal blocklist: %w", err)
	}
	if err := s.store.Set(ctx, s.key, blob); err != nil {
		return fmt.Errorf("failed to persist blocklist: %w", err)
	}
	return nil
}

// AnonymizeUserID derives the stable sharing hash for a user id. It is a
// correlation key, not a secret, so a fast non-cryptographic hash is fine.
func AnonymizeUserID(userID string) string {
	h := fnv.New64a()
	h.Write([]byte(userID))
	return fmt.Sprintf("%016x", h.Sum64())
}
