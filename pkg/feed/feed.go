// Package feed pulls the community blocklist feed over HTTP and merges it
// into the local blocklist. Fetches are TTL-cached and use conditional
// requests so a quiet feed costs almost nothing.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/blocklist"
)

const (
	defaultTTL   = 15 * time.Minute
	fetchTimeout = 10 * time.Second
)

// Client fetches the community feed: a JSON array of anonymized entries.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger

	mu        sync.Mutex
	cached    []blocklist.SharedEntry
	fetchedAt time.Time
	etag      string
	ttl       time.Duration
}

// NewClient creates a feed client for the given URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: fetchTimeout},
		logger:     slog.Default().With("component", "feed"),
		ttl:        defaultTTL,
	}
}

// Fetch returns the current community entries. Within the TTL the cached
// copy answers without a request; after that a conditional request runs and
// a 304 just refreshes the cache timestamp.
func (c *Client) Fetch(ctx context.Context) ([]blocklist.SharedEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < c.ttl {
		return copyEntries(c.cached), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	if c.etag != "" {
		req.Header.Set("If-None-Match", c.etag)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		c.fetchedAt = time.Now()
		return copyEntries(c.cached), nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	var entries []blocklist.SharedEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	c.cached = entries
	c.fetchedAt = time.Now()
	c.etag = resp.Header.Get("ETag")
	return copyEntries(entries), nil
}

func copyEntries(entries []blocklist.SharedEntry) []blocklist.SharedEntry {
	out := make([]blocklist.SharedEntry, len(entries))
	copy(out, entries)
	return out
}

// Importer is the blocklist surface the syncer merges into.
type Importer interface {
	ImportCommunity(ctx context.Context, entries []blocklist.SharedEntry) (int, error)
}

// Syncer periodically fetches the feed and imports new entries.
type Syncer struct {
	client   *Client
	dest     Importer
	interval time.Duration
	logger   *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSyncer creates a syncer that merges the feed into dest every interval.
func NewSyncer(client *Client, dest Importer, interval time.Duration) *Syncer {
	return &Syncer{
		client:   client,
		dest:     dest,
		interval: interval,
		logger:   slog.Default().With("component", "feed"),
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sync loop in a goroutine. The first sync runs
// immediately.
func (s *Syncer) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop signals the loop to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (s *Syncer) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Syncer) run(ctx context.Context) {
	defer s.wg.Done()

	s.syncOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncOnce(ctx)
		}
	}
}

func (s *Syncer) syncOnce(ctx context.Context) {
	entries, err := s.client.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Community feed sync failed", "error", err)
		return
	}
	added, err := s.dest.ImportCommunity(ctx, entries)
	if err != nil {
		s.logger.Warn("Community feed import failed", "error", err)
		return
	}
	if added > 0 {
		s.logger.Info("Community blocklist updated", "added", added, "feed_entries", len(entries))
	}
}
