package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/blocklist"
)

func feedServer(t *testing.T, entries []blocklist.SharedEntry, etag string, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if etag != "" && r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		if etag != "" {
			w.Header().Set("ETag", etag)
		}
		require.NoError(t, json.NewEncoder(w).Encode(entries))
	}))
}

func TestFetchCachesWithinTTL(t *testing.T) {
	hits := 0
	srv := feedServer(t, []blocklist.SharedEntry{{Hash: "abc123"}}, "", &hits)
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	first, err := c.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "abc123", first[0].Hash)

	second, err := c.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits, "second fetch inside the TTL must not hit the network")
}

func TestFetchConditionalRequest(t *testing.T) {
	hits := 0
	srv := feedServer(t, []blocklist.SharedEntry{{Hash: "abc123"}}, `"v1"`, &hits)
	defer srv.Close()

	c := NewClient(srv.URL)
	c.ttl = 0 // every fetch goes to the network
	ctx := context.Background()

	_, err := c.Fetch(ctx)
	require.NoError(t, err)

	// The second round trips with If-None-Match and gets a 304; the
	// cached entries still come back.
	got, err := c.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "abc123", got[0].Hash)
	assert.Equal(t, 2, hits)
}

func TestFetchErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Fetch(context.Background())
		assert.ErrorContains(t, err, "status 500")
	})

	t.Run("bad json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, err := NewClient(srv.URL).Fetch(context.Background())
		assert.ErrorContains(t, err, "decode")
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := NewClient("http://127.0.0.1:1").Fetch(context.Background())
		assert.Error(t, err)
	})
}

type fakeImporter struct {
	mu      sync.Mutex
	batches [][]blocklist.SharedEntry
}

func (f *fakeImporter) ImportCommunity(_ context.Context, entries []blocklist.SharedEntry) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, entries)
	return len(entries), nil
}

func (f *fakeImporter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

func TestSyncerImportsOnStart(t *testing.T) {
	hits := 0
	srv := feedServer(t, []blocklist.SharedEntry{{Hash: "abc123"}, {Hash: "def456"}}, "", &hits)
	defer srv.Close()

	imp := &fakeImporter{}
	s := NewSyncer(NewClient(srv.URL), imp, time.Hour)
	s.Start(context.Background())
	defer s.Stop()

	require.Eventually(t, func() bool { return imp.count() >= 1 }, time.Second, 10*time.Millisecond)

	imp.mu.Lock()
	defer imp.mu.Unlock()
	require.Len(t, imp.batches[0], 2)
	assert.Equal(t, "abc123", imp.batches[0][0].Hash)
}

func TestSyncerStopIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	s := NewSyncer(NewClient(srv.URL), &fakeImporter{}, time.Hour)
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}
