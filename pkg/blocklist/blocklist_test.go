package blocklist

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/kv"
)

func newTestService(t *testing.T) (*Service, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	s, err := NewService(context.Background(), store)
	require.NoError(t, err)
	return s, store
}

func TestAddAndIsBlocked(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		duration    string
		wantExpiry  bool
		wantedHours int
	}{
		{"hours", "2", true, 2},
		{"permanent", "permanent", false, 0},
		{"permanent case insensitive", " Permanent ", false, 0},
		{"unparseable falls back to default", "soon", true, defaultBlockHours},
		{"empty falls back to default", "", true, defaultBlockHours},
		{"negative falls back to default", "-3", true, defaultBlockHours},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(t)
			s.now = func() time.Time { return base }

			require.NoError(t, s.Add(ctx, "user-1", AddData{
				Reason:        "threat score exceeded block threshold",
				BlockDuration: tt.duration,
				Score:         87.5,
			}))

			assert.True(t, s.IsBlocked(ctx, "user-1"))
			assert.False(t, s.IsBlocked(ctx, "user-2"))

			entry := s.entries["user-1"]
			assert.Equal(t, SourceLocal, entry.Source)
			assert.Equal(t, base, entry.BlockedAt)
			if tt.wantExpiry {
				require.NotNil(t, entry.ExpiresAt)
				assert.Equal(t, base.Add(time.Duration(tt.wantedHours)*time.Hour), *entry.ExpiresAt)
			} else {
				assert.Nil(t, entry.ExpiresAt)
			}
		})
	}
}

func TestLazyExpiry(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s, store := newTestService(t)
	s.now = func() time.Time { return base }
	require.NoError(t, s.Add(ctx, "user-1", AddData{BlockDuration: "1"}))
	require.True(t, s.IsBlocked(ctx, "user-1"))

	// Move past the expiry: the check flips and the entry is gone.
	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	assert.False(t, s.IsBlocked(ctx, "user-1"))
	assert.NotContains(t, s.entries, "user-1")

	// The expiry was persisted too.
	reloaded, err := NewService(ctx, store)
	require.NoError(t, err)
	assert.NotContains(t, reloaded.entries, "user-1")
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	require.NoError(t, s.Add(ctx, "user-1", AddData{BlockDuration: "permanent"}))
	require.True(t, s.IsBlocked(ctx, "user-1"))

	require.NoError(t, s.Remove(ctx, "user-1"))
	assert.False(t, s.IsBlocked(ctx, "user-1"))
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s, _ := newTestService(t)
	s.now = func() time.Time { return base }
	require.NoError(t, s.Add(ctx, "expired-1", AddData{BlockDuration: "1"}))
	require.NoError(t, s.Add(ctx, "expired-2", AddData{BlockDuration: "2"}))
	require.NoError(t, s.Add(ctx, "keeper", AddData{BlockDuration: "permanent"}))

	s.now = func() time.Time { return base.Add(3 * time.Hour) }
	removed, err := s.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.IsBlocked(ctx, "keeper"))

	// A second sweep finds nothing.
	removed, err = s.Cleanup(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestImportCommunity(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestService(t)
	s.now = func() time.Time { return base }

	expired := base.Add(-time.Hour)
	added, err := s.ImportCommunity(ctx, []SharedEntry{
		{Hash: AnonymizeUserID("attacker-9"), Reason: "credential harvesting"},
		{Hash: "", Reason: "dropped, no hash"},
		{Hash: "feedfeedfeedfeed", BlockedAt: base, ExpiresAt: &expired},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	// The community hash blocks the matching real user id.
	assert.True(t, s.IsBlocked(ctx, "attacker-9"))
	assert.False(t, s.IsBlocked(ctx, "someone-else"))

	entry := s.entries[AnonymizeUserID("attacker-9")]
	assert.Equal(t, SourceCommunity, entry.Source)
	assert.Equal(t, base, entry.BlockedAt)
}

func TestImportCommunityNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	require.NoError(t, s.Add(ctx, "user-1", AddData{Reason: "local decision", BlockDuration: "permanent"}))

	added, err := s.ImportCommunity(ctx, []SharedEntry{
		{Hash: "user-1", Reason: "community says otherwise"},
	})
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, "local decision", s.entries["user-1"].Reason)
}

func TestExportAnonymized(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestService(t)
	s.now = func() time.Time { return base }

	require.NoError(t, s.Add(ctx, "user-1", AddData{Reason: "injection attempts", BlockDuration: "permanent"}))
	require.NoError(t, s.Add(ctx, "user-2", AddData{BlockDuration: "1"}))
	_, err := s.ImportCommunity(ctx, []SharedEntry{{Hash: "aaaa0000bbbb1111"}})
	require.NoError(t, err)

	// user-2 expires before the export.
	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	shared := s.ExportAnonymized()

	require.Len(t, shared, 1, "expired and community entries are not exported")
	assert.Equal(t, AnonymizeUserID("user-1"), shared[0].Hash)
	assert.Equal(t, "injection attempts", shared[0].Reason)
	assert.NotEqual(t, "user-1", shared[0].Hash)
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	s1, err := NewService(ctx, store)
	require.NoError(t, err)
	require.NoError(t, s1.Add(ctx, "user-1", AddData{Reason: "privilege escalation", BlockDuration: "permanent"}))

	s2, err := NewService(ctx, store)
	require.NoError(t, err)
	assert.True(t, s2.IsBlocked(ctx, "user-1"))
	assert.Equal(t, "privilege escalation", s2.entries["user-1"].Reason)
}

func TestCorruptBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultKey, []byte("not json")))

	s, err := NewService(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, s.Count())
}

func TestServiceOverRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store, err := kv.NewRedisStore(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer store.Close()

	s, err := NewService(ctx, store)
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, "user-1", AddData{BlockDuration: "permanent"}))

	reloaded, err := NewService(ctx, store)
	require.NoError(t, err)
	assert.True(t, reloaded.IsBlocked(ctx, "user-1"))
}

func TestAnonymizeUserID(t *testing.T) {
	h1 := AnonymizeUserID("user-1")
	h2 := AnonymizeUserID("user-1")
	h3 := AnonymizeUserID("user-2")

	assert.Equal(t, h1, h2, "hash must be stable")
	assert.NotEqual(t, h1, h3)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), h1)
}
