package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the behavior both implementations must share.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "blocklist", []byte(`{"user-1":{}}`)))
	got, err := s.Get(ctx, "blocklist")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"user-1":{}}`), got)

	// Overwrite replaces the previous value.
	require.NoError(t, s.Set(ctx, "blocklist", []byte(`{}`)))
	got, err = s.Get(ctx, "blocklist")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), got)

	require.NoError(t, s.Delete(ctx, "blocklist"))
	_, err = s.Get(ctx, "blocklist")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete(ctx, "blocklist"))
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStore(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer s.Close()

	storeContract(t, s)
}

func TestRedisStoreUnreachable(t *testing.T) {
	_, err := NewRedisStore("127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
