package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]any{
			"type":     EventTypeEventNew,
			"event_id": "evt-1",
			"bot_id":   "bot-1",
			"level":    "warning",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Equal(t, string(payload), result)
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		score := 87.5
		payload, _ := json.Marshal(map[string]any{
			"type":         EventTypeEventNew,
			"event_id":     "evt-big",
			"bot_id":       "bot-1",
			"session_id":   "sess-1",
			"threat_score": score,
			"metadata":     map[string]any{"dump": strings.Repeat("x", 9000)},
		})
		require.Greater(t, len(payload), 7900)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result), 7900)

		var truncated map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result), &truncated))
		assert.Equal(t, EventTypeEventNew, truncated["type"])
		assert.Equal(t, "evt-big", truncated["event_id"])
		assert.Equal(t, "bot-1", truncated["bot_id"])
		assert.Equal(t, "sess-1", truncated["session_id"])
		assert.Equal(t, score, truncated["threat_score"])
		assert.Equal(t, true, truncated["truncated"])
		assert.NotContains(t, truncated, "metadata")
	})

	t.Run("omits absent routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]any{
			"type":     EventTypeEventNew,
			"event_id": "evt-sparse",
			"bot_id":   "bot-1",
			"metadata": map[string]any{"dump": strings.Repeat("x", 9000)},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		var truncated map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result), &truncated))
		assert.NotContains(t, truncated, "session_id")
		assert.NotContains(t, truncated, "threat_score")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		base := map[string]any{
			"type":     EventTypeEventNew,
			"event_id": "evt-boundary",
			"filler":   "",
		}
		baseJSON, err := json.Marshal(base)
		require.NoError(t, err)

		// Fill to just under the limit, leaving a small safety margin
		// for the quoting overhead.
		base["filler"] = strings.Repeat("x", 7900-len(baseJSON)-20)
		payload, err := json.Marshal(base)
		require.NoError(t, err)
		require.LessOrEqual(t, len(payload), 7900)

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Equal(t, string(payload), result)
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})

	t.Run("oversized non-JSON returns error", func(t *testing.T) {
		_, err := truncateIfNeeded(strings.Repeat("x", 8000))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "routing fields")
	})
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("defaults to the shared channel", func(t *testing.T) {
		publisher := NewEventPublisher(nil, "")
		require.NotNil(t, publisher)
		assert.Nil(t, publisher.db)
		assert.Equal(t, NotifyChannel, publisher.channel)
	})

	t.Run("keeps a custom channel", func(t *testing.T) {
		publisher := NewEventPublisher(nil, "honeybot:test")
		assert.Equal(t, "honeybot:test", publisher.channel)
	})
}
