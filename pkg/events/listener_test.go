package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&stubRoomHistory{}, 5*time.Second)

	t.Run("defaults to the shared channel", func(t *testing.T) {
		listener := NewNotifyListener("host=localhost dbname=test", "", manager, nil)

		assert.NotNil(t, listener)
		assert.Equal(t, "host=localhost dbname=test", listener.connString)
		assert.Equal(t, NotifyChannel, listener.channel)
		assert.Equal(t, manager, listener.manager)
		assert.False(t, listener.Listening())
	})

	t.Run("keeps a custom channel", func(t *testing.T) {
		listener := NewNotifyListener("host=localhost dbname=test", "honeybot:test", manager, nil)
		assert.Equal(t, "honeybot:test", listener.channel)
	})
}

func TestNotifyListener_Dispatch(t *testing.T) {
	manager := NewConnectionManager(&stubRoomHistory{}, 5*time.Second)
	listener := NewNotifyListener("host=localhost dbname=test", "", manager, nil)

	// A stream subscriber observes what the dispatch fans out.
	_, frames, stop := manager.Subscribe()
	defer stop()

	readFrame := func() map[string]interface{} {
		t.Helper()
		select {
		case data := <-frames:
			var msg map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &msg))
			return msg
		case <-time.After(time.Second):
			t.Fatal("dispatch did not reach the hub")
			return nil
		}
	}

	t.Run("routes payload by its type field", func(t *testing.T) {
		listener.dispatch(`{"type":"alert:new","alert_id":"al-1"}`)

		msg := readFrame()
		assert.Equal(t, EventTypeAlertNew, msg["type"])
		assert.Equal(t, "al-1", msg["alert_id"])
		assert.Contains(t, msg, "_timestamp")
	})

	t.Run("defaults missing type to event:new", func(t *testing.T) {
		listener.dispatch(`{"event_id":"evt-untyped"}`)

		msg := readFrame()
		assert.Equal(t, EventTypeEventNew, msg["type"])
		assert.Equal(t, "evt-untyped", msg["event_id"])
	})

	t.Run("ignores malformed payloads", func(t *testing.T) {
		assert.NotPanics(t, func() {
			listener.dispatch("not json")
			listener.dispatch("")
		})

		select {
		case data := <-frames:
			t.Fatalf("unexpected frame from malformed payload: %s", data)
		case <-time.After(200 * time.Millisecond):
		}
	})
}
