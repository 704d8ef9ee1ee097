package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBotRoom(t *testing.T) {
	tests := []struct {
		name  string
		botID string
		want  string
	}{
		{
			name:  "formats bot room correctly",
			botID: "abc-123",
			want:  "bot:abc-123",
		},
		{
			name:  "handles UUID format",
			botID: "550e8400-e29b-41d4-a716-446655440000",
			want:  "bot:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "handles empty string",
			botID: "",
			want:  "bot:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BotRoom(tt.botID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryRoom(t *testing.T) {
	assert.Equal(t, "category:crypto_trader", CategoryRoom("crypto_trader"))
	assert.Equal(t, "category:", CategoryRoom(""))
}

func TestThreatRoom(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		want      string
	}{
		{name: "low floor", threshold: 30, want: "threats:30"},
		{name: "mid floor", threshold: 60, want: "threats:60"},
		{name: "high floor", threshold: 80, want: "threats:80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThreatRoom(tt.threshold))
		})
	}
}

func TestParseThreatRoom(t *testing.T) {
	tests := []struct {
		name          string
		room          string
		wantThreshold float64
		wantOK        bool
	}{
		{
			name:          "recognized floor 30",
			room:          "threats:30",
			wantThreshold: 30,
			wantOK:        true,
		},
		{
			name:          "recognized floor 80",
			room:          "threats:80",
			wantThreshold: 80,
			wantOK:        true,
		},
		{
			name:   "unknown floor rejected",
			room:   "threats:50",
			wantOK: false,
		},
		{
			name:   "non-numeric suffix rejected",
			room:   "threats:high",
			wantOK: false,
		},
		{
			name:   "missing prefix rejected",
			room:   "60",
			wantOK: false,
		},
		{
			name:   "empty suffix rejected",
			room:   "threats:",
			wantOK: false,
		},
		{
			name:   "other room kind rejected",
			room:   "bot:abc",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threshold, ok := ParseThreatRoom(tt.room)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantThreshold, threshold)
			}
		})
	}
}

func TestParseThreatRoom_RoundTrip(t *testing.T) {
	// Every advertised floor must survive format-then-parse.
	for _, threshold := range ThreatThresholds {
		parsed, ok := ParseThreatRoom(ThreatRoom(threshold))
		assert.True(t, ok, "floor %v should parse", threshold)
		assert.Equal(t, threshold, parsed)
	}
}

func TestValidRoom(t *testing.T) {
	tests := []struct {
		name string
		room string
		want bool
	}{
		{name: "alerts room", room: "alerts", want: true},
		{name: "bot room", room: "bot:abc-123", want: true},
		{name: "category room", room: "category:crypto_trader", want: true},
		{name: "threat room", room: "threats:60", want: true},
		{name: "bot room without id", room: "bot:", want: false},
		{name: "category room without name", room: "category:", want: false},
		{name: "unknown threat floor", room: "threats:42", want: false},
		{name: "bare word", room: "everything", want: false},
		{name: "empty string", room: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRoom(tt.room))
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeBotRegistered,
		EventTypeBotHeartbeat,
		EventTypeSessionStarted,
		EventTypeSessionUpdated,
		EventTypeEventNew,
		EventTypeAlertNew,
		EventTypeThreat,
		EventTypeFleetStatus,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestNotifyChannel(t *testing.T) {
	assert.Equal(t, "honeybot:events", NotifyChannel)
}
