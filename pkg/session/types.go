package session

import (
	"sort"
	"sync"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/detect"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/score"
)

// Ring capacities. Totals keep counting after the rings start dropping
// their oldest entries.
const (
	maxMessages          = 100
	maxDetectionHistory  = 200
	maxHoneypotResponses = 20
	recentWindow         = 10
)

// DetectionRecord is one finding kept in the session's detection history.
type DetectionRecord struct {
	Time       time.Time `json:"time"`
	Type       string    `json:"type"`
	Confidence float64   `json:"confidence"`
	Patterns   []string  `json:"patterns,omitempty"`
}

// Transition describes a mode change produced by one turn.
type Transition struct {
	From            models.Mode
	To              models.Mode
	EnteredHoneypot bool
	EnteredBlocked  bool
}

// Session tracks one user's conversation state
type Session struct {
	SessionID string      `json:"session_id"`
	UserID    string      `json:"user_id"`
	Mode      models.Mode `json:"mode"`
	Score     float64     `json:"score"`
	MaxScore  float64     `json:"max_score"`

	Messages          []models.ConversationTurn `json:"messages"`
	DetectionHistory  []DetectionRecord         `json:"detection_history"`
	HoneypotResponses []string                  `json:"honeypot_responses"`

	TotalMessages  int  `json:"total_messages"`
	DetectionCount int  `json:"detection_count"`
	HoneypotTurns  int  `json:"honeypot_turns"`
	AlertSent      bool `json:"alert_sent"`

	StartedAt     time.Time `json:"started_at"`
	LastMessageAt time.Time `json:"last_message_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	recentTimes []time.Time
	attackTypes map[string]bool
	mu          sync.RWMutex
}

// BeginTurn records an incoming user message and returns the scoring view
// for it (thread-safe). The view's LastMessageAt is the previous turn's
// arrival so decay covers the idle gap, while RecentTimes already includes
// the current arrival.
func (s *Session) BeginTurn(content string, now time.Time) score.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := score.View{
		Score:         s.Score,
		LastMessageAt: s.LastMessageAt,
		PriorTypes:    s.attackTypesLocked(),
	}

	s.recentTimes = append(s.recentTimes, now)
	if len(s.recentTimes) > recentWindow {
		s.recentTimes = s.recentTimes[len(s.recentTimes)-recentWindow:]
	}
	view.RecentTimes = make([]time.Time, len(s.recentTimes))
	copy(view.RecentTimes, s.recentTimes)

	s.Messages = append(s.Messages, models.ConversationTurn{
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: now,
		Mode:      s.Mode,
	})
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}

	s.TotalMessages++
	s.LastMessageAt = now
	s.UpdatedAt = now

	return view
}

// CompleteTurn folds the turn's findings and score into the session and
// moves the mode to the band the new score demands (thread-safe). Blocked
// is terminal: once entered the session never leaves it.
func (s *Session) CompleteTurn(findings []detect.Finding, result score.Result, th score.Thresholds, now time.Time) Transition {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range findings {
		s.DetectionHistory = append(s.DetectionHistory, DetectionRecord{
			Time:       now,
			Type:       f.Type,
			Confidence: f.Confidence,
			Patterns:   f.Patterns,
		})
		s.attackTypes[f.Type] = true
	}
	if len(s.DetectionHistory) > maxDetectionHistory {
		s.DetectionHistory = s.DetectionHistory[len(s.DetectionHistory)-maxDetectionHistory:]
	}
	s.DetectionCount += len(findings)

	s.Score = result.Score
	if s.Score > s.MaxScore {
		s.MaxScore = s.Score
	}

	// Annotate the user turn that triggered this evaluation.
	if n := len(s.Messages); n > 0 && s.Messages[n-1].Role == models.RoleUser {
		turn := &s.Messages[n-1]
		turn.ThreatScore = result.Score
		for _, f := range findings {
			turn.Detections = append(turn.Detections, f.Type)
		}
	}

	tr := Transition{From: s.Mode}
	if s.Mode == models.ModeBlocked {
		tr.To = models.ModeBlocked
		return tr
	}

	next := th.ModeFor(s.Score)
	tr.To = next
	tr.EnteredHoneypot = next == models.ModeHoneypot && s.Mode != models.ModeHoneypot
	tr.EnteredBlocked = next == models.ModeBlocked
	s.Mode = next
	s.UpdatedAt = now

	return tr
}

// RecordReply appends the bot's reply to the conversation (thread-safe).
// Honeypot replies also feed the response ring and the turn counter.
func (s *Session) RecordReply(content string, honeypot bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Messages = append(s.Messages, models.ConversationTurn{
		Role:       models.RoleAssistant,
		Content:    content,
		Timestamp:  time.Now(),
		Mode:       s.Mode,
		IsHoneypot: honeypot,
	})
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}

	if honeypot {
		s.HoneypotResponses = append(s.HoneypotResponses, content)
		if len(s.HoneypotResponses) > maxHoneypotResponses {
			s.HoneypotResponses = s.HoneypotResponses[len(s.HoneypotResponses)-maxHoneypotResponses:]
		}
		s.HoneypotTurns++
	}
	s.UpdatedAt = time.Now()
}

// MarkAlertSent flips the once-per-session alert latch. It returns true
// only for the caller that actually flipped it (thread-safe).
func (s *Session) MarkAlertSent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.AlertSent {
		return false
	}
	s.AlertSent = true
	return true
}

// CurrentMode returns the session mode (thread-safe).
func (s *Session) CurrentMode() models.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Mode
}

// HoneypotTurnCount returns how many honeypot replies have been sent
// (thread-safe).
func (s *Session) HoneypotTurnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HoneypotTurns
}

// RecentHoneypotReplies returns up to the last n honeypot replies
// (thread-safe).
func (s *Session) RecentHoneypotReplies(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.HoneypotResponses) {
		n = len(s.HoneypotResponses)
	}
	out := make([]string, n)
	copy(out, s.HoneypotResponses[len(s.HoneypotResponses)-n:])
	return out
}

// AttackTypes returns the distinct detection types seen this session,
// sorted (thread-safe).
func (s *Session) AttackTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attackTypesLocked()
}

func (s *Session) attackTypesLocked() []string {
	types := make([]string, 0, len(s.attackTypes))
	for t := range s.attackTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Clone creates a safe copy of the session for reading
func (s *Session) Clone() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.ConversationTurn, len(s.Messages))
	copy(messages, s.Messages)
	history := make([]DetectionRecord, len(s.DetectionHistory))
	copy(history, s.DetectionHistory)
	responses := make([]string, len(s.HoneypotResponses))
	copy(responses, s.HoneypotResponses)

	return Session{
		SessionID:         s.SessionID,
		UserID:            s.UserID,
		Mode:              s.Mode,
		Score:             s.Score,
		MaxScore:          s.MaxScore,
		Messages:          messages,
		DetectionHistory:  history,
		HoneypotResponses: responses,
		TotalMessages:     s.TotalMessages,
		DetectionCount:    s.DetectionCount,
		HoneypotTurns:     s.HoneypotTurns,
		AlertSent:         s.AlertSent,
		StartedAt:         s.StartedAt,
		LastMessageAt:     s.LastMessageAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
