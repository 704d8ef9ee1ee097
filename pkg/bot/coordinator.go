// Package bot runs the per-message decision loop: detection, scoring, mode
// transitions, reply selection and the side effects they trigger (alerts,
// blocklist writes, central telemetry).
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/honeybotlabs/honeybot/pkg/alert"
	"github.com/honeybotlabs/honeybot/pkg/analyze"
	"github.com/honeybotlabs/honeybot/pkg/blocklist"
	"github.com/honeybotlabs/honeybot/pkg/config"
	"github.com/honeybotlabs/honeybot/pkg/detect"
	"github.com/honeybotlabs/honeybot/pkg/models"
	"github.com/honeybotlabs/honeybot/pkg/report"
	"github.com/honeybotlabs/honeybot/pkg/respond"
	"github.com/honeybotlabs/honeybot/pkg/score"
	"github.com/honeybotlabs/honeybot/pkg/session"
)

// alertConversationTail bounds how many conversation turns ride along on a
// block alert.
const alertConversationTail = 10

// Deps are the coordinator's collaborators. Analyzer and Reporter may be
// nil; both degrade to no-ops.
type Deps struct {
	Pipeline  *detect.Pipeline
	Scorer    *score.Scorer
	Sessions  *session.Manager
	Responder *respond.Responder
	Analyzer  *analyze.Analyzer
	Alerts    *alert.Manager
	Blocklist *blocklist.Service
	Reporter  *report.Reporter
	Persona   config.PersonaConfig
}

// Reply is the outcome of one processed message.
type Reply struct {
	SessionID string      `json:"session_id,omitempty"`
	Reply     string      `json:"reply"`
	Mode      models.Mode `json:"mode"`
	Score     float64     `json:"score"`
}

// Coordinator serializes turns per user and owns the decision loop. Cross
// user turns run concurrently.
type Coordinator struct {
	pipeline  *detect.Pipeline
	scorer    *score.Scorer
	sessions  *session.Manager
	responder *respond.Responder
	analyzer  *analyze.Analyzer
	alerts    *alert.Manager
	blocklist *blocklist.Service
	reporter  *report.Reporter
	persona   string

	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	userMu map[string]*sync.Mutex
}

// NewCoordinator wires the decision loop.
func NewCoordinator(deps Deps) *Coordinator {
	return &Coordinator{
		pipeline:  deps.Pipeline,
		scorer:    deps.Scorer,
		sessions:  deps.Sessions,
		responder: deps.Responder,
		analyzer:  deps.Analyzer,
		alerts:    deps.Alerts,
		blocklist: deps.Blocklist,
		reporter:  deps.Reporter,
		persona:   personaLabel(deps.Persona),
		logger:    slog.Default().With("component", "coordinator"),
		now:       time.Now,
		userMu:    make(map[string]*sync.Mutex),
	}
}

// ProcessMessage runs one user turn end to end and returns the reply to
// send. Turns from the same user are serialized; the caller only needs to
// deliver the reply.
func (c *Coordinator) ProcessMessage(ctx context.Context, userID, message string) (Reply, error) {
	if strings.TrimSpace(userID) == "" {
		return Reply{}, fmt.Errorf("user id is required")
	}

	lock := c.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	// Blocked users get the terminal string before any detector runs or
	// session state moves.
	if c.blocklist.IsBlocked(ctx, userID) {
		rep := Reply{Reply: c.responder.Blocked(), Mode: models.ModeBlocked}
		if s, err := c.sessions.Get(userID); err == nil {
			snap := s.Clone()
			rep.SessionID = snap.SessionID
			rep.Score = snap.Score
		}
		return rep, nil
	}

	sess, created := c.sessions.GetOrCreate(userID)
	if created {
		c.logger.Debug("Session started", "user_id", userID, "session_id", sess.SessionID)
	}

	// A session can outlive its blocklist entry; blocked stays terminal.
	if sess.CurrentMode() == models.ModeBlocked {
		snap := sess.Clone()
		return Reply{
			SessionID: snap.SessionID,
			Reply:     c.responder.Blocked(),
			Mode:      models.ModeBlocked,
			Score:     snap.Score,
		}, nil
	}

	now := c.now()
	view := sess.BeginTurn(message, now)

	findings := c.pipeline.Run(message, view.PriorTypes)

	var analysis *analyze.Result
	if len(findings) > 0 {
		analysis = c.analyzer.Analyze(ctx, message, findings)
		findings = analyze.MergeFindings(findings, analysis)
	}

	result := c.scorer.Score(view, findings, now)
	tr := sess.CompleteTurn(findings, result, c.scorer.Thresholds(), now)

	c.reportMessage(sess.SessionID, userID, message, result, tr.To)
	if len(findings) > 0 {
		c.reportDetection(sess.SessionID, userID, message, findings, result, analysis)
	}
	if tr.EnteredHoneypot {
		c.activateHoneypot(ctx, sess, userID, findings, result)
	}
	if tr.EnteredBlocked {
		c.blockUser(ctx, sess, userID, findings, result)
	}

	reply := c.selectReply(ctx, sess, message, findings, analysis, tr.To)
	sess.RecordReply(reply, tr.To == models.ModeHoneypot)

	return Reply{
		SessionID: sess.SessionID,
		Reply:     reply,
		Mode:      tr.To,
		Score:     result.Score,
	}, nil
}

// SweepIdle drops sessions idle for longer than idleFor along with their
// turn locks and returns how many were removed.
func (c *Coordinator) SweepIdle(idleFor time.Duration) int {
	removed := c.sessions.SweepIdle(idleFor, c.now())

	c.mu.Lock()
	for _, s := range removed {
		delete(c.userMu, s.UserID)
	}
	c.mu.Unlock()

	for _, s := range removed {
		c.logger.Debug("Session expired",
			"user_id", s.UserID,
			"session_id", s.SessionID,
			"max_score", s.MaxScore,
			"total_messages", s.TotalMessages)
	}
	return len(removed)
}

func (c *Coordinator) selectReply(ctx context.Context, sess *session.Session, message string, findings []detect.Finding, analysis *analyze.Result, mode models.Mode) string {
	switch mode {
	case models.ModeBlocked:
		return c.responder.Blocked()
	case models.ModeHoneypot:
		in := respond.Input{
			Message:       message,
			Findings:      findings,
			HoneypotTurns: sess.HoneypotTurnCount(),
			RecentReplies: sess.RecentHoneypotReplies(respond.RecentAvoid),
			Persona:       c.persona,
		}
		if analysis != nil {
			in.Suggested = analysis.SuggestedResponse
		}
		return c.responder.Honeypot(ctx, in)
	default:
		return c.responder.Normal(ctx, respond.Input{Message: message, Persona: c.persona})
	}
}

func (c *Coordinator) reportMessage(sessionID, userID, message string, result score.Result, mode models.Mode) {
	threat := result.Score
	c.reporter.Report(models.ReportEvent{
		EventType:      models.EventTypeMessage,
		Level:          models.LevelInfo,
		UserID:         userID,
		SessionID:      sessionID,
		ThreatScore:    &threat,
		MessageContent: message,
		Metadata:       map[string]any{"mode": string(mode)},
	})
}

func (c *Coordinator) reportDetection(sessionID, userID, message string, findings []detect.Finding, result score.Result, analysis *analyze.Result) {
	threat := result.Score
	event := models.ReportEvent{
		EventType:      models.EventTypeDetection,
		Level:          detectionLevel(result.Level),
		UserID:         userID,
		SessionID:      sessionID,
		ThreatScore:    &threat,
		DetectionTypes: findingTypes(findings),
		MessageContent: message,
	}
	if analysis != nil {
		event.AnalysisResult = map[string]any{
			"attack":     analysis.Attack,
			"confidence": analysis.Confidence,
			"types":      analysis.Types,
		}
	}
	if novel := novelPattern(message, findings); novel != nil {
		event.NovelPatterns = []models.NovelPatternIn{*novel}
	}
	c.reporter.Report(event)
}

// activateHoneypot emits the honeypot telemetry event and, once per
// session, fans out a warning alert.
func (c *Coordinator) activateHoneypot(ctx context.Context, sess *session.Session, userID string, findings []detect.Finding, result score.Result) {
	c.logger.Info("Honeypot engaged",
		"user_id", userID,
		"session_id", sess.SessionID,
		"score", result.Score)

	threat := result.Score
	c.reporter.Report(models.ReportEvent{
		EventType:      models.EventTypeHoneypotActivated,
		Level:          models.LevelWarning,
		UserID:         userID,
		SessionID:      sess.SessionID,
		ThreatScore:    &threat,
		DetectionTypes: sess.AttackTypes(),
	})

	if sess.MarkAlertSent() {
		c.alerts.Dispatch(ctx, alert.Alert{
			Level:      models.LevelWarning,
			UserID:     userID,
			SessionID:  sess.SessionID,
			Score:      result.Score,
			Detections: findings,
		})
	}
}

// blockUser persists the block, pushes the critical event past the queue
// and fans out a critical alert carrying the conversation tail.
func (c *Coordinator) blockUser(ctx context.Context, sess *session.Session, userID string, findings []detect.Finding, result score.Result) {
	snap := sess.Clone()
	reason := blockReason(result.Score, snap.DetectionHistory)

	c.logger.Warn("Blocking user",
		"user_id", userID,
		"session_id", sess.SessionID,
		"score", result.Score,
		"reason", reason)

	if err := c.blocklist.Add(ctx, userID, blocklist.AddData{
		Reason: reason,
		Score:  result.Score,
	}); err != nil {
		c.logger.Error("Failed to persist block", "user_id", userID, "error", err)
	}

	threat := result.Score
	if err := c.reporter.ReportCritical(ctx, models.ReportEvent{
		EventType:      models.EventTypeUserBlocked,
		Level:          models.LevelCritical,
		UserID:         userID,
		SessionID:      sess.SessionID,
		ThreatScore:    &threat,
		DetectionTypes: sess.AttackTypes(),
		Metadata:       map[string]any{"reason": reason},
	}); err != nil {
		c.logger.Warn("Critical report deferred to queue", "user_id", userID, "error", err)
	}

	conversation := snap.Messages
	if len(conversation) > alertConversationTail {
		conversation = conversation[len(conversation)-alertConversationTail:]
	}
	c.alerts.Dispatch(ctx, alert.Alert{
		Level:        models.LevelCritical,
		UserID:       userID,
		SessionID:    sess.SessionID,
		Score:        result.Score,
		Detections:   findings,
		Conversation: conversation,
	})
	sess.MarkAlertSent()
}

func (c *Coordinator) userLock(userID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.userMu[userID]
	if !ok {
		lock = &sync.Mutex{}
		c.userMu[userID] = lock
	}
	return lock
}

// detectionLevel maps the scored threat bucket onto the event severity the
// central side alerts on.
func detectionLevel(level score.ThreatLevel) models.Level {
	switch level {
	case score.ThreatCritical:
		return models.LevelCritical
	case score.ThreatHigh:
		return models.LevelWarning
	default:
		return models.LevelInfo
	}
}

func findingTypes(findings []detect.Finding) []string {
	types := make([]string, 0, len(findings))
	for _, f := range findings {
		types = append(types, f.Type)
	}
	return types
}

// novelPattern flags the turn as a candidate attack template when the
// analyzer saw something every heuristic detector missed. One candidate per
// turn is enough; the central side counts occurrences by text hash.
func novelPattern(message string, findings []detect.Finding) *models.NovelPatternIn {
	for _, f := range findings {
		if len(f.Patterns) == 1 && f.Patterns[0] == analyze.PatternModelAnalysis {
			return &models.NovelPatternIn{Text: message, AttackType: f.Type}
		}
	}
	return nil
}

func blockReason(score float64, history []session.DetectionRecord) string {
	seen := make(map[string]bool, len(history))
	types := make([]string, 0, len(history))
	for _, rec := range history {
		if !seen[rec.Type] {
			seen[rec.Type] = true
			types = append(types, rec.Type)
		}
	}
	if len(types) == 0 {
		return fmt.Sprintf("threat score %.1f", score)
	}
	return fmt.Sprintf("threat score %.1f (%s)", score, strings.Join(types, ", "))
}

// personaLabel renders the configured persona as the identity fed to model
// prompts. Empty config leaves it to the responder's default.
func personaLabel(p config.PersonaConfig) string {
	category := strings.ReplaceAll(p.Category, "_", " ")
	if category == "" {
		category = "support"
	}
	switch {
	case p.Name != "" && p.Company != "":
		return fmt.Sprintf("%s, a %s assistant at %s", p.Name, category, p.Company)
	case p.Name != "":
		return p.Name
	case p.Company != "":
		return fmt.Sprintf("a %s assistant at %s", category, p.Company)
	default:
		return ""
	}
}
