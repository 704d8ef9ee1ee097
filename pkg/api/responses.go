package api

import (
	"github.com/honeybotlabs/honeybot/ent"
	"github.com/honeybotlabs/honeybot/pkg/services"
)

// ErrorResponse is the body of every error status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// EventAccepted is returned by POST /api/events.
type EventAccepted struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}

// BatchResult aggregates the per-event outcomes of POST /api/events/batch.
type BatchResult struct {
	Processed int               `json:"processed"`
	Failed    int               `json:"failed"`
	Results   []BatchItemResult `json:"results"`
}

// BatchItemResult is the outcome of one event within a batch.
type BatchItemResult struct {
	EventID string `json:"event_id,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// BotListResponse is returned by GET /api/bots.
type BotListResponse struct {
	Bots  []*ent.Bot `json:"bots"`
	Total int        `json:"total"`
}

// EventListResponse is returned by GET /api/events.
type EventListResponse struct {
	Events []*ent.Event `json:"events"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// SessionListResponse is returned by GET /api/sessions.
type SessionListResponse struct {
	Sessions []*ent.Session `json:"sessions"`
	Total    int            `json:"total"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
}

// ReplayResponse is returned by GET /api/sessions/:sessionId/replay.
type ReplayResponse struct {
	Session *ent.Session     `json:"session"`
	Turns   []map[string]any `json:"turns"`
}

// PatternListResponse is returned by GET /api/patterns.
type PatternListResponse struct {
	Patterns []*ent.NovelPattern `json:"patterns"`
	Total    int                 `json:"total"`
}

// AlertListResponse is returned by GET /api/alerts.
type AlertListResponse struct {
	Alerts []*ent.Alert `json:"alerts"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// HealthCheck is one named probe inside the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status      string                    `json:"status"`
	Version     string                    `json:"version"`
	Connections int                       `json:"connections"`
	Checks      map[string]HealthCheck    `json:"checks"`
	Warnings    []*services.SystemWarning `json:"warnings,omitempty"`
}
