package alert

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultHistorySize bounds the in-memory record of recent alerts.
	DefaultHistorySize = 100

	// dispatchWorkers bounds how many sinks deliver at once.
	dispatchWorkers = 4

	// sinkTimeout is the per-sink delivery deadline.
	sinkTimeout = 15 * time.Second
)

// Sink delivers one formatted alert to a destination.
type Sink interface {
	Name() string
	Send(ctx context.Context, rec Record) error
}

// Manager formats alerts, keeps a bounded history, and delivers each
// alert to every sink concurrently. Sink failures and panics are logged
// and never propagate to the caller or to sibling sinks.
type Manager struct {
	sinks   []Sink
	logger  *slog.Logger
	sem     chan struct{}
	histCap int

	mu      sync.Mutex
	history []Record
}

// NewManager creates a manager over the given sinks. Nil sinks are
// skipped so callers can pass optionally configured sinks directly.
func NewManager(sinks ...Sink) *Manager {
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Manager{
		sinks:   kept,
		logger:  slog.Default().With("component", "alerts"),
		sem:     make(chan struct{}, dispatchWorkers),
		histCap: DefaultHistorySize,
	}
}

// WithHistorySize overrides the history cap. Zero or negative keeps the default.
func (m *Manager) WithHistorySize(n int) *Manager {
	if n > 0 {
		m.histCap = n
	}
	return m
}

// Dispatch formats the alert, records it, and delivers it to every sink.
// It blocks until all sinks have finished so the caller knows delivery
// was attempted, but individual sink errors are only logged.
func (m *Manager) Dispatch(ctx context.Context, a Alert) Record {
	rec := Format(a)
	m.record(rec)

	var wg sync.WaitGroup
	for _, s := range m.sinks {
		wg.Add(1)
		go func(s Sink) {
			defer wg.Done()
			m.sem <- struct{}{}
			defer func() { <-m.sem }()
			m.deliver(ctx, s, rec)
		}(s)
	}
	wg.Wait()

	return rec
}

func (m *Manager) deliver(ctx context.Context, s Sink, rec Record) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Alert sink panicked",
				"sink", s.Name(),
				"panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, sinkTimeout)
	defer cancel()

	if err := s.Send(ctx, rec); err != nil {
		m.logger.Error("Alert sink failed",
			"sink", s.Name(),
			"user_id", rec.UserID,
			"error", err)
		return
	}
	m.logger.Debug("Alert delivered", "sink", s.Name(), "user_id", rec.UserID)
}

func (m *Manager) record(rec Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, rec)
	if len(m.history) > m.histCap {
		m.history = m.history[len(m.history)-m.histCap:]
	}
}

// History returns a copy of the retained alerts, oldest first (thread-safe).
func (m *Manager) History() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.history))
	copy(out, m.history)
	return out
}

// SinkCount reports how many sinks are wired.
func (m *Manager) SinkCount() int {
	return len(m.sinks)
}
