package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramSink delivers alerts through the Telegram bot API.
type TelegramSink struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
}

// NewTelegramSink returns nil unless both token and chat ID are configured.
func NewTelegramSink(token, chatID string) *TelegramSink {
	return NewTelegramSinkWithBaseURL(token, chatID, telegramAPIBase)
}

// NewTelegramSinkWithBaseURL allows tests to point the sink at a mock server.
func NewTelegramSinkWithBaseURL(token, chatID, baseURL string) *TelegramSink {
	if token == "" || chatID == "" {
		return nil
	}
	return &TelegramSink{
		baseURL:    baseURL,
		token:      token,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *TelegramSink) Name() string { return "telegram" }

func (s *TelegramSink) Send(ctx context.Context, rec Record) error {
	if s == nil {
		return nil
	}
	payload := map[string]string{
		"chat_id": s.chatID,
		"text":    rec.Text(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}
	return nil
}
