package alert

import (
	"context"
	"fmt"
	"strings"

	goslack "github.com/slack-go/slack"
)

// maxBlockTextLength keeps block text under Slack's 3000 char limit
// with some margin.
const maxBlockTextLength = 2900

// SlackSink posts alerts to a Slack channel using Block Kit.
type SlackSink struct {
	api     *goslack.Client
	channel string
}

// NewSlackSink returns nil unless both token and channel are configured.
func NewSlackSink(token, channel string) *SlackSink {
	if token == "" || channel == "" {
		return nil
	}
	return &SlackSink{api: goslack.New(token), channel: channel}
}

// NewSlackSinkWithAPIURL allows tests to point the sink at a mock server.
func NewSlackSinkWithAPIURL(token, channel, apiURL string) *SlackSink {
	if token == "" || channel == "" {
		return nil
	}
	return &SlackSink{
		api:     goslack.New(token, goslack.OptionAPIURL(apiURL)),
		channel: channel,
	}
}

func (s *SlackSink) Name() string { return "slack" }

func (s *SlackSink) Send(ctx context.Context, rec Record) error {
	if s == nil {
		return nil
	}
	_, _, err := s.api.PostMessageContext(ctx, s.channel,
		goslack.MsgOptionBlocks(buildAlertBlocks(rec)...))
	if err != nil {
		return fmt.Errorf("failed to post slack alert: %w", err)
	}
	return nil
}

func buildAlertBlocks(rec Record) []goslack.Block {
	var body strings.Builder
	fmt.Fprintf(&body, "%s\n", rec.Summary)
	fmt.Fprintf(&body, "*User:* %s  *Score:* %.1f\n", rec.UserID, rec.Score)
	for _, d := range rec.Detections {
		fmt.Fprintf(&body, "• %s: %d%% confidence, %d pattern(s)\n",
			d.Type, d.ConfidencePct, d.PatternCount)
	}

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType,
				truncateBlockText(fmt.Sprintf("*%s*", rec.Title)), false, false),
			nil, nil),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType,
				truncateBlockText(body.String()), false, false),
			nil, nil),
	}
}

func truncateBlockText(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength-3] + "..."
}
