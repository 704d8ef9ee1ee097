package alert

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// EmailConfig holds SMTP settings for the email sink.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// EmailSink delivers alerts over SMTP. A fresh connection is dialed per
// alert; alert volume is low enough that pooling is not worth it.
type EmailSink struct {
	cfg EmailConfig
}

// NewEmailSink returns nil unless host, sender, and recipients are configured.
func NewEmailSink(cfg EmailConfig) *EmailSink {
	if cfg.Host == "" || cfg.From == "" || len(cfg.To) == 0 {
		return nil
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &EmailSink{cfg: cfg}
}

func (s *EmailSink) Name() string { return "email" }

func (s *EmailSink) Send(ctx context.Context, rec Record) error {
	if s == nil {
		return nil
	}
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(s.cfg.To...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("[honeybot] %s", rec.Title))
	msg.SetBodyString(mail.TypeTextPlain, rec.Text())

	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send alert mail: %w", err)
	}
	return nil
}
