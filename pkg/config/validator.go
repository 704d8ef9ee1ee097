package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validator checks a loaded configuration for coherence. Unlike a
// fail-fast check it collects every problem so a broken deployment can
// be fixed in one pass.
type Validator struct {
	cfg  *Config
	errs []error
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every check and returns the collected errors, or nil.
func (v *Validator) ValidateAll() error {
	v.validateDetection()
	v.validateModel()
	v.validateAlerts()
	v.validateCentral()
	v.validateFeed()
	v.validateServer()
	return errors.Join(v.errs...)
}

func (v *Validator) addError(section, field string, err error) {
	v.errs = append(v.errs, NewValidationError(section, field, err))
}

func (v *Validator) validateDetection() {
	thresholds, err := v.cfg.Detection.ResolveThresholds()
	if err != nil {
		v.addError("detection", "sensitivity", err)
		return
	}
	if err := thresholds.Validate(); err != nil {
		v.addError("detection", "thresholds", err)
	}
}

func (v *Validator) validateModel() {
	if !v.cfg.Model.Enabled {
		return
	}
	if v.cfg.Model.BaseURL == "" {
		v.addError("model", "base_url", ErrMissingRequiredField)
	} else if _, err := url.ParseRequestURI(v.cfg.Model.BaseURL); err != nil {
		v.addError("model", "base_url", fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	if v.cfg.Model.Name == "" {
		v.addError("model", "name", ErrMissingRequiredField)
	}
}

// validateAlerts rejects half-configured sinks: a sink is either fully
// specified or absent.
func (v *Validator) validateAlerts() {
	a := v.cfg.Alerts

	if a.WebhookURL != "" {
		if _, err := url.ParseRequestURI(a.WebhookURL); err != nil {
			v.addError("alerts", "webhook_url", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}

	tg := a.Telegram
	if (tg.Token == "") != (tg.ChatID == "") {
		v.addError("alerts", "telegram", errors.New("both token and chat_id are required"))
	}

	em := a.Email
	emailConfigured := em.Host != "" || em.From != "" || len(em.To) > 0
	if emailConfigured {
		if em.Host == "" {
			v.addError("alerts", "email.host", ErrMissingRequiredField)
		}
		if em.From == "" {
			v.addError("alerts", "email.from", ErrMissingRequiredField)
		}
		if len(em.To) == 0 {
			v.addError("alerts", "email.to", ErrMissingRequiredField)
		}
	}

	sl := a.Slack
	if (sl.Token == "") != (sl.Channel == "") {
		v.addError("alerts", "slack", errors.New("both token and channel are required"))
	}

	if a.HistorySize < 0 {
		v.addError("alerts", "history_size", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
}

// validateCentral requires central logging settings to come as a
// complete set. A partially configured reporter would silently drop
// telemetry, so it fails the boot instead.
func (v *Validator) validateCentral() {
	c := v.cfg.Central
	configured := c.URL != "" || c.BotID != "" || c.BotSecret != ""
	if !configured {
		return
	}
	if c.URL == "" {
		v.addError("central", "url", ErrMissingRequiredField)
	} else if _, err := url.ParseRequestURI(c.URL); err != nil {
		v.addError("central", "url", fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	if c.BotID == "" {
		v.addError("central", "bot_id", ErrMissingRequiredField)
	}
	if c.BotSecret == "" {
		v.addError("central", "bot_secret", ErrMissingRequiredField)
	}
}

func (v *Validator) validateFeed() {
	f := v.cfg.Feed
	if f.URL != "" {
		if _, err := url.ParseRequestURI(f.URL); err != nil {
			v.addError("feed", "url", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}
	if f.Interval != "" {
		if d, err := time.ParseDuration(f.Interval); err != nil {
			v.addError("feed", "interval", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		} else if d <= 0 {
			v.addError("feed", "interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
	}
}

func (v *Validator) validateServer() {
	if v.cfg.Server.Addr == "" {
		v.addError("server", "addr", ErrMissingRequiredField)
	}
}
