package email

import (
	"github.com/kamranshamim45/ai-job-portal/internal/config"
	"github.com/kamranshamim45/ai-job-portal/internal/logger"
)

// Provider sends transactional mail. Implementations must be safe for
// concurrent use; callers treat delivery as best effort.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// New returns the SMTP provider when email is enabled, otherwise a provider
// that only logs. Keeps the services free of enabled/disabled branching.
func New(cfg config.EmailConfig) Provider {
	if !cfg.Enabled || cfg.SMTPHost == "" {
		return NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}

// NoopProvider drops messages, logging them at debug level.
type NoopProvider struct{}

func (NoopProvider) Send(to, subject, htmlBody string) error {
	logger.Debug("email disabled, message dropped", "to", to, "subject", subject)
	return nil
}
