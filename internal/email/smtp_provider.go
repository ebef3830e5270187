package email

import (
	"fmt"

	"github.com/kamranshamim45/ai-job-portal/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through an SMTP relay.
type SMTPProvider struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}

	return &SMTPProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
	}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
