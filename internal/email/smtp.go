package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"fixmate_backend/internal/logger"
)

// SMTPProvider delivers mail through a gomail dialer.
type SMTPProvider struct {
	cfg Config
}

func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.SMTPPort)
	}
	return &SMTPProvider{cfg: cfg}, nil
}

func (p *SMTPProvider) SendVerification(to, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", p.cfg.BaseURL, token)
	body := fmt.Sprintf(
		"<p>Welcome to %s!</p><p>Confirm your email address by following <a href=%q>this link</a>. The link is valid for 24 hours.</p>",
		p.cfg.FromName, link,
	)
	return p.send(to, "Confirm your email", body)
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", p.cfg.BaseURL, token)
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p><p>Choose a new password via <a href=%q>this link</a>. The link expires in one hour. If you did not request this, ignore this email.</p>",
		link,
	)
	return p.send(to, "Reset your password", body)
}

func (p *SMTPProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(p.cfg.SMTPHost, p.cfg.SMTPPort, p.cfg.SMTPUsername, p.cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

// LogProvider logs instead of sending. Used when SMTP is not configured so
// the flows stay exercisable in development.
type LogProvider struct{}

func (LogProvider) SendVerification(to, token string) error {
	logger.Info("verification email (smtp disabled)", "to", to, "token", token)
	return nil
}

func (LogProvider) SendPasswordReset(to, token string) error {
	logger.Info("password reset email (smtp disabled)", "to", to, "token", token)
	return nil
}

// NewProvider picks SMTP when configured, otherwise the logging fallback.
func NewProvider(cfg Config) Provider {
	if cfg.SMTPHost == "" {
		return LogProvider{}
	}
	p, err := NewSMTPProvider(cfg)
	if err != nil {
		logger.Warn("falling back to log email provider", "error", err)
		return LogProvider{}
	}
	return p
}
