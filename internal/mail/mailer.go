// Package mail dispatches drafted emails over SMTP. The channel never
// surfaces an error to the orchestration layer: delivery failure is
// reported as false.
package mail

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP channel configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends plain-text email through an SMTP relay.
type Mailer struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

// NewMailer creates a Mailer. A nil logger is replaced with a no-op one.
func NewMailer(cfg SMTPConfig, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{cfg: cfg, logger: logger}
}

// Send delivers a message to recipient. replyTo may be empty. Returns
// true only when the SMTP relay accepted the message; failures are
// logged and reported as false, never as an error.
func (m *Mailer) Send(subject, body, recipient, replyTo string) bool {
	msg := m.message(subject, body, recipient, replyTo)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.logger.Error("email dispatch failed",
			zap.String("recipient", recipient),
			zap.Error(err))
		return false
	}

	m.logger.Info("email dispatched", zap.String("recipient", recipient))
	return true
}

func (m *Mailer) message(subject, body, recipient, replyTo string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetBody("text/plain", body)
	return msg
}
