package app

import (
	"brandlink_backend/internal/email"
	"brandlink_backend/internal/logger"
)

// LogEmailProvider - заглушка для окружений без SMTP: письма уходят в лог.
type LogEmailProvider struct{}

func (p *LogEmailProvider) Send(msg *email.Email) error {
	logger.Info("email (not sent, SMTP disabled)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

func (p *LogEmailProvider) Validate() error {
	return nil
}
