package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// GomailProvider реализует Provider поверх gomail/SMTP
type GomailProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewGomailProvider(config *SMTPConfig) *GomailProvider {
	return &GomailProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *GomailProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.config.FromEmail, p.config.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.IsHTML {
		m.SetBody("text/html", email.Body)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

func (p *GomailProvider) Validate() error {
	if p.config.Host == "" || p.config.Port == 0 {
		return errors.New("smtp host and port are required")
	}
	if p.config.FromEmail == "" {
		return errors.New("from email is required")
	}
	return nil
}
