package email

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Service defines the interface for email operations
type Service interface {
	SendPasswordResetEmail(toEmail, toName string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

type service struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewService creates a new email Service
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &service{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		logger: logger,
	}
}

// SendPasswordResetEmail sends a password reset notice to the user. When SMTP
// credentials are not configured the mail is logged instead of sent, so
// development environments work without a mail server.
func (s *service) SendPasswordResetEmail(toEmail, toName string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Msg("SMTP credentials not configured - password reset email not sent")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(s.config.FromEmail, s.config.FromName))
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "CareerConnect password reset")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nA password reset was requested for your CareerConnect account. "+
			"If this was not you, you can ignore this email.\n", toName))

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Msg("Password reset email sent")
	return nil
}
