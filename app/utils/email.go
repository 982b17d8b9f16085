package utils

import (
	"crypto/tls"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer delivers password reset links.
type Mailer interface {
	SendResetEmail(toEmail, resetToken string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// BaseURL is prefixed to /password/reset/<token> in the link.
	BaseURL string
}

type smtpMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func ResetLink(baseURL, resetToken string) string {
	return fmt.Sprintf("%s/password/reset/%s", baseURL, resetToken)
}

func (m *smtpMailer) SendResetEmail(toEmail, resetToken string) error {
	resetLink := ResetLink(m.cfg.BaseURL, resetToken)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Reset Password Request")

	htmlBody := fmt.Sprintf(`
    <h1>Reset Password Request</h1>
    <p>Click the link below to reset your password:</p>
    <p><a href="%s">%s</a></p>
    <br>
    <p>This link will expire in 15 minutes.</p>
    `, resetLink, resetLink)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: m.cfg.Host}

	log.Printf("sending reset email to %s", toEmail)
	return d.DialAndSend(msg)
}

// logMailer prints the link instead of sending it, for setups without SMTP.
type logMailer struct {
	baseURL string
	logger  *log.Logger
}

func NewLogMailer(baseURL string, logger *log.Logger) Mailer {
	if logger == nil {
		logger = log.Default()
	}
	return &logMailer{baseURL: baseURL, logger: logger}
}

func (m *logMailer) SendResetEmail(toEmail, resetToken string) error {
	m.logger.Printf("[WARN] smtp not configured, reset link for %s: %s", toEmail, ResetLink(m.baseURL, resetToken))
	return nil
}
