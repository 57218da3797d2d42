package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"agridash/pkg/config"

	"go.uber.org/zap"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New picks a mailer by cfg.Driver. Unknown drivers fall back to logging.
func New(cfg config.MailConfig, logger *zap.Logger) (Mailer, error) {
	switch strings.ToLower(cfg.Driver) {
	case "smtp":
		if strings.TrimSpace(cfg.Host) == "" {
			return nil, fmt.Errorf("mailer: SMTP_HOST is required for the smtp driver")
		}
		return &SMTPMailer{cfg: cfg, logger: logger.With(zap.String("mailer", "smtp"))}, nil
	case "log", "":
		return NewLogMailer(logger), nil
	default:
		logger.Warn("Unknown mail driver, falling back to log", zap.String("driver", cfg.Driver))
		return NewLogMailer(logger), nil
	}
}

// LogMailer writes messages to the log instead of delivering them.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.With(zap.String("mailer", "log"))}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info("Email not delivered, logging instead",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}

// SMTPMailer delivers over SMTP, upgrading to STARTTLS when the server offers it.
type SMTPMailer struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, buildMessage(m.cfg.From, msg)); err != nil {
		return fmt.Errorf("mailer: failed to send to %s: %w", msg.To, err)
	}
	m.logger.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func buildMessage(from string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
