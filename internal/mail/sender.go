// Package mail delivers rendered documents over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/cspzone/docs-service/internal/config"
)

const (
	DefaultBody = "Please find the attached document."

	dialTimeout = 30 * time.Second
)

// DefaultSubject is used when a message has no subject of its own.
func DefaultSubject(company string) string {
	return "Quotation from " + company
}

type Message struct {
	To      string
	Subject string
	Body    string
	// Attachment is a file path; it is skipped when the file is missing.
	Attachment string
}

type SMTPSender struct {
	cfg     config.SMTPConfig
	company string
	log     zerolog.Logger
}

func NewSMTPSender(cfg config.SMTPConfig, company string, log zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:     cfg,
		company: company,
		log:     log.With().Str("component", "mail").Logger(),
	}
}

// Send delivers msg in a single SMTP session.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}
	client, err := s.newClient()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	s.log.Info().
		Str("to", msg.To).
		Int("attachments", len(m.GetAttachments())).
		Msg("mail sent")
	return nil
}

// Verify connects and authenticates without sending anything.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := s.newClient()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return client.Close()
}

func (s *SMTPSender) newClient() (*gomail.Client, error) {
	if s.cfg.Host == "" {
		return nil, errors.New("SMTP_HOST is not configured")
	}
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(dialTimeout),
	}
	if s.cfg.SSL {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return client, nil
}

func (s *SMTPSender) buildMessage(msg Message) (*gomail.Msg, error) {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return nil, errors.New("recipient is required")
	}
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}
	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = DefaultSubject(s.company)
	}
	body := msg.Body
	if strings.TrimSpace(body) == "" {
		body = DefaultBody
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	m.Subject(subject)
	m.SetBodyString(gomail.TypeTextPlain, body)
	m.AddAlternativeString(gomail.TypeTextHTML, htmlBody(body))

	if msg.Attachment != "" {
		if _, err := os.Stat(msg.Attachment); err == nil {
			m.AttachFile(msg.Attachment)
		} else {
			s.log.Warn().Str("path", msg.Attachment).Msg("attachment missing, sending without it")
		}
	}
	return m, nil
}

func htmlBody(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
