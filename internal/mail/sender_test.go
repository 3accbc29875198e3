package mail

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"

	"github.com/cspzone/docs-service/internal/config"
)

func newSender(cfg config.SMTPConfig) *SMTPSender {
	return NewSMTPSender(cfg, "CSPzone", zerolog.Nop())
}

func TestBuildMessageDefaults(t *testing.T) {
	s := newSender(config.SMTPConfig{From: "docs@cspzone.test"})

	m, err := s.buildMessage(Message{To: " client@example.com "})
	require.NoError(t, err)

	to := m.GetTo()
	require.Len(t, to, 1)
	assert.Equal(t, "client@example.com", to[0].Address)
	assert.Equal(t, []string{"Quotation from CSPzone"}, m.GetGenHeader(gomail.HeaderSubject))

	parts := m.GetParts()
	require.Len(t, parts, 2)
	plain, err := parts[0].GetContent()
	require.NoError(t, err)
	assert.Equal(t, DefaultBody, string(plain))
	assert.Equal(t, gomail.TypeTextHTML, parts[1].GetContentType())
	assert.Empty(t, m.GetAttachments())
}

func TestBuildMessageWithAttachment(t *testing.T) {
	s := newSender(config.SMTPConfig{Username: "user@cspzone.test"})
	path := filepath.Join(t.TempDir(), "quotation_Q_2026_0001.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.3"), 0o644))

	m, err := s.buildMessage(Message{
		To:         "client@example.com",
		Subject:    "Your quotation",
		Body:       "Hello,\nsee <attached>.",
		Attachment: path,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Your quotation"}, m.GetGenHeader(gomail.HeaderSubject))
	require.Len(t, m.GetAttachments(), 1)
	assert.Equal(t, "quotation_Q_2026_0001.pdf", m.GetAttachments()[0].Name)

	html, err := m.GetParts()[1].GetContent()
	require.NoError(t, err)
	assert.Equal(t, "Hello,<br>see &lt;attached&gt;.", string(html))
}

func TestBuildMessageSkipsMissingAttachment(t *testing.T) {
	s := newSender(config.SMTPConfig{From: "docs@cspzone.test"})

	m, err := s.buildMessage(Message{
		To:         "client@example.com",
		Attachment: filepath.Join(t.TempDir(), "gone.pdf"),
	})

	require.NoError(t, err)
	assert.Empty(t, m.GetAttachments())
}

func TestBuildMessageValidation(t *testing.T) {
	s := newSender(config.SMTPConfig{From: "docs@cspzone.test"})

	_, err := s.buildMessage(Message{To: ""})
	assert.Error(t, err)

	_, err = s.buildMessage(Message{To: "not an address"})
	assert.Error(t, err)

	_, err = newSender(config.SMTPConfig{}).buildMessage(Message{To: "client@example.com"})
	assert.Error(t, err)
}

func TestSendWithoutHost(t *testing.T) {
	s := newSender(config.SMTPConfig{From: "docs@cspzone.test", Port: 465})

	err := s.Send(context.Background(), Message{To: "client@example.com"})
	assert.ErrorContains(t, err, "SMTP_HOST")

	assert.Error(t, s.Verify(context.Background()))
}
