package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cspzone/docs-service/internal/model"
)

func TestRenderQuotation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "render@example.com")
	created := env.createQuotation(t, clientID, "4200")

	res, err := env.documents.RenderQuotation(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, env.outputDir, filepath.Dir(res.Path))
	assert.Equal(t, "quotation_Q-2026-0001_"+strconv.FormatInt(fixedNow.UnixMilli(), 10)+".pdf", filepath.Base(res.Path))
	_, err = os.Stat(res.Path)
	require.NoError(t, err)

	require.Len(t, env.renderer.bodies, 1)
	body := env.renderer.bodies[0]
	assert.Contains(t, body, "Q-2026-0001")
	assert.Contains(t, body, "Client render@example.com")
	assert.Contains(t, body, "4200.00")
	assert.NotContains(t, body, "{{")

	q, err := env.quotations.GetQuotation(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, q.PDFPath)
	assert.Equal(t, res.Path, *q.PDFPath)
}

func TestRenderQuotationFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.documents.RenderQuotation(ctx, 77)
	assert.True(t, errors.Is(err, ErrNotFound))

	clientID := env.resolveClient(t, "fail@example.com")
	created := env.createQuotation(t, clientID, "10")
	env.renderer.err = errBoom

	_, err = env.documents.RenderQuotation(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrRender))
	assert.Equal(t, KindRender, KindOf(err))

	q, err := env.quotations.GetQuotation(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, q.PDFPath)
}

func TestRenderInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "inv@example.com")
	q := env.createQuotation(t, clientID, "1250.50")
	created, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{})
	require.NoError(t, err)

	res, err := env.documents.RenderInvoice(ctx, created.InvoiceNo)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(res.Path), "invoice_INV-2026-0001_"))

	body := env.renderer.bodies[0]
	assert.Contains(t, body, "INV-2026-0001")
	assert.Contains(t, body, "Q-2026-0001")
	assert.Contains(t, body, "One Thousand Two Hundred Fifty and 50/100 UAE Dirhams")

	inv, err := env.invoices.GetInvoice(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, inv.PDFPath)
	assert.Equal(t, res.Path, *inv.PDFPath)
}

func TestRawRender(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.documents.Render(ctx, RawRender{
		Template: "<p>{{CLIENT_NAME}}</p>",
		Fields:   map[string]string{"CLIENT_NAME": "Acme"},
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>Acme</p>", out.HTML)
	assert.Empty(t, out.Path)
	assert.Empty(t, env.renderer.bodies)

	out, err = env.documents.Render(ctx, RawRender{Template: "<p>{{X}}</p>", PDF: true})
	require.NoError(t, err)
	assert.Equal(t, "<p></p>", out.HTML)
	assert.True(t, strings.HasPrefix(filepath.Base(out.Path), "document_document_"))

	_, err = env.documents.Render(ctx, RawRender{Template: "  "})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestSendQuotation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "send@example.com")
	created := env.createQuotation(t, clientID, "900")

	res, err := env.documents.SendQuotation(ctx, created.ID, MailOverride{})
	require.NoError(t, err)
	assert.Equal(t, "send@example.com", res.To)
	require.Len(t, env.renderer.bodies, 1)

	require.Len(t, env.mailer.messages, 1)
	msg := env.mailer.messages[0]
	assert.Equal(t, "send@example.com", msg.To)
	assert.Equal(t, "Quotation Q-2026-0001 from CSPzone", msg.Subject)
	assert.Equal(t, res.Path, msg.Attachment)

	// the stored PDF is reused
	res, err = env.documents.SendQuotation(ctx, created.ID, MailOverride{
		To:      "cfo@example.com",
		Subject: "Revised offer",
		Body:    "See attached.",
	})
	require.NoError(t, err)
	assert.Equal(t, "cfo@example.com", res.To)
	assert.Len(t, env.renderer.bodies, 1)
	assert.Equal(t, "Revised offer", env.mailer.messages[1].Subject)
	assert.Equal(t, "See attached.", env.mailer.messages[1].Body)
}

func TestSendInvoice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID := env.resolveClient(t, "payer@example.com")
	q := env.createQuotation(t, clientID, "640")
	created, err := env.invoices.CreateInvoiceFromQuotation(ctx, q.ID, model.InvoiceInput{})
	require.NoError(t, err)

	res, err := env.documents.SendInvoice(ctx, created.InvoiceNo, MailOverride{})
	require.NoError(t, err)
	assert.Equal(t, "payer@example.com", res.To)
	require.Len(t, env.mailer.messages, 1)
	assert.Equal(t, "Invoice INV-2026-0001 from CSPzone", env.mailer.messages[0].Subject)

	env.mailer.err = errBoom
	_, err = env.documents.SendInvoice(ctx, created.InvoiceNo, MailOverride{})
	assert.True(t, errors.Is(err, ErrMail))
	assert.Equal(t, KindMail, KindOf(err))

	_, err = env.documents.SendInvoice(ctx, "INV-2026-0404", MailOverride{})
	assert.True(t, errors.Is(err, ErrNotFound))
}
