package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cspzone/docs-service/internal/mail"
	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/template"
)

const (
	kindQuotation = "quotation"
	kindInvoice   = "invoice"
	kindDocument  = "document"
)

// Renderer turns an HTML body into a PDF file at destPath.
type Renderer interface {
	Render(ctx context.Context, body, destPath string) error
}

type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type DocumentOptions struct {
	CompanyName       string
	CurrencyName      string
	OutputDir         string
	InvoiceURLBase    string
	QuotationTemplate string
	InvoiceTemplate   string
}

// DocumentService renders stored documents to PDF and mails them.
type DocumentService struct {
	clients    *ClientService
	quotations *QuotationService
	invoices   *InvoiceService
	engine     *template.Engine
	renderer   Renderer
	mailer     Mailer
	opts       DocumentOptions
	log        zerolog.Logger
	now        func() time.Time
}

type RenderResult struct {
	Path string `json:"path"`
}

// RawRender is an ad-hoc template render; Path is set only when a PDF was
// requested.
type RawRender struct {
	Template   string            `json:"template"`
	Fields     map[string]string `json:"fields"`
	ServiceKey string            `json:"service_key"`
	PDF        bool              `json:"pdf"`
}

type RawRenderResult struct {
	HTML string `json:"html"`
	Path string `json:"path,omitempty"`
}

// MailOverride replaces the default recipient, subject or body when set.
type MailOverride struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SendResult struct {
	To   string `json:"to"`
	Path string `json:"path"`
}

func NewDocumentService(
	clients *ClientService,
	quotations *QuotationService,
	invoices *InvoiceService,
	engine *template.Engine,
	renderer Renderer,
	mailer Mailer,
	opts DocumentOptions,
	log zerolog.Logger,
) *DocumentService {
	if opts.QuotationTemplate == "" {
		opts.QuotationTemplate = template.DefaultQuotation()
	}
	if opts.InvoiceTemplate == "" {
		opts.InvoiceTemplate = template.DefaultInvoice()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "./output"
	}
	return &DocumentService{
		clients:    clients,
		quotations: quotations,
		invoices:   invoices,
		engine:     engine,
		renderer:   renderer,
		mailer:     mailer,
		opts:       opts,
		log:        log,
		now:        time.Now,
	}
}

// QuotationHTML fills the quotation template without rendering a PDF.
func (s *DocumentService) QuotationHTML(ctx context.Context, id int64) (string, *model.Quotation, *model.Client, error) {
	q, client, err := s.loadQuotation(ctx, id)
	if err != nil {
		return "", nil, nil, err
	}
	body := s.engine.Render(s.opts.QuotationTemplate, template.QuotationFields(q, client), serviceKeyOf(q))
	return body, q, client, nil
}

func (s *DocumentService) RenderQuotation(ctx context.Context, id int64) (RenderResult, error) {
	body, q, _, err := s.QuotationHTML(ctx, id)
	if err != nil {
		return RenderResult{}, err
	}
	path := s.outputPath(kindQuotation, q.QuotationNo)
	if err := s.renderer.Render(ctx, body, path); err != nil {
		return RenderResult{}, fmt.Errorf("%w: quotation %s: %w", ErrRender, q.QuotationNo, err)
	}
	if err := s.quotations.SetPDFPath(ctx, q.ID, path); err != nil {
		return RenderResult{}, err
	}

	s.log.Info().
		Str("quotation_no", q.QuotationNo).
		Str("path", path).
		Msg("quotation rendered")
	return RenderResult{Path: path}, nil
}

func (s *DocumentService) InvoiceHTML(ctx context.Context, ref string) (string, *model.Invoice, *model.Client, error) {
	inv, err := s.invoices.FindInvoice(ctx, ref)
	if err != nil {
		return "", nil, nil, err
	}
	q, client, err := s.loadQuotation(ctx, inv.QuotationID)
	if err != nil {
		return "", nil, nil, err
	}
	fields := template.InvoiceFields(inv, q, client, template.InvoiceOptions{
		Currency: s.opts.CurrencyName,
		URLBase:  s.opts.InvoiceURLBase,
	})
	body := s.engine.Render(s.opts.InvoiceTemplate, fields, serviceKeyOf(q))
	return body, inv, client, nil
}

func (s *DocumentService) RenderInvoice(ctx context.Context, ref string) (RenderResult, error) {
	body, inv, _, err := s.InvoiceHTML(ctx, ref)
	if err != nil {
		return RenderResult{}, err
	}
	path := s.outputPath(kindInvoice, inv.InvoiceNo)
	if err := s.renderer.Render(ctx, body, path); err != nil {
		return RenderResult{}, fmt.Errorf("%w: invoice %s: %w", ErrRender, inv.InvoiceNo, err)
	}
	if err := s.invoices.SetPDFPath(ctx, inv.ID, path); err != nil {
		return RenderResult{}, err
	}

	s.log.Info().
		Str("invoice_no", inv.InvoiceNo).
		Str("path", path).
		Msg("invoice rendered")
	return RenderResult{Path: path}, nil
}

// Render fills an arbitrary template and optionally prints it.
func (s *DocumentService) Render(ctx context.Context, in RawRender) (RawRenderResult, error) {
	if strings.TrimSpace(in.Template) == "" {
		return RawRenderResult{}, validationError("template is required")
	}
	out := RawRenderResult{HTML: s.engine.Render(in.Template, in.Fields, strings.TrimSpace(in.ServiceKey))}
	if !in.PDF {
		return out, nil
	}

	path := s.outputPath(kindDocument, in.ServiceKey)
	if err := s.renderer.Render(ctx, out.HTML, path); err != nil {
		return RawRenderResult{}, fmt.Errorf("%w: %w", ErrRender, err)
	}
	out.Path = path
	return out, nil
}

// SendQuotation mails the quotation PDF, rendering it first when no file is
// on disk yet.
func (s *DocumentService) SendQuotation(ctx context.Context, id int64, override MailOverride) (SendResult, error) {
	q, client, err := s.loadQuotation(ctx, id)
	if err != nil {
		return SendResult{}, err
	}

	path := existingFile(q.PDFPath)
	if path == "" {
		rendered, err := s.RenderQuotation(ctx, id)
		if err != nil {
			return SendResult{}, err
		}
		path = rendered.Path
	}

	subject := override.Subject
	if strings.TrimSpace(subject) == "" {
		subject = fmt.Sprintf("Quotation %s from %s", q.QuotationNo, s.opts.CompanyName)
	}
	return s.send(ctx, client, path, subject, override)
}

func (s *DocumentService) SendInvoice(ctx context.Context, ref string, override MailOverride) (SendResult, error) {
	inv, err := s.invoices.FindInvoice(ctx, ref)
	if err != nil {
		return SendResult{}, err
	}
	client, err := s.clients.GetClient(ctx, inv.ClientID)
	if err != nil {
		return SendResult{}, err
	}
	if client == nil {
		return SendResult{}, fmt.Errorf("%w: client %s", ErrNotFound, formatID(inv.ClientID))
	}

	path := existingFile(inv.PDFPath)
	if path == "" {
		rendered, err := s.RenderInvoice(ctx, inv.InvoiceNo)
		if err != nil {
			return SendResult{}, err
		}
		path = rendered.Path
	}

	subject := override.Subject
	if strings.TrimSpace(subject) == "" {
		subject = fmt.Sprintf("Invoice %s from %s", inv.InvoiceNo, s.opts.CompanyName)
	}
	return s.send(ctx, client, path, subject, override)
}

func (s *DocumentService) send(
	ctx context.Context,
	client *model.Client,
	path, subject string,
	override MailOverride,
) (SendResult, error) {
	to := strings.TrimSpace(override.To)
	if to == "" {
		to = client.Email
	}
	if to == "" {
		return SendResult{}, validationError("no recipient for client %s", formatID(client.ID))
	}

	err := s.mailer.Send(ctx, mail.Message{
		To:         to,
		Subject:    subject,
		Body:       override.Body,
		Attachment: path,
	})
	if err != nil {
		s.log.Error().Err(err).Str("to", to).Str("path", path).Msg("mail delivery failed")
		return SendResult{}, fmt.Errorf("%w: %w", ErrMail, err)
	}
	return SendResult{To: to, Path: path}, nil
}

func (s *DocumentService) loadQuotation(ctx context.Context, id int64) (*model.Quotation, *model.Client, error) {
	q, err := s.quotations.GetQuotation(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if q == nil {
		return nil, nil, fmt.Errorf("%w: quotation %s", ErrNotFound, formatID(id))
	}
	client, err := s.clients.GetClient(ctx, q.ClientID)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return nil, nil, fmt.Errorf("%w: client %s", ErrNotFound, formatID(q.ClientID))
	}
	return q, client, nil
}

func (s *DocumentService) outputPath(kind, number string) string {
	name := sanitizeFileName(number)
	if name == "" {
		name = kind
	}
	file := fmt.Sprintf("%s_%s_%d.pdf", kind, name, s.now().UnixMilli())
	return filepath.Join(s.opts.OutputDir, file)
}

func serviceKeyOf(q *model.Quotation) string {
	if q.ServiceKey == nil {
		return ""
	}
	return *q.ServiceKey
}

func existingFile(path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	if info, err := os.Stat(*path); err != nil || info.IsDir() {
		return ""
	}
	return *path
}
