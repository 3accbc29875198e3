package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/config"
	"github.com/cspzone/docs-service/internal/db"
	"github.com/cspzone/docs-service/internal/excel"
	"github.com/cspzone/docs-service/internal/logger"
	"github.com/cspzone/docs-service/internal/mail"
	"github.com/cspzone/docs-service/internal/pdf"
	"github.com/cspzone/docs-service/internal/printing"
	"github.com/cspzone/docs-service/internal/repository"
	"github.com/cspzone/docs-service/internal/service"
	"github.com/cspzone/docs-service/internal/template"
)

// app holds the wired services behind every command that touches the store.
type app struct {
	cfg        *config.Config
	log        zerolog.Logger
	db         *gorm.DB
	sequences  *repository.SequenceRepository
	clients    *service.ClientService
	quotations *service.QuotationService
	invoices   *service.InvoiceService
	documents  *service.DocumentService
	reports    *service.ReportService
	mailer     *mail.SMTPSender
	closers    []func() error
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.Environment, cfg.LogLevel), nil
}

func newApp(cfg *config.Config, log zerolog.Logger) (*app, error) {
	database, err := db.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("%w: connect database: %w", service.ErrStore, err)
	}
	a := &app{cfg: cfg, log: log, db: database}
	a.closers = append(a.closers, func() error {
		sqlDB, err := database.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	docs := cfg.Documents
	quotationTemplate, err := template.Load(docs.QuotationTemplate, template.DefaultQuotation())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%w: quotation template: %w", service.ErrValidation, err)
	}
	invoiceTemplate, err := template.Load(docs.InvoiceTemplate, template.DefaultInvoice())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("%w: invoice template: %w", service.ErrValidation, err)
	}
	warnUnknownPlaceholders(log, docs.QuotationTemplate, quotationTemplate)
	warnUnknownPlaceholders(log, docs.InvoiceTemplate, invoiceTemplate)

	logo := ""
	if docs.LogoPath != "" {
		if logo, err = template.LogoDataURI(docs.LogoPath); err != nil {
			log.Warn().Err(err).Str("path", docs.LogoPath).Msg("logo not loaded")
			logo = ""
		}
	}

	a.sequences = repository.NewSequenceRepository(database)
	clientRepo := repository.NewClientRepository(database)
	a.clients = service.NewClientService(clientRepo, log)
	a.quotations = service.NewQuotationService(
		clientRepo,
		repository.NewQuotationRepository(database, a.sequences),
		docs.ValidityDays,
		log,
	)
	a.invoices = service.NewInvoiceService(
		repository.NewInvoiceRepository(database, a.sequences),
		docs.PaymentDays,
		log,
	)
	a.reports = service.NewReportService(repository.NewReportRepository(database), excel.NewGenerator(), log)
	a.mailer = mail.NewSMTPSender(cfg.SMTP, docs.CompanyName, log)

	a.documents = service.NewDocumentService(
		a.clients,
		a.quotations,
		a.invoices,
		template.NewEngine(logo),
		a.renderer(),
		a.mailer,
		service.DocumentOptions{
			CompanyName:       docs.CompanyName,
			CurrencyName:      docs.CurrencyName,
			OutputDir:         docs.OutputDir,
			InvoiceURLBase:    docs.InvoiceURLBase,
			QuotationTemplate: quotationTemplate,
			InvoiceTemplate:   invoiceTemplate,
		},
		log,
	)
	return a, nil
}

func warnUnknownPlaceholders(log zerolog.Logger, path, body string) {
	if path == "" {
		return
	}
	if unknown := template.Unknown(body); len(unknown) > 0 {
		log.Warn().Str("path", path).Strs("placeholders", unknown).Msg("template placeholders will render empty")
	}
}

func (a *app) renderer() service.Renderer {
	if a.cfg.Render.Backend == config.RenderBackendChrome {
		chrome := printing.NewChromedpRenderer(printing.Config{
			Timeout:   a.cfg.Render.Timeout,
			RemoteURL: a.cfg.Render.ChromeURL,
			NoSandbox: a.cfg.Render.NoSandbox,
			Logger:    a.log,
		})
		a.closers = append(a.closers, chrome.Close)
		return chrome
	}
	return pdf.NewGenerator(a.cfg.Documents.CompanyName)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn().Err(err).Msg("close failed")
		}
	}
	a.closers = nil
}
