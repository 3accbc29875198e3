package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/config"
	"github.com/cspzone/docs-service/internal/db"
	"github.com/cspzone/docs-service/internal/mail"
	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/repository"
	"github.com/cspzone/docs-service/internal/template"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	db         *gorm.DB
	clients    *ClientService
	quotations *QuotationService
	invoices   *InvoiceService
	reports    *ReportService
	documents  *DocumentService
	renderer   *fakeRenderer
	mailer     *fakeMailer
	outputDir  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	database, err := db.Open(config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(dir, "docs.db"),
	}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := zerolog.Nop()
	sequences := repository.NewSequenceRepository(database)
	clientRepo := repository.NewClientRepository(database)
	quotationRepo := repository.NewQuotationRepository(database, sequences)
	invoiceRepo := repository.NewInvoiceRepository(database, sequences)

	env := &testEnv{
		db:         database,
		clients:    NewClientService(clientRepo, log),
		quotations: NewQuotationService(clientRepo, quotationRepo, 30, log),
		invoices:   NewInvoiceService(invoiceRepo, 14, log),
		renderer:   &fakeRenderer{},
		mailer:     &fakeMailer{},
		outputDir:  filepath.Join(dir, "out"),
	}
	env.reports = NewReportService(repository.NewReportRepository(database), &fakeExcel{}, log)
	env.documents = NewDocumentService(
		env.clients,
		env.quotations,
		env.invoices,
		template.NewEngine(""),
		env.renderer,
		env.mailer,
		DocumentOptions{
			CompanyName:  "CSPzone",
			CurrencyName: "UAE Dirhams",
			OutputDir:    env.outputDir,
		},
		log,
	)

	clock := func() time.Time { return fixedNow }
	env.clients.now = clock
	env.quotations.now = clock
	env.invoices.now = clock
	env.reports.now = clock
	env.documents.now = clock
	return env
}

func (e *testEnv) resolveClient(t *testing.T, email string) int64 {
	t.Helper()
	res, err := e.clients.ResolveClient(context.Background(), model.ClientDescriptor{
		Name:             "Client " + email,
		Email:            email,
		Phone:            "+971500000000",
		Jurisdiction:     "IFZA",
		BusinessActivity: "Trading",
	})
	require.NoError(t, err)
	return res.ID
}

func (e *testEnv) createQuotation(t *testing.T, clientID int64, grand string) model.QuotationCreated {
	t.Helper()
	total := decimal.RequireFromString(grand)
	created, err := e.quotations.CreateQuotation(context.Background(), clientID, model.QuotationInput{
		Date:             fixedNow,
		Jurisdiction:     "IFZA",
		BusinessActivity: "Trading",
		ServiceKey:       "ifza",
		SubTotal:         total,
		VATTotal:         decimal.Zero,
		GrandTotal:       total,
	}, []model.ItemInput{
		{Description: "Licence fee", Quantity: decimal.NewFromInt(1), Rate: total, Amount: total},
	})
	require.NoError(t, err)
	return created
}

type fakeRenderer struct {
	mu     sync.Mutex
	bodies []string
	err    error
}

func (r *fakeRenderer) Render(_ context.Context, body, destPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.bodies = append(r.bodies, body)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte("%PDF-1.4 test"), 0o644)
}

type fakeMailer struct {
	mu       sync.Mutex
	messages []mail.Message
	err      error
}

func (m *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}

type fakeExcel struct {
	dashboards []model.Dashboard
	err        error
}

func (f *fakeExcel) Generate(d model.Dashboard) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.dashboards = append(f.dashboards, d)
	return []byte("xlsx"), nil
}

var errBoom = errors.New("boom")
