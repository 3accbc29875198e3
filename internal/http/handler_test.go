package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cspzone/docs-service/internal/auth"
	"github.com/cspzone/docs-service/internal/config"
	"github.com/cspzone/docs-service/internal/db"
	"github.com/cspzone/docs-service/internal/excel"
	"github.com/cspzone/docs-service/internal/http/middleware"
	"github.com/cspzone/docs-service/internal/mail"
	"github.com/cspzone/docs-service/internal/repository"
	"github.com/cspzone/docs-service/internal/service"
	"github.com/cspzone/docs-service/internal/template"
)

type stubRenderer struct {
	err error
}

func (r *stubRenderer) Render(_ context.Context, _ string, destPath string) error {
	if r.err != nil {
		return r.err
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte("%PDF-1.4"), 0o644)
}

type stubMailer struct {
	sent []mail.Message
}

func (m *stubMailer) Send(_ context.Context, msg mail.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type testServer struct {
	router   *gin.Engine
	renderer *stubRenderer
	mailer   *stubMailer
}

func newTestServer(t *testing.T, secret string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	database, err := db.Open(config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(dir, "http.db"),
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
	clients := service.NewClientService(clientRepo, log)
	quotations := service.NewQuotationService(clientRepo, repository.NewQuotationRepository(database, sequences), 30, log)
	invoices := service.NewInvoiceService(repository.NewInvoiceRepository(database, sequences), 30, log)

	renderer := &stubRenderer{}
	mailer := &stubMailer{}
	documents := service.NewDocumentService(clients, quotations, invoices, template.NewEngine(""), renderer, mailer,
		service.DocumentOptions{CompanyName: "CSPzone", CurrencyName: "UAE Dirhams", OutputDir: filepath.Join(dir, "out")}, log)
	reports := service.NewReportService(repository.NewReportRepository(database), excel.NewGenerator(), log)

	handler := NewHandler(Services{
		Clients:    clients,
		Quotations: quotations,
		Invoices:   invoices,
		Documents:  documents,
		Reports:    reports,
	}, log)
	router := NewRouter(handler, middleware.Auth(auth.NewParser(secret)), RouterConfig{Environment: "test"}, log)
	return &testServer{router: router, renderer: renderer, mailer: mailer}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func (s *testServer) seedQuotation(t *testing.T) int64 {
	t.Helper()
	w := s.do(t, http.MethodPost, "/clients/resolve", map[string]string{
		"name":  "Acme",
		"email": "acme@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var client struct {
		ID     int64  `json:"id"`
		Action string `json:"action"`
	}
	decode(t, w, &client)
	assert.Equal(t, "created", client.Action)

	w = s.do(t, http.MethodPost, "/quotations", map[string]interface{}{
		"client_id":         client.ID,
		"date":              "2026-03-10",
		"business_activity": "Trading",
		"service_key":       "ifza",
		"sub_total":         "1000",
		"vat_total":         "50",
		"grand_total":       "1050",
		"items": []map[string]interface{}{
			{"description": "Licence", "quantity": 1, "rate": "1000", "vat_percent": 5, "amount": "1050"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID          int64  `json:"id"`
		QuotationNo string `json:"quotation_no"`
	}
	decode(t, w, &created)
	assert.Equal(t, "Q-2026-0001", created.QuotationNo)
	return created.ID
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "")
	w := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestQuotationLifecycle(t *testing.T) {
	s := newTestServer(t, "")
	id := s.seedQuotation(t)
	require.Equal(t, int64(1), id)

	w := s.do(t, http.MethodGet, "/quotations/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var q struct {
		QuotationNo string `json:"quotation_no"`
		Status      string `json:"status"`
		Items       []struct {
			Description string `json:"description"`
		} `json:"items"`
	}
	decode(t, w, &q)
	assert.Equal(t, "pending", q.Status)
	require.Len(t, q.Items, 1)
	assert.Equal(t, "Licence", q.Items[0].Description)

	w = s.do(t, http.MethodPatch, "/quotations/1/status", map[string]string{"status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":1}`, w.Body.String())

	w = s.do(t, http.MethodPatch, "/quotations/1/status", map[string]string{"status": "rejected"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"validation"`)

	w = s.do(t, http.MethodPost, "/quotations/1/render", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "quotation_Q-2026-0001_")

	w = s.do(t, http.MethodPost, "/quotations/1/send", map[string]string{"to": "boss@example.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, s.mailer.sent, 1)
	assert.Equal(t, "boss@example.com", s.mailer.sent[0].To)

	w = s.do(t, http.MethodGet, "/clients/1/quotations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	decode(t, w, &list)
	assert.Len(t, list, 1)
}

func TestInvoiceLifecycle(t *testing.T) {
	s := newTestServer(t, "")
	s.seedQuotation(t)

	w := s.do(t, http.MethodPost, "/quotations/1/invoices", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"invoice_no":"INV-`)

	w = s.do(t, http.MethodGet, "/invoices/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inv struct {
		InvoiceNo string `json:"invoice_no"`
		Amount    string `json:"amount"`
		Status    string `json:"status"`
	}
	decode(t, w, &inv)
	assert.Equal(t, "unpaid", inv.Status)
	assert.Equal(t, "1050", inv.Amount)

	w = s.do(t, http.MethodPatch, "/invoices/"+inv.InvoiceNo+"/status", map[string]string{"status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":1}`, w.Body.String())

	w = s.do(t, http.MethodPatch, "/invoices/"+inv.InvoiceNo+"/status", map[string]string{"status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":0}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/invoices/"+inv.InvoiceNo+"/send", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, s.mailer.sent[0].Subject, inv.InvoiceNo)

	w = s.do(t, http.MethodGet, "/clients/1/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodGet, "/quotations/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"not_found"`)

	w = s.do(t, http.MethodGet, "/quotations/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/invoices/INV-2026-0404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/quotations", map[string]interface{}{"client_id": 5, "sub_total": 1, "grand_total": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/clients/by-email?email=ghost@example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	s.seedQuotation(t)
	s.renderer.err = assert.AnError
	w = s.do(t, http.MethodPost, "/quotations/1/render", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"render"`)
}

func TestRenderAndCatalog(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(t, http.MethodPost, "/render", map[string]interface{}{
		"template":    "<h1>{{CLIENT_NAME}}</h1>{{SCOPE_OF_SERVICES}}",
		"fields":      map[string]string{"CLIENT_NAME": "Acme"},
		"service_key": "ifza",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		HTML string `json:"html"`
	}
	decode(t, w, &out)
	assert.Contains(t, out.HTML, "<h1>Acme</h1><p>RAS Corporate Advisors")

	w = s.do(t, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]interface{}
	decode(t, w, &entries)
	assert.Len(t, entries, 13)

	w = s.do(t, http.MethodGet, "/catalog/ifza", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/catalog/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardEndpoints(t *testing.T) {
	s := newTestServer(t, "")
	s.seedQuotation(t)

	w := s.do(t, http.MethodGet, "/reports/dashboard?period=2026", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"label":"2026"`)

	w = s.do(t, http.MethodGet, "/reports/dashboard?period=someday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/reports/dashboard.xlsx?period=03-2026", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dashboard-20260301-20260331.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, "secret")

	w := s.do(t, http.MethodGet, "/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
