package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cspzone/docs-service/internal/catalog"
	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Services struct {
	Clients    *service.ClientService
	Quotations *service.QuotationService
	Invoices   *service.InvoiceService
	Documents  *service.DocumentService
	Reports    *service.ReportService
}

type Handler struct {
	svc Services
	log zerolog.Logger
	now func() time.Time
}

func NewHandler(svc Services, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log, now: time.Now}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", h.health)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/clients/resolve", h.resolveClient)
	protected.GET("/clients", h.listClients)
	protected.GET("/clients/by-email", h.findClientByEmail)
	protected.GET("/clients/:id/quotations", h.listClientQuotations)
	protected.GET("/clients/:id/invoices", h.listClientInvoices)

	protected.POST("/quotations", h.createQuotation)
	protected.POST("/quotations/expire", h.expireQuotations)
	protected.GET("/quotations/:id", h.getQuotation)
	protected.PATCH("/quotations/:id/status", h.setQuotationStatus)
	protected.POST("/quotations/:id/render", h.renderQuotation)
	protected.POST("/quotations/:id/send", h.sendQuotation)
	protected.POST("/quotations/:id/invoices", h.createInvoice)

	protected.GET("/invoices/:ref", h.getInvoice)
	protected.PATCH("/invoices/:ref/status", h.setInvoiceStatus)
	protected.POST("/invoices/:ref/render", h.renderInvoice)
	protected.POST("/invoices/:ref/send", h.sendInvoice)

	protected.POST("/render", h.render)
	protected.GET("/catalog", h.listCatalog)
	protected.GET("/catalog/:key", h.getCatalogEntry)

	protected.GET("/reports/dashboard", h.dashboard)
	protected.GET("/reports/dashboard.xlsx", h.dashboardXLSX)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) resolveClient(c *gin.Context) {
	var req model.ClientDescriptor
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.Clients.ResolveClient(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) listClients(c *gin.Context) {
	clients, err := h.svc.Clients.ListClients(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *Handler) findClientByEmail(c *gin.Context) {
	email := c.Query("email")
	client, err := h.svc.Clients.FindClientByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if client == nil {
		h.notFound(c, "client "+strings.TrimSpace(email))
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *Handler) listClientQuotations(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	quotations, err := h.svc.Quotations.ListQuotationsForClient(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotations)
}

func (h *Handler) listClientInvoices(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	invoices, err := h.svc.Invoices.ListInvoicesForClient(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

type createQuotationRequest struct {
	ClientID         int64             `json:"client_id" binding:"required"`
	Date             string            `json:"date"`
	ValidTill        string            `json:"valid_till"`
	Jurisdiction     string            `json:"jurisdiction"`
	BusinessActivity string            `json:"business_activity"`
	ServiceKey       string            `json:"service_key"`
	SubTotal         decimal.Decimal   `json:"sub_total"`
	VATTotal         decimal.Decimal   `json:"vat_total"`
	GrandTotal       decimal.Decimal   `json:"grand_total"`
	Remarks          string            `json:"remarks"`
	Items            []model.ItemInput `json:"items"`
}

func (h *Handler) createQuotation(c *gin.Context) {
	var req createQuotationRequest
	if !h.bind(c, &req) {
		return
	}
	date, err := service.ParseDate(req.Date)
	if err != nil {
		h.badRequest(c, "invalid date")
		return
	}
	validTill, err := service.ParseDate(req.ValidTill)
	if err != nil {
		h.badRequest(c, "invalid valid_till")
		return
	}

	created, err := h.svc.Quotations.CreateQuotation(c.Request.Context(), req.ClientID, model.QuotationInput{
		Date:             date,
		ValidTill:        validTill,
		Jurisdiction:     req.Jurisdiction,
		BusinessActivity: req.BusinessActivity,
		ServiceKey:       req.ServiceKey,
		SubTotal:         req.SubTotal,
		VATTotal:         req.VATTotal,
		GrandTotal:       req.GrandTotal,
		Remarks:          req.Remarks,
	}, req.Items)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) getQuotation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	q, err := h.svc.Quotations.GetQuotation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if q == nil {
		h.notFound(c, "quotation #"+c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, q)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) setQuotationStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req statusRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.Quotations.SetQuotationStatus(c.Request.Context(), id, model.QuotationStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type expireRequest struct {
	AsOf string `json:"as_of"`
}

func (h *Handler) expireQuotations(c *gin.Context) {
	var req expireRequest
	if !h.bindOptional(c, &req) {
		return
	}
	asOf, err := service.ParseDate(req.AsOf)
	if err != nil {
		h.badRequest(c, "invalid as_of")
		return
	}
	result, err := h.svc.Quotations.ExpireQuotations(c.Request.Context(), asOf)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) renderQuotation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	result, err := h.svc.Documents.RenderQuotation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) sendQuotation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req service.MailOverride
	if !h.bindOptional(c, &req) {
		return
	}
	result, err := h.svc.Documents.SendQuotation(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type createInvoiceRequest struct {
	Date    string `json:"date"`
	DueDate string `json:"due_date"`
}

func (h *Handler) createInvoice(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req createInvoiceRequest
	if !h.bindOptional(c, &req) {
		return
	}
	date, err := service.ParseDate(req.Date)
	if err != nil {
		h.badRequest(c, "invalid date")
		return
	}
	dueDate, err := service.ParseDate(req.DueDate)
	if err != nil {
		h.badRequest(c, "invalid due_date")
		return
	}

	created, err := h.svc.Invoices.CreateInvoiceFromQuotation(c.Request.Context(), id, model.InvoiceInput{
		Date:    date,
		DueDate: dueDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) getInvoice(c *gin.Context) {
	inv, err := h.svc.Invoices.FindInvoice(c.Request.Context(), c.Param("ref"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *Handler) setInvoiceStatus(c *gin.Context) {
	var req statusRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.Invoices.SetInvoiceStatus(c.Request.Context(), c.Param("ref"), model.InvoiceStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) renderInvoice(c *gin.Context) {
	result, err := h.svc.Documents.RenderInvoice(c.Request.Context(), c.Param("ref"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) sendInvoice(c *gin.Context) {
	var req service.MailOverride
	if !h.bindOptional(c, &req) {
		return
	}
	result, err := h.svc.Documents.SendInvoice(c.Request.Context(), c.Param("ref"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) render(c *gin.Context) {
	var req service.RawRender
	if !h.bind(c, &req) {
		return
	}
	result, err := h.svc.Documents.Render(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) listCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.List())
}

func (h *Handler) getCatalogEntry(c *gin.Context) {
	key := c.Param("key")
	svc, ok := catalog.Lookup(key)
	if !ok {
		h.notFound(c, "service "+key)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service":  svc,
		"sections": catalog.Sections(svc),
	})
}

func (h *Handler) dashboard(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}
	d, err := h.svc.Reports.Dashboard(c.Request.Context(), period)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) dashboardXLSX(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("period"), h.now())
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.svc.Reports.ExportDashboard(c.Request.Context(), period)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.badRequest(c, err.Error())
		return false
	}
	return true
}

// bindOptional accepts an empty body.
func (h *Handler) bindOptional(c *gin.Context, dst interface{}) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return h.bind(c, dst)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.badRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": service.KindValidation, "message": message})
}

func (h *Handler) notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": service.KindNotFound, "message": what + " not found"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	kind := service.KindOf(err)
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrRender), errors.Is(err, service.ErrMail):
		status = http.StatusBadGateway
	case errors.Is(err, service.ErrStore):
	default:
		message = "internal error"
	}

	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, gin.H{"error": kind, "message": message})
}
