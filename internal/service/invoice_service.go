package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/repository"
)

type InvoiceService struct {
	invoices    *repository.InvoiceRepository
	paymentDays int
	log         zerolog.Logger
	now         func() time.Time
}

func NewInvoiceService(invoices *repository.InvoiceRepository, paymentDays int, log zerolog.Logger) *InvoiceService {
	if paymentDays <= 0 {
		paymentDays = 30
	}
	return &InvoiceService{
		invoices:    invoices,
		paymentDays: paymentDays,
		log:         log,
		now:         time.Now,
	}
}

// CreateInvoiceFromQuotation bills a quotation's grand total to its client.
// Several invoices may be raised against one quotation.
func (s *InvoiceService) CreateInvoiceFromQuotation(
	ctx context.Context,
	quotationID int64,
	input model.InvoiceInput,
) (model.InvoiceCreated, error) {
	if quotationID <= 0 {
		return model.InvoiceCreated{}, validationError("quotation_id is required")
	}

	now := s.now().UTC()
	date := dateOnly(now)
	if !input.Date.IsZero() {
		date = dateOnly(input.Date)
	}
	dueDate := date.AddDate(0, 0, s.paymentDays)
	if !input.DueDate.IsZero() {
		dueDate = dateOnly(input.DueDate)
	}
	if dueDate.Before(date) {
		return model.InvoiceCreated{}, validationError("due_date must not be before date")
	}

	created, err := s.invoices.CreateFromQuotation(ctx, quotationID, date, dueDate, timestamp(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.InvoiceCreated{}, storeError("quotation "+formatID(quotationID), err)
		}
		return model.InvoiceCreated{}, storeError("create invoice", err)
	}

	s.log.Info().
		Int64("invoice_id", created.ID).
		Str("invoice_no", created.InvoiceNo).
		Int64("quotation_id", quotationID).
		Msg("invoice created")
	return created, nil
}

// GetInvoice returns nil without error when the id is unknown.
func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*model.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("get invoice", err)
	}
	return inv, nil
}

// GetInvoiceByNumber returns nil without error when the number is unknown.
func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	inv, err := s.invoices.GetByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("get invoice", err)
	}
	return inv, nil
}

// FindInvoice accepts either a surrogate id or an invoice number and fails
// with ErrNotFound when neither matches.
func (s *InvoiceService) FindInvoice(ctx context.Context, ref string) (*model.Invoice, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, validationError("invoice reference is required")
	}

	var (
		inv *model.Invoice
		err error
	)
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		inv, err = s.GetInvoice(ctx, id)
	} else {
		inv, err = s.GetInvoiceByNumber(ctx, ref)
	}
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, storeError("invoice "+ref, gorm.ErrRecordNotFound)
	}
	return inv, nil
}

func (s *InvoiceService) ListInvoicesForClient(ctx context.Context, clientID int64) ([]model.Invoice, error) {
	invoices, err := s.invoices.ListByClient(ctx, clientID)
	if err != nil {
		return nil, storeError("list invoices", err)
	}
	if invoices == nil {
		invoices = []model.Invoice{}
	}
	return invoices, nil
}

// SetInvoiceStatus flips an invoice between unpaid and paid. Repeating the
// current status reports zero updates.
func (s *InvoiceService) SetInvoiceStatus(ctx context.Context, ref string, status model.InvoiceStatus) (model.StatusUpdate, error) {
	status = model.InvoiceStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return model.StatusUpdate{}, validationError("unknown invoice status %q", status)
	}

	inv, err := s.FindInvoice(ctx, ref)
	if err != nil {
		return model.StatusUpdate{}, err
	}
	if inv.Status == status {
		return model.StatusUpdate{Updated: 0}, nil
	}

	updated, err := s.invoices.UpdateStatus(ctx, inv.ID, inv.Status, status)
	if err != nil {
		return model.StatusUpdate{}, storeError("update invoice status", err)
	}
	if updated == 0 {
		// lost a race; only a different outcome is a conflict
		latest, err := s.GetInvoice(ctx, inv.ID)
		if err != nil {
			return model.StatusUpdate{}, err
		}
		if latest != nil && latest.Status == status {
			return model.StatusUpdate{Updated: 0}, nil
		}
		return model.StatusUpdate{}, conflictError("invoice %s changed status concurrently", inv.InvoiceNo)
	}

	s.log.Info().
		Str("invoice_no", inv.InvoiceNo).
		Str("from", string(inv.Status)).
		Str("to", string(status)).
		Msg("invoice status changed")
	return model.StatusUpdate{Updated: updated}, nil
}

func (s *InvoiceService) SetPDFPath(ctx context.Context, id int64, path string) error {
	updated, err := s.invoices.SetPDFPath(ctx, id, path)
	if err != nil {
		return storeError("record invoice pdf", err)
	}
	if updated == 0 {
		return storeError("invoice "+formatID(id), gorm.ErrRecordNotFound)
	}
	return nil
}
