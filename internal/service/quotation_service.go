package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/repository"
)

type QuotationService struct {
	clients      *repository.ClientRepository
	quotations   *repository.QuotationRepository
	validityDays int
	log          zerolog.Logger
	now          func() time.Time
}

func NewQuotationService(
	clients *repository.ClientRepository,
	quotations *repository.QuotationRepository,
	validityDays int,
	log zerolog.Logger,
) *QuotationService {
	if validityDays <= 0 {
		validityDays = 30
	}
	return &QuotationService{
		clients:      clients,
		quotations:   quotations,
		validityDays: validityDays,
		log:          log,
		now:          time.Now,
	}
}

// CreateQuotation stores a quotation and its items under the next quotation
// number. Totals and item amounts are taken as given.
func (s *QuotationService) CreateQuotation(
	ctx context.Context,
	clientID int64,
	input model.QuotationInput,
	items []model.ItemInput,
) (model.QuotationCreated, error) {
	if clientID <= 0 {
		return model.QuotationCreated{}, validationError("client_id is required")
	}
	if !input.GrandTotal.Equal(input.SubTotal.Add(input.VATTotal)) {
		return model.QuotationCreated{}, validationError(
			"grand_total %s does not equal sub_total %s + vat_total %s",
			input.GrandTotal.String(), input.SubTotal.String(), input.VATTotal.String(),
		)
	}

	rows := make([]model.QuotationItem, 0, len(items))
	for i, item := range items {
		description := strings.TrimSpace(item.Description)
		if description == "" {
			return model.QuotationCreated{}, validationError("item %d: description is required", i+1)
		}
		if item.Amount.IsNegative() {
			return model.QuotationCreated{}, validationError("item %d: amount must not be negative", i+1)
		}
		rows = append(rows, model.QuotationItem{
			Position:    i + 1,
			Description: description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			VATPercent:  item.VATPercent,
			Amount:      item.Amount,
		})
	}

	exists, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return model.QuotationCreated{}, storeError("check client", err)
	}
	if !exists {
		return model.QuotationCreated{}, validationError("client %d does not exist", clientID)
	}

	now := s.now().UTC()
	date := dateOnly(now)
	if !input.Date.IsZero() {
		date = dateOnly(input.Date)
	}
	validTill := date.AddDate(0, 0, s.validityDays)
	if !input.ValidTill.IsZero() {
		validTill = dateOnly(input.ValidTill)
	}
	if validTill.Before(date) {
		return model.QuotationCreated{}, validationError("valid_till must not be before date")
	}

	var serviceKey *string
	if key := strings.TrimSpace(input.ServiceKey); key != "" {
		serviceKey = &key
	}

	created, err := s.quotations.Create(ctx, model.Quotation{
		ClientID:         clientID,
		Date:             date,
		ValidTill:        validTill,
		Jurisdiction:     strings.TrimSpace(input.Jurisdiction),
		BusinessActivity: strings.TrimSpace(input.BusinessActivity),
		ServiceKey:       serviceKey,
		SubTotal:         input.SubTotal,
		VATTotal:         input.VATTotal,
		GrandTotal:       input.GrandTotal,
		Status:           model.QuotationStatusPending,
		Remarks:          input.Remarks,
		CreatedAt:        timestamp(now),
	}, rows)
	if err != nil {
		return model.QuotationCreated{}, storeError("create quotation", err)
	}

	s.log.Info().
		Int64("quotation_id", created.ID).
		Str("quotation_no", created.QuotationNo).
		Int64("client_id", clientID).
		Int("items", len(rows)).
		Msg("quotation created")
	return created, nil
}

// GetQuotation returns nil without error when the id is unknown.
func (s *QuotationService) GetQuotation(ctx context.Context, id int64) (*model.Quotation, error) {
	q, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("get quotation", err)
	}
	if q.Items == nil {
		q.Items = []model.QuotationItem{}
	}
	return q, nil
}

func (s *QuotationService) ListQuotationsForClient(ctx context.Context, clientID int64) ([]model.Quotation, error) {
	quotations, err := s.quotations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, storeError("list quotations", err)
	}
	if quotations == nil {
		quotations = []model.Quotation{}
	}
	return quotations, nil
}

// SetQuotationStatus moves a pending quotation to accepted, rejected or
// expired. Repeating the current status reports zero updates.
func (s *QuotationService) SetQuotationStatus(ctx context.Context, id int64, status model.QuotationStatus) (model.StatusUpdate, error) {
	status = model.QuotationStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return model.StatusUpdate{}, validationError("unknown quotation status %q", status)
	}

	current, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.StatusUpdate{}, storeError("quotation "+formatID(id), err)
		}
		return model.StatusUpdate{}, storeError("load quotation", err)
	}
	if current.Status == status {
		return model.StatusUpdate{Updated: 0}, nil
	}
	if !current.Status.CanTransitionTo(status) {
		return model.StatusUpdate{}, validationError(
			"quotation %s cannot move from %s to %s", current.QuotationNo, current.Status, status,
		)
	}

	updated, err := s.quotations.UpdateStatus(ctx, id, current.Status, status)
	if err != nil {
		return model.StatusUpdate{}, storeError("update quotation status", err)
	}
	if updated == 0 {
		latest, err := s.GetQuotation(ctx, id)
		if err != nil {
			return model.StatusUpdate{}, err
		}
		if latest != nil && latest.Status == status {
			return model.StatusUpdate{Updated: 0}, nil
		}
		return model.StatusUpdate{}, conflictError("quotation %s changed status concurrently", current.QuotationNo)
	}

	s.log.Info().
		Int64("quotation_id", id).
		Str("from", string(current.Status)).
		Str("to", string(status)).
		Msg("quotation status changed")
	return model.StatusUpdate{Updated: updated}, nil
}

// ExpireQuotations expires pending quotations whose valid_till is before asOf.
func (s *QuotationService) ExpireQuotations(ctx context.Context, asOf time.Time) (model.StatusUpdate, error) {
	if asOf.IsZero() {
		asOf = s.now().UTC()
	}
	updated, err := s.quotations.ExpireBefore(ctx, dateOnly(asOf))
	if err != nil {
		return model.StatusUpdate{}, storeError("expire quotations", err)
	}
	if updated > 0 {
		s.log.Info().Int64("updated", updated).Msg("quotations expired")
	}
	return model.StatusUpdate{Updated: updated}, nil
}

func (s *QuotationService) SetPDFPath(ctx context.Context, id int64, path string) error {
	updated, err := s.quotations.SetPDFPath(ctx, id, path)
	if err != nil {
		return storeError("record quotation pdf", err)
	}
	if updated == 0 {
		return storeError("quotation "+formatID(id), gorm.ErrRecordNotFound)
	}
	return nil
}
