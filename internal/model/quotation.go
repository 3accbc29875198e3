package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusExpired  QuotationStatus = "expired"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusPending, QuotationStatusAccepted, QuotationStatusRejected, QuotationStatusExpired:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a quotation may move from s to next.
// Only pending quotations move; accepted, rejected and expired are final.
func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	if s != QuotationStatusPending {
		return false
	}
	switch next {
	case QuotationStatusAccepted, QuotationStatusRejected, QuotationStatusExpired:
		return true
	default:
		return false
	}
}

type Quotation struct {
	ID               int64           `json:"id"`
	ClientID         int64           `json:"client_id"`
	QuotationNo      string          `json:"quotation_no"`
	Date             time.Time       `json:"date"`
	ValidTill        time.Time       `json:"valid_till"`
	Jurisdiction     string          `json:"jurisdiction"`
	BusinessActivity string          `json:"business_activity"`
	ServiceKey       *string         `json:"service_key,omitempty"`
	SubTotal         decimal.Decimal `json:"sub_total"`
	VATTotal         decimal.Decimal `json:"vat_total"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	Status           QuotationStatus `json:"status"`
	Remarks          string          `json:"remarks"`
	PDFPath          *string         `json:"pdf_path"`
	CreatedAt        time.Time       `json:"created_at"`
	Items            []QuotationItem `json:"items,omitempty" gorm:"-"`
}

type QuotationItem struct {
	ID          int64           `json:"id"`
	QuotationID int64           `json:"quotation_id"`
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	VATPercent  decimal.Decimal `json:"vat_percent"`
	Amount      decimal.Decimal `json:"amount"`
}

// QuotationInput carries the caller-computed fields of a new quotation.
type QuotationInput struct {
	Date             time.Time       `json:"date"`
	ValidTill        time.Time       `json:"valid_till"`
	Jurisdiction     string          `json:"jurisdiction"`
	BusinessActivity string          `json:"business_activity"`
	ServiceKey       string          `json:"service_key"`
	SubTotal         decimal.Decimal `json:"sub_total"`
	VATTotal         decimal.Decimal `json:"vat_total"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	Remarks          string          `json:"remarks"`
}

type ItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	VATPercent  decimal.Decimal `json:"vat_percent"`
	Amount      decimal.Decimal `json:"amount"`
}

type QuotationCreated struct {
	ID          int64  `json:"id"`
	QuotationNo string `json:"quotation_no"`
}

type StatusUpdate struct {
	Updated int64 `json:"updated"`
}
