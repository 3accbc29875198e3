package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

type Invoice struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"client_id"`
	QuotationID int64           `json:"quotation_id"`
	InvoiceNo   string          `json:"invoice_no"`
	Date        time.Time       `json:"date"`
	DueDate     time.Time       `json:"due_date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      InvoiceStatus   `json:"status"`
	PDFPath     *string         `json:"pdf_path"`
	CreatedAt   time.Time       `json:"created_at"`
}

type InvoiceInput struct {
	Date    time.Time `json:"date"`
	DueDate time.Time `json:"due_date"`
}

type InvoiceCreated struct {
	ID        int64  `json:"id"`
	InvoiceNo string `json:"invoice_no"`
}
