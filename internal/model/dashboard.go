package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a half-open reporting window [From, To).
type Period struct {
	Label string    `json:"label"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

type Dashboard struct {
	Period            Period          `json:"period"`
	GeneratedAt       time.Time       `json:"generated_at"`
	Revenue           RevenueOverview `json:"revenue"`
	Activity          RecentActivity  `json:"activity"`
	RevenueByActivity []AmountGroup   `json:"revenue_by_activity"`
	TopServices       []CountGroup    `json:"top_services"`
	TopClients        []AmountGroup   `json:"top_clients"`
	QuotationStatuses []CountGroup    `json:"quotation_statuses"`
}

type RevenueOverview struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	PeriodRevenue     decimal.Decimal `json:"period_revenue"`
	Outstanding       decimal.Decimal `json:"outstanding"`
	ConversionPercent decimal.Decimal `json:"conversion_percent"`
	AverageDeal       decimal.Decimal `json:"average_deal"`
	TotalClients      int64           `json:"total_clients"`
	PeriodClients     int64           `json:"period_clients"`
}

type RecentActivity struct {
	Quotations      int64            `json:"quotations"`
	Invoices        int64            `json:"invoices"`
	PaidInvoices    int64            `json:"paid_invoices"`
	PendingInvoices int64            `json:"pending_invoices"`
	LastPaid        *LastPaidInvoice `json:"last_paid,omitempty"`
}

type LastPaidInvoice struct {
	InvoiceNo  string          `json:"invoice_no"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	ClientName string          `json:"client_name"`
}

type AmountGroup struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

type CountGroup struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
