package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/model"
)

// ReportRepository runs read-only aggregates over stored documents.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type amountRow struct {
	Total decimal.Decimal
}

type countRow struct {
	Total int64
}

func (r *ReportRepository) PaidRevenue(ctx context.Context, from, to *time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) AS total FROM invoices WHERE status = ?`
	args := []interface{}{string(model.InvoiceStatusPaid)}
	query, args = appendDateWindow(query, args, "date", from, to)

	var row amountRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *ReportRepository) Outstanding(ctx context.Context) (decimal.Decimal, error) {
	var row amountRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM invoices
		WHERE status = ?
	`, string(model.InvoiceStatusUnpaid)).Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// InvoiceCounts returns the number of invoices and how many of them are paid.
func (r *ReportRepository) InvoiceCounts(ctx context.Context) (total, paid int64, err error) {
	var row struct {
		Total int64
		Paid  int64
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS paid
		FROM invoices
	`, string(model.InvoiceStatusPaid)).Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Total, row.Paid, nil
}

func (r *ReportRepository) CountClients(ctx context.Context, from, to *time.Time) (int64, error) {
	query := `SELECT COUNT(*) AS total FROM clients WHERE 1 = 1`
	query, args := appendDateWindow(query, nil, "created_at", from, to)

	var row countRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

func (r *ReportRepository) CountQuotationsSince(ctx context.Context, since time.Time) (int64, error) {
	var row countRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total FROM quotations WHERE created_at >= ?
	`, since).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

// CountInvoicesSince counts invoices created since the given instant,
// optionally restricted to one status.
func (r *ReportRepository) CountInvoicesSince(ctx context.Context, since time.Time, status *model.InvoiceStatus) (int64, error) {
	query := `SELECT COUNT(*) AS total FROM invoices WHERE created_at >= ?`
	args := []interface{}{since}
	if status != nil {
		query += " AND status = ?"
		args = append(args, string(*status))
	}

	var row countRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

func (r *ReportRepository) CountInvoicesByStatus(ctx context.Context, status model.InvoiceStatus) (int64, error) {
	var row countRow
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total FROM invoices WHERE status = ?
	`, string(status)).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Total, nil
}

// LastPaidInvoice returns nil when nothing has been paid yet.
func (r *ReportRepository) LastPaidInvoice(ctx context.Context) (*model.LastPaidInvoice, error) {
	var row struct {
		InvoiceNo  string
		Amount     decimal.Decimal
		Date       time.Time
		ClientName string
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.invoice_no,
			i.amount,
			i.date,
			c.name AS client_name
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.status = ?
		ORDER BY i.created_at DESC, i.id DESC
		LIMIT 1
	`, string(model.InvoiceStatusPaid)).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.InvoiceNo == "" {
		return nil, nil
	}
	return &model.LastPaidInvoice{
		InvoiceNo:  row.InvoiceNo,
		Amount:     row.Amount,
		Date:       row.Date,
		ClientName: row.ClientName,
	}, nil
}

func (r *ReportRepository) RevenueByActivity(ctx context.Context) ([]model.AmountGroup, error) {
	var rows []model.AmountGroup
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			q.business_activity AS name,
			SUM(i.amount) AS total
		FROM invoices i
		JOIN quotations q ON q.id = i.quotation_id
		WHERE i.status = ?
		GROUP BY q.business_activity
		ORDER BY total DESC, name ASC
	`, string(model.InvoiceStatusPaid)).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TopServices ranks catalog services by quotation count, falling back to the
// business activity for quotations without a service key.
func (r *ReportRepository) TopServices(ctx context.Context, limit int) ([]model.CountGroup, error) {
	var rows []model.CountGroup
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(service_key, business_activity) AS name,
			COUNT(*) AS count
		FROM quotations
		GROUP BY COALESCE(service_key, business_activity)
		ORDER BY count DESC, name ASC
		LIMIT ?
	`, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) TopClients(ctx context.Context, limit int) ([]model.AmountGroup, error) {
	var rows []model.AmountGroup
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.name AS name,
			SUM(i.amount) AS total
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.status = ?
		GROUP BY c.id, c.name
		ORDER BY total DESC, name ASC
		LIMIT ?
	`, string(model.InvoiceStatusPaid), limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) QuotationStatusCounts(ctx context.Context) ([]model.CountGroup, error) {
	var rows []model.CountGroup
	if err := r.db.WithContext(ctx).Raw(`
		SELECT status AS name, COUNT(*) AS count
		FROM quotations
		GROUP BY status
		ORDER BY status ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func appendDateWindow(query string, args []interface{}, column string, from, to *time.Time) (string, []interface{}) {
	if from != nil {
		query += " AND " + column + " >= ?"
		args = append(args, *from)
	}
	if to != nil {
		query += " AND " + column + " < ?"
		args = append(args, *to)
	}
	return query, args
}
