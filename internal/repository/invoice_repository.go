package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/numbering"
)

type InvoiceRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
}

func NewInvoiceRepository(db *gorm.DB, sequences *SequenceRepository) *InvoiceRepository {
	return &InvoiceRepository{db: db, sequences: sequences}
}

const invoiceColumns = `
	id,
	client_id,
	quotation_id,
	invoice_no,
	date,
	due_date,
	amount,
	status,
	pdf_path,
	created_at
`

// CreateFromQuotation bills the quotation's grand total to its client under a
// freshly allocated invoice number. It returns gorm.ErrRecordNotFound when the
// quotation does not exist.
func (r *InvoiceRepository) CreateFromQuotation(
	ctx context.Context,
	quotationID int64,
	date, dueDate, createdAt time.Time,
) (model.InvoiceCreated, error) {
	var created model.InvoiceCreated
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var source struct {
			ID         int64
			ClientID   int64
			GrandTotal decimal.Decimal
		}
		if err := tx.Raw(`
			SELECT id, client_id, grand_total
			FROM quotations
			WHERE id = ?
			LIMIT 1
		`, quotationID).Scan(&source).Error; err != nil {
			return err
		}
		if source.ID == 0 {
			return gorm.ErrRecordNotFound
		}

		epoch := numbering.EpochOf(date)
		seq, err := r.sequences.Next(tx, numbering.Invoice, epoch)
		if err != nil {
			return err
		}
		number := numbering.Format(numbering.Invoice, epoch, seq)

		var saved struct {
			ID int64
		}
		if err := tx.Raw(`
			INSERT INTO invoices (
				client_id,
				quotation_id,
				invoice_no,
				date,
				due_date,
				amount,
				status,
				created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id
		`,
			source.ClientID,
			source.ID,
			number,
			date,
			dueDate,
			source.GrandTotal,
			string(model.InvoiceStatusUnpaid),
			createdAt,
		).Scan(&saved).Error; err != nil {
			return err
		}

		created = model.InvoiceCreated{ID: saved.ID, InvoiceNo: number}
		return nil
	})
	if err != nil {
		return model.InvoiceCreated{}, err
	}
	return created, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	var inv model.Invoice
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&inv).Error; err != nil {
		return nil, err
	}
	if inv.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}

func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*model.Invoice, error) {
	var inv model.Invoice
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE invoice_no = ?
		LIMIT 1
	`, number).Scan(&inv).Error; err != nil {
		return nil, err
	}
	if inv.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE client_id = ?
		ORDER BY created_at DESC, id DESC
	`, clientID).Scan(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// UpdateStatus changes the invoice status when it still equals from.
func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id int64, from, to model.InvoiceStatus) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE invoices
		SET status = ?
		WHERE id = ? AND status = ?
	`, string(to), id, string(from))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *InvoiceRepository) SetPDFPath(ctx context.Context, id int64, path string) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE invoices SET pdf_path = ? WHERE id = ?
	`, path, id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
