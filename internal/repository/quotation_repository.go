package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/model"
	"github.com/cspzone/docs-service/internal/numbering"
)

type QuotationRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
}

func NewQuotationRepository(db *gorm.DB, sequences *SequenceRepository) *QuotationRepository {
	return &QuotationRepository{db: db, sequences: sequences}
}

const quotationColumns = `
	id,
	client_id,
	quotation_no,
	date,
	valid_till,
	jurisdiction,
	business_activity,
	service_key,
	sub_total,
	vat_total,
	grand_total,
	status,
	remarks,
	pdf_path,
	created_at
`

// Create allocates the next quotation number and stores the quotation with
// its items. Either everything commits or nothing does.
func (r *QuotationRepository) Create(ctx context.Context, q model.Quotation, items []model.QuotationItem) (model.QuotationCreated, error) {
	var created model.QuotationCreated
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		epoch := numbering.EpochOf(q.Date)
		seq, err := r.sequences.Next(tx, numbering.Quotation, epoch)
		if err != nil {
			return err
		}
		number := numbering.Format(numbering.Quotation, epoch, seq)

		var saved struct {
			ID int64
		}
		err = tx.Raw(`
			INSERT INTO quotations (
				client_id,
				quotation_no,
				date,
				valid_till,
				jurisdiction,
				business_activity,
				service_key,
				sub_total,
				vat_total,
				grand_total,
				status,
				remarks,
				created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id
		`,
			q.ClientID,
			number,
			q.Date,
			q.ValidTill,
			q.Jurisdiction,
			q.BusinessActivity,
			q.ServiceKey,
			q.SubTotal,
			q.VATTotal,
			q.GrandTotal,
			string(q.Status),
			q.Remarks,
			q.CreatedAt,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		for i, item := range items {
			if err := tx.Exec(`
				INSERT INTO quotation_items (
					quotation_id,
					position,
					description,
					quantity,
					rate,
					vat_percent,
					amount
				) VALUES (?, ?, ?, ?, ?, ?, ?)
			`,
				saved.ID,
				i+1,
				item.Description,
				item.Quantity,
				item.Rate,
				item.VATPercent,
				item.Amount,
			).Error; err != nil {
				return err
			}
		}

		created = model.QuotationCreated{ID: saved.ID, QuotationNo: number}
		return nil
	})
	if err != nil {
		return model.QuotationCreated{}, err
	}
	return created, nil
}

// GetByID returns the quotation with its items in submission order.
func (r *QuotationRepository) GetByID(ctx context.Context, id int64) (*model.Quotation, error) {
	var q model.Quotation
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+quotationColumns+`
		FROM quotations
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&q).Error; err != nil {
		return nil, err
	}
	if q.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	items, err := r.ListItems(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	q.Items = items
	return &q, nil
}

func (r *QuotationRepository) ListItems(ctx context.Context, quotationID int64) ([]model.QuotationItem, error) {
	var items []model.QuotationItem
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			quotation_id,
			position,
			description,
			quantity,
			rate,
			vat_percent,
			amount
		FROM quotation_items
		WHERE quotation_id = ?
		ORDER BY position ASC, id ASC
	`, quotationID).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByClient returns the client's quotations newest first, without items.
func (r *QuotationRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Quotation, error) {
	var quotations []model.Quotation
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+quotationColumns+`
		FROM quotations
		WHERE client_id = ?
		ORDER BY created_at DESC, id DESC
	`, clientID).Scan(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// UpdateStatus moves a quotation from one status to another. It returns the
// number of rows changed; zero means the status no longer matched from.
func (r *QuotationRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	from, to model.QuotationStatus,
) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE quotations
		SET status = ?
		WHERE id = ? AND status = ?
	`, string(to), id, string(from))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ExpireBefore marks every pending quotation whose validity ended before asOf
// as expired.
func (r *QuotationRepository) ExpireBefore(ctx context.Context, asOf time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE quotations
		SET status = ?
		WHERE status = ? AND valid_till < ?
	`, string(model.QuotationStatusExpired), string(model.QuotationStatusPending), asOf)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *QuotationRepository) SetPDFPath(ctx context.Context, id int64, path string) (int64, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE quotations SET pdf_path = ? WHERE id = ?
	`, path, id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
