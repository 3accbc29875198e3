package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/numbering"
)

type SequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next bumps the (docType, epoch) counter and returns the new value. It must
// run on the transaction that inserts the numbered document so a rollback
// releases the number.
func (r *SequenceRepository) Next(tx *gorm.DB, docType numbering.DocumentType, epoch int) (int64, error) {
	if !docType.Valid() {
		return 0, fmt.Errorf("unknown document type %q", docType)
	}
	var row struct {
		LastValue int64
	}
	err := tx.Raw(`
		INSERT INTO document_sequences (doc_type, epoch, last_value)
		VALUES (?, ?, 1)
		ON CONFLICT (doc_type, epoch)
		DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value
	`, string(docType), epoch).Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.LastValue == 0 {
		return 0, fmt.Errorf("sequence %s/%d returned no value", docType, epoch)
	}
	return row.LastValue, nil
}

// current returns the last allocated value, zero when nothing was allocated.
func (r *SequenceRepository) current(ctx context.Context, docType numbering.DocumentType, epoch int) (int64, error) {
	var row struct {
		LastValue int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT last_value
		FROM document_sequences
		WHERE doc_type = ? AND epoch = ?
	`, string(docType), epoch).Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.LastValue, nil
}

// SeedFromHistory raises every counter to at least the highest sequence
// already present in stored document numbers. Counters never move down.
// Numbers that do not parse are skipped.
func (r *SequenceRepository) SeedFromHistory(ctx context.Context) (map[numbering.DocumentType]map[int]int64, error) {
	sources := []struct {
		docType numbering.DocumentType
		query   string
	}{
		{numbering.Quotation, `SELECT quotation_no AS number FROM quotations`},
		{numbering.Invoice, `SELECT invoice_no AS number FROM invoices`},
	}

	seeded := make(map[numbering.DocumentType]map[int]int64, len(sources))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, src := range sources {
			var numbers []string
			if err := tx.Raw(src.query).Scan(&numbers).Error; err != nil {
				return err
			}

			highest := make(map[int]int64)
			for _, number := range numbers {
				_, epoch, seq, err := numbering.Parse(number)
				if err != nil {
					continue
				}
				if seq > highest[epoch] {
					highest[epoch] = seq
				}
			}

			for epoch, seq := range highest {
				if err := tx.Exec(`
					INSERT INTO document_sequences (doc_type, epoch, last_value)
					VALUES (?, ?, ?)
					ON CONFLICT (doc_type, epoch)
					DO UPDATE SET last_value = CASE
						WHEN excluded.last_value > document_sequences.last_value THEN excluded.last_value
						ELSE document_sequences.last_value
					END
				`, string(src.docType), epoch, seq).Error; err != nil {
					return err
				}
			}
			seeded[src.docType] = highest
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}
