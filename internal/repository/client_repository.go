package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/cspzone/docs-service/internal/model"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `
	id,
	name,
	email,
	phone,
	jurisdiction,
	business_activity,
	created_at,
	updated_at
`

// Resolve inserts the client, or updates the descriptive fields of the row
// already holding its email, inside one transaction. The insert yields to a
// concurrent insert of the same email, so racing callers both succeed. The
// email must already be normalised.
func (r *ClientRepository) Resolve(ctx context.Context, client model.Client, now time.Time) (model.ResolveResult, error) {
	var result model.ResolveResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inserted struct {
			ID int64
		}
		if err := tx.Raw(`
			INSERT INTO clients (
				name,
				email,
				phone,
				jurisdiction,
				business_activity,
				created_at,
				updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (email) DO NOTHING
			RETURNING id
		`,
			client.Name,
			client.Email,
			client.Phone,
			client.Jurisdiction,
			client.BusinessActivity,
			now,
			now,
		).Scan(&inserted).Error; err != nil {
			return err
		}
		if inserted.ID != 0 {
			result = model.ResolveResult{ID: inserted.ID, Action: model.ResolveActionCreated}
			return nil
		}

		var updated struct {
			ID int64
		}
		if err := tx.Raw(`
			UPDATE clients
			SET
				name = ?,
				phone = ?,
				jurisdiction = ?,
				business_activity = ?,
				updated_at = ?
			WHERE email = ?
			RETURNING id
		`,
			client.Name,
			client.Phone,
			client.Jurisdiction,
			client.BusinessActivity,
			now,
			client.Email,
		).Scan(&updated).Error; err != nil {
			return err
		}
		if updated.ID == 0 {
			return gorm.ErrRecordNotFound
		}
		result = model.ResolveResult{ID: updated.ID, Action: model.ResolveActionUpdated}
		return nil
	})
	if err != nil {
		return model.ResolveResult{}, err
	}
	return result, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&client).Error; err != nil {
		return nil, err
	}
	if client.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &client, nil
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+clientColumns+`
		FROM clients
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&client).Error; err != nil {
		return nil, err
	}
	if client.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &client, nil
}

// List returns every client, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := r.db.WithContext(ctx).Raw(`
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY created_at DESC, id DESC
	`).Scan(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var row struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total FROM clients WHERE id = ?
	`, id).Scan(&row).Error; err != nil {
		return false, err
	}
	return row.Total > 0, nil
}
