package payment

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const paymentColumns = `id, client_id, facility_id, amount_cents, method, paid_at, created_at`

func (r *repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	var created Payment
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO payments (client_id, facility_id, amount_cents, method, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+paymentColumns+`
	`, p.ClientID, p.FacilityID, p.AmountCents, p.Method, p.PaidAt)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) CreateWithClientUpdate(ctx context.Context, p *Payment, clientStatus string, planExpiresAt time.Time) (*Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var created Payment
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO payments (client_id, facility_id, amount_cents, method, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+paymentColumns+`
	`, p.ClientID, p.FacilityID, p.AmountCents, p.Method, p.PaidAt).StructScan(&created)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE clients
		SET status = $2, plan_expires_at = $3
		WHERE id = $1
	`, p.ClientID, clientStatus, planExpiresAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetAllByFacility(ctx context.Context, facilityID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE facility_id = $1
		ORDER BY paid_at DESC
	`, facilityID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) GetAllByClient(ctx context.Context, clientID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE client_id = $1
		ORDER BY paid_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
