package plan

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, facilityID int, name string, priceCents int64, durationMonths int) (*Plan, error) {
	query := `
		INSERT INTO plans (facility_id, name, price_cents, duration_months)
		VALUES ($1, $2, $3, $4)
		RETURNING id, facility_id, name, price_cents, duration_months, created_at
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, facilityID, name, priceCents, durationMonths)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Plan, error) {
	query := `
		SELECT id, facility_id, name, price_cents, duration_months, created_at
		FROM plans
		WHERE id = $1
	`

	var p Plan
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetAllByFacility(ctx context.Context, facilityID int) ([]Plan, error) {
	query := `
		SELECT id, facility_id, name, price_cents, duration_months, created_at
		FROM plans
		WHERE facility_id = $1
		ORDER BY price_cents ASC
	`

	var plans []Plan
	err := r.db.SelectContext(ctx, &plans, query, facilityID)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) Update(ctx context.Context, p *Plan) (*Plan, error) {
	query := `
		UPDATE plans
		SET name = $2, price_cents = $3, duration_months = $4
		WHERE id = $1
		RETURNING id, facility_id, name, price_cents, duration_months, created_at
	`

	var updated Plan
	err := r.db.GetContext(ctx, &updated, query, p.ID, p.Name, p.PriceCents, p.DurationMonths)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id)
	return err
}
