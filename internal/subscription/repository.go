package subscription

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

func (r *repository) CreatePlan(ctx context.Context, name string, priceCents int64, durationMonths int, maxMembers, maxStaff *int) (*Plan, error) {
	query := `
		INSERT INTO subscription_plans (name, price_cents, duration_months, max_members, max_staff)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, price_cents, duration_months, max_members, max_staff, created_at
	`

	var plan Plan
	err := r.db.GetContext(ctx, &plan, query, name, priceCents, durationMonths, maxMembers, maxStaff)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *repository) GetPlanByID(ctx context.Context, id int) (*Plan, error) {
	query := `
		SELECT id, name, price_cents, duration_months, max_members, max_staff, created_at
		FROM subscription_plans
		WHERE id = $1
	`

	var plan Plan
	err := r.db.GetContext(ctx, &plan, query, id)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *repository) GetAllPlans(ctx context.Context) ([]Plan, error) {
	query := `
		SELECT id, name, price_cents, duration_months, max_members, max_staff, created_at
		FROM subscription_plans
		ORDER BY price_cents ASC
	`

	var plans []Plan
	err := r.db.SelectContext(ctx, &plans, query)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) UpdatePlan(ctx context.Context, p *Plan) (*Plan, error) {
	query := `
		UPDATE subscription_plans
		SET name = $2, price_cents = $3, duration_months = $4, max_members = $5, max_staff = $6
		WHERE id = $1
		RETURNING id, name, price_cents, duration_months, max_members, max_staff, created_at
	`

	var plan Plan
	err := r.db.GetContext(ctx, &plan, query, p.ID, p.Name, p.PriceCents, p.DurationMonths, p.MaxMembers, p.MaxStaff)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *repository) DeletePlan(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM subscription_plans WHERE id = $1`, id)
	return err
}

func (r *repository) PlanInUse(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM facilities WHERE subscription_plan_id = $1)`

	var inUse bool
	err := r.db.GetContext(ctx, &inUse, query, id)
	if err != nil {
		return false, err
	}

	return inUse, nil
}
