package client

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

const clientColumns = `id, facility_id, name, phone, plan_id, status, plan_expires_at, custom_fields, created_at`

func (r *repository) Create(ctx context.Context, c *Client) (*Client, error) {
	var created Client
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO clients (facility_id, name, phone, plan_id, status, plan_expires_at, custom_fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+clientColumns+`
	`, c.FacilityID, c.Name, c.Phone, c.PlanID, c.Status, c.PlanExpiresAt, c.CustomFields)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Client, error) {
	var c Client
	err := r.db.GetContext(ctx, &c, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) GetAllByFacility(ctx context.Context, facilityID int) ([]Client, error) {
	var clients []Client
	err := r.db.SelectContext(ctx, &clients, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE facility_id = $1
		ORDER BY created_at DESC
	`, facilityID)
	if err != nil {
		return nil, err
	}

	return clients, nil
}

func (r *repository) Update(ctx context.Context, c *Client) (*Client, error) {
	var updated Client
	err := r.db.GetContext(ctx, &updated, `
		UPDATE clients
		SET name = $2, phone = $3, plan_id = $4, status = $5, plan_expires_at = $6, custom_fields = $7
		WHERE id = $1
		RETURNING `+clientColumns+`
	`, c.ID, c.Name, c.Phone, c.PlanID, c.Status, c.PlanExpiresAt, c.CustomFields)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status, planExpiresAt *time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET status = $2, plan_expires_at = $3
		WHERE id = $1
	`, id, status, planExpiresAt)
	return err
}

func (r *repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}
