package facility

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

const facilityColumns = `id, name, address, facility_type_id, subscription_plan_id, subscription_status, subscription_expires_at, created_at`

func (r *repository) CreateFacility(ctx context.Context, f *Facility, adminName, adminEmail, adminPasswordHash string) (*Facility, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var created Facility
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO facilities (name, address, facility_type_id, subscription_plan_id, subscription_status, subscription_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+facilityColumns+`
	`, f.Name, f.Address, f.FacilityTypeID, f.SubscriptionPlanID, f.SubscriptionStatus, f.SubscriptionExpiresAt).StructScan(&created)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (facility_id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, 'admin')
	`, created.ID, adminName, adminEmail, adminPasswordHash)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Facility, error) {
	var f Facility
	err := r.db.GetContext(ctx, &f, `
		SELECT `+facilityColumns+`
		FROM facilities
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Facility, error) {
	var facilities []Facility
	err := r.db.SelectContext(ctx, &facilities, `
		SELECT `+facilityColumns+`
		FROM facilities
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}

	return facilities, nil
}

func (r *repository) UpdateSubscription(ctx context.Context, id int, planID *int, status Status, expiresAt *time.Time) (*Facility, error) {
	var f Facility
	err := r.db.GetContext(ctx, &f, `
		UPDATE facilities
		SET subscription_plan_id = $2, subscription_status = $3, subscription_expires_at = $4
		WHERE id = $1
		RETURNING `+facilityColumns+`
	`, id, planID, status, expiresAt)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func (r *repository) CountClients(ctx context.Context, facilityID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM clients WHERE facility_id = $1
	`, facilityID)
	return count, err
}

func (r *repository) CountStaff(ctx context.Context, facilityID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM users WHERE facility_id = $1 AND role = 'trainer'
	`, facilityID)
	return count, err
}

func (r *repository) CreateType(ctx context.Context, name, icon string, formConfig FormFields) (*FacilityType, error) {
	var ft FacilityType
	err := r.db.GetContext(ctx, &ft, `
		INSERT INTO facility_types (name, icon, member_form_config)
		VALUES ($1, $2, $3)
		RETURNING id, name, icon, member_form_config, created_at
	`, name, icon, formConfig)
	if err != nil {
		return nil, err
	}

	return &ft, nil
}

func (r *repository) GetTypeByID(ctx context.Context, id int) (*FacilityType, error) {
	var ft FacilityType
	err := r.db.GetContext(ctx, &ft, `
		SELECT id, name, icon, member_form_config, created_at
		FROM facility_types
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}

	return &ft, nil
}

func (r *repository) GetAllTypes(ctx context.Context) ([]FacilityType, error) {
	var types []FacilityType
	err := r.db.SelectContext(ctx, &types, `
		SELECT id, name, icon, member_form_config, created_at
		FROM facility_types
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}

	return types, nil
}
