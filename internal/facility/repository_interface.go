package facility

import (
	"context"
	"time"
)

type Repository interface {
	// CreateFacility inserts the facility and its admin user account in one
	// transaction.
	CreateFacility(ctx context.Context, f *Facility, adminName, adminEmail, adminPasswordHash string) (*Facility, error)
	GetByID(ctx context.Context, id int) (*Facility, error)
	GetAll(ctx context.Context) ([]Facility, error)
	UpdateSubscription(ctx context.Context, id int, planID *int, status Status, expiresAt *time.Time) (*Facility, error)
	CountClients(ctx context.Context, facilityID int) (int, error)
	CountStaff(ctx context.Context, facilityID int) (int, error)

	CreateType(ctx context.Context, name, icon string, formConfig FormFields) (*FacilityType, error)
	GetTypeByID(ctx context.Context, id int) (*FacilityType, error)
	GetAllTypes(ctx context.Context) ([]FacilityType, error)
}
