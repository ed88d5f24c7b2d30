package plan

import "context"

type Repository interface {
	Create(ctx context.Context, facilityID int, name string, priceCents int64, durationMonths int) (*Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
	GetAllByFacility(ctx context.Context, facilityID int) ([]Plan, error)
	Update(ctx context.Context, p *Plan) (*Plan, error)
	Delete(ctx context.Context, id int) error
}
