package subscription

import "context"

type Repository interface {
	CreatePlan(ctx context.Context, name string, priceCents int64, durationMonths int, maxMembers, maxStaff *int) (*Plan, error)
	GetPlanByID(ctx context.Context, id int) (*Plan, error)
	GetAllPlans(ctx context.Context) ([]Plan, error)
	UpdatePlan(ctx context.Context, p *Plan) (*Plan, error)
	DeletePlan(ctx context.Context, id int) error
	PlanInUse(ctx context.Context, id int) (bool, error)
}
