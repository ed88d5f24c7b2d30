package subscription

import (
	"context"
	"errors"
)

var (
	ErrPlanNotFound = errors.New("subscription plan not found")
	ErrPlanInUse    = errors.New("subscription plan is referenced by facilities")
)

type Service interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error)
	GetPlan(ctx context.Context, id int) (*Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	UpdatePlan(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error)
	DeletePlan(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePlan(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	return s.repo.CreatePlan(ctx, req.Name, req.PriceCents, req.DurationMonths, req.MaxMembers, req.MaxStaff)
}

func (s *service) GetPlan(ctx context.Context, id int) (*Plan, error) {
	plan, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *service) ListPlans(ctx context.Context) ([]Plan, error) {
	return s.repo.GetAllPlans(ctx)
}

func (s *service) UpdatePlan(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	plan, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, ErrPlanNotFound
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.PriceCents != nil {
		plan.PriceCents = *req.PriceCents
	}
	if req.DurationMonths != nil {
		plan.DurationMonths = *req.DurationMonths
	}
	if req.MaxMembers != nil {
		plan.MaxMembers = req.MaxMembers
	}
	if req.MaxStaff != nil {
		plan.MaxStaff = req.MaxStaff
	}

	return s.repo.UpdatePlan(ctx, plan)
}

func (s *service) DeletePlan(ctx context.Context, id int) error {
	if _, err := s.repo.GetPlanByID(ctx, id); err != nil {
		return ErrPlanNotFound
	}

	inUse, err := s.repo.PlanInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrPlanInUse
	}

	return s.repo.DeletePlan(ctx, id)
}
