package plan

import (
	"context"
	"errors"
)

var ErrPlanNotFound = errors.New("membership plan not found")

type Service interface {
	Create(ctx context.Context, facilityID int, req CreatePlanRequest) (*Plan, error)
	Get(ctx context.Context, facilityID, id int) (*Plan, error)
	List(ctx context.Context, facilityID int) ([]Plan, error)
	Update(ctx context.Context, facilityID, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, facilityID, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, facilityID int, req CreatePlanRequest) (*Plan, error) {
	return s.repo.Create(ctx, facilityID, req.Name, req.PriceCents, req.DurationMonths)
}

// scoped loads a plan and rejects access across facility boundaries. A plan
// belonging to another tenant reads as not-found, not forbidden.
func (s *service) scoped(ctx context.Context, facilityID, id int) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	if p.FacilityID != facilityID {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, facilityID, id int) (*Plan, error) {
	return s.scoped(ctx, facilityID, id)
}

func (s *service) List(ctx context.Context, facilityID int) ([]Plan, error) {
	return s.repo.GetAllByFacility(ctx, facilityID)
}

func (s *service) Update(ctx context.Context, facilityID, id int, req UpdatePlanRequest) (*Plan, error) {
	p, err := s.scoped(ctx, facilityID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.DurationMonths != nil {
		p.DurationMonths = *req.DurationMonths
	}

	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, facilityID, id int) error {
	if _, err := s.scoped(ctx, facilityID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
