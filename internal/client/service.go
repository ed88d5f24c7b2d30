package client

import (
	"context"
	"errors"
	"time"

	"fitadmin/internal/facility"
	"fitadmin/internal/logger"
	"fitadmin/internal/plan"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrPlanNotFound   = errors.New("membership plan not found")
	ErrInvalidStatus  = errors.New("invalid client status")
)

type Service interface {
	Create(ctx context.Context, facilityID int, req CreateClientRequest) (*Client, error)
	Get(ctx context.Context, facilityID, id int) (*Client, error)
	List(ctx context.Context, facilityID int) ([]Client, error)
	Update(ctx context.Context, facilityID, id int, req UpdateClientRequest) (*Client, error)
	Delete(ctx context.Context, facilityID, id int) error
}

type service struct {
	repo        Repository
	planRepo    plan.Repository
	facilitySvc facility.Service
	now         func() time.Time
}

func NewService(repo Repository, planRepo plan.Repository, facilitySvc facility.Service) Service {
	return &service{
		repo:        repo,
		planRepo:    planRepo,
		facilitySvc: facilitySvc,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, facilityID int, req CreateClientRequest) (*Client, error) {
	// Quota first: the check and the insert are not one transaction, which
	// leaves a small race under concurrent creates. Accepted for human-paced
	// data entry.
	if err := s.facilitySvc.CheckMemberQuota(ctx, facilityID); err != nil {
		return nil, err
	}

	if req.PlanID != nil {
		p, err := s.planRepo.GetByID(ctx, *req.PlanID)
		if err != nil || p.FacilityID != facilityID {
			return nil, ErrPlanNotFound
		}
	}

	c := Client{
		FacilityID:   facilityID,
		Name:         req.Name,
		Phone:        req.Phone,
		PlanID:       req.PlanID,
		Status:       StatusInactive,
		CustomFields: req.CustomFields,
	}

	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		return nil, err
	}

	logger.Info("Client created", "client_id", created.ID, "facility_id", facilityID)
	return created, nil
}

// evaluate runs the lazy payment_due check and persists a flip best-effort;
// a failed write never blocks the read.
func (s *service) evaluate(ctx context.Context, c Client) Client {
	evaluated, changed := EvaluateExpiry(c, s.now())
	if !changed {
		return c
	}

	if err := s.repo.UpdateStatus(ctx, evaluated.ID, evaluated.Status, evaluated.PlanExpiresAt); err != nil {
		logger.Errorf("Failed to persist payment_due for client %d: %v", evaluated.ID, err)
	}

	return evaluated
}

func (s *service) scoped(ctx context.Context, facilityID, id int) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrClientNotFound
	}
	if c.FacilityID != facilityID {
		return nil, ErrClientNotFound
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, facilityID, id int) (*Client, error) {
	c, err := s.scoped(ctx, facilityID, id)
	if err != nil {
		return nil, err
	}

	evaluated := s.evaluate(ctx, *c)
	return &evaluated, nil
}

func (s *service) List(ctx context.Context, facilityID int) ([]Client, error) {
	clients, err := s.repo.GetAllByFacility(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	for i := range clients {
		clients[i] = s.evaluate(ctx, clients[i])
	}
	return clients, nil
}

func (s *service) Update(ctx context.Context, facilityID, id int, req UpdateClientRequest) (*Client, error) {
	c, err := s.scoped(ctx, facilityID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.PlanID != nil {
		p, err := s.planRepo.GetByID(ctx, *req.PlanID)
		if err != nil || p.FacilityID != facilityID {
			return nil, ErrPlanNotFound
		}
		c.PlanID = req.PlanID
	}
	if req.Status != nil {
		parsed, err := ParseStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		c.Status = parsed
	}
	if req.CustomFields != nil {
		c.CustomFields = req.CustomFields
	}

	return s.repo.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, facilityID, id int) error {
	if _, err := s.scoped(ctx, facilityID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
