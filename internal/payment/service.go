package payment

import (
	"context"
	"errors"
	"time"

	"fitadmin/internal/client"
	"fitadmin/internal/logger"
	"fitadmin/internal/metrics"
	"fitadmin/internal/plan"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidMethod  = errors.New("invalid payment method")
)

type Result struct {
	Payment       *Payment
	UpdatedClient *client.Client
}

type Service interface {
	RecordPayment(ctx context.Context, facilityID int, req RecordPaymentRequest) (*Result, error)
	ListByFacility(ctx context.Context, facilityID int) ([]Payment, error)
	ListByClient(ctx context.Context, facilityID, clientID int) ([]Payment, error)
}

type service struct {
	repo       Repository
	clientRepo client.Repository
	planRepo   plan.Repository
	now        func() time.Time
}

func NewService(repo Repository, clientRepo client.Repository, planRepo plan.Repository) Service {
	return &service{
		repo:       repo,
		clientRepo: clientRepo,
		planRepo:   planRepo,
		now:        time.Now,
	}
}

// RecordPayment inserts the payment and, when the member has an assigned plan,
// recomputes plan_expires_at from this payment's date and reactivates the
// member. Repeat payments on the same day simply recompute again: last write
// wins, remaining time never accumulates.
func (s *service) RecordPayment(ctx context.Context, facilityID int, req RecordPaymentRequest) (*Result, error) {
	method, err := ParseMethod(req.Method)
	if err != nil {
		return nil, ErrInvalidMethod
	}

	member, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil || member.FacilityID != facilityID {
		return nil, ErrClientNotFound
	}

	paidAt := s.now()
	if req.Date != nil {
		paidAt = *req.Date
	}

	p := Payment{
		ClientID:    member.ID,
		FacilityID:  facilityID,
		AmountCents: req.AmountCents,
		Method:      method,
		PaidAt:      paidAt,
	}

	if member.PlanID == nil {
		// No plan assigned: record the payment, leave status and expiry alone.
		created, err := s.repo.Create(ctx, &p)
		if err != nil {
			return nil, err
		}
		metrics.RecordPayment(string(method))
		return &Result{Payment: created, UpdatedClient: member}, nil
	}

	memberPlan, err := s.planRepo.GetByID(ctx, *member.PlanID)
	if err != nil {
		return nil, err
	}

	expiresAt := paidAt.AddDate(0, memberPlan.DurationMonths, 0)
	created, err := s.repo.CreateWithClientUpdate(ctx, &p, string(client.StatusActive), expiresAt)
	if err != nil {
		return nil, err
	}

	member.Status = client.StatusActive
	member.PlanExpiresAt = &expiresAt

	metrics.RecordPayment(string(method))
	logger.Info("Payment recorded",
		"client_id", member.ID,
		"amount_cents", req.AmountCents,
		"plan_expires_at", expiresAt,
	)
	return &Result{Payment: created, UpdatedClient: member}, nil
}

func (s *service) ListByFacility(ctx context.Context, facilityID int) ([]Payment, error) {
	return s.repo.GetAllByFacility(ctx, facilityID)
}

func (s *service) ListByClient(ctx context.Context, facilityID, clientID int) ([]Payment, error) {
	member, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil || member.FacilityID != facilityID {
		return nil, ErrClientNotFound
	}

	return s.repo.GetAllByClient(ctx, clientID)
}
