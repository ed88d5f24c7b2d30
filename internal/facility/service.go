package facility

import (
	"context"
	"errors"
	"time"

	"fitadmin/internal/auth"
	"fitadmin/internal/email"
	"fitadmin/internal/logger"
	"fitadmin/internal/metrics"
	"fitadmin/internal/subscription"
)

var (
	ErrFacilityNotFound = errors.New("facility not found")
	ErrTypeNotFound     = errors.New("facility type not found")
	ErrPlanNotFound     = errors.New("subscription plan not found")
	ErrInvalidStatus    = errors.New("invalid subscription status")
)

// QuotaError carries the limit that was hit so handlers can surface it.
type QuotaError struct {
	Kind  string
	Limit int
}

func (e *QuotaError) Error() string {
	return e.Kind + " limit reached for current subscription plan"
}

type Service interface {
	CreateFacility(ctx context.Context, req CreateFacilityRequest) (*Facility, error)
	ListFacilities(ctx context.Context) ([]Facility, error)
	GetFacility(ctx context.Context, id int) (*Facility, error)
	AssignPlan(ctx context.Context, facilityID, planID int) (*Facility, error)
	Override(ctx context.Context, facilityID int, req OverrideRequest) (*Facility, error)
	CheckMemberQuota(ctx context.Context, facilityID int) error
	CheckStaffQuota(ctx context.Context, facilityID int) error

	CreateType(ctx context.Context, req CreateFacilityTypeRequest) (*FacilityType, error)
	GetType(ctx context.Context, id int) (*FacilityType, error)
	ListTypes(ctx context.Context) ([]FacilityType, error)
}

type service struct {
	repo     Repository
	planRepo subscription.Repository
	email    *email.Service
	now      func() time.Time
}

// NewService wires the lifecycle engine to persistence. emailService may be
// nil; welcome mail is best-effort either way.
func NewService(repo Repository, planRepo subscription.Repository, emailService *email.Service) Service {
	return &service{
		repo:     repo,
		planRepo: planRepo,
		email:    emailService,
		now:      time.Now,
	}
}

func (s *service) CreateFacility(ctx context.Context, req CreateFacilityRequest) (*Facility, error) {
	if _, err := s.repo.GetTypeByID(ctx, req.FacilityTypeID); err != nil {
		return nil, ErrTypeNotFound
	}

	f := Facility{
		Name:               req.Name,
		Address:            req.Address,
		FacilityTypeID:     req.FacilityTypeID,
		SubscriptionStatus: StatusPending,
	}

	if req.PlanID != nil {
		plan, err := s.planRepo.GetPlanByID(ctx, *req.PlanID)
		if err != nil {
			return nil, ErrPlanNotFound
		}
		f = AssignPlan(f, *plan, s.now())
	}

	passwordHash, err := auth.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateFacility(ctx, &f, req.AdminName, req.AdminEmail, passwordHash)
	if err != nil {
		return nil, err
	}

	if s.email != nil {
		if err := s.email.SendWelcome(ctx, req.AdminEmail, req.AdminName, created.Name); err != nil {
			logger.Errorf("Failed to queue welcome email for facility %d: %v", created.ID, err)
		}
	}

	logger.Info("Facility created",
		"facility_id", created.ID,
		"status", created.SubscriptionStatus,
	)
	return created, nil
}

// evaluate runs the lazy expiry check and persists a flip best-effort. A failed
// write is logged and the in-memory result returned anyway, so a persistence
// hiccup never blocks the read that triggered the check.
func (s *service) evaluate(ctx context.Context, f Facility) Facility {
	evaluated, changed := EvaluateExpiry(f, s.now())
	if !changed {
		return f
	}

	metrics.RecordSubscriptionExpiration()
	logger.Info("Facility subscription auto-expired",
		"facility_id", evaluated.ID,
		"expired_at", evaluated.SubscriptionExpiresAt,
	)

	if _, err := s.repo.UpdateSubscription(ctx, evaluated.ID, evaluated.SubscriptionPlanID, evaluated.SubscriptionStatus, evaluated.SubscriptionExpiresAt); err != nil {
		logger.Errorf("Failed to persist expiry for facility %d: %v", evaluated.ID, err)
	}

	return evaluated
}

func (s *service) ListFacilities(ctx context.Context) ([]Facility, error) {
	facilities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range facilities {
		facilities[i] = s.evaluate(ctx, facilities[i])
	}
	return facilities, nil
}

func (s *service) GetFacility(ctx context.Context, id int) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrFacilityNotFound
	}

	evaluated := s.evaluate(ctx, *f)
	return &evaluated, nil
}

func (s *service) AssignPlan(ctx context.Context, facilityID, planID int) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, ErrFacilityNotFound
	}

	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		// Plan lookup failure leaves the facility untouched.
		return nil, ErrPlanNotFound
	}

	assigned := AssignPlan(*f, *plan, s.now())
	updated, err := s.repo.UpdateSubscription(ctx, assigned.ID, assigned.SubscriptionPlanID, assigned.SubscriptionStatus, assigned.SubscriptionExpiresAt)
	if err != nil {
		return nil, err
	}

	metrics.RecordPlanAssignment(plan.Name)
	logger.Info("Plan assigned to facility",
		"facility_id", facilityID,
		"plan_id", planID,
		"expires_at", updated.SubscriptionExpiresAt,
	)
	return updated, nil
}

func (s *service) Override(ctx context.Context, facilityID int, req OverrideRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, ErrFacilityNotFound
	}

	var status *Status
	if req.Status != nil {
		parsed, err := ParseStatus(*req.Status)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		status = &parsed
	}

	overridden := ApplyOverride(*f, status, req.ExpiresAt)
	updated, err := s.repo.UpdateSubscription(ctx, overridden.ID, overridden.SubscriptionPlanID, overridden.SubscriptionStatus, overridden.SubscriptionExpiresAt)
	if err != nil {
		return nil, err
	}

	logger.Info("Facility subscription overridden",
		"facility_id", facilityID,
		"status", updated.SubscriptionStatus,
	)
	return updated, nil
}

func (s *service) quotaPlan(ctx context.Context, facilityID int) (*subscription.Plan, error) {
	f, err := s.repo.GetByID(ctx, facilityID)
	if err != nil {
		return nil, ErrFacilityNotFound
	}
	if f.SubscriptionPlanID == nil {
		// No plan assigned means nothing to enforce.
		return nil, nil
	}

	plan, err := s.planRepo.GetPlanByID(ctx, *f.SubscriptionPlanID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *service) CheckMemberQuota(ctx context.Context, facilityID int) error {
	plan, err := s.quotaPlan(ctx, facilityID)
	if err != nil {
		return err
	}
	if plan == nil || plan.MaxMembers == nil {
		return nil
	}

	count, err := s.repo.CountClients(ctx, facilityID)
	if err != nil {
		return err
	}

	if !QuotaAllows(plan.MaxMembers, count) {
		metrics.RecordQuotaRejection("member")
		return &QuotaError{Kind: "member", Limit: *plan.MaxMembers}
	}
	return nil
}

func (s *service) CheckStaffQuota(ctx context.Context, facilityID int) error {
	plan, err := s.quotaPlan(ctx, facilityID)
	if err != nil {
		return err
	}
	if plan == nil || plan.MaxStaff == nil {
		return nil
	}

	count, err := s.repo.CountStaff(ctx, facilityID)
	if err != nil {
		return err
	}

	if !QuotaAllows(plan.MaxStaff, count) {
		metrics.RecordQuotaRejection("staff")
		return &QuotaError{Kind: "staff", Limit: *plan.MaxStaff}
	}
	return nil
}

func (s *service) CreateType(ctx context.Context, req CreateFacilityTypeRequest) (*FacilityType, error) {
	for _, field := range req.MemberFormConfig {
		switch field.Kind {
		case "text", "textarea", "number", "date", "checkbox":
		default:
			return nil, errors.New("unknown form field kind " + field.Kind)
		}
	}

	return s.repo.CreateType(ctx, req.Name, req.Icon, req.MemberFormConfig)
}

func (s *service) GetType(ctx context.Context, id int) (*FacilityType, error) {
	ft, err := s.repo.GetTypeByID(ctx, id)
	if err != nil {
		return nil, ErrTypeNotFound
	}
	return ft, nil
}

func (s *service) ListTypes(ctx context.Context) ([]FacilityType, error) {
	return s.repo.GetAllTypes(ctx)
}
