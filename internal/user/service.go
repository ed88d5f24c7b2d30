package user

import (
	"context"
	"errors"

	"fitadmin/internal/auth"
	"fitadmin/internal/facility"
	"fitadmin/internal/logger"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	CreateStaff(ctx context.Context, facilityID int, req CreateStaffRequest) (*User, error)
	ListStaff(ctx context.Context, facilityID int) ([]User, error)
	DeleteStaff(ctx context.Context, facilityID, userID int) error
}

type service struct {
	repo        Repository
	facilitySvc facility.Service
	jwtSecret   string
}

func NewService(repo Repository, facilitySvc facility.Service, jwtSecret string) Service {
	return &service{
		repo:        repo,
		facilitySvc: facilitySvc,
		jwtSecret:   jwtSecret,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, u.FacilityID, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	newAccessToken, err := auth.GenerateAccessToken(u.ID, u.Email, u.Role, u.FacilityID, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, u, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) CreateStaff(ctx context.Context, facilityID int, req CreateStaffRequest) (*User, error) {
	if err := s.facilitySvc.CheckStaffQuota(ctx, facilityID); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &facilityID, req.Name, req.Email, passwordHash, auth.RoleTrainer)
	if err != nil {
		return nil, err
	}

	logger.Info("Staff account created", "user_id", created.ID, "facility_id", facilityID)
	return created, nil
}

func (s *service) ListStaff(ctx context.Context, facilityID int) ([]User, error) {
	return s.repo.GetStaffByFacility(ctx, facilityID)
}

func (s *service) DeleteStaff(ctx context.Context, facilityID, userID int) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if u.Role != auth.RoleTrainer || u.FacilityID == nil || *u.FacilityID != facilityID {
		return ErrUserNotFound
	}

	return s.repo.Delete(ctx, userID)
}
