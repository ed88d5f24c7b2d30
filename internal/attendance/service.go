package attendance

import (
	"context"
	"errors"
	"time"

	"fitadmin/internal/client"
	"fitadmin/internal/metrics"
)

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrAlreadyCheckedIn = errors.New("client already has an attendance record for this day")
	ErrInvalidStatus    = errors.New("invalid attendance status")
)

type Service interface {
	CheckIn(ctx context.Context, facilityID int, req CreateAttendanceRequest) (*Attendance, error)
	ListByDate(ctx context.Context, facilityID int, date time.Time) ([]Attendance, error)
	ListByClient(ctx context.Context, facilityID, clientID int) ([]Attendance, error)
}

type service struct {
	repo       Repository
	clientRepo client.Repository
	now        func() time.Time
}

func NewService(repo Repository, clientRepo client.Repository) Service {
	return &service{
		repo:       repo,
		clientRepo: clientRepo,
		now:        time.Now,
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn enforces one attendance record per client per day with a read-then-
// write existence check. Two simultaneous check-ins for the same client can
// both pass the check; attendance is human-paced data entry and the duplicate
// is harmless, so no unique constraint backs this up.
func (s *service) CheckIn(ctx context.Context, facilityID int, req CreateAttendanceRequest) (*Attendance, error) {
	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	member, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil || member.FacilityID != facilityID {
		return nil, ErrClientNotFound
	}

	now := s.now()
	today := dayOf(now)

	exists, err := s.repo.ExistsForDay(ctx, member.ID, facilityID, today)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyCheckedIn
	}

	record, err := s.repo.Create(ctx, member.ID, facilityID, today, status, now)
	if err != nil {
		return nil, err
	}

	metrics.RecordCheckIn(string(status))
	return record, nil
}

func (s *service) ListByDate(ctx context.Context, facilityID int, date time.Time) ([]Attendance, error) {
	return s.repo.GetByFacilityAndDate(ctx, facilityID, dayOf(date))
}

func (s *service) ListByClient(ctx context.Context, facilityID, clientID int) ([]Attendance, error) {
	member, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil || member.FacilityID != facilityID {
		return nil, ErrClientNotFound
	}

	return s.repo.GetAllByClient(ctx, clientID)
}
