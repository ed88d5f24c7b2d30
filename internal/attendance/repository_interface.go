package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, clientID, facilityID int, date time.Time, status Status, checkInTime time.Time) (*Attendance, error)
	ExistsForDay(ctx context.Context, clientID, facilityID int, date time.Time) (bool, error)
	GetByFacilityAndDate(ctx context.Context, facilityID int, date time.Time) ([]Attendance, error)
	GetAllByClient(ctx context.Context, clientID int) ([]Attendance, error)
}
