package attendance

import (
	"context"
	"time"

	"fitadmin/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

const attendanceColumns = `id, client_id, facility_id, date, status, check_in_time, created_at`

func (r *repository) Create(ctx context.Context, clientID, facilityID int, date time.Time, status Status, checkInTime time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.GetContext(ctx, &a, `
		INSERT INTO attendance (client_id, facility_id, date, status, check_in_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+attendanceColumns+`
	`, clientID, facilityID, date, status, checkInTime)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) ExistsForDay(ctx context.Context, clientID, facilityID int, date time.Time) (bool, error) {
	return db.Exists(ctx, r.db, `
		SELECT EXISTS(
			SELECT 1 FROM attendance
			WHERE client_id = $1 AND facility_id = $2 AND date = $3
		)
	`, clientID, facilityID, date)
}

func (r *repository) GetByFacilityAndDate(ctx context.Context, facilityID int, date time.Time) ([]Attendance, error) {
	var records []Attendance
	err := r.db.SelectContext(ctx, &records, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE facility_id = $1 AND date = $2
		ORDER BY check_in_time ASC
	`, facilityID, date)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *repository) GetAllByClient(ctx context.Context, clientID int) ([]Attendance, error) {
	var records []Attendance
	err := r.db.SelectContext(ctx, &records, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE client_id = $1
		ORDER BY date DESC
	`, clientID)
	if err != nil {
		return nil, err
	}

	return records, nil
}
