package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusExcused Status = "excused"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusExcused:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown attendance status %q", s)
	}
}

type Attendance struct {
	ID          int       `db:"id" json:"id"`
	ClientID    int       `db:"client_id" json:"client_id"`
	FacilityID  int       `db:"facility_id" json:"facility_id"`
	Date        time.Time `db:"date" json:"date"`
	Status      Status    `db:"status" json:"status"`
	CheckInTime time.Time `db:"check_in_time" json:"check_in_time"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateAttendanceRequest struct {
	ClientID int    `json:"client_id" binding:"required"`
	Status   string `json:"status" binding:"required"`
}
