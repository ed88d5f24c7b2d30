package facility

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Status is the closed set of facility subscription states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusSuspended Status = "suspended"
	StatusBlocked   Status = "blocked"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusExpired, StatusSuspended, StatusBlocked:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown subscription status %q", s)
	}
}

type Facility struct {
	ID                    int        `db:"id" json:"id"`
	Name                  string     `db:"name" json:"name"`
	Address               string     `db:"address" json:"address"`
	FacilityTypeID        int        `db:"facility_type_id" json:"facility_type_id"`
	SubscriptionPlanID    *int       `db:"subscription_plan_id" json:"subscription_plan_id,omitempty"`
	SubscriptionStatus    Status     `db:"subscription_status" json:"subscription_status"`
	SubscriptionExpiresAt *time.Time `db:"subscription_expires_at" json:"subscription_expires_at,omitempty"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
}

// FormField describes one custom member-form input rendered by the dashboard.
type FormField struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// FormFields is stored as JSONB on facility_types.
type FormFields []FormField

func (f FormFields) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FormFields) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	case nil:
		*f = nil
		return nil
	default:
		return errors.New("unsupported type for FormFields")
	}
}

type FacilityType struct {
	ID               int        `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	Icon             string     `db:"icon" json:"icon"`
	MemberFormConfig FormFields `db:"member_form_config" json:"member_form_config"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

type CreateFacilityRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	FacilityTypeID int    `json:"facility_type_id" binding:"required"`
	AdminName      string `json:"admin_name" binding:"required"`
	AdminEmail     string `json:"admin_email" binding:"required,email"`
	AdminPassword  string `json:"admin_password" binding:"required,min=8"`
	PlanID         *int   `json:"plan_id,omitempty"`
}

type AssignPlanRequest struct {
	PlanID int `json:"plan_id" binding:"required"`
}

type OverrideRequest struct {
	Status    *string    `json:"status,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type CreateFacilityTypeRequest struct {
	Name             string     `json:"name" binding:"required"`
	Icon             string     `json:"icon"`
	MemberFormConfig FormFields `json:"member_form_config"`
}
