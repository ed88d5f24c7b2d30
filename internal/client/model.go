package client

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusPaymentDue Status = "payment_due"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusPaymentDue:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown client status %q", s)
	}
}

// CustomFields holds the values entered through the facility type's dynamic
// member form, stored as JSONB.
type CustomFields map[string]interface{}

func (f CustomFields) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *CustomFields) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	case nil:
		*f = nil
		return nil
	default:
		return errors.New("unsupported type for CustomFields")
	}
}

// Client is a member of a facility, not a SaaS customer.
type Client struct {
	ID            int          `db:"id" json:"id"`
	FacilityID    int          `db:"facility_id" json:"facility_id"`
	Name          string       `db:"name" json:"name"`
	Phone         string       `db:"phone" json:"phone"`
	PlanID        *int         `db:"plan_id" json:"plan_id,omitempty"`
	Status        Status       `db:"status" json:"status"`
	PlanExpiresAt *time.Time   `db:"plan_expires_at" json:"plan_expires_at,omitempty"`
	CustomFields  CustomFields `db:"custom_fields" json:"custom_fields,omitempty"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}

type CreateClientRequest struct {
	Name         string       `json:"name" binding:"required"`
	Phone        string       `json:"phone" binding:"required"`
	PlanID       *int         `json:"plan_id,omitempty"`
	CustomFields CustomFields `json:"custom_fields,omitempty"`
}

type UpdateClientRequest struct {
	Name         *string      `json:"name,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	PlanID       *int         `json:"plan_id,omitempty"`
	Status       *string      `json:"status,omitempty"`
	CustomFields CustomFields `json:"custom_fields,omitempty"`
}
