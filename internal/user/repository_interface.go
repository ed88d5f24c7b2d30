package user

import (
	"context"

	"fitadmin/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, facilityID *int, name, email, passwordHash string, role auth.Role) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetStaffByFacility(ctx context.Context, facilityID int) ([]User, error)
	Delete(ctx context.Context, id int) error
}
