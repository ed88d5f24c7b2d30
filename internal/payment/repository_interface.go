package payment

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a payment with no client side effects (member has no plan).
	Create(ctx context.Context, p *Payment) (*Payment, error)
	// CreateWithClientUpdate inserts the payment and rewrites the client's
	// status and plan expiry in one transaction.
	CreateWithClientUpdate(ctx context.Context, p *Payment, clientStatus string, planExpiresAt time.Time) (*Payment, error)
	GetAllByFacility(ctx context.Context, facilityID int) ([]Payment, error)
	GetAllByClient(ctx context.Context, clientID int) ([]Payment, error)
}
