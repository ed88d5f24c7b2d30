package client

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Client) (*Client, error)
	GetByID(ctx context.Context, id int) (*Client, error)
	GetAllByFacility(ctx context.Context, facilityID int) ([]Client, error)
	Update(ctx context.Context, c *Client) (*Client, error)
	UpdateStatus(ctx context.Context, id int, status Status, planExpiresAt *time.Time) error
	Delete(ctx context.Context, id int) error
}
