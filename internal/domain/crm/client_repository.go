package crm

import (
	"context"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByEmail finds a client by email
	FindByEmail(ctx context.Context, email string) (*Client, error)

	// FindByPAN finds a client by PAN
	FindByPAN(ctx context.Context, pan string) (*Client, error)

	// FindAll finds all clients matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// FindByStatus finds clients by status
	FindByStatus(ctx context.Context, status ClientStatus, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete deletes a client
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByEmail checks if a client with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
