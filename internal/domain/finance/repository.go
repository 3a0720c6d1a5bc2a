package finance

import (
	"context"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByClient finds all invoices issued to a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Invoice, error)

	// FindByStatus finds invoices by settlement state
	FindByStatus(ctx context.Context, status InvoiceStatus, filter shared.Filter) ([]Invoice, error)

	// FindAll finds all invoices matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// Delete deletes an invoice
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
