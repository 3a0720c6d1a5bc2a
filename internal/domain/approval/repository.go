package approval

import (
	"context"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ApprovalRepository defines the interface for approval persistence
type ApprovalRepository interface {
	// FindByID finds an approval by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Approval, error)

	// FindByStatus finds approvals by decision state
	FindByStatus(ctx context.Context, status ApprovalStatus, filter shared.Filter) ([]Approval, error)

	// FindByRequester finds approvals filed by a user
	FindByRequester(ctx context.Context, requesterID uuid.UUID, filter shared.Filter) ([]Approval, error)

	// FindAll finds all approvals matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Approval, error)

	// Save creates or updates an approval
	Save(ctx context.Context, approval *Approval) error

	// Delete deletes an approval
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts approvals matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
