package planning

import (
	"context"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentPlanRepository defines the interface for payment-plan persistence
type PaymentPlanRepository interface {
	// FindByID finds a plan by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentPlan, error)

	// FindByProject finds all plans belonging to a project
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]PaymentPlan, error)

	// FindAll finds all plans matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentPlan, error)

	// Save creates or updates a plan
	Save(ctx context.Context, plan *PaymentPlan) error

	// Delete deletes a plan
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts plans matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
