package realty

import (
	"context"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// FindByID finds a project by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// FindAll finds all projects matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Project, error)

	// Save creates or updates a project
	Save(ctx context.Context, project *Project) error

	// Delete deletes a project
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts projects matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// PropertyRepository defines the interface for property persistence
type PropertyRepository interface {
	// FindByID finds a property by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)

	// FindByProject finds all properties belonging to a project
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]Property, error)

	// FindAll finds all properties matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Property, error)

	// FindByStatus finds properties by sale state
	FindByStatus(ctx context.Context, status PropertyStatus, filter shared.Filter) ([]Property, error)

	// Save creates or updates a property
	Save(ctx context.Context, property *Property) error

	// Delete deletes a property
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts properties matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
