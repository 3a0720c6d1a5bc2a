package booking

import (
	"context"

	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BookingRepository defines the interface for booking persistence
type BookingRepository interface {
	// FindByID finds a booking by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByClient finds all bookings of a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Booking, error)

	// FindByProject finds all bookings within a project
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]Booking, error)

	// FindAll finds all bookings matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Booking, error)

	// Save creates or updates a booking
	Save(ctx context.Context, booking *Booking) error

	// Delete deletes a booking
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts bookings matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
