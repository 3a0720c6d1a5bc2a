package persistence

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/booking"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID finds a booking by its ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b booking.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByClient finds all bookings of a client
func (r *GormBookingRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&booking.Booking{}).Where("client_id = ?", clientID),
		filter,
	)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByProject finds all bookings within a project
func (r *GormBookingRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&booking.Booking{}).Where("project_id = ?", projectID),
		filter,
	)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindAll finds all bookings matching the filter
func (r *GormBookingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Booking, error) {
	var bookings []booking.Booking
	query := r.applyFilter(r.db.WithContext(ctx).Model(&booking.Booking{}), filter)

	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Save creates or updates a booking
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Delete deletes a booking
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&booking.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts bookings matching the filter
func (r *GormBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&booking.Booking{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormBookingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPagination(query, filter, "created_at DESC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBookingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("form_number ILIKE ? OR registration_number ILIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "project_id":
			query = query.Where("project_id = ?", value)
		case "property_id":
			query = query.Where("property_id = ?", value)
		case "sales_employee_id":
			query = query.Where("sales_employee_id = ?", value)
		case "broker_id":
			query = query.Where("broker_id = ?", value)
		}
	}

	return query
}

// Ensure GormBookingRepository implements BookingRepository
var _ booking.BookingRepository = (*GormBookingRepository)(nil)
