package persistence

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/realty"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPropertyRepository implements PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByID finds a property by its ID
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*realty.Property, error) {
	var property realty.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// FindByProject finds all properties belonging to a project
func (r *GormPropertyRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]realty.Property, error) {
	var properties []realty.Property
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&realty.Property{}).Where("project_id = ?", projectID),
		filter,
	)

	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// FindAll finds all properties matching the filter
func (r *GormPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]realty.Property, error) {
	var properties []realty.Property
	query := r.applyFilter(r.db.WithContext(ctx).Model(&realty.Property{}), filter)

	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// FindByStatus finds properties by sale state
func (r *GormPropertyRepository) FindByStatus(ctx context.Context, status realty.PropertyStatus, filter shared.Filter) ([]realty.Property, error) {
	var properties []realty.Property
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&realty.Property{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, property *realty.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

// Delete deletes a property
func (r *GormPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&realty.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts properties matching the filter
func (r *GormPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&realty.Property{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPropertyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPagination(query, filter, "plot_number ASC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPropertyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("plot_number ILIKE ? OR location ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "project_id":
			query = query.Where("project_id = ?", value)
		case "owner_client_id":
			query = query.Where("owner_client_id = ?", value)
		}
	}

	return query
}

// Ensure GormPropertyRepository implements PropertyRepository
var _ realty.PropertyRepository = (*GormPropertyRepository)(nil)
