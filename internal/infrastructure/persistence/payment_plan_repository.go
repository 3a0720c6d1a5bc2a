package persistence

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/planning"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentPlanRepository implements PaymentPlanRepository using GORM
type GormPaymentPlanRepository struct {
	db *gorm.DB
}

// NewGormPaymentPlanRepository creates a new GormPaymentPlanRepository
func NewGormPaymentPlanRepository(db *gorm.DB) *GormPaymentPlanRepository {
	return &GormPaymentPlanRepository{db: db}
}

// FindByID finds a plan by its ID
func (r *GormPaymentPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.PaymentPlan, error) {
	var plan planning.PaymentPlan
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindByProject finds all plans belonging to a project
func (r *GormPaymentPlanRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]planning.PaymentPlan, error) {
	var plans []planning.PaymentPlan
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&planning.PaymentPlan{}).Where("project_id = ?", projectID),
		filter,
	)

	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// FindAll finds all plans matching the filter
func (r *GormPaymentPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.PaymentPlan, error) {
	var plans []planning.PaymentPlan
	query := r.applyFilter(r.db.WithContext(ctx).Model(&planning.PaymentPlan{}), filter)

	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Save creates or updates a plan
func (r *GormPaymentPlanRepository) Save(ctx context.Context, plan *planning.PaymentPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// Delete deletes a plan
func (r *GormPaymentPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&planning.PaymentPlan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts plans matching the filter
func (r *GormPaymentPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&planning.PaymentPlan{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPaymentPlanRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPagination(query, filter, "name ASC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPaymentPlanRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "payment_type":
			query = query.Where("payment_type = ?", value)
		case "project_id":
			query = query.Where("project_id = ?", value)
		}
	}

	return query
}

// Ensure GormPaymentPlanRepository implements PaymentPlanRepository
var _ planning.PaymentPlanRepository = (*GormPaymentPlanRepository)(nil)
