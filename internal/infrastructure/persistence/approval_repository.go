package persistence

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/approval"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/estate/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormApprovalRepository implements ApprovalRepository using GORM.
// Approvals go through a persistence model so the typed payload can be
// stored as jsonb and decoded on the way back.
type GormApprovalRepository struct {
	db *gorm.DB
}

// NewGormApprovalRepository creates a new GormApprovalRepository
func NewGormApprovalRepository(db *gorm.DB) *GormApprovalRepository {
	return &GormApprovalRepository{db: db}
}

// FindByID finds an approval by its ID
func (r *GormApprovalRepository) FindByID(ctx context.Context, id uuid.UUID) (*approval.Approval, error) {
	var model models.ApprovalModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByStatus finds approvals by decision state
func (r *GormApprovalRepository) FindByStatus(ctx context.Context, status approval.ApprovalStatus, filter shared.Filter) ([]approval.Approval, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ApprovalModel{}).Where("status = ?", status),
		filter,
	)
	return r.findModels(query)
}

// FindByRequester finds approvals filed by a user
func (r *GormApprovalRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID, filter shared.Filter) ([]approval.Approval, error) {
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ApprovalModel{}).Where("requester_id = ?", requesterID),
		filter,
	)
	return r.findModels(query)
}

// FindAll finds all approvals matching the filter
func (r *GormApprovalRepository) FindAll(ctx context.Context, filter shared.Filter) ([]approval.Approval, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ApprovalModel{}), filter)
	return r.findModels(query)
}

func (r *GormApprovalRepository) findModels(query *gorm.DB) ([]approval.Approval, error) {
	var approvalModels []models.ApprovalModel
	if err := query.Find(&approvalModels).Error; err != nil {
		return nil, err
	}

	approvals := make([]approval.Approval, len(approvalModels))
	for i, model := range approvalModels {
		a, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		approvals[i] = *a
	}
	return approvals, nil
}

// Save creates or updates an approval
func (r *GormApprovalRepository) Save(ctx context.Context, a *approval.Approval) error {
	model, err := models.ApprovalModelFromDomain(a)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an approval
func (r *GormApprovalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ApprovalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts approvals matching the filter
func (r *GormApprovalRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ApprovalModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormApprovalRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPagination(query, filter, "created_at DESC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormApprovalRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		case "requester_id":
			query = query.Where("requester_id = ?", value)
		}
	}

	return query
}

// Ensure GormApprovalRepository implements ApprovalRepository
var _ approval.ApprovalRepository = (*GormApprovalRepository)(nil)
