package planning

import (
	"context"
	"testing"

	"github.com/estate/backend/internal/domain/planning"
	"github.com/estate/backend/internal/domain/realty"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPaymentPlanRepository is a mock implementation of planning.PaymentPlanRepository
type MockPaymentPlanRepository struct {
	mock.Mock
}

func (m *MockPaymentPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.PaymentPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.PaymentPlan), args.Error(1)
}

func (m *MockPaymentPlanRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]planning.PaymentPlan, error) {
	args := m.Called(ctx, projectID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]planning.PaymentPlan), args.Error(1)
}

func (m *MockPaymentPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.PaymentPlan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]planning.PaymentPlan), args.Error(1)
}

func (m *MockPaymentPlanRepository) Save(ctx context.Context, plan *planning.PaymentPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPaymentPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProjectRepository is a mock implementation of realty.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*realty.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realty.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]realty.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]realty.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, project *realty.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAttachmentStorage is a mock implementation of AttachmentStorage
type MockAttachmentStorage struct {
	mock.Mock
}

func (m *MockAttachmentStorage) Store(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentStorage) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func labelPtr(s string) *string {
	return &s
}

func newPlanFixture(t *testing.T) (*PaymentPlanService, *MockPaymentPlanRepository, *MockProjectRepository, *MockAttachmentStorage, uuid.UUID) {
	t.Helper()
	planRepo := new(MockPaymentPlanRepository)
	projectRepo := new(MockProjectRepository)
	storage := new(MockAttachmentStorage)

	project, err := realty.NewProject("Green Valley", "Pune")
	require.NoError(t, err)
	projectRepo.On("FindByID", mock.Anything, project.ID).Return(project, nil)

	return NewPaymentPlanService(planRepo, projectRepo, storage), planRepo, projectRepo, storage, project.ID
}

func TestPaymentPlanService_CreatePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("emi plan requires roi and cycle", func(t *testing.T) {
		svc, planRepo, _, _, projectID := newPlanFixture(t)

		_, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName: "EMI 36",
			PlanType: "Emi Plan",
			PaymentType: labelPtr("Fix"),
		})

		require.Error(t, err)
		planRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("emi plan stores canonical cycle", func(t *testing.T) {
		svc, planRepo, _, _, projectID := newPlanFixture(t)
		planRepo.On("Save", ctx, mock.AnythingOfType("*planning.PaymentPlan")).Return(nil)

		resp, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName:    "EMI 36",
			PlanType:    "Emi Plan",
			PaymentType: labelPtr("Fix"),
			ROI:         decPtr(decimal.NewFromFloat(9.5)),
			EmiCycle:    labelPtr("Half Yearly"),
		})

		require.NoError(t, err)
		require.NotNil(t, resp.EmiCycle)
		assert.Equal(t, "HALF_YEARLY", *resp.EmiCycle)
	})

	t.Run("non-emi plan creates without roi", func(t *testing.T) {
		svc, planRepo, _, _, projectID := newPlanFixture(t)
		planRepo.On("Save", ctx, mock.AnythingOfType("*planning.PaymentPlan")).Return(nil)

		resp, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName:    "Time 12",
			PlanType:    "Time Plan",
			PaymentType: labelPtr("Percentage"),
		})

		require.NoError(t, err)
		assert.Nil(t, resp.ROI)
	})

	t.Run("down payment timely discount maps calc mode to canonical FIX", func(t *testing.T) {
		svc, planRepo, _, _, projectID := newPlanFixture(t)
		planRepo.On("Save", ctx, mock.AnythingOfType("*planning.PaymentPlan")).Return(nil)

		resp, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName:           "DP 20-80",
			PlanType:           "Down Payment Plan",
			PaymentType:        labelPtr("Percentage"),
			TimelyDiscount:     true,
			DiscountPerArea:    decPtr(decimal.NewFromInt(10)),
			DiscountPercentage: decPtr(decimal.NewFromInt(5)),
			DiscountCalculate:  labelPtr("Fix"),
		})

		require.NoError(t, err)
		require.NotNil(t, resp.DiscountCalculate)
		assert.Equal(t, "FIX", *resp.DiscountCalculate)
	})

	t.Run("unknown plan type label is rejected", func(t *testing.T) {
		svc, _, _, _, projectID := newPlanFixture(t)

		_, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName: "Custom",
			PlanType: "Installment Plan",
		})

		assert.Error(t, err)
	})

	t.Run("dangling project yields linked entity error", func(t *testing.T) {
		planRepo := new(MockPaymentPlanRepository)
		projectRepo := new(MockProjectRepository)
		svc := NewPaymentPlanService(planRepo, projectRepo, new(MockAttachmentStorage))

		missing := uuid.New()
		projectRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := svc.CreatePlan(ctx, missing, CreatePaymentPlanRequest{
			PlanName: "CLP",
			PlanType: "Construction Plan",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "LINKED_ENTITY_NOT_FOUND", domainErr.Code)
	})

	t.Run("attachment bytes go through storage", func(t *testing.T) {
		svc, planRepo, _, storage, projectID := newPlanFixture(t)
		planRepo.On("Save", ctx, mock.AnythingOfType("*planning.PaymentPlan")).Return(nil)
		storage.On("Store", ctx, "payment-plans/clp.pdf", []byte("pdf-bytes")).
			Return("attachments/clp.pdf", nil)

		resp, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName:       "CLP",
			PlanType:       "Construction Plan",
			AttachmentName: "clp.pdf",
			Attachment:     []byte("pdf-bytes"),
		})

		require.NoError(t, err)
		assert.Equal(t, "attachments/clp.pdf", resp.AttachmentURL)
		storage.AssertExpectations(t)
	})

	t.Run("stored attachment is discarded when the save fails", func(t *testing.T) {
		svc, planRepo, _, storage, projectID := newPlanFixture(t)
		planRepo.On("Save", ctx, mock.AnythingOfType("*planning.PaymentPlan")).
			Return(assert.AnError)
		storage.On("Store", ctx, "payment-plans/clp.pdf", []byte("pdf-bytes")).
			Return("attachments/clp.pdf", nil)
		storage.On("Delete", ctx, "attachments/clp.pdf").Return(nil)

		_, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName:       "CLP",
			PlanType:       "Construction Plan",
			AttachmentName: "clp.pdf",
			Attachment:     []byte("pdf-bytes"),
		})

		require.Error(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("caller-supplied reference survives a failed save", func(t *testing.T) {
		svc, planRepo, _, storage, projectID := newPlanFixture(t)
		planRepo.On("Save", ctx, mock.AnythingOfType("*planning.PaymentPlan")).
			Return(assert.AnError)

		_, err := svc.CreatePlan(ctx, projectID, CreatePaymentPlanRequest{
			PlanName:      "CLP",
			PlanType:      "Construction Plan",
			AttachmentRef: "attachments/shared-brochure.pdf",
		})

		require.Error(t, err)
		storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPaymentPlanService_ListByProject(t *testing.T) {
	ctx := context.Background()

	t.Run("total counts only the project's plans", func(t *testing.T) {
		svc, planRepo, _, _, projectID := newPlanFixture(t)

		pt := planning.PaymentTypeFixed
		plan, err := planning.NewPaymentPlan(projectID, "Flexi 40-60", planning.PlanTypeFlexi, &pt, nil, nil)
		require.NoError(t, err)

		filter := shared.DefaultFilter()
		planRepo.On("FindByProject", ctx, projectID, filter).
			Return([]planning.PaymentPlan{*plan}, nil)
		planRepo.On("Count", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["project_id"] == projectID
		})).Return(int64(1), nil)

		resp, err := svc.ListByProject(ctx, projectID, filter)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Total)
		planRepo.AssertExpectations(t)
	})
}

func TestPaymentPlanService_UpdatePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("patch keeps project link", func(t *testing.T) {
		svc, planRepo, _, _, _ := newPlanFixture(t)

		projectID := uuid.New()
		pt := planning.PaymentTypeFixed
		plan, err := planning.NewPaymentPlan(projectID, "Flexi 40-60", planning.PlanTypeFlexi, &pt, nil, nil)
		require.NoError(t, err)

		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)
		planRepo.On("Save", ctx, plan).Return(nil)

		resp, err := svc.UpdatePlan(ctx, plan.ID, UpdatePaymentPlanRequest{
			PlanName: labelPtr("Flexi 50-50"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Flexi 50-50", resp.PlanName)
		assert.Equal(t, projectID, resp.ProjectID)
	})

	t.Run("invalid label in patch is rejected", func(t *testing.T) {
		svc, planRepo, _, _, _ := newPlanFixture(t)

		pt := planning.PaymentTypeFixed
		plan, err := planning.NewPaymentPlan(uuid.New(), "Flexi 40-60", planning.PlanTypeFlexi, &pt, nil, nil)
		require.NoError(t, err)

		planRepo.On("FindByID", ctx, plan.ID).Return(plan, nil)

		_, err = svc.UpdatePlan(ctx, plan.ID, UpdatePaymentPlanRequest{
			PaymentType: labelPtr("Installment"),
		})

		assert.Error(t, err)
		planRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
