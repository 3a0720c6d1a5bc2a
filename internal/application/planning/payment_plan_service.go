package planning

import (
	"context"
	"errors"

	"github.com/estate/backend/internal/domain/planning"
	"github.com/estate/backend/internal/domain/realty"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentPlanService normalizes payment-plan submissions and manages plans
type PaymentPlanService struct {
	planRepo    planning.PaymentPlanRepository
	projectRepo realty.ProjectRepository
	storage     AttachmentStorage
}

// NewPaymentPlanService creates a new PaymentPlanService
func NewPaymentPlanService(planRepo planning.PaymentPlanRepository,
	projectRepo realty.ProjectRepository, storage AttachmentStorage) *PaymentPlanService {
	return &PaymentPlanService{
		planRepo:    planRepo,
		projectRepo: projectRepo,
		storage:     storage,
	}
}

// CreatePlan canonicalizes the submission's labels, enforces the plan type's
// conditional fields and persists the plan against an existing project
func (s *PaymentPlanService) CreatePlan(ctx context.Context, projectID uuid.UUID, req CreatePaymentPlanRequest) (*PaymentPlanResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewLinkedEntityNotFoundError("project", projectID.String())
		}
		return nil, err
	}

	planType, err := planning.ParsePlanType(req.PlanType)
	if err != nil {
		return nil, err
	}

	var paymentType *planning.PaymentType
	if req.PaymentType != nil {
		pt, err := planning.ParsePaymentType(*req.PaymentType)
		if err != nil {
			return nil, err
		}
		paymentType = &pt
	}

	emi, err := buildEMITerms(planType, req.ROI, req.EmiCycle)
	if err != nil {
		return nil, err
	}

	var timely *planning.TimelyDiscountTerms
	if req.TimelyDiscount {
		timely, err = buildTimelyDiscount(req.DiscountPerArea, req.DiscountPercentage, req.DiscountCalculate)
		if err != nil {
			return nil, err
		}
	}

	plan, err := planning.NewPaymentPlan(projectID, req.PlanName, planType, paymentType, emi, timely)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		plan.SetDescription(req.Description)
	}

	ref, stored, err := s.resolveAttachment(ctx, plan.ID, req)
	if err != nil {
		return nil, err
	}
	if ref != "" {
		if err := plan.SetAttachment(ref); err != nil {
			s.discardStored(ctx, ref, stored)
			return nil, err
		}
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		s.discardStored(ctx, ref, stored)
		return nil, err
	}

	return ToPaymentPlanResponse(plan), nil
}

// discardStored drops a blob this call stored when the plan row never landed.
// References supplied by the caller are left alone.
func (s *PaymentPlanService) discardStored(ctx context.Context, ref string, stored bool) {
	if stored {
		_ = s.storage.Delete(ctx, ref)
	}
}

// buildEMITerms assembles the EMI sub-struct; both fields are required
// together and only on EMI plans
func buildEMITerms(planType planning.PlanType, roi *decimal.Decimal, cycleLabel *string) (*planning.EMITerms, error) {
	if roi == nil && cycleLabel == nil {
		return nil, nil
	}
	if planType != planning.PlanTypeEMI {
		return nil, shared.NewDomainError("EMI_TERMS_NOT_APPLICABLE",
			"ROI and EMI cycle are only applicable to "+planning.PlanTypeEMI.Label())
	}
	if roi == nil {
		return nil, shared.NewDomainError("ROI_REQUIRED", "ROI is required for "+planType.Label())
	}
	if cycleLabel == nil {
		return nil, shared.NewDomainError("EMI_CYCLE_REQUIRED", "EMI cycle is required for "+planType.Label())
	}

	cycle, err := planning.ParseEmiCycle(*cycleLabel)
	if err != nil {
		return nil, err
	}

	return &planning.EMITerms{ROI: *roi, Cycle: cycle}, nil
}

// buildTimelyDiscount assembles the timely-discount sub-struct
// Per-area is always required; percentage and mode stay optional here and the
// domain enforces their presence for down-payment plans
func buildTimelyDiscount(perArea, percentage *decimal.Decimal, calcLabel *string) (*planning.TimelyDiscountTerms, error) {
	if perArea == nil {
		return nil, shared.NewDomainError("DISCOUNT_PER_AREA_REQUIRED",
			"Discount per area is required when a timely discount is granted")
	}

	terms := &planning.TimelyDiscountTerms{
		PerArea:    *perArea,
		Percentage: percentage,
	}
	if calcLabel != nil {
		mode, err := planning.ParseDiscountCalcMode(*calcLabel)
		if err != nil {
			return nil, err
		}
		terms.CalcMode = &mode
	}

	return terms, nil
}

// resolveAttachment prefers an already-stored reference and otherwise stores
// the submitted bytes through the storage port. The stored flag reports
// whether this call wrote the blob and therefore owns its cleanup.
func (s *PaymentPlanService) resolveAttachment(ctx context.Context, planID uuid.UUID, req CreatePaymentPlanRequest) (string, bool, error) {
	if req.AttachmentRef != "" {
		return req.AttachmentRef, false, nil
	}
	if len(req.Attachment) == 0 {
		return "", false, nil
	}

	name := req.AttachmentName
	if name == "" {
		name = planID.String()
	}
	ref, err := s.storage.Store(ctx, "payment-plans/"+name, req.Attachment)
	if err != nil {
		return "", false, shared.NewDomainError("ATTACHMENT_STORE_FAILED", "Failed to store plan attachment")
	}
	return ref, true, nil
}

// Get returns a single plan
func (s *PaymentPlanService) Get(ctx context.Context, id uuid.UUID) (*PaymentPlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPaymentPlanResponse(plan), nil
}

// ListByProject returns a page of a project's plans
func (s *PaymentPlanService) ListByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) (*ListPaymentPlansResponse, error) {
	plans, err := s.planRepo.FindByProject(ctx, projectID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.planRepo.Count(ctx, filter.WithFilter("project_id", projectID))
	if err != nil {
		return nil, err
	}

	items := make([]PaymentPlanResponse, 0, len(plans))
	for i := range plans {
		items = append(items, *ToPaymentPlanResponse(&plans[i]))
	}

	paginated := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &ListPaymentPlansResponse{
		Items:      paginated.Items,
		Total:      paginated.Total,
		Page:       paginated.Page,
		PageSize:   paginated.PageSize,
		TotalPages: paginated.TotalPages,
	}, nil
}

// UpdatePlan re-validates only the fields present in the patch
// The plan's project link is never rewritten here
func (s *PaymentPlanService) UpdatePlan(ctx context.Context, id uuid.UUID, req UpdatePaymentPlanRequest) (*PaymentPlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlanName != nil {
		if err := plan.Rename(*req.PlanName); err != nil {
			return nil, err
		}
	}
	if req.PaymentType != nil {
		pt, err := planning.ParsePaymentType(*req.PaymentType)
		if err != nil {
			return nil, err
		}
		if err := plan.SetPaymentType(pt); err != nil {
			return nil, err
		}
	}
	if req.ROI != nil || req.EmiCycle != nil {
		terms := planning.EMITerms{}
		if plan.EMI != nil {
			terms = *plan.EMI
		}
		if req.ROI != nil {
			terms.ROI = *req.ROI
		}
		if req.EmiCycle != nil {
			cycle, err := planning.ParseEmiCycle(*req.EmiCycle)
			if err != nil {
				return nil, err
			}
			terms.Cycle = cycle
		}
		if err := plan.SetEMITerms(terms); err != nil {
			return nil, err
		}
	}
	if req.TimelyDiscount != nil && !*req.TimelyDiscount {
		plan.ClearTimelyDiscount()
	} else if (req.TimelyDiscount != nil && *req.TimelyDiscount) ||
		req.DiscountPerArea != nil || req.DiscountPercentage != nil || req.DiscountCalculate != nil {
		terms := planning.TimelyDiscountTerms{}
		if plan.TimelyDiscount != nil {
			terms = *plan.TimelyDiscount
		}
		if req.DiscountPerArea != nil {
			terms.PerArea = *req.DiscountPerArea
		}
		if req.DiscountPercentage != nil {
			terms.Percentage = req.DiscountPercentage
		}
		if req.DiscountCalculate != nil {
			mode, err := planning.ParseDiscountCalcMode(*req.DiscountCalculate)
			if err != nil {
				return nil, err
			}
			terms.CalcMode = &mode
		}
		if err := plan.SetTimelyDiscount(terms); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		plan.SetDescription(*req.Description)
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	return ToPaymentPlanResponse(plan), nil
}

// Delete removes a plan and its stored attachment
func (s *PaymentPlanService) Delete(ctx context.Context, id uuid.UUID) error {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		return err
	}
	if plan.AttachmentURL != "" {
		// Attachment cleanup is best effort; the plan row is already gone
		_ = s.storage.Delete(ctx, plan.AttachmentURL)
	}
	return nil
}
